package model

// Components holds per-component token groups. Button, card and input date
// from schema 1.0; alert, table, navigation and tag from 2.0; tabs, form and
// table variants from 2.1.
type Components struct {
	Button        *ButtonTokens        `json:"button,omitempty"`
	Card          *CardTokens          `json:"card,omitempty"`
	Input         *InputTokens         `json:"input,omitempty"`
	Alert         *AlertTokens         `json:"alert,omitempty"`
	Table         *TableTokens         `json:"table,omitempty"`
	Navigation    *NavigationTokens    `json:"navigation,omitempty"`
	Tag           *TagTokens           `json:"tag,omitempty"`
	Tabs          *TabsTokens          `json:"tabs,omitempty"`
	Form          *FormTokens          `json:"form,omitempty"`
	TableVariants *TableVariantsTokens `json:"tableVariants,omitempty"`
}

type ButtonVariant struct {
	Background ColorToken  `json:"background"`
	Foreground ColorToken  `json:"foreground"`
	Hover      *ColorToken `json:"hover,omitempty"`
	Border     *ColorToken `json:"border,omitempty"`
}

type ButtonTokens struct {
	Primary     *ButtonVariant `json:"primary,omitempty"`
	Secondary   *ButtonVariant `json:"secondary,omitempty"`
	Outline     *ButtonVariant `json:"outline,omitempty"`
	Ghost       *ButtonVariant `json:"ghost,omitempty"`
	Destructive *ButtonVariant `json:"destructive,omitempty"`
	Radius      string         `json:"radius,omitempty"`
	PaddingX    string         `json:"paddingX,omitempty"`
	PaddingY    string         `json:"paddingY,omitempty"`
	FontWeight  CSSValue       `json:"fontWeight,omitempty"`
}

type CardTokens struct {
	Background  ColorToken  `json:"background"`
	Foreground  ColorToken  `json:"foreground"`
	Border      ColorToken  `json:"border"`
	HoverBorder *ColorToken `json:"hoverBorder,omitempty"`
	Radius      string      `json:"radius,omitempty"`
	Padding     string      `json:"padding,omitempty"`
	Shadow      string      `json:"shadow,omitempty"`
}

type InputTokens struct {
	Background  ColorToken  `json:"background"`
	Foreground  ColorToken  `json:"foreground"`
	Border      ColorToken  `json:"border"`
	Focus       ColorToken  `json:"focus"`
	Placeholder *ColorToken `json:"placeholder,omitempty"`
	Radius      string      `json:"radius,omitempty"`
	Height      string      `json:"height,omitempty"`
	PaddingX    string      `json:"paddingX,omitempty"`
}

type AlertVariant struct {
	Background ColorToken `json:"background"`
	Foreground ColorToken `json:"foreground"`
	Border     ColorToken `json:"border"`
}

type AlertTokens struct {
	Info    *AlertVariant `json:"info,omitempty"`
	Success *AlertVariant `json:"success,omitempty"`
	Warning *AlertVariant `json:"warning,omitempty"`
	Error   *AlertVariant `json:"error,omitempty"`
	Radius  string        `json:"radius,omitempty"`
}

type TableTokens struct {
	HeaderBackground ColorToken  `json:"headerBackground"`
	HeaderForeground ColorToken  `json:"headerForeground"`
	RowBackground    ColorToken  `json:"rowBackground"`
	RowAltBackground *ColorToken `json:"rowAltBackground,omitempty"`
	RowHover         *ColorToken `json:"rowHover,omitempty"`
	Border           ColorToken  `json:"border"`
	CellPadding      string      `json:"cellPadding,omitempty"`
}

type NavigationTokens struct {
	Background ColorToken `json:"background"`
	Foreground ColorToken `json:"foreground"`
	Active     ColorToken `json:"active"`
	Hover      ColorToken `json:"hover"`
	Height     string     `json:"height,omitempty"`
}

type TagTokens struct {
	Background ColorToken `json:"background"`
	Foreground ColorToken `json:"foreground"`
	Border     ColorToken `json:"border"`
	Radius     string     `json:"radius,omitempty"`
}

type TabsTokens struct {
	Background       ColorToken `json:"background"`
	Foreground       ColorToken `json:"foreground"`
	Active           ColorToken `json:"active"`
	ActiveForeground ColorToken `json:"activeForeground"`
	Indicator        ColorToken `json:"indicator"`
}

type FormTokens struct {
	Label    ColorToken `json:"label"`
	Helper   ColorToken `json:"helper"`
	Error    ColorToken `json:"error"`
	Required ColorToken `json:"required"`
	Gap      string     `json:"gap,omitempty"`
}

type TableVariant struct {
	HeaderBackground ColorToken `json:"headerBackground"`
	RowBackground    ColorToken `json:"rowBackground"`
	RowAltBackground ColorToken `json:"rowAltBackground"`
	Border           ColorToken `json:"border"`
}

type TableVariantsTokens struct {
	Striped  *TableVariant `json:"striped,omitempty"`
	Bordered *TableVariant `json:"bordered,omitempty"`
}

// DataVisualization tokens arrived in schema 2.0.
type DataVisualization struct {
	StatCard  *StatCardTokens  `json:"statCard,omitempty"`
	Progress  *ProgressTokens  `json:"progress,omitempty"`
	Timeline  *TimelineTokens  `json:"timeline,omitempty"`
	CodeBlock *CodeBlockTokens `json:"codeBlock,omitempty"`
	Chart     []ColorToken     `json:"chart,omitempty"`
}

type StatCardTokens struct {
	Background ColorToken `json:"background"`
	Value      ColorToken `json:"value"`
	Label      ColorToken `json:"label"`
	TrendUp    ColorToken `json:"trendUp"`
	TrendDown  ColorToken `json:"trendDown"`
}

type ProgressTokens struct {
	Track  ColorToken `json:"track"`
	Fill   ColorToken `json:"fill"`
	Label  ColorToken `json:"label"`
	Height string     `json:"height,omitempty"`
}

type TimelineTokens struct {
	Line      ColorToken `json:"line"`
	Dot       ColorToken `json:"dot"`
	DotActive ColorToken `json:"dotActive"`
	Date      ColorToken `json:"date"`
}

type CodeBlockTokens struct {
	Background ColorToken `json:"background"`
	Foreground ColorToken `json:"foreground"`
	Keyword    ColorToken `json:"keyword"`
	String     ColorToken `json:"string"`
	Comment    ColorToken `json:"comment"`
	Border     ColorToken `json:"border"`
}
