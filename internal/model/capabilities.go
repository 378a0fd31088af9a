package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Section names an optional part of the token tree.
type Section string

const (
	SectionColors            Section = "colors"
	SectionStatusColors      Section = "statusColors"
	SectionSurface           Section = "surface"
	SectionBorderColors      Section = "borderColors"
	SectionTypeScale         Section = "typeScale"
	SectionLetterSpacing     Section = "letterSpacing"
	SectionSemanticSpacing   Section = "semanticSpacing"
	SectionShadows           Section = "shadows"
	SectionLoadingMotion     Section = "loadingMotion"
	SectionSkeleton          Section = "skeleton"
	SectionSpinner           Section = "spinner"
	SectionComponents        Section = "components"
	SectionButton            Section = "button"
	SectionCard              Section = "card"
	SectionInput             Section = "input"
	SectionAlert             Section = "alert"
	SectionTable             Section = "table"
	SectionNavigation        Section = "navigation"
	SectionTag               Section = "tag"
	SectionTabs              Section = "tabs"
	SectionForm              Section = "form"
	SectionTableVariants     Section = "tableVariants"
	SectionDataVisualization Section = "dataVisualization"
	SectionStatCard          Section = "statCard"
	SectionProgress          Section = "progress"
	SectionTimeline          Section = "timeline"
	SectionCodeBlock         Section = "codeBlock"
	SectionChart             Section = "chart"
	SectionIcons             Section = "icons"
	SectionGrid              Section = "grid"
	SectionBreakpoints       Section = "breakpoints"
	SectionZIndex            Section = "zIndex"
	SectionImagery           Section = "imagery"
	SectionVoiceAndTone      Section = "voiceAndTone"
	SectionCopyExamples      Section = "copyExamples"
	SectionVoiceGuidelines   Section = "voiceGuidelines"
)

// Has reports whether the section is present in the tree. All presence
// checks on optional sections go through here.
func (b *BrandSystem) Has(s Section) bool {
	if b == nil {
		return false
	}
	c := b.Components
	dv := b.DataVisualization
	switch s {
	case SectionColors:
		return true
	case SectionStatusColors:
		return b.Colors.Success != nil || b.Colors.Warning != nil || b.Colors.Info != nil || b.Colors.Ring != nil
	case SectionSurface:
		return b.Colors.Surface != nil
	case SectionBorderColors:
		return b.Colors.Border != nil
	case SectionTypeScale:
		return len(b.Typography.Scale.Presets()) > 0
	case SectionLetterSpacing:
		return len(b.Typography.LetterSpacing) > 0
	case SectionSemanticSpacing:
		return len(b.Spacing.Semantic) > 0
	case SectionShadows:
		return len(b.Shadows) > 0
	case SectionLoadingMotion:
		return b.Motion.Loading != nil && (b.Motion.Loading.Skeleton != nil || b.Motion.Loading.Spinner != nil)
	case SectionSkeleton:
		return b.Motion.Loading != nil && b.Motion.Loading.Skeleton != nil
	case SectionSpinner:
		return b.Motion.Loading != nil && b.Motion.Loading.Spinner != nil
	case SectionComponents:
		return c != nil
	case SectionButton:
		return c != nil && c.Button != nil
	case SectionCard:
		return c != nil && c.Card != nil
	case SectionInput:
		return c != nil && c.Input != nil
	case SectionAlert:
		return c != nil && c.Alert != nil
	case SectionTable:
		return c != nil && c.Table != nil
	case SectionNavigation:
		return c != nil && c.Navigation != nil
	case SectionTag:
		return c != nil && c.Tag != nil
	case SectionTabs:
		return c != nil && c.Tabs != nil
	case SectionForm:
		return c != nil && c.Form != nil
	case SectionTableVariants:
		return c != nil && c.TableVariants != nil && (c.TableVariants.Striped != nil || c.TableVariants.Bordered != nil)
	case SectionDataVisualization:
		return dv != nil
	case SectionStatCard:
		return dv != nil && dv.StatCard != nil
	case SectionProgress:
		return dv != nil && dv.Progress != nil
	case SectionTimeline:
		return dv != nil && dv.Timeline != nil
	case SectionCodeBlock:
		return dv != nil && dv.CodeBlock != nil
	case SectionChart:
		return dv != nil && len(dv.Chart) > 0
	case SectionIcons:
		return b.Icons != nil
	case SectionGrid:
		return b.Grid != nil
	case SectionBreakpoints:
		return len(b.Breakpoints) > 0
	case SectionZIndex:
		return len(b.ZIndex) > 0
	case SectionImagery:
		return b.Imagery != nil
	case SectionVoiceAndTone:
		return b.VoiceAndTone != nil
	case SectionCopyExamples:
		return b.VoiceAndTone != nil && b.VoiceAndTone.Examples != nil
	case SectionVoiceGuidelines:
		return b.VoiceAndTone != nil && b.VoiceAndTone.Guidelines != nil
	}
	return false
}

// EffectiveSchemaVersion returns the declared schemaVersion, or infers it
// from the newest optional section present.
func (b *BrandSystem) EffectiveSchemaVersion() string {
	if b == nil {
		return SchemaVersion1
	}
	if b.SchemaVersion != "" {
		return b.SchemaVersion
	}
	for _, s := range []Section{SectionTypeScale, SectionLoadingMotion, SectionTabs, SectionForm, SectionTableVariants, SectionSemanticSpacing} {
		if b.Has(s) {
			return SchemaVersion21
		}
	}
	for _, s := range []Section{SectionSurface, SectionBorderColors, SectionStatusColors, SectionAlert, SectionTable,
		SectionNavigation, SectionTag, SectionDataVisualization, SectionIcons, SectionGrid, SectionImagery} {
		if b.Has(s) {
			return SchemaVersion2
		}
	}
	return SchemaVersion1
}

// Examples returns the example copy, or an empty set when absent.
func (b *BrandSystem) Examples() CopyExamples {
	if !b.Has(SectionCopyExamples) {
		return CopyExamples{}
	}
	return *b.VoiceAndTone.Examples
}

// ColorLeaf is one colour token with its key inside its group. Token points
// into the tree it was read from.
type ColorLeaf struct {
	Key   string
	Token *ColorToken
}

// ColorGroup is the colour leaves of one section. Namespace is the
// kebab-case prefix consumers put in front of leaf keys ("" for the
// top-level colours).
type ColorGroup struct {
	Section   Section
	Path      string
	Namespace string
	Leaves    []ColorLeaf
}

// ColorGroups lists every present colour-bearing section in a fixed order.
// Leaf tokens point into b, so writes through them modify the tree.
func (b *BrandSystem) ColorGroups() []ColorGroup {
	if b == nil {
		return nil
	}
	col := &b.Colors
	core := []ColorLeaf{
		{"primary", &col.Primary},
		{"primaryForeground", &col.PrimaryForeground},
		{"secondary", &col.Secondary},
		{"secondaryForeground", &col.SecondaryForeground},
		{"accent", &col.Accent},
		{"accentForeground", &col.AccentForeground},
		{"background", &col.Background},
		{"foreground", &col.Foreground},
		{"muted", &col.Muted},
		{"mutedForeground", &col.MutedForeground},
		{"card", &col.Card},
		{"cardForeground", &col.CardForeground},
		{"destructive", &col.Destructive},
		{"destructiveForeground", &col.DestructiveForeground},
	}
	core = appendOptional(core, "success", col.Success)
	core = appendOptional(core, "warning", col.Warning)
	core = appendOptional(core, "info", col.Info)
	core = appendOptional(core, "ring", col.Ring)

	groups := []ColorGroup{{Section: SectionColors, Path: "colors", Leaves: core}}

	if s := col.Surface; s != nil {
		groups = append(groups, ColorGroup{Section: SectionSurface, Path: "colors.surface", Namespace: "surface", Leaves: []ColorLeaf{
			{"base", &s.Base}, {"raised", &s.Raised}, {"overlay", &s.Overlay}, {"sunken", &s.Sunken},
		}})
	}
	if bc := col.Border; bc != nil {
		groups = append(groups, ColorGroup{Section: SectionBorderColors, Path: "colors.border", Namespace: "border", Leaves: []ColorLeaf{
			{"default", &bc.Default}, {"subtle", &bc.Subtle}, {"strong", &bc.Strong}, {"focus", &bc.Focus},
		}})
	}

	if c := b.Components; c != nil {
		if btn := c.Button; btn != nil {
			var leaves []ColorLeaf
			for _, v := range []struct {
				name string
				v    *ButtonVariant
			}{{"primary", btn.Primary}, {"secondary", btn.Secondary}, {"outline", btn.Outline}, {"ghost", btn.Ghost}, {"destructive", btn.Destructive}} {
				if v.v == nil {
					continue
				}
				leaves = append(leaves, ColorLeaf{v.name + "Bg", &v.v.Background}, ColorLeaf{v.name + "Text", &v.v.Foreground})
				leaves = appendOptional(leaves, v.name+"Hover", v.v.Hover)
				leaves = appendOptional(leaves, v.name+"Border", v.v.Border)
			}
			groups = append(groups, ColorGroup{Section: SectionButton, Path: "components.button", Namespace: "btn", Leaves: leaves})
		}
		if card := c.Card; card != nil {
			leaves := []ColorLeaf{{"bg", &card.Background}, {"text", &card.Foreground}, {"border", &card.Border}}
			leaves = appendOptional(leaves, "hoverBorder", card.HoverBorder)
			groups = append(groups, ColorGroup{Section: SectionCard, Path: "components.card", Namespace: "card", Leaves: leaves})
		}
		if in := c.Input; in != nil {
			leaves := []ColorLeaf{{"bg", &in.Background}, {"text", &in.Foreground}, {"border", &in.Border}, {"focus", &in.Focus}}
			leaves = appendOptional(leaves, "placeholder", in.Placeholder)
			groups = append(groups, ColorGroup{Section: SectionInput, Path: "components.input", Namespace: "input", Leaves: leaves})
		}
		if a := c.Alert; a != nil {
			var leaves []ColorLeaf
			for _, v := range []struct {
				name string
				v    *AlertVariant
			}{{"info", a.Info}, {"success", a.Success}, {"warning", a.Warning}, {"error", a.Error}} {
				if v.v == nil {
					continue
				}
				leaves = append(leaves,
					ColorLeaf{v.name + "Bg", &v.v.Background},
					ColorLeaf{v.name + "Text", &v.v.Foreground},
					ColorLeaf{v.name + "Border", &v.v.Border})
			}
			groups = append(groups, ColorGroup{Section: SectionAlert, Path: "components.alert", Namespace: "alert", Leaves: leaves})
		}
		if t := c.Table; t != nil {
			leaves := []ColorLeaf{{"headerBg", &t.HeaderBackground}, {"headerText", &t.HeaderForeground}, {"rowBg", &t.RowBackground}}
			leaves = appendOptional(leaves, "rowAltBg", t.RowAltBackground)
			leaves = appendOptional(leaves, "rowHover", t.RowHover)
			leaves = append(leaves, ColorLeaf{"border", &t.Border})
			groups = append(groups, ColorGroup{Section: SectionTable, Path: "components.table", Namespace: "table", Leaves: leaves})
		}
		if n := c.Navigation; n != nil {
			groups = append(groups, ColorGroup{Section: SectionNavigation, Path: "components.navigation", Namespace: "nav", Leaves: []ColorLeaf{
				{"bg", &n.Background}, {"text", &n.Foreground}, {"active", &n.Active}, {"hover", &n.Hover},
			}})
		}
		if t := c.Tag; t != nil {
			groups = append(groups, ColorGroup{Section: SectionTag, Path: "components.tag", Namespace: "tag", Leaves: []ColorLeaf{
				{"bg", &t.Background}, {"text", &t.Foreground}, {"border", &t.Border},
			}})
		}
		if t := c.Tabs; t != nil {
			groups = append(groups, ColorGroup{Section: SectionTabs, Path: "components.tabs", Namespace: "tabs", Leaves: []ColorLeaf{
				{"bg", &t.Background}, {"text", &t.Foreground}, {"active", &t.Active}, {"activeText", &t.ActiveForeground}, {"indicator", &t.Indicator},
			}})
		}
		if f := c.Form; f != nil {
			groups = append(groups, ColorGroup{Section: SectionForm, Path: "components.form", Namespace: "form", Leaves: []ColorLeaf{
				{"label", &f.Label}, {"helper", &f.Helper}, {"error", &f.Error}, {"required", &f.Required},
			}})
		}
		if tv := c.TableVariants; tv != nil {
			for _, v := range []struct {
				name string
				v    *TableVariant
			}{{"striped", tv.Striped}, {"bordered", tv.Bordered}} {
				if v.v == nil {
					continue
				}
				groups = append(groups, ColorGroup{
					Section:   SectionTableVariants,
					Path:      "components.tableVariants." + v.name,
					Namespace: "table-" + v.name,
					Leaves: []ColorLeaf{
						{"headerBg", &v.v.HeaderBackground}, {"rowBg", &v.v.RowBackground}, {"rowAltBg", &v.v.RowAltBackground}, {"border", &v.v.Border},
					},
				})
			}
		}
	}

	if dv := b.DataVisualization; dv != nil {
		if s := dv.StatCard; s != nil {
			groups = append(groups, ColorGroup{Section: SectionStatCard, Path: "dataVisualization.statCard", Namespace: "stat-card", Leaves: []ColorLeaf{
				{"bg", &s.Background}, {"value", &s.Value}, {"label", &s.Label}, {"trendUp", &s.TrendUp}, {"trendDown", &s.TrendDown},
			}})
		}
		if p := dv.Progress; p != nil {
			groups = append(groups, ColorGroup{Section: SectionProgress, Path: "dataVisualization.progress", Namespace: "progress", Leaves: []ColorLeaf{
				{"track", &p.Track}, {"fill", &p.Fill}, {"label", &p.Label},
			}})
		}
		if t := dv.Timeline; t != nil {
			groups = append(groups, ColorGroup{Section: SectionTimeline, Path: "dataVisualization.timeline", Namespace: "timeline", Leaves: []ColorLeaf{
				{"line", &t.Line}, {"dot", &t.Dot}, {"dotActive", &t.DotActive}, {"date", &t.Date},
			}})
		}
		if cb := dv.CodeBlock; cb != nil {
			groups = append(groups, ColorGroup{Section: SectionCodeBlock, Path: "dataVisualization.codeBlock", Namespace: "code", Leaves: []ColorLeaf{
				{"bg", &cb.Background}, {"text", &cb.Foreground}, {"keyword", &cb.Keyword}, {"string", &cb.String}, {"comment", &cb.Comment}, {"border", &cb.Border},
			}})
		}
		if len(dv.Chart) > 0 {
			leaves := make([]ColorLeaf, len(dv.Chart))
			for i := range dv.Chart {
				leaves[i] = ColorLeaf{strconv.Itoa(i + 1), &dv.Chart[i]}
			}
			groups = append(groups, ColorGroup{Section: SectionChart, Path: "dataVisualization.chart", Namespace: "chart", Leaves: leaves})
		}
	}

	if l := b.Motion.Loading; l != nil {
		if s := l.Skeleton; s != nil {
			groups = append(groups, ColorGroup{Section: SectionSkeleton, Path: "motion.loading.skeleton", Namespace: "skeleton", Leaves: []ColorLeaf{
				{"base", &s.Base}, {"highlight", &s.Highlight},
			}})
		}
		if s := l.Spinner; s != nil {
			groups = append(groups, ColorGroup{Section: SectionSpinner, Path: "motion.loading.spinner", Namespace: "spinner", Leaves: []ColorLeaf{
				{"color", &s.Color}, {"track", &s.Track},
			}})
		}
	}
	return groups
}

func appendOptional(leaves []ColorLeaf, key string, tok *ColorToken) []ColorLeaf {
	if tok == nil {
		return leaves
	}
	return append(leaves, ColorLeaf{Key: key, Token: tok})
}

// IncompleteColors lists the paths of colour leaves missing a light or dark
// value, e.g. "colors.primary.dark".
func (b *BrandSystem) IncompleteColors() []string {
	var missing []string
	for _, g := range b.ColorGroups() {
		for _, leaf := range g.Leaves {
			if leaf.Token.Light == "" {
				missing = append(missing, fmt.Sprintf("%s.%s.light", g.Path, leaf.Key))
			}
			if leaf.Token.Dark == "" {
				missing = append(missing, fmt.Sprintf("%s.%s.dark", g.Path, leaf.Key))
			}
		}
	}
	return missing
}

// Clone returns a deep copy of the tree.
func (b *BrandSystem) Clone() (*BrandSystem, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshaling brand system: %w", err)
	}
	var out BrandSystem
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling brand system: %w", err)
	}
	return &out, nil
}
