package example

type ColorMood string

const (
	ColorMoodCalm  ColorMood = "calm"
	ColorMoodWarm  ColorMood = "warm"
	ColorMoodMuted ColorMood = "muted"
)

type Density string

const (
	DensityCompact  Density = "compact"
	DensityBalanced Density = "balanced"
)

type FileType string

const (
	FileTypeHTML FileType = "html"
)

type DiscoveryInputs struct {
	CompanyName string
	ColorMood   ColorMood
	Density     Density
}

type ExportFile struct {
	Filename string
	Type     FileType
}

func bad() {
	in := &DiscoveryInputs{}
	in.ColorMood = "neon" // want "enum field ColorMood assigned string literal"
	in.Density = "roomy"  // want "enum field Density assigned string literal"

	f := &ExportFile{}
	f.Type = "pdf" // want "enum field Type assigned string literal"

	_ = DiscoveryInputs{CompanyName: "Acme", ColorMood: "neon"} // want "enum field ColorMood assigned string literal"
}

func good() {
	in := &DiscoveryInputs{}
	in.ColorMood = ColorMoodCalm
	in.Density = DensityBalanced
	in.CompanyName = "Acme" // OK: plain string field

	f := &ExportFile{Filename: "index.html"}
	f.Type = FileTypeHTML
}

func alsoGood() {
	// OK: Variable, not literal
	mood := ColorMoodWarm
	in := &DiscoveryInputs{ColorMood: mood}
	_ = in
}
