package cssvars

import (
	"strings"

	"tokensmith.app/forge/internal/model"
)

// StyleTarget receives custom properties, e.g. a preview element's style.
type StyleTarget interface {
	SetProperty(name, value string)
}

// StyleMap is an in-memory StyleTarget.
type StyleMap map[string]string

func (m StyleMap) SetProperty(name, value string) {
	m[name] = value
}

// Theme is the projected variables for one render scope. Themes are values:
// a light and a dark theme of the same tokens can be applied side by side.
type Theme struct {
	Mode model.ColorMode
	vars *Vars
}

func NewTheme(tokens *model.BrandSystem, mode model.ColorMode) Theme {
	if mode != model.ColorModeDark {
		mode = model.ColorModeLight
	}
	return Theme{Mode: mode, vars: Project(tokens, mode)}
}

func (t Theme) Vars() *Vars {
	if t.vars == nil {
		return NewVars()
	}
	return t.vars
}

// Var returns the value of a custom property, or fallback.
func (t Theme) Var(name, fallback string) string {
	if v, ok := t.Vars().Get(name); ok && v != "" {
		return v
	}
	return fallback
}

// Style renders the variables as an inline style attribute value.
func (t Theme) Style() string {
	var parts []string
	for _, d := range t.Vars().All() {
		parts = append(parts, d.Name+": "+SanitizeValue(d.Value))
	}
	return strings.Join(parts, "; ")
}

// Block renders the variables as a rule for selector.
func (t Theme) Block(selector string) string {
	return selector + " {\n" + t.Vars().Declarations("  ") + "}\n"
}

// Apply writes every variable onto target.
func (t Theme) Apply(target StyleTarget) {
	for _, d := range t.Vars().All() {
		target.SetProperty(d.Name, d.Value)
	}
}
