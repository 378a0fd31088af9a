// Package cssvars projects a BrandSystem onto CSS custom properties.
package cssvars

import (
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	invalidName   = regexp.MustCompile(`[^a-z0-9-]+`)
	unsafeValue   = regexp.MustCompile(`[<>{};\\\r\n]`)
)

// Kebab converts a camelCase token key to kebab-case. Characters that are
// not valid in a custom property name become hyphens.
func Kebab(s string) string {
	s = camelBoundary.ReplaceAllString(s, "${1}-${2}")
	s = strings.ToLower(s)
	s = invalidName.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SanitizeValue strips characters that could end a declaration or escape a
// style block. Token values are otherwise passed through untouched.
func SanitizeValue(v string) string {
	return strings.TrimSpace(unsafeValue.ReplaceAllString(v, ""))
}

// Var is one custom property declaration.
type Var struct {
	Name  string
	Value string
}

// Vars is an ordered set of custom properties. Setting an existing name
// overwrites its value in place.
type Vars struct {
	list  []Var
	index map[string]int
}

func NewVars() *Vars {
	return &Vars{index: make(map[string]int)}
}

func (v *Vars) Set(name, value string) {
	if i, ok := v.index[name]; ok {
		v.list[i].Value = value
		return
	}
	v.index[name] = len(v.list)
	v.list = append(v.list, Var{Name: name, Value: value})
}

func (v *Vars) Get(name string) (string, bool) {
	i, ok := v.index[name]
	if !ok {
		return "", false
	}
	return v.list[i].Value, true
}

func (v *Vars) Len() int {
	return len(v.list)
}

// All returns the declarations in projection order.
func (v *Vars) All() []Var {
	out := make([]Var, len(v.list))
	copy(out, v.list)
	return out
}

func (v *Vars) Map() map[string]string {
	m := make(map[string]string, len(v.list))
	for _, d := range v.list {
		m[d.Name] = d.Value
	}
	return m
}

// Declarations renders "name: value;" lines with the given indent.
func (v *Vars) Declarations(indent string) string {
	var sb strings.Builder
	for _, d := range v.list {
		sb.WriteString(indent)
		sb.WriteString(d.Name)
		sb.WriteString(": ")
		sb.WriteString(SanitizeValue(d.Value))
		sb.WriteString(";\n")
	}
	return sb.String()
}

func name(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if k := Kebab(p); k != "" {
			kept = append(kept, k)
		}
	}
	return "--" + strings.Join(kept, "-")
}
