// Package palette builds colour tokens and a deterministic baseline token
// tree from derived design decisions.
package palette

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"tokensmith.app/forge/internal/model"
)

const (
	white   = "#ffffff"
	inkDark = "#0b0f19"
)

var rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)(%?)\s*)?\)$`)

// parsed is a colour plus the notation it was written in, so derived
// variants keep the author's form and alpha.
type parsed struct {
	c     colorful.Color
	alpha float64
	rgb   bool
}

func (p parsed) format(c colorful.Color) string {
	if !p.rgb {
		return c.Clamped().Hex()
	}
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(p.alpha, 'f', -1, 64))
}

func parse(s string) (parsed, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if m := rgbPattern.FindStringSubmatch(v); m != nil {
		var ch [3]uint8
		for i := range ch {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return parsed{}, fmt.Errorf("parsing colour %q: channel out of range", s)
			}
			ch[i] = uint8(n)
		}
		alpha := 1.0
		if m[4] != "" {
			a, err := strconv.ParseFloat(m[4], 64)
			if err != nil {
				return parsed{}, fmt.Errorf("parsing colour %q: %w", s, err)
			}
			if m[5] == "%" {
				a /= 100
			}
			alpha = clamp01(a)
		}
		c := colorful.Color{R: float64(ch[0]) / 255, G: float64(ch[1]) / 255, B: float64(ch[2]) / 255}
		return parsed{c: c, alpha: alpha, rgb: true}, nil
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return parsed{}, fmt.Errorf("parsing colour %q: %w", s, err)
	}
	return parsed{c: c, alpha: 1}, nil
}

// ParseColor reads a hex ("#2563eb", "#26e") or rgb()/rgba() colour.
// Alpha is dropped.
func ParseColor(s string) (colorful.Color, error) {
	p, err := parse(s)
	if err != nil {
		return colorful.Color{}, err
	}
	return p.c, nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG 2 contrast ratio between two opaque colours.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := ParseColor(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseColor(b)
	if err != nil {
		return 0, err
	}
	return contrast(ca, cb), nil
}

func contrast(a, b colorful.Color) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ReadableOn picks white or near-black text for a background, whichever
// contrasts more. Unparseable backgrounds get near-black.
func ReadableOn(bg string) string {
	c, err := ParseColor(bg)
	if err != nil {
		return inkDark
	}
	return readableOn(c)
}

func readableOn(bg colorful.Color) string {
	w, _ := colorful.Hex(white)
	k, _ := colorful.Hex(inkDark)
	if contrast(bg, w) >= contrast(bg, k) {
		return white
	}
	return inkDark
}

func hsl(h, s, l float64) colorful.Color {
	return colorful.Hsl(math.Mod(h+360, 360), clamp01(s), clamp01(l)).Clamped()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// shift moves lightness by delta, keeping hue and saturation.
func shift(c colorful.Color, delta float64) colorful.Color {
	h, s, l := c.Hsl()
	return hsl(h, s, l+delta)
}

// tint blends c towards base by t in Lab space.
func tint(c, base colorful.Color, t float64) colorful.Color {
	return c.BlendLab(base, t).Clamped()
}

// DarkVariant derives a dark-mode counterpart for a light-mode colour by
// mirroring its lightness. Saturation is eased so large dark surfaces do
// not glow.
func DarkVariant(light string) (string, error) {
	p, err := parse(light)
	if err != nil {
		return "", err
	}
	h, s, l := p.c.Hsl()
	return p.format(hsl(h, s*0.85, 1-l*0.92)), nil
}

// LightVariant is the inverse of DarkVariant.
func LightVariant(dark string) (string, error) {
	p, err := parse(dark)
	if err != nil {
		return "", err
	}
	h, s, l := p.c.Hsl()
	return p.format(hsl(h, s/0.85, (1-l)/0.92)), nil
}

// CompleteColors fills a missing side of any half-set colour leaf from the
// other side and returns the paths it filled. Leaves with neither side, or
// whose set side does not parse, are left for Backfill.
func CompleteColors(tokens *model.BrandSystem) []string {
	var filled []string
	for _, g := range tokens.ColorGroups() {
		for _, leaf := range g.Leaves {
			tok := leaf.Token
			switch {
			case tok.Light != "" && tok.Dark == "":
				if v, err := DarkVariant(tok.Light); err == nil {
					tok.Dark = v
					filled = append(filled, g.Path+"."+leaf.Key+".dark")
				}
			case tok.Dark != "" && tok.Light == "":
				if v, err := LightVariant(tok.Dark); err == nil {
					tok.Light = v
					filled = append(filled, g.Path+"."+leaf.Key+".light")
				}
			}
		}
	}
	return filled
}

// Backfill fills every colour side still empty in tokens from the leaf at the
// same path in ref, typically the scaffold for the same brief. Present values
// are kept. Chart entries past the end of ref's chart reuse it cyclically; a
// leaf with no counterpart takes its own other side, or ref's foreground when
// it has none. Returns the filled paths.
func Backfill(tokens, ref *model.BrandSystem) []string {
	refLeaves := make(map[string]*model.ColorToken)
	var refChart []*model.ColorToken
	for _, g := range ref.ColorGroups() {
		for _, leaf := range g.Leaves {
			refLeaves[g.Path+"."+leaf.Key] = leaf.Token
			if g.Section == model.SectionChart {
				refChart = append(refChart, leaf.Token)
			}
		}
	}

	var filled []string
	for _, g := range tokens.ColorGroups() {
		for i, leaf := range g.Leaves {
			tok := leaf.Token
			if tok.Light != "" && tok.Dark != "" {
				continue
			}
			src := refLeaves[g.Path+"."+leaf.Key]
			if src == nil && g.Section == model.SectionChart && len(refChart) > 0 {
				src = refChart[i%len(refChart)]
			}
			if src == nil {
				src = &ref.Colors.Foreground
			}

			path := g.Path + "." + leaf.Key
			if tok.Light == "" {
				tok.Light = pick(src.Light, tok.Dark, ref.Colors.Foreground.Light)
				filled = append(filled, path+".light")
			}
			if tok.Dark == "" {
				tok.Dark = pick(src.Dark, tok.Light, ref.Colors.Foreground.Dark)
				filled = append(filled, path+".dark")
			}
		}
	}
	return filled
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return inkDark
}
