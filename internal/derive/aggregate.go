// Package derive turns discovery inputs into DerivedDesignDecisions. Every
// function here is pure.
package derive

import (
	"strings"

	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/profile"
)

// NeutralDecision is used when no adjective resolves.
var NeutralDecision = model.DesignDecision{
	BorderRadius: model.BorderRadiusSubtle,
	Spacing:      model.SpacingBalanced,
	Contrast:     model.ContrastMedium,
	Motion:       model.MotionSubtle,
	Typography:   model.TypographyHumanist,
}

type vote[T comparable] struct {
	value  T
	weight int
}

// tally accumulates weights in first-seen order. The winner is the highest
// weight; on a tie the value seen first wins.
type tally[T comparable] []vote[T]

func (t tally[T]) add(value T, weight int) tally[T] {
	for i := range t {
		if t[i].value == value {
			t[i].weight += weight
			return t
		}
	}
	return append(t, vote[T]{value: value, weight: weight})
}

func (t tally[T]) winner() T {
	var best vote[T]
	for i, v := range t {
		if i == 0 || v.weight > best.weight {
			best = v
		}
	}
	return best.value
}

// Resolve maps adjectives to their personality mappings, dropping unknown
// ones and keeping input order.
func Resolve(adjectives []string) []model.PersonalityMapping {
	var out []model.PersonalityMapping
	for _, adj := range adjectives {
		if m := profile.LookupPersonality(adj); m != nil {
			out = append(out, *m)
		}
	}
	return out
}

// Aggregate combines adjectives into one decision per axis by weighted
// plurality: the i-th resolved adjective of N votes with weight N-i.
func Aggregate(adjectives []string) model.DesignDecision {
	return aggregate(Resolve(adjectives))
}

func aggregate(mappings []model.PersonalityMapping) model.DesignDecision {
	if len(mappings) == 0 {
		return NeutralDecision
	}

	var (
		radius     tally[model.BorderRadius]
		spacing    tally[model.SpacingChoice]
		contrast   tally[model.Contrast]
		motion     tally[model.MotionIntensity]
		typography tally[model.TypographyFamily]
	)
	n := len(mappings)
	for i, m := range mappings {
		w := n - i
		radius = radius.add(m.DesignImpact.BorderRadius, w)
		spacing = spacing.add(m.DesignImpact.Spacing, w)
		contrast = contrast.add(m.DesignImpact.Contrast, w)
		motion = motion.add(m.DesignImpact.Motion, w)
		typography = typography.add(m.DesignImpact.Typography, w)
	}

	return model.DesignDecision{
		BorderRadius: radius.winner(),
		Spacing:      spacing.winner(),
		Contrast:     contrast.winner(),
		Motion:       motion.winner(),
		Typography:   typography.winner(),
	}
}

func matchedAdjectives(mappings []model.PersonalityMapping) []string {
	out := make([]string, len(mappings))
	for i, m := range mappings {
		out[i] = strings.ToLower(m.Adjective)
	}
	return out
}
