package profile

import (
	"slices"
	"strings"

	"tokensmith.app/forge/internal/model"
)

type audienceEntry struct {
	key     string
	profile model.AudienceProfile
}

var audiences = []audienceEntry{
	{"developers", model.AudienceProfile{
		Name:                  "Developers",
		Formality:             "casual-professional",
		TechnicalLevel:        model.LevelHigh,
		AccessibilityPriority: model.AccessibilityStandard,
		AgeGroup:              "22-45",
		Voice: model.AudienceVoice{
			Tone:  []string{"direct", "precise", "peer-to-peer"},
			Avoid: []string{"marketing fluff", "buzzwords", "exclamation marks"},
		},
		DesignPreferences: model.AudienceDesignPreferences{
			InformationDensity: model.LevelHigh,
			VisualComplexity:   "low",
			InteractionStyle:   "keyboard-first",
		},
	}},
	{"enterprise", model.AudienceProfile{
		Name:                  "Enterprise Buyers",
		Formality:             "formal",
		TechnicalLevel:        model.LevelMedium,
		AccessibilityPriority: model.AccessibilityHigh,
		AgeGroup:              "30-60",
		Voice: model.AudienceVoice{
			Tone:  []string{"confident", "measured", "outcome-focused"},
			Avoid: []string{"slang", "hype", "unverifiable claims"},
		},
		DesignPreferences: model.AudienceDesignPreferences{
			InformationDensity: model.LevelMedium,
			VisualComplexity:   "medium",
			InteractionStyle:   "guided",
		},
	}},
	{"consumers", model.AudienceProfile{
		Name:                  "General Consumers",
		Formality:             "casual",
		TechnicalLevel:        model.LevelLow,
		AccessibilityPriority: model.AccessibilityHigh,
		AgeGroup:              "18-65",
		Voice: model.AudienceVoice{
			Tone:  []string{"friendly", "simple", "upbeat"},
			Avoid: []string{"jargon", "acronyms", "long sentences"},
		},
		DesignPreferences: model.AudienceDesignPreferences{
			InformationDensity: model.LevelLow,
			VisualComplexity:   "medium",
			InteractionStyle:   "touch-first",
		},
	}},
	{"healthcare", model.AudienceProfile{
		Name:                  "Healthcare Professionals & Patients",
		Formality:             "formal",
		TechnicalLevel:        model.LevelMedium,
		AccessibilityPriority: model.AccessibilityCritical,
		AgeGroup:              "all ages",
		Voice: model.AudienceVoice{
			Tone:  []string{"reassuring", "clear", "empathetic"},
			Avoid: []string{"alarmist language", "humour about symptoms", "unexplained abbreviations"},
		},
		DesignPreferences: model.AudienceDesignPreferences{
			InformationDensity: model.LevelLow,
			VisualComplexity:   "low",
			InteractionStyle:   "forgiving",
		},
	}},
	{"small-business", model.AudienceProfile{
		Name:                  "Small Business Owners",
		Formality:             "friendly",
		TechnicalLevel:        model.LevelLow,
		AccessibilityPriority: model.AccessibilityStandard,
		AgeGroup:              "25-60",
		Voice: model.AudienceVoice{
			Tone:  []string{"practical", "encouraging", "plain-spoken"},
			Avoid: []string{"enterprise jargon", "condescension"},
		},
		DesignPreferences: model.AudienceDesignPreferences{
			InformationDensity: model.LevelMedium,
			VisualComplexity:   "low",
			InteractionStyle:   "guided",
		},
	}},
	{"students", model.AudienceProfile{
		Name:                  "Students & Educators",
		Formality:             "casual",
		TechnicalLevel:        model.LevelMedium,
		AccessibilityPriority: model.AccessibilityHigh,
		AgeGroup:              "13-65",
		Voice: model.AudienceVoice{
			Tone:  []string{"encouraging", "curious", "clear"},
			Avoid: []string{"talking down", "dense paragraphs"},
		},
		DesignPreferences: model.AudienceDesignPreferences{
			InformationDensity: model.LevelMedium,
			VisualComplexity:   "medium",
			InteractionStyle:   "exploratory",
		},
	}},
	{"designers", model.AudienceProfile{
		Name:                  "Designers & Creatives",
		Formality:             "casual",
		TechnicalLevel:        model.LevelMedium,
		AccessibilityPriority: model.AccessibilityStandard,
		AgeGroup:              "20-45",
		Voice: model.AudienceVoice{
			Tone:  []string{"expressive", "inspiring", "witty"},
			Avoid: []string{"corporate speak", "generic stock phrases"},
		},
		DesignPreferences: model.AudienceDesignPreferences{
			InformationDensity: model.LevelLow,
			VisualComplexity:   "high",
			InteractionStyle:   "exploratory",
		},
	}},
	{"executives", model.AudienceProfile{
		Name:                  "Executives",
		Formality:             "formal",
		TechnicalLevel:        model.LevelLow,
		AccessibilityPriority: model.AccessibilityStandard,
		AgeGroup:              "35-65",
		Voice: model.AudienceVoice{
			Tone:  []string{"concise", "strategic", "assured"},
			Avoid: []string{"technical detail up front", "filler"},
		},
		DesignPreferences: model.AudienceDesignPreferences{
			InformationDensity: model.LevelMedium,
			VisualComplexity:   "low",
			InteractionStyle:   "skimmable",
		},
	}},
	{"seniors", model.AudienceProfile{
		Name:                  "Older Adults",
		Formality:             "friendly",
		TechnicalLevel:        model.LevelLow,
		AccessibilityPriority: model.AccessibilityCritical,
		AgeGroup:              "60+",
		Voice: model.AudienceVoice{
			Tone:  []string{"patient", "respectful", "warm"},
			Avoid: []string{"slang", "tiny print", "ageist framing"},
		},
		DesignPreferences: model.AudienceDesignPreferences{
			InformationDensity: model.LevelLow,
			VisualComplexity:   "low",
			InteractionStyle:   "forgiving",
		},
	}},
	{"government", model.AudienceProfile{
		Name:                  "Government & Public Sector",
		Formality:             "formal",
		TechnicalLevel:        model.LevelLow,
		AccessibilityPriority: model.AccessibilityCritical,
		AgeGroup:              "all ages",
		Voice: model.AudienceVoice{
			Tone:  []string{"plain", "neutral", "authoritative"},
			Avoid: []string{"marketing language", "ambiguity"},
		},
		DesignPreferences: model.AudienceDesignPreferences{
			InformationDensity: model.LevelMedium,
			VisualComplexity:   "low",
			InteractionStyle:   "guided",
		},
	}},
}

var audienceKeywords = []struct {
	keyword string
	key     string
}{
	{"developer", "developers"},
	{"engineer", "developers"},
	{"programmer", "developers"},
	{"devops", "developers"},
	{"patient", "healthcare"},
	{"clinician", "healthcare"},
	{"doctor", "healthcare"},
	{"nurse", "healthcare"},
	{"medical", "healthcare"},
	{"health", "healthcare"},
	{"senior", "seniors"},
	{"older", "seniors"},
	{"retire", "seniors"},
	{"government", "government"},
	{"public sector", "government"},
	{"citizen", "government"},
	{"student", "students"},
	{"teacher", "students"},
	{"educator", "students"},
	{"designer", "designers"},
	{"creative", "designers"},
	{"artist", "designers"},
	{"executive", "executives"},
	{"c-suite", "executives"},
	{"leadership", "executives"},
	{"enterprise", "enterprise"},
	{"procurement", "enterprise"},
	{"it buyer", "enterprise"},
	{"small business", "small-business"},
	{"smb", "small-business"},
	{"freelancer", "small-business"},
	{"founder", "small-business"},
	{"consumer", "consumers"},
	{"shopper", "consumers"},
	{"famil", "consumers"},
	{"gen z", "consumers"},
	{"millennial", "consumers"},
}

// LookupAudience resolves free text to an audience profile: exact key or
// name, then the keyword table. Returns nil on a miss.
func LookupAudience(input string) *model.AudienceProfile {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return nil
	}

	for i := range audiences {
		if audiences[i].key == key || strings.ToLower(audiences[i].profile.Name) == key {
			return copyAudience(audiences[i].profile)
		}
	}

	for _, kw := range audienceKeywords {
		if strings.Contains(key, kw.keyword) {
			for i := range audiences {
				if audiences[i].key == kw.key {
					return copyAudience(audiences[i].profile)
				}
			}
		}
	}
	return nil
}

// Audiences returns every audience profile in table order.
func Audiences() []model.AudienceProfile {
	out := make([]model.AudienceProfile, len(audiences))
	for i := range audiences {
		out[i] = *copyAudience(audiences[i].profile)
	}
	return out
}

func copyAudience(p model.AudienceProfile) *model.AudienceProfile {
	p.Voice.Tone = slices.Clone(p.Voice.Tone)
	p.Voice.Avoid = slices.Clone(p.Voice.Avoid)
	return &p
}
