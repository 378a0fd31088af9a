package derive

import (
	"slices"

	"tokensmith.app/forge/internal/model"
)

type fontCell struct {
	display []string
	body    []string
}

var fontTable = map[model.TypographyStyle]map[model.TypographyFamily]fontCell{
	model.TypographyStyleModern: {
		model.TypographyGeometric:    {display: []string{"Poppins", "Montserrat", "Outfit"}, body: []string{"Inter", "DM Sans", "Manrope"}},
		model.TypographyHumanist:     {display: []string{"Plus Jakarta Sans", "Nunito Sans", "Source Sans 3"}, body: []string{"Inter", "Source Sans 3", "Open Sans"}},
		model.TypographyTransitional: {display: []string{"Instrument Sans", "Public Sans", "IBM Plex Sans"}, body: []string{"Inter", "IBM Plex Sans", "Public Sans"}},
	},
	model.TypographyStyleClassic: {
		model.TypographyGeometric:    {display: []string{"Josefin Sans", "Jost", "Questrial"}, body: []string{"Lato", "Jost", "Karla"}},
		model.TypographyHumanist:     {display: []string{"Cormorant Garamond", "EB Garamond", "Libre Baskerville"}, body: []string{"Source Serif 4", "Lora", "Merriweather"}},
		model.TypographyTransitional: {display: []string{"Playfair Display", "Libre Caslon Display", "Cormorant"}, body: []string{"Source Serif 4", "Libre Baskerville", "Lora"}},
	},
	model.TypographyStylePlayful: {
		model.TypographyGeometric:    {display: []string{"Fredoka", "Baloo 2", "Quicksand"}, body: []string{"Nunito", "Quicksand", "Rubik"}},
		model.TypographyHumanist:     {display: []string{"Nunito", "Comfortaa", "Grandstander"}, body: []string{"Nunito", "Rubik", "Mulish"}},
		model.TypographyTransitional: {display: []string{"Lilita One", "Bricolage Grotesque", "Recoleta"}, body: []string{"Rubik", "Nunito Sans", "Mulish"}},
	},
	model.TypographyStyleTechnical: {
		model.TypographyGeometric:    {display: []string{"Space Grotesk", "Sora", "Red Hat Display"}, body: []string{"Inter", "IBM Plex Sans", "Roboto"}},
		model.TypographyHumanist:     {display: []string{"IBM Plex Sans", "Fira Sans", "Source Sans 3"}, body: []string{"IBM Plex Sans", "Fira Sans", "Inter"}},
		model.TypographyTransitional: {display: []string{"Barlow", "Archivo", "IBM Plex Sans Condensed"}, body: []string{"IBM Plex Sans", "Roboto", "Inter"}},
	},
}

var (
	developerMono = []string{"JetBrains Mono", "Fira Code"}
	generalMono   = []string{"IBM Plex Mono", "Roboto Mono"}
)

// SuggestFonts looks up display and body candidates by style and family,
// falling back to the modern/humanist cell. The mono pair depends on whether
// the audience is highly technical.
func SuggestFonts(style model.TypographyStyle, family model.TypographyFamily, technical model.Level) model.SuggestedFonts {
	cell, ok := fontTable[style][family]
	if !ok {
		cell = fontTable[model.TypographyStyleModern][model.TypographyHumanist]
	}
	mono := generalMono
	if technical == model.LevelHigh {
		mono = developerMono
	}
	return model.SuggestedFonts{
		Display: slices.Clone(cell.display),
		Body:    slices.Clone(cell.body),
		Mono:    slices.Clone(mono),
	}
}
