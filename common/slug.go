package common

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	whitespace   = regexp.MustCompile(`\s+`)
	// Filesystem separators and reserved characters never reach a filename.
	unsafeFileChars = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]`)
)

// Slugify lowercases input and replaces runs of whitespace with a single
// hyphen. It is the brand slug used as the prefix of every exported filename.
func Slugify(input, fallback string) (string, error) {
	slug := slugify(input)
	if slug == "" {
		slug = slugify(fallback)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// BrandSlug is Slugify with the "brand" fallback; it never fails.
func BrandSlug(name string) string {
	slug, err := Slugify(name, "brand")
	if err != nil {
		return "brand"
	}
	return slug
}

func slugify(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	lower = unsafeFileChars.ReplaceAllString(lower, "")
	return whitespace.ReplaceAllString(strings.TrimSpace(lower), "-")
}
