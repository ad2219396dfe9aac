// Package validate holds the small field checks shared by the claim
// intake form and the catalog admin.
package validate

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+()\s-]{6,}$`)
	slugRe  = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Required reports whether the value has any non-whitespace content.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Email checks a permissive local@domain.tld shape.
func Email(value string) bool {
	return emailRe.MatchString(value)
}

// Phone accepts digits, spaces, "+", "()" and "-", minimum length 6.
func Phone(value string) bool {
	return phoneRe.MatchString(value)
}

// ValidSlug reports whether value is already a lowercase url slug.
func ValidSlug(value string) bool {
	return slugRe.MatchString(value)
}

// Slugify derives a url slug from free text.
func Slugify(value string) string {
	return slug.Make(value)
}
