package rotation

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanName trims a display name and puts it in NFC form so that visually
// identical names compare equal regardless of how they were typed.
func CleanName(name string) string {
	return strings.TrimSpace(norm.NFC.String(name))
}

// SameName reports whether two display names refer to the same thing.
func SameName(a, b string) bool {
	return strings.EqualFold(CleanName(a), CleanName(b))
}
