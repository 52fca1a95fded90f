package syllable

import "strings"

// Compose returns the Unicode text of s. Prefix and suffixes are written as
// standalone letters; a superscript subordinates the root, which then takes
// its subjoined form, as does a subscript.
//
// Compose returns an empty string if s has no root.
func Compose(s Syllable) string {
	if s.Root == nil {
		tracer().Errorf("cannot compose syllable without root")
		return ""
	}
	var b strings.Builder
	if s.Prefix != nil {
		b.WriteRune(s.Prefix.Rune)
	}
	if s.Superscript != nil {
		b.WriteRune(s.Superscript.Rune)
		b.WriteRune(s.Root.Subjoined)
	} else {
		b.WriteRune(s.Root.Rune)
	}
	if s.Subscript != nil {
		b.WriteRune(s.Subscript.Subjoined)
	}
	if s.Suffix != nil {
		b.WriteRune(s.Suffix.Rune)
	}
	if s.SecondSuffix != nil {
		b.WriteRune(s.SecondSuffix.Rune)
	}
	return b.String()
}
