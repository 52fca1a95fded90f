/*
Package syllable composes Tibetan syllables.

A Syllable consists of a root letter and up to five optional letters around
it: prefix, superscript, subscript, suffix and second suffix. From a
syllable two renderings are derived:

▪︎ Compose returns the Unicode text, with superscript, root and subscript
stacked into one orthographic unit;

▪︎ Phonetic returns a Latin transliteration of the pronunciation, including
tone marks and a diaeresis for vowel-altering suffixes.

Both functions are pure and may be called concurrently. Characters are
borrowed from package tibetan's registry; a Syllable never copies them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package syllable

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bodyig.script'.
func tracer() tracing.Trace {
	return tracing.Select("bodyig.script")
}
