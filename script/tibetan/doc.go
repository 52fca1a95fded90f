/*
Package tibetan holds the registry of Tibetan consonant letters.

Every letter usable as prefix, superscript, root, subscript, suffix or
second suffix of a syllable is described by a Character: its standalone
code point, its subjoined (stacked) code point and its phonetic metadata.
The registry is a fixed table, set up once and read-only afterwards; it may
be shared between goroutines without locking.

Letters are referenced either by their code point (see Lookup) or by their
Wylie name (see ByName).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tibetan

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bodyig.script'.
func tracer() tracing.Trace {
	return tracing.Select("bodyig.script")
}
