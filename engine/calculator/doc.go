/*
Package calculator implements the state of an interactive syllable
calculator.

A Calculator holds the letters a user has selected for each slot of a
syllable and keeps two displays up to date: the Tibetan text and its
phonetic transliteration. It mirrors the behaviour of a form with one menu
per slot:

▪︎ selecting a new root starts over, clearing every other slot;

▪︎ menus are disabled while their selection would make no sense, e.g. the
second suffix without a first suffix, or subscripts for a root which does
not take any;

▪︎ displays are recomputed only while a root is selected.

Calculators are not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package calculator

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'bodyig.engine'.
func tracer() tracing.Trace {
	return tracing.Select("bodyig.engine")
}
