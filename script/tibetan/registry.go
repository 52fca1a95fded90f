package tibetan

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/npillmayer/bodyig/core"
	"github.com/samber/lo"
)

// Letters allowed in the non-root slots of a syllable, in traditional order.
var (
	prefixes       = []rune{'ག', 'ད', 'བ', 'མ', 'འ'}
	superscripts   = []rune{'ར', 'ལ', 'ས'}
	suffixes       = []rune{'ག', 'ང', 'ད', 'ན', 'བ', 'མ', 'འ', 'ར', 'ལ', 'ས'}
	secondSuffixes = []rune{'ས', 'ད'}
	vowelAltering  = []rune{'ད', 'ན', 'ལ', 'ས'}
)

var (
	byRune map[rune]*Character
	names  *trie.Trie
)

func init() {
	byRune = make(map[rune]*Character, letterCount)
	names = trie.New()
	for i := range table {
		c := &table[i]
		byRune[c.Rune] = c
		names.Add(c.Wylie, c)
	}
}

// Lookup returns the character whose standalone form is r.
// If r is not a letter of the registry, Lookup returns false.
func Lookup(r rune) (*Character, bool) {
	c, ok := byRune[r]
	return c, ok
}

// ByName returns the character with Wylie name wylie, e.g. "kha" or "'a".
func ByName(wylie string) (*Character, bool) {
	node, ok := names.Find(strings.ToLower(strings.TrimSpace(wylie)))
	if !ok {
		return nil, false
	}
	c, ok := node.Meta().(*Character)
	return c, ok
}

// Complete returns all Wylie names starting with prefix, sorted.
func Complete(prefix string) []string {
	candidates := names.PrefixSearch(strings.ToLower(prefix))
	sort.Strings(candidates)
	return candidates
}

// Resolve finds a character either from a single Tibetan letter or from a
// Wylie name. An empty input resolves to nil without an error; an unknown
// input results in an error with code core.EMISSING.
func Resolve(s string) (*Character, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if r, size := utf8.DecodeRuneInString(s); size == len(s) {
		if c, ok := Lookup(r); ok {
			return c, nil
		}
	}
	if c, ok := ByName(s); ok {
		return c, nil
	}
	tracer().Debugf("no Tibetan letter for input %q", s)
	return nil, core.Error(core.EMISSING, "not a Tibetan letter: %q", s)
}

// All returns every character of the registry in traditional order.
func All() []*Character {
	return lo.Times(int(letterCount), func(i int) *Character { return &table[i] })
}

// AvailableSubscripts returns the subset of {ya, ra, la} which may be
// subscribed to root. A nil root has no subscripts.
func AvailableSubscripts(root *Character) []rune {
	if root == nil {
		return nil
	}
	return append([]rune(nil), root.Subscripts...)
}

// Prefixes returns the letters which may act as prefix.
func Prefixes() []rune { return append([]rune(nil), prefixes...) }

// Superscripts returns the letters which may act as superscript.
func Superscripts() []rune { return append([]rune(nil), superscripts...) }

// Suffixes returns the letters which may act as first suffix.
func Suffixes() []rune { return append([]rune(nil), suffixes...) }

// SecondSuffixes returns the letters which may act as second suffix.
func SecondSuffixes() []rune { return append([]rune(nil), secondSuffixes...) }

// Roots returns the code points of all letters, each of which may act as root.
func Roots() []rune {
	return lo.Map(All(), func(c *Character, _ int) rune { return c.Rune })
}

// IsVowelAltering returns true if suffix c changes the vowel of the
// syllable, which shows as a diaeresis in phonetic output.
func IsVowelAltering(c *Character) bool {
	return c != nil && lo.Contains(vowelAltering, c.Rune)
}
