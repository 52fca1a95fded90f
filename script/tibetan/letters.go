package tibetan

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/runenames"
)

// Letter enumerates the thirty consonants of the Tibetan alphabet in
// traditional order.
type Letter int

const (
	Ka Letter = iota
	Kha
	Ga
	Nga
	Ca
	Cha
	Ja
	Nya
	Ta
	Tha
	Da
	Na
	Pa
	Pha
	Ba
	Ma
	Tsa
	Tsha
	Dza
	Wa
	Zha
	Za
	Achung // 'a
	Ya
	Ra
	La
	Sha
	Sa
	Ha
	A
	letterCount
)

// Column classifies a letter by the traditional grouping which governs how
// prefixes and superscripts change its pronunciation.
type Column int

const (
	FirstColumn  Column = iota + 1 // unaspirated, high tone
	SecondColumn                   // aspirated, high tone
	ThirdColumn                    // voiced, low tone; may change sound after prefix
	FourthColumn                   // nasals and sonorants; high tone after prefix
)

func (c Column) String() string {
	switch c {
	case FirstColumn:
		return "first"
	case SecondColumn:
		return "second"
	case ThirdColumn:
		return "third"
	case FourthColumn:
		return "fourth"
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

// Character describes a Tibetan consonant as used in any slot of a syllable.
// Characters are owned by the registry and must not be modified by clients.
type Character struct {
	Letter              Letter
	Rune                rune   // standalone code point
	Subjoined           rune   // code point when stacked below another letter
	Wylie               string // transliteration of the letter's name
	Phonetic            string // pronunciation as root
	PhoneticThirdColumn string // pronunciation as root after prefix/superscript, may be empty
	PhoneticSuffix      string // pronunciation as (first) suffix
	Column              Column
	Subscripts          []rune // subscript letters this root may carry
}

func (c *Character) String() string {
	if c == nil {
		return "<none>"
	}
	return fmt.Sprintf("%c(%s)", c.Rune, c.Wylie)
}

// UnicodeName returns the Unicode character name of c's standalone form,
// e.g. "TIBETAN LETTER KA".
func (c *Character) UnicodeName() string {
	return runenames.Name(c.Rune)
}

// HasSubscript returns true if sub is among the subscripts c may carry.
func (c *Character) HasSubscript(sub rune) bool {
	return lo.Contains(c.Subscripts, sub)
}

func (l Letter) String() string {
	if l < 0 || l >= letterCount {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return table[l].Wylie
}

// Character returns the registry entry for letter l.
func (l Letter) Character() *Character {
	if l < 0 || l >= letterCount {
		return nil
	}
	return &table[l]
}

// Code points of the letters which may act as subscripts.
const (
	SubscriptYa rune = 'ཡ'
	SubscriptRa rune = 'ར'
	SubscriptLa rune = 'ལ'
)

var (
	subsYRL = []rune{SubscriptYa, SubscriptRa, SubscriptLa}
	subsYR  = []rune{SubscriptYa, SubscriptRa}
	subsRL  = []rune{SubscriptRa, SubscriptLa}
	subsR   = []rune{SubscriptRa}
	subsL   = []rune{SubscriptLa}
)

// table is indexed by Letter.
var table = [letterCount]Character{
	{Ka, 'ཀ', 'ྐ', "ka", "ka", "", "", FirstColumn, subsYRL},
	{Kha, 'ཁ', 'ྑ', "kha", "kha", "", "", SecondColumn, subsYR},
	{Ga, 'ག', 'ྒ', "ga", "kha", "ga", "k", ThirdColumn, subsYRL},
	{Nga, 'ང', 'ྔ', "nga", "nga", "", "ng", FourthColumn, nil},
	{Ca, 'ཅ', 'ྕ', "ca", "ca", "", "", FirstColumn, nil},
	{Cha, 'ཆ', 'ྖ', "cha", "cha", "", "", SecondColumn, nil},
	{Ja, 'ཇ', 'ྗ', "ja", "cha", "ja", "", ThirdColumn, nil},
	{Nya, 'ཉ', 'ྙ', "nya", "nya", "", "", FourthColumn, nil},
	{Ta, 'ཏ', 'ྟ', "ta", "ta", "", "", FirstColumn, subsR},
	{Tha, 'ཐ', 'ྠ', "tha", "tha", "", "", SecondColumn, subsR},
	{Da, 'ད', 'ྡ', "da", "tha", "da", "", ThirdColumn, subsR},
	{Na, 'ན', 'ྣ', "na", "na", "", "n", FourthColumn, nil},
	{Pa, 'པ', 'ྤ', "pa", "pa", "", "", FirstColumn, subsYR},
	{Pha, 'ཕ', 'ྥ', "pha", "pha", "", "", SecondColumn, subsYR},
	{Ba, 'བ', 'ྦ', "ba", "pha", "ba", "p", ThirdColumn, subsYRL},
	{Ma, 'མ', 'ྨ', "ma", "ma", "", "m", FourthColumn, subsYR},
	{Tsa, 'ཙ', 'ྩ', "tsa", "tsa", "", "", FirstColumn, nil},
	{Tsha, 'ཚ', 'ྪ', "tsha", "tsha", "", "", SecondColumn, nil},
	{Dza, 'ཛ', 'ྫ', "dza", "tsha", "dza", "", ThirdColumn, nil},
	{Wa, 'ཝ', 'ྭ', "wa", "wa", "", "", FourthColumn, nil},
	{Zha, 'ཞ', 'ྮ', "zha", "sha", "", "", ThirdColumn, nil},
	{Za, 'ཟ', 'ྯ', "za", "sa", "", "", ThirdColumn, subsL},
	{Achung, 'འ', 'ྰ', "'a", "a", "", "", FourthColumn, nil},
	{Ya, 'ཡ', 'ྱ', "ya", "ya", "", "", FourthColumn, nil},
	{Ra, 'ར', 'ྲ', "ra", "ra", "", "r", FourthColumn, subsL},
	{La, 'ལ', 'ླ', "la", "la", "", "l", FourthColumn, nil},
	{Sha, 'ཤ', 'ྴ', "sha", "sha", "", "", SecondColumn, nil},
	{Sa, 'ས', 'ྶ', "sa", "sa", "", "", SecondColumn, subsRL},
	{Ha, 'ཧ', 'ྷ', "ha", "ha", "", "", SecondColumn, subsR},
	{A, 'ཨ', 'ྸ', "a", "a", "", "", FirstColumn, nil},
}
