package syllable

import (
	"fmt"
	"strings"

	"github.com/npillmayer/bodyig/core"
	"github.com/npillmayer/bodyig/core/option"
	"github.com/npillmayer/bodyig/script/tibetan"
)

// Slot names a position within a syllable.
type Slot int

const (
	Prefix Slot = iota
	Superscript
	Root
	Subscript
	Suffix
	SecondSuffix
)

// Slots lists all slots in reading order.
var Slots = [...]Slot{Prefix, Superscript, Root, Subscript, Suffix, SecondSuffix}

func (s Slot) String() string {
	switch s {
	case Prefix:
		return "prefix"
	case Superscript:
		return "superscript"
	case Root:
		return "root"
	case Subscript:
		return "subscript"
	case Suffix:
		return "suffix"
	case SecondSuffix:
		return "second-suffix"
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

// Syllable is a single Tibetan syllable. Root is mandatory, all other slots
// are optional and nil if absent. Syllables are plain values; building one
// for every rendering is cheap.
type Syllable struct {
	Prefix       *tibetan.Character
	Superscript  *tibetan.Character
	Root         *tibetan.Character
	Subscript    *tibetan.Character
	Suffix       *tibetan.Character
	SecondSuffix *tibetan.Character
}

// New creates a syllable consisting of root only.
func New(root *tibetan.Character) Syllable {
	return Syllable{Root: root}
}

// With returns a copy of s with slot set to c. c may be nil to clear the slot.
func (s Syllable) With(slot Slot, c *tibetan.Character) Syllable {
	if p := s.ref(slot); p != nil {
		*p = c
	}
	return s
}

// At returns the optional character at slot.
func (s Syllable) At(slot Slot) Letter {
	if p := s.ref(slot); p != nil {
		return Some(*p)
	}
	return Letter{}
}

func (s *Syllable) ref(slot Slot) **tibetan.Character {
	switch slot {
	case Prefix:
		return &s.Prefix
	case Superscript:
		return &s.Superscript
	case Root:
		return &s.Root
	case Subscript:
		return &s.Subscript
	case Suffix:
		return &s.Suffix
	case SecondSuffix:
		return &s.SecondSuffix
	}
	return nil
}

// Validate checks that s has a root. Compose and Phonetic will produce
// empty output for syllables failing validation.
func (s Syllable) Validate() error {
	if s.Root == nil {
		return core.Error(core.ENOROOT, "syllable has no root letter")
	}
	return nil
}

func (s Syllable) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, slot := range Slots {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(slot.String())
		b.WriteString("=")
		b.WriteString(s.At(slot).String())
	}
	b.WriteString("]")
	return b.String()
}

// --- Optional letters ------------------------------------------------------

// Letter is an optional reference to a registry character, as found in a
// syllable slot. It implements option.Type.
type Letter struct {
	c *tibetan.Character
}

// Some wraps c as an optional letter.
func Some(c *tibetan.Character) Letter {
	return Letter{c}
}

func (l Letter) Match(choices interface{}) (interface{}, error) {
	return option.Match(l, choices)
}

// Equals compares l to a character, a rune or a Wylie name.
func (l Letter) Equals(other interface{}) bool {
	if l.c == nil {
		return false
	}
	switch x := other.(type) {
	case *tibetan.Character:
		return l.c == x
	case rune:
		return l.c.Rune == x
	case string:
		return l.c.Wylie == x
	case tibetan.Letter:
		return l.c.Letter == x
	}
	return false
}

func (l Letter) IsNone() bool {
	return l.c == nil
}

// Unwrap returns the character, which is nil for an empty slot.
func (l Letter) Unwrap() *tibetan.Character {
	return l.c
}

func (l Letter) String() string {
	if l.c == nil {
		return "-"
	}
	return l.c.String()
}

var _ option.Type = Letter{}
