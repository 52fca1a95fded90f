package calculator

import (
	"strings"

	"github.com/npillmayer/bodyig/core"
	"github.com/npillmayer/bodyig/core/option"
	"github.com/npillmayer/bodyig/script/syllable"
	"github.com/npillmayer/bodyig/script/tibetan"
	"github.com/npillmayer/schuko"
)

// Placeholder is shown as Tibetan display as long as no root is selected.
const Placeholder = "ཨ"

// Configuration keys
const (
	// "nfc" selects precomposed phonetic output, anything else leaves
	// combining marks as they are
	KeyNormalize = "calculator.normalize"
)

// Calculator holds the slot selections and displays of an interactive
// syllable calculator.
type Calculator struct {
	selected        syllable.Syllable
	tibetanDisplay  string
	phoneticDisplay string
	normalize       bool
}

// New creates a calculator with all slots empty. conf may be nil.
func New(conf schuko.Configuration) *Calculator {
	calc := &Calculator{}
	if conf != nil {
		calc.normalize = strings.EqualFold(conf.GetString(KeyNormalize), "nfc")
	}
	calc.Reset()
	return calc
}

// Reset clears all slots and both displays.
func (calc *Calculator) Reset() {
	calc.selected = syllable.Syllable{}
	calc.tibetanDisplay = Placeholder
	calc.phoneticDisplay = ""
}

// Set selects a letter for a slot. input is either a Tibetan letter or its
// Wylie name; an empty input clears the slot.
//
// Selecting a root resets all other slots. An input which does not resolve
// to a letter clears the slot and returns an error with code core.EMISSING.
// A letter which is not an option of the slot's menu, or a selection on a
// disabled menu, is rejected with core.EINVALID and leaves the calculator
// unchanged.
func (calc *Calculator) Set(slot syllable.Slot, input string) error {
	c, err := tibetan.Resolve(input)
	if c != nil {
		if err = calc.check(slot, c); err != nil {
			return err
		}
	}
	if slot == syllable.Root {
		calc.Reset()
	}
	calc.selected = calc.selected.With(slot, c)
	if slot == syllable.Suffix && c == nil {
		calc.selected.SecondSuffix = nil
	}
	if slot == syllable.Root {
		tracer().Infof("root is now %s", calc.selected.At(syllable.Root))
	} else {
		tracer().Debugf("%s is now %s", slot, calc.selected.At(slot))
	}
	calc.updateDisplays()
	return err
}

// Clear empties a slot. Clearing the root resets the calculator.
func (calc *Calculator) Clear(slot syllable.Slot) {
	if slot == syllable.Root {
		calc.Reset()
		return
	}
	_ = calc.Set(slot, "")
}

func (calc *Calculator) check(slot syllable.Slot, c *tibetan.Character) error {
	menu := calc.Menu(slot)
	if menu.Disabled {
		return core.Error(core.EINVALID, "%s cannot be selected now", menu.Label)
	}
	if slot == syllable.Subscript {
		if calc.selected.Root.HasSubscript(c.Rune) {
			return nil
		}
		return core.Error(core.EINVALID, "%c (%s) cannot be subscribed to %s", c.Rune, c.Wylie,
			calc.selected.Root)
	}
	for _, r := range menu.Options {
		if r == c.Rune {
			return nil
		}
	}
	return core.Error(core.EINVALID, "%c (%s) is not a valid %s", c.Rune, c.Wylie, slot)
}

func (calc *Calculator) updateDisplays() {
	if calc.selected.Root == nil {
		return
	}
	calc.tibetanDisplay = syllable.Compose(calc.selected)
	if calc.normalize {
		calc.phoneticDisplay = syllable.PhoneticNFC(calc.selected)
	} else {
		calc.phoneticDisplay = syllable.Phonetic(calc.selected)
	}
}

// Displays returns the Tibetan and the phonetic display.
func (calc *Calculator) Displays() (string, string) {
	return calc.tibetanDisplay, calc.phoneticDisplay
}

// Syllable returns the current selections.
func (calc *Calculator) Syllable() syllable.Syllable {
	return calc.selected
}

// Render returns the rendering of the current selections, or an error with
// code core.ENOROOT if no root has been selected.
func (calc *Calculator) Render() (syllable.Rendering, error) {
	return syllable.Render(calc.selected)
}

// --- Menus -----------------------------------------------------------------

// Menu describes the choices for one slot.
type Menu struct {
	Slot     syllable.Slot
	Label    string
	Options  []rune
	Selected option.RuneT
	Disabled bool
}

// Menu returns the menu for slot, reflecting the current selections.
func (calc *Calculator) Menu(slot syllable.Slot) Menu {
	s := calc.selected
	noRoot := s.Root == nil
	m := Menu{Slot: slot, Selected: option.NoRune()}
	if c := s.At(slot).Unwrap(); c != nil {
		m.Selected = option.SomeRune(c.Rune)
	}
	switch slot {
	case syllable.Prefix:
		m.Label, m.Options, m.Disabled = "Prefix", tibetan.Prefixes(), noRoot
	case syllable.Superscript:
		m.Label, m.Options, m.Disabled = "Superscript", tibetan.Superscripts(), noRoot
	case syllable.Root:
		m.Label, m.Options = "Root character", tibetan.Roots()
	case syllable.Subscript:
		m.Label, m.Options = "Subscripts", tibetan.AvailableSubscripts(s.Root)
		m.Disabled = len(m.Options) == 0
	case syllable.Suffix:
		m.Label, m.Options, m.Disabled = "Suffix 1", tibetan.Suffixes(), noRoot
	case syllable.SecondSuffix:
		m.Label, m.Options, m.Disabled = "Suffix 2", tibetan.SecondSuffixes(), s.Suffix == nil
	}
	return m
}

// Menus returns the menus of all slots in reading order.
func (calc *Calculator) Menus() []Menu {
	menus := make([]Menu, 0, len(syllable.Slots))
	for _, slot := range syllable.Slots {
		menus = append(menus, calc.Menu(slot))
	}
	return menus
}
