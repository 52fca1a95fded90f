package syllable

import (
	"strings"
	"sync"

	"github.com/npillmayer/bodyig/script/tibetan"
	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/unicode/norm"
)

// Tone is the pitch of a syllable as marked in phonetic output.
type Tone int

const (
	NoTone Tone = iota
	HighTone
	LowTone
)

func (t Tone) String() string {
	switch t {
	case HighTone:
		return "high"
	case LowTone:
		return "low"
	}
	return "none"
}

// Combining marks appended to the root sound.
const (
	Diaeresis    rune = '\u0308'
	HighToneMark rune = '\u0301' // acute
	LowToneMark  rune = '\u0300' // grave
)

// Phonetic returns a Latin transliteration of the pronunciation of s.
// Marks are appended as combining characters, i.e. the result is not
// normalized; see PhoneticNFC.
//
// The root's sound is subject to a cascade of changes:
// a prefix or superscript changes sound or tone depending on the root's
// column; a subscript forms a consonant cluster, overriding the former; a
// vowel-altering suffix adds a diaeresis. The second suffix is silent.
//
// Phonetic returns an empty string if s has no root.
func Phonetic(s Syllable) string {
	if s.Root == nil {
		tracer().Errorf("cannot transliterate syllable without root")
		return ""
	}
	sound, tone := s.Root.Phonetic, NoTone
	if s.Prefix != nil || s.Superscript != nil {
		sound, tone = prefixed(s.Root, sound, tone)
	}
	if s.Subscript != nil {
		sound, tone = subscribed(s, sound, tone)
	}
	diaeresis, suffix := false, ""
	if s.Suffix != nil {
		diaeresis = tibetan.IsVowelAltering(s.Suffix)
		suffix = s.Suffix.PhoneticSuffix
	}
	var b strings.Builder
	b.WriteString(sound)
	if diaeresis {
		b.WriteRune(Diaeresis)
	}
	switch tone {
	case HighTone:
		b.WriteRune(HighToneMark)
	case LowTone:
		b.WriteRune(LowToneMark)
	}
	b.WriteString(suffix)
	return b.String()
}

// PhoneticNFC is like Phonetic, but returns the transliteration in Unicode
// normalization form C, i.e. with precomposed letters where available.
func PhoneticNFC(s Syllable) string {
	return norm.NFC.String(Phonetic(s))
}

// prefixed applies the effect of a prefix or superscript on root.
// Which of the two is present does not matter.
func prefixed(root *tibetan.Character, sound string, tone Tone) (string, Tone) {
	switch root.Column {
	case tibetan.ThirdColumn:
		if root.PhoneticThirdColumn != "" {
			sound = root.PhoneticThirdColumn
		}
	case tibetan.FourthColumn:
		tone = HighTone
	}
	return sound, tone
}

// subscribed applies the effect of a subscript on the root. Every
// combination of subscript and root letter is listed explicitly.
func subscribed(s Syllable, sound string, tone Tone) (string, Tone) {
	switch s.Subscript.Rune {
	case tibetan.SubscriptRa:
		switch s.Root.Letter {
		case tibetan.Ka, tibetan.Ta, tibetan.Pa:
			return "tra", HighTone
		case tibetan.Kha, tibetan.Tha, tibetan.Pha:
			return "thra", HighTone
		case tibetan.Ga, tibetan.Da, tibetan.Ba:
			if s.Superscript != nil && s.Superscript.Rune == 'ས' {
				return "dra", LowTone
			}
			return "thra", LowTone
		case tibetan.Ha:
			return "hra", tone
		case tibetan.Nga, tibetan.Ca, tibetan.Cha, tibetan.Ja, tibetan.Nya,
			tibetan.Na, tibetan.Ma, tibetan.Tsa, tibetan.Tsha, tibetan.Dza,
			tibetan.Wa, tibetan.Zha, tibetan.Za, tibetan.Achung, tibetan.Ya,
			tibetan.Ra, tibetan.La, tibetan.Sha, tibetan.Sa, tibetan.A:
			return sound, tone
		}
	case tibetan.SubscriptLa:
		switch s.Root.Letter {
		case tibetan.Za:
			return "da", LowTone
		case tibetan.Ka, tibetan.Kha, tibetan.Ga, tibetan.Nga, tibetan.Ca,
			tibetan.Cha, tibetan.Ja, tibetan.Nya, tibetan.Ta, tibetan.Tha,
			tibetan.Da, tibetan.Na, tibetan.Pa, tibetan.Pha, tibetan.Ba,
			tibetan.Ma, tibetan.Tsa, tibetan.Tsha, tibetan.Dza, tibetan.Wa,
			tibetan.Zha, tibetan.Achung, tibetan.Ya, tibetan.Ra, tibetan.La,
			tibetan.Sha, tibetan.Sa, tibetan.Ha, tibetan.A:
			return "la", HighTone
		}
	case tibetan.SubscriptYa:
		switch s.Root.Letter {
		case tibetan.Ma:
			return "nya", LowTone
		case tibetan.Pa:
			return "ca", HighTone
		case tibetan.Pha:
			return "cha", HighTone
		case tibetan.Ba:
			return "cha", LowTone
		case tibetan.Ka, tibetan.Kha, tibetan.Ga, tibetan.Nga, tibetan.Ca,
			tibetan.Cha, tibetan.Ja, tibetan.Nya, tibetan.Ta, tibetan.Tha,
			tibetan.Da, tibetan.Na, tibetan.Tsa, tibetan.Tsha, tibetan.Dza,
			tibetan.Wa, tibetan.Zha, tibetan.Za, tibetan.Achung, tibetan.Ya,
			tibetan.Ra, tibetan.La, tibetan.Sha, tibetan.Sa, tibetan.Ha,
			tibetan.A:
			return yaGlide(sound), tone
		}
	}
	tracer().Errorf("letter %s cannot act as subscript of %s", s.Subscript, s.Root)
	return sound, tone
}

var setupGraphemes sync.Once

// yaGlide inserts a "y" in front of the final vowel of sound, e.g.
// "kha" ⇒ "khya". The vowel is taken to be the last grapheme of sound.
func yaGlide(sound string) string {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(sound)
	var b strings.Builder
	for i := 0; i < gstr.Len()-1; i++ {
		b.WriteString(gstr.Nth(i))
	}
	b.WriteString("ya")
	return b.String()
}
