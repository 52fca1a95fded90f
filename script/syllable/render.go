package syllable

// Rendering holds both textual forms of a syllable.
type Rendering struct {
	Unicode  string // stacked Tibetan text
	Phonetic string // Latin transliteration
}

// Render validates s and returns its Unicode text and its phonetic
// transliteration. A syllable without root results in an error with code
// core.ENOROOT and an empty rendering.
func Render(s Syllable) (Rendering, error) {
	if err := s.Validate(); err != nil {
		return Rendering{}, err
	}
	r := Rendering{
		Unicode:  Compose(s),
		Phonetic: Phonetic(s),
	}
	tracer().Debugf("syllable %s renders as %s / %s", s, r.Unicode, r.Phonetic)
	return r, nil
}
