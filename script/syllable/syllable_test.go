package syllable

import (
	"testing"

	"github.com/npillmayer/bodyig/core"
	"github.com/npillmayer/bodyig/core/option"
	"github.com/npillmayer/bodyig/script/tibetan"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// letter resolves a Tibetan letter from the registry, failing the test if
// it is unknown.
func letter(t *testing.T, r rune) *tibetan.Character {
	t.Helper()
	c, ok := tibetan.Lookup(r)
	require.True(t, ok, "letter %c not in registry", r)
	return c
}

func TestSubscriptRa(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	s := Syllable{Root: letter(t, 'ཏ'), Subscript: letter(t, 'ར')}
	assert.Equal(t, "ཏྲ", Compose(s))
	assert.Equal(t, "tra\u0301", Phonetic(s))
	assert.Equal(t, "tra\u0301", Phonetic(s))
}

func TestSubscriptYa(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	s := Syllable{Root: letter(t, 'ག'), Subscript: letter(t, 'ཡ')}
	assert.Equal(t, "གྱ", Compose(s))
	assert.Equal(t, "khya", Phonetic(s))
}

func TestRootChangeWithDiaeresis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	s := Syllable{
		Superscript: letter(t, 'ས'),
		Root:        letter(t, 'ག'),
		Subscript:   letter(t, 'ར'),
		Suffix:      letter(t, 'ལ'),
	}
	assert.Equal(t, "སྒྲལ", Compose(s))
	assert.Equal(t, "dra\u0308\u0300l", Phonetic(s))
	assert.Equal(t, "dra\u0308\u0300l", Phonetic(s))
}

func TestMissingRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	s := Syllable{Prefix: letter(t, 'ག'), Suffix: letter(t, 'ས')}
	assert.Equal(t, "", Compose(s))
	assert.Equal(t, "", Phonetic(s))
	r, err := Render(s)
	require.Error(t, err)
	assert.Equal(t, core.ENOROOT, core.Code(err))
	assert.Equal(t, Rendering{}, r)
	//
	s = New(letter(t, 'ཀ')).With(Root, nil)
	assert.Equal(t, core.ENOROOT, core.Code(s.Validate()))
}

func TestRootOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	for _, c := range tibetan.All() {
		s := New(c)
		assert.Equal(t, string(c.Rune), Compose(s), "root %s", c)
		assert.Equal(t, c.Phonetic, Phonetic(s), "root %s", c)
	}
}

func TestStackingOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	P, S, R := letter(t, 'བ'), letter(t, 'ས'), letter(t, 'ཀ')
	U, F1, F2 := letter(t, 'ར'), letter(t, 'ག'), letter(t, 'ས')
	// slots are set in scrambled order; output order depends on slots only
	s := New(R).With(SecondSuffix, F2).With(Subscript, U).With(Prefix, P).
		With(Suffix, F1).With(Superscript, S)
	expected := string([]rune{P.Rune, S.Rune, R.Subjoined, U.Subjoined, F1.Rune, F2.Rune})
	assert.Equal(t, expected, Compose(s))
	assert.Equal(t, "བསྐྲགས", Compose(s))
}

func TestPrefixAndSuperscript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	for _, test := range []struct {
		s        Syllable
		phonetic string
	}{
		{Syllable{Prefix: letter(t, 'ད'), Root: letter(t, 'ག')}, "ga"},
		{Syllable{Superscript: letter(t, 'ར'), Root: letter(t, 'ཇ')}, "ja"},
		{Syllable{Prefix: letter(t, 'མ'), Root: letter(t, 'ང')}, "nga\u0301"},
		{Syllable{Superscript: letter(t, 'ས'), Root: letter(t, 'ན')}, "na\u0301"},
		{Syllable{Prefix: letter(t, 'ག'), Root: letter(t, 'ཅ')}, "ca"},
		{Syllable{Prefix: letter(t, 'ག'), Root: letter(t, 'ཟ')}, "sa"},
		{Syllable{Prefix: letter(t, 'བ'), Superscript: letter(t, 'ས'), Root: letter(t, 'ད')}, "da"},
	} {
		assert.Equal(t, test.phonetic, Phonetic(test.s), "syllable %s", test.s)
	}
}

func TestSubscriptRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	ya, ra, la := letter(t, 'ཡ'), letter(t, 'ར'), letter(t, 'ལ')
	for _, test := range []struct {
		root     rune
		sub      *tibetan.Character
		phonetic string
	}{
		{'ཀ', ra, "tra\u0301"},
		{'པ', ra, "tra\u0301"},
		{'ཁ', ra, "thra\u0301"},
		{'ཕ', ra, "thra\u0301"},
		{'ག', ra, "thra\u0300"},
		{'བ', ra, "thra\u0300"},
		{'ཧ', ra, "hra"},
		{'ས', ra, "sa"},
		{'མ', ra, "ma"},
		{'ཟ', la, "da\u0300"},
		{'ཀ', la, "la\u0301"},
		{'ར', la, "la\u0301"},
		{'མ', ya, "nya\u0300"},
		{'པ', ya, "ca\u0301"},
		{'ཕ', ya, "cha\u0301"},
		{'བ', ya, "cha\u0300"},
		{'ཀ', ya, "kya"},
		{'ཁ', ya, "khya"},
	} {
		s := Syllable{Root: letter(t, test.root), Subscript: test.sub}
		assert.Equal(t, test.phonetic, Phonetic(s), "syllable %s", s)
	}
}

func TestSubscriptOverridesPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	// ra subscript after a superscript other than sa
	s := Syllable{Superscript: letter(t, 'ལ'), Root: letter(t, 'ག'), Subscript: letter(t, 'ར')}
	assert.Equal(t, "thra\u0300", Phonetic(s))
	// unchanged ra cluster keeps the high tone of a prefixed fourth column root
	s = Syllable{Prefix: letter(t, 'ད'), Root: letter(t, 'མ'), Subscript: letter(t, 'ར')}
	assert.Equal(t, "ma\u0301", Phonetic(s))
	// ya glide is applied to the sound changed by the prefix
	s = Syllable{Prefix: letter(t, 'ད'), Root: letter(t, 'ག'), Subscript: letter(t, 'ཡ')}
	assert.Equal(t, "gya", Phonetic(s))
	assert.Equal(t, "དགྱ", Compose(s))
}

func TestSuffixes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	ga := letter(t, 'ག')
	for _, test := range []struct {
		suffix, second rune
		unicode        string
		phonetic       string
	}{
		{'ན', 0, "གན", "kha\u0308n"},
		{'ད', 0, "གད", "kha\u0308"},
		{'ས', 0, "གས", "kha\u0308"},
		{'ག', 0, "གག", "khak"},
		{'ང', 'ས', "གངས", "khang"},
		{'བ', 'ས', "གབས", "khap"},
		{'འ', 0, "གའ", "kha"},
	} {
		s := New(ga).With(Suffix, letter(t, test.suffix))
		if test.second != 0 {
			s = s.With(SecondSuffix, letter(t, test.second))
		}
		assert.Equal(t, test.unicode, Compose(s))
		assert.Equal(t, test.phonetic, Phonetic(s))
	}
}

func TestSubscriptDispatchIsTotal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	for _, sub := range []rune{tibetan.SubscriptYa, tibetan.SubscriptRa, tibetan.SubscriptLa} {
		for _, root := range tibetan.All() {
			s := Syllable{Root: root, Subscript: letter(t, sub)}
			p := Phonetic(s)
			assert.NotEmpty(t, p, "syllable %s", s)
			assert.Equal(t, p, Phonetic(s), "phonetic of %s not deterministic", s)
			assert.Equal(t, Compose(s), Compose(s))
		}
	}
}

func TestPhoneticNFC(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	s := Syllable{Root: letter(t, 'ཏ'), Subscript: letter(t, 'ར')}
	assert.Equal(t, "tr\u00e1", PhoneticNFC(s))
	s = Syllable{
		Superscript: letter(t, 'ས'),
		Root:        letter(t, 'ག'),
		Subscript:   letter(t, 'ར'),
		Suffix:      letter(t, 'ལ'),
	}
	assert.Equal(t, "dr\u00e4\u0300l", PhoneticNFC(s))
}

func TestSlotOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	s := Syllable{Root: letter(t, 'ཏ'), Subscript: letter(t, 'ར')}
	assert.True(t, s.At(Prefix).IsNone())
	assert.True(t, s.At(Slot(42)).IsNone())
	assert.True(t, s.At(Subscript).Equals('ར'))
	assert.True(t, s.At(Root).Equals("ta"))
	assert.True(t, s.At(Root).Equals(tibetan.Ta))
	assert.Same(t, s.Root, s.At(Root).Unwrap())
	assert.True(t, Some(nil).IsNone())
	assert.True(t, Some(s.Root).Equals(s.At(Root).Unwrap()))
	//
	v, err := s.At(Subscript).Match(option.Of{
		option.None: "none",
		'ར':         "ra-tag",
		option.Some: "other",
	})
	require.NoError(t, err)
	assert.Equal(t, "ra-tag", v)
	v, err = s.At(Suffix).Match(option.Maybe{
		option.None: "none",
		option.Some: "some",
	})
	require.NoError(t, err)
	assert.Equal(t, "none", v)
	//
	assert.Equal(t, "[prefix=- superscript=- root=ཏ(ta) subscript=ར(ra) suffix=- second-suffix=-]",
		s.String())
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bodyig.script")
	defer teardown()
	//
	s := Syllable{Root: letter(t, 'ག'), Subscript: letter(t, 'ཡ')}
	r, err := Render(s)
	require.NoError(t, err)
	assert.Equal(t, Rendering{Unicode: "གྱ", Phonetic: "khya"}, r)
}

// The testing trace adapter is not safe for concurrent use, and
// uax/grapheme traces every rune. Concurrent calls are therefore run
// with the go-log adapter, as configured by cmd/bodyig.
func TestConcurrentTransliteration(t *testing.T) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.bodyig.script": "Error",
	}
	require.NoError(t, trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)))
	tracing.SetTraceSelector(trace2go.Selector())
	//
	s := Syllable{Root: letter(t, 'ཁ'), Subscript: letter(t, 'ཡ')}
	var g errgroup.Group
	results := make([]string, 32)
	for i := range results {
		i := i
		g.Go(func() error {
			results[i] = Phonetic(s)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, p := range results {
		assert.Equal(t, "khya", p)
	}
}
