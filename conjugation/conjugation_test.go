package conjugation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassFixtures(t *testing.T) {
	tests := []struct {
		class        *Class
		stem         string
		irrealis     string
		continuative string
		terminal     string
	}{
		{GodanKa, "歩", "歩か", "歩き", "歩く"},
		{GodanGa, "稼", "稼が", "稼ぎ", "稼ぐ"},
		{GodanSa, "話", "話さ", "話し", "話す"},
		{GodanTa, "待", "待た", "待ち", "待つ"},
		{GodanNa, "死", "死な", "死に", "死ぬ"},
		{GodanBa, "遊", "遊ば", "遊び", "遊ぶ"},
		{GodanMa, "読", "読ま", "読み", "読む"},
		{GodanRa, "帰", "帰ら", "帰り", "帰る"},
		{GodanWa, "買", "買わ", "買い", "買う"},
		{GodanIku, "行", "行か", "行き", "行く"},
		{KamiIchidan, "起き", "起き", "起き", "起きる"},
		{ShimoIchidan, "食べ", "食べ", "食べ", "食べる"},
		{KuruKana, "", "こ", "き", "くる"},
		{KuruKanji, "来", "来", "来", "来る"},
		{Suru, "愛", "愛し", "愛し", "愛する"},
		{Zuru, "生", "生じ", "生じ", "生ずる"},
		{Keiyoushi, "美し", "美しかろ", "美しく", "美しい"},
		{Keiyoudoushi, "静か", "静かだろ", "静かに", "静かだ"},
		{AuxTa, "歩い", "歩いたろ", "歩い", "歩いた"},
		{AuxDa, "遊ん", "遊んだろ", "遊ん", "遊んだ"},
	}

	require.Len(t, tests, len(All()), "every class needs a fixture")

	for _, tt := range tests {
		t.Run(tt.class.Name(), func(t *testing.T) {
			assert.Equal(t, tt.irrealis, tt.stem+tt.class.Irrealis())
			assert.Equal(t, tt.continuative, tt.stem+tt.class.Continuative())
			assert.Equal(t, tt.terminal, tt.stem+tt.class.Terminal())
		})
	}
}

func TestLightVerbRoles(t *testing.T) {
	assert.True(t, Suru.LightVerb())
	assert.True(t, Zuru.LightVerb())
	assert.True(t, Suru.IsVerb(), "light verbs are verb-like")
	assert.False(t, GodanSa.LightVerb())

	assert.Equal(t, "さ", Suru.Form(IrrealisPassive))
	assert.Equal(t, "さ", Suru.Form(IrrealisCausative))
	assert.Equal(t, "ぜ", Zuru.Form(IrrealisPassive))
	assert.Equal(t, "じ", Zuru.Form(IrrealisCausative))
}

func TestFormFallback(t *testing.T) {
	// classes without the specialised roles use the general one
	assert.False(t, GodanBa.Has(IrrealisPassive))
	assert.Equal(t, "ば", GodanBa.Form(IrrealisPassive))
	assert.Equal(t, "く", Keiyoushi.Form(ContinuativeNegation))

	// adjectival nouns keep a distinct pre-negation form
	assert.Equal(t, "に", Keiyoudoushi.Form(Continuative))
	assert.Equal(t, "では", Keiyoudoushi.Form(ContinuativeNegation))
	assert.NotEqual(t, Keiyoudoushi.Form(Continuative), Keiyoudoushi.Form(ContinuativeNegation))

	// roles a class lacks render empty
	assert.Equal(t, "", Keiyoushi.Form(Imperative))
	assert.Equal(t, "", AuxTa.Form(Continuative))
}

func TestKinds(t *testing.T) {
	for _, c := range All() {
		switch c {
		case Keiyoushi:
			assert.True(t, c.IsAdjective())
		case Keiyoudoushi:
			assert.True(t, c.IsAdjectivalNoun())
		case AuxTa, AuxDa:
			assert.Equal(t, KindAuxiliary, c.Kind())
		default:
			assert.True(t, c.IsVerb(), c.Name())
		}
	}
}

func TestByName(t *testing.T) {
	for _, c := range All() {
		got, ok := ByName(c.Name())
		require.True(t, ok, c.Name())
		assert.Same(t, c, got)
	}
	_, ok := ByName("godan-xa")
	assert.False(t, ok)
}

func TestGodanByEnding(t *testing.T) {
	tests := map[string]*Class{
		"く": GodanKa, "ぐ": GodanGa, "す": GodanSa, "つ": GodanTa, "ぬ": GodanNa,
		"ぶ": GodanBa, "む": GodanMa, "る": GodanRa, "う": GodanWa,
	}
	for ending, want := range tests {
		got, ok := GodanByEnding(ending)
		require.True(t, ok, ending)
		assert.Same(t, want, got, ending)
		assert.Equal(t, ending, got.Terminal())
	}
	_, ok := GodanByEnding("い")
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	for role := Irrealis; role <= ContinuativeNegation; role++ {
		got, ok := ParseRole(role.String())
		require.True(t, ok, role.String())
		assert.Equal(t, role, got)
	}
	_, ok := ParseRole("conditional")
	assert.False(t, ok)
}
