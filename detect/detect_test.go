package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japanesereflect/conjugation"
	"japanesereflect/errors"
	"japanesereflect/feature"
	"japanesereflect/fragment"
	"japanesereflect/model"
)

func TestRootDetector(t *testing.T) {
	tests := []struct {
		name  string
		tok   model.Token
		stem  string
		class *conjugation.Class
	}{
		// five-row
		{"歩く", verb("歩く"), "歩", conjugation.GodanKa},
		{"稼ぐ", verb("稼ぐ"), "稼", conjugation.GodanGa},
		{"話す", verb("話す"), "話", conjugation.GodanSa},
		{"待つ", verb("待つ"), "待", conjugation.GodanTa},
		{"死ぬ", verb("死ぬ"), "死", conjugation.GodanNa},
		{"遊ぶ", verb("遊ぶ"), "遊", conjugation.GodanBa},
		{"読む", verb("読む"), "読", conjugation.GodanMa},
		{"帰る", verb("帰る"), "帰", conjugation.GodanRa},
		{"買う", verb("買う"), "買", conjugation.GodanWa},
		{"ずる", verb("ずる"), "ず", conjugation.GodanRa},
		{"はいる", verb("はいる"), "はい", conjugation.GodanRa},
		{"かえる", verb("かえる"), "かえ", conjugation.GodanRa},
		{"しゃべる", verb("しゃべる"), "しゃべ", conjugation.GodanRa},
		{"擦る", verb("擦る"), "擦", conjugation.GodanRa},

		// 行く
		{"行く", verb("行く"), "行", conjugation.GodanIku},
		{"往く", verb("往く"), "往", conjugation.GodanIku},
		{"逝く", verb("逝く"), "逝", conjugation.GodanIku},
		{"いく", verb("いく"), "い", conjugation.GodanIku},
		{"ゆく", verb("ゆく"), "い", conjugation.GodanIku},

		// upper one-row
		{"老いる", verb("老いる"), "老い", conjugation.KamiIchidan},
		{"居る", verb("居る"), "居", conjugation.KamiIchidan},
		{"いる", verb("いる"), "い", conjugation.KamiIchidan},
		{"おきる", verb("おきる"), "おき", conjugation.KamiIchidan},
		{"起きる", verb("起きる"), "起き", conjugation.KamiIchidan},
		{"着る", verb("着る"), "着", conjugation.KamiIchidan},
		{"過ぎる", verb("過ぎる"), "過ぎ", conjugation.KamiIchidan},
		{"閉じる", verb("閉じる"), "閉じ", conjugation.KamiIchidan},
		{"落ちる", verb("落ちる"), "落ち", conjugation.KamiIchidan},
		{"煮る", verb("煮る"), "煮", conjugation.KamiIchidan},
		{"浴びる", verb("浴びる"), "浴び", conjugation.KamiIchidan},
		{"染みる", verb("染みる"), "染み", conjugation.KamiIchidan},
		{"見る", verb("見る"), "見", conjugation.KamiIchidan},
		{"降りる", verb("降りる"), "降り", conjugation.KamiIchidan},

		// lower one-row
		{"見える", verb("見える"), "見え", conjugation.ShimoIchidan},
		{"得る", verb("得る"), "得", conjugation.ShimoIchidan},
		{"受ける", verb("受ける"), "受け", conjugation.ShimoIchidan},
		{"告げる", verb("告げる"), "告げ", conjugation.ShimoIchidan},
		{"見せる", verb("見せる"), "見せ", conjugation.ShimoIchidan},
		{"混ぜる", verb("混ぜる"), "混ぜ", conjugation.ShimoIchidan},
		{"捨てる", verb("捨てる"), "捨て", conjugation.ShimoIchidan},
		{"茹でる", verb("茹でる"), "茹で", conjugation.ShimoIchidan},
		{"出る", verb("出る"), "出", conjugation.ShimoIchidan},
		{"尋ねる", verb("尋ねる"), "尋ね", conjugation.ShimoIchidan},
		{"寝る", verb("寝る"), "寝", conjugation.ShimoIchidan},
		{"経る", verb("経る"), "経", conjugation.ShimoIchidan},
		{"食べる", verb("食べる"), "食べ", conjugation.ShimoIchidan},
		{"求める", verb("求める"), "求め", conjugation.ShimoIchidan},
		{"入れる", verb("入れる"), "入れ", conjugation.ShimoIchidan},

		// irregular
		{"くる", verb("くる"), "", conjugation.KuruKana},
		{"来る", verb("来る"), "来", conjugation.KuruKanji},
		{"する", verb("する"), "", conjugation.Suru},
		{"ウォーキング", verb("ウォーキング"), "ウォーキング", conjugation.Suru},
		{"熱する", verb("熱する"), "熱", conjugation.Suru},
		{"愛する", verb("愛する"), "愛", conjugation.Suru},
		{"生ずる", verb("生ずる"), "生", conjugation.Zuru},

		// adjectives and nouns
		{"美しい", model.Token{Text: "美しい", Lemma: "美しい", POS: model.POSAdj, Tag: "形容詞-一般"}, "美し", conjugation.Keiyoushi},
		{"傲慢", model.Token{Text: "傲慢", Lemma: "傲慢", POS: model.POSAdj, Tag: "形状詞-一般"}, "傲慢", conjugation.Keiyoudoushi},
		{"明日", model.Token{Text: "明日", Lemma: "明日", POS: model.POSNoun, Tag: "名詞-普通名詞-副詞可能"}, "明日", conjugation.Keiyoudoushi},
		{"ステファン", model.Token{Text: "ステファン", Lemma: "ステファン", POS: model.POSPropN, Tag: "名詞-固有名詞-人名-名"}, "ステファン", conjugation.Keiyoudoushi},
	}

	d := NewRootDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Detect(tt.tok)
			require.NoError(t, err)
			assert.Equal(t, fragment.NewInflectable(tt.stem, tt.class), got)
		})
	}
}

func TestRootDetectorInflectionType(t *testing.T) {
	tests := []struct {
		lemma, typ string
		stem       string
		class      *conjugation.Class
	}{
		// the hint wins over the kana-only lexicon in both directions
		{"かえる", "下一段-ア行", "かえ", conjugation.ShimoIchidan},
		{"かえる", "五段-ラ行", "かえ", conjugation.GodanRa},
		{"はしる", "五段-ラ行", "はし", conjugation.GodanRa},
		{"借りる", "上一段-ラ行", "借り", conjugation.KamiIchidan},
		{"寝る", "一段", "寝", conjugation.ShimoIchidan},
		{"見る", "一段", "見", conjugation.KamiIchidan},
		{"歩く", "五段・カ行イ音便", "歩", conjugation.GodanKa},
	}
	d := NewRootDetector()
	for _, tt := range tests {
		t.Run(tt.lemma, func(t *testing.T) {
			tok := verb(tt.lemma)
			tok.InflectionType = tt.typ
			got, err := d.Detect(tok)
			require.NoError(t, err)
			assert.Equal(t, fragment.NewInflectable(tt.stem, tt.class), got)
		})
	}
}

func TestRootDetectorSurfaceFallback(t *testing.T) {
	// an unknown word has no lemma; the surface is used
	got, err := NewRootDetector().Detect(model.Token{Text: "読む", Lemma: "*", POS: model.POSVerb})
	require.NoError(t, err)
	assert.Equal(t, "読む", fragment.Render(got))
}

func TestRootDetectorUnrecognized(t *testing.T) {
	for _, pos := range []string{model.POSAdp, model.POSAux, model.POSPunct, model.POSAdv, ""} {
		_, err := NewRootDetector().Detect(model.Token{Text: "は", POS: pos})
		require.Error(t, err, pos)
		assert.True(t, errors.Is(err, ErrUnrecognizedRoot), pos)
	}
}

func TestFeatureDetector(t *testing.T) {
	tests := []struct {
		name string
		span []model.Token
		want []feature.Kind
	}{
		{"れる", []model.Token{aux("れる")}, []feature.Kind{feature.Passive}},
		{"られる", []model.Token{aux("られる")}, []feature.Kind{feature.Passive}},
		{"せる", []model.Token{aux("せる")}, []feature.Kind{feature.Causative}},
		{"させる", []model.Token{aux("させる")}, []feature.Kind{feature.Causative}},
		{"ない", []model.Token{aux("ない")}, []feature.Kind{feature.Negation}},
		{"ず", []model.Token{aux("ず")}, []feature.Kind{feature.Negation}},
		{"ぬ", []model.Token{aux("ぬ")}, []feature.Kind{feature.Negation}},
		{"ん", []model.Token{aux("ん")}, []feature.Kind{feature.Negation}},
		{"たい", []model.Token{aux("たい")}, []feature.Kind{feature.DesireSelf}},
		{"たがる", []model.Token{aux("たがる")}, []feature.Kind{feature.DesireOther}},
		{"た", []model.Token{aux("た")}, []feature.Kind{feature.Past}},
		// 仕方ない is a single adjective and marks nothing
		{"仕方ない", []model.Token{{Text: "仕方ない", Norm: "仕方無い", POS: model.POSAdj}}, nil},
		// adjectival 無い after a root reads as negation
		{"adjectival ない", []model.Token{
			{Text: "が", Norm: "が", POS: model.POSAdp},
			{Text: "ない", Norm: "無い", POS: model.POSAdj},
		}, []feature.Kind{feature.Negation}},
		{"ordered", []model.Token{aux("させる"), aux("られる"), aux("ない"), aux("た")},
			[]feature.Kind{feature.Causative, feature.Passive, feature.Negation, feature.Past}},
		{"particles skipped", []model.Token{
			{Text: "て", Norm: "て", POS: model.POSSConj},
			aux("ない"),
			{Text: "。", Norm: "。", POS: model.POSPunct},
		}, []feature.Kind{feature.Negation}},
		{"empty", nil, nil},
	}

	d, err := NewFeatureDetector()
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			helpers, hadError := d.Detect(tt.span)
			assert.False(t, hadError)
			var got []feature.Kind
			for _, h := range helpers {
				got = append(got, h.Kind)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeatureDetectorVoicedPast(t *testing.T) {
	d, err := NewFeatureDetector()
	require.NoError(t, err)

	tests := []struct {
		name string
		tok  model.Token
		want []feature.Kind
	}{
		// だ of 読んだ keeps norm and lemma だ; only the inflection type marks it
		{"unidic past", model.Token{Text: "だ", Norm: "だ", Lemma: "だ", POS: model.POSAux, InflectionType: "助動詞-タ"}, []feature.Kind{feature.Past}},
		{"ipadic past", model.Token{Text: "だ", Norm: "だ", Lemma: "だ", POS: model.POSAux, InflectionType: "特殊・タ"}, []feature.Kind{feature.Past}},
		{"unidic copula", model.Token{Text: "だ", Norm: "だ", Lemma: "だ", POS: model.POSAux, InflectionType: "助動詞-ダ"}, nil},
		{"ipadic copula", model.Token{Text: "だ", Norm: "だ", Lemma: "だ", POS: model.POSAux, InflectionType: "特殊・ダ"}, nil},
		{"desire is not past", model.Token{Text: "たい", Norm: "たい", Lemma: "たい", POS: model.POSAux, InflectionType: "助動詞-タイ"}, []feature.Kind{feature.DesireSelf}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			helpers, hadError := d.Detect([]model.Token{tt.tok})
			assert.False(t, hadError)
			var got []feature.Kind
			for _, h := range helpers {
				got = append(got, h.Kind)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeatureDetectorLemmaFallback(t *testing.T) {
	d, err := NewFeatureDetector()
	require.NoError(t, err)

	// ipadic leaves the surface ん as norm; its base form is ぬ
	helpers, hadError := d.Detect([]model.Token{{Text: "ん", Norm: "ん", Lemma: "ぬ", POS: model.POSAux}})
	assert.False(t, hadError)
	require.Len(t, helpers, 1)
	assert.Equal(t, feature.Negation, helpers[0].Kind)
}

func TestFeatureDetectorUnknownAuxiliary(t *testing.T) {
	d, err := NewFeatureDetector()
	require.NoError(t, err)

	helpers, hadError := d.Detect([]model.Token{aux("まい"), aux("ない")})
	assert.True(t, hadError)
	require.Len(t, helpers, 1)
	assert.Equal(t, feature.Negation, helpers[0].Kind)

	_, hadError = d.Detect([]model.Token{aux("ます")})
	assert.False(t, hadError)
}

func TestNewFeatureDetector(t *testing.T) {
	t.Run("unsupported kind", func(t *testing.T) {
		_, err := NewFeatureDetector(&feature.Helper{Kind: feature.Kind(99)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfiguration))
	})

	t.Run("nil helper", func(t *testing.T) {
		_, err := NewFeatureDetector(nil)
		assert.True(t, errors.Is(err, ErrConfiguration))
	})

	t.Run("duplicate kind", func(t *testing.T) {
		_, err := NewFeatureDetector(feature.Default(feature.Past), feature.Default(feature.Past))
		assert.True(t, errors.Is(err, ErrConfiguration))
	})

	t.Run("partial configuration falls back to defaults", func(t *testing.T) {
		custom := feature.New(feature.Passive, feature.WithBridge(func(pre fragment.Fragment) (fragment.Fragment, error) {
			return pre, nil
		}))
		d, err := NewFeatureDetector(custom)
		require.NoError(t, err)

		got, ok := d.Helper(feature.Passive)
		require.True(t, ok)
		assert.Same(t, custom, got)

		for _, k := range feature.Kinds() {
			_, ok := d.Helper(k)
			assert.True(t, ok, k.String())
		}
	})
}

func verb(lemma string) model.Token {
	return model.Token{Text: lemma, Lemma: lemma, POS: model.POSVerb, Tag: "動詞-一般"}
}

func aux(norm string) model.Token {
	return model.Token{Text: norm, Norm: norm, POS: model.POSAux, Tag: "助動詞"}
}
