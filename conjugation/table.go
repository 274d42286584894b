package conjugation

// forms is a shorthand for the seven common roles, in table order.
func forms(irrealis, volitional, continuative, terminal, attributive, hypothetical, imperative string) map[Role]string {
	return map[Role]string{
		Irrealis:     irrealis,
		Volitional:   volitional,
		Continuative: continuative,
		Terminal:     terminal,
		Attributive:  attributive,
		Hypothetical: hypothetical,
		Imperative:   imperative,
	}
}

func verb(name, label string, f map[Role]string) *Class {
	return &Class{name: name, label: label, kind: KindVerb, forms: f}
}

// Five-row (五段) verbs. The stem excludes the final mora: 歩 + く.
var (
	GodanKa = verb("godan-ka", "五段活用・カ行", forms("か", "こ", "き", "く", "く", "け", "け"))
	GodanGa = verb("godan-ga", "五段活用・ガ行", forms("が", "ご", "ぎ", "ぐ", "ぐ", "げ", "げ"))
	GodanSa = verb("godan-sa", "五段活用・サ行", forms("さ", "そ", "し", "す", "す", "せ", "せ"))
	GodanTa = verb("godan-ta", "五段活用・タ行", forms("た", "と", "ち", "つ", "つ", "て", "て"))
	GodanNa = verb("godan-na", "五段活用・ナ行", forms("な", "の", "に", "ぬ", "ぬ", "ね", "ね"))
	GodanBa = verb("godan-ba", "五段活用・バ行", forms("ば", "ぼ", "び", "ぶ", "ぶ", "べ", "べ"))
	GodanMa = verb("godan-ma", "五段活用・マ行", forms("ま", "も", "み", "む", "む", "め", "め"))
	GodanRa = verb("godan-ra", "五段活用・ラ行", forms("ら", "ろ", "り", "る", "る", "れ", "れ"))
	// GodanWa is the ワ行ア行 row (買う): irrealis わ, everything else on あ-row vowels.
	GodanWa = verb("godan-wa", "五段活用・ワ行", forms("わ", "お", "い", "う", "う", "え", "え"))
	// GodanIku inflects like GodanKa except for its past form (行った).
	GodanIku = verb("godan-iku", "五段活用・カ行（行く）", forms("か", "こ", "き", "く", "く", "け", "け"))
)

// One-row (一段) verbs. The stem keeps the i/e vowel: 起き + る, 食べ + る.
var (
	KamiIchidan  = verb("kami-ichidan", "上一段活用", forms("", "", "", "る", "る", "れ", "ろ"))
	ShimoIchidan = verb("shimo-ichidan", "下一段活用", forms("", "", "", "る", "る", "れ", "ろ"))
)

// Irregular verbs.
var (
	// KuruKana is 来る written in kana; its stem is empty.
	KuruKana = verb("kahen-kuru", "カ行変格活用", forms("こ", "こ", "き", "くる", "くる", "くれ", "こい"))
	// KuruKanji is 来る written with the kanji stem 来, whose reading shifts
	// with the role while the written stem stays the same.
	KuruKanji = verb("kahen-kuru-kanji", "カ行変格活用（来）", forms("", "", "", "る", "る", "れ", "い"))

	Suru = &Class{
		name:      "sahen-suru",
		label:     "サ行変格活用・する",
		kind:      KindVerb,
		lightVerb: true,
		forms: map[Role]string{
			Irrealis:          "し",
			Volitional:        "し",
			Continuative:      "し",
			Terminal:          "する",
			Attributive:       "する",
			Hypothetical:      "すれ",
			Imperative:        "しろ",
			IrrealisPassive:   "さ",
			IrrealisCausative: "さ",
		},
	}

	Zuru = &Class{
		name:      "sahen-zuru",
		label:     "サ行変格活用・ずる",
		kind:      KindVerb,
		lightVerb: true,
		forms: map[Role]string{
			Irrealis:          "じ",
			Volitional:        "じ",
			Continuative:      "じ",
			Terminal:          "ずる",
			Attributive:       "ずる",
			Hypothetical:      "ずれ",
			Imperative:        "じろ",
			IrrealisPassive:   "ぜ",
			IrrealisCausative: "じ",
		},
	}
)

// Adjective classes.
var (
	Keiyoushi = &Class{
		name:  "keiyoushi",
		label: "形容詞",
		kind:  KindAdjective,
		forms: map[Role]string{
			Irrealis:     "かろ",
			Volitional:   "かろ",
			Continuative: "く",
			Terminal:     "い",
			Attributive:  "い",
			Hypothetical: "けれ",
		},
	}

	// Keiyoudoushi also carries nouns and proper nouns used as predicates.
	Keiyoudoushi = &Class{
		name:  "keiyoudoushi",
		label: "形容動詞",
		kind:  KindAdjectivalNoun,
		forms: map[Role]string{
			Irrealis:             "だろ",
			Volitional:           "だろ",
			Continuative:         "に",
			Terminal:             "だ",
			Attributive:          "な",
			Hypothetical:         "なら",
			ContinuativeNegation: "では",
		},
	}
)

// Past auxiliary (た/だ). The stem carries the sound-changed verb: 歩い + た.
var (
	AuxTa = &Class{
		name:  "aux-ta",
		label: "助動詞・た",
		kind:  KindAuxiliary,
		forms: map[Role]string{
			Irrealis:     "たろ",
			Volitional:   "たろ",
			Terminal:     "た",
			Attributive:  "た",
			Hypothetical: "たら",
		},
	}

	AuxDa = &Class{
		name:  "aux-da",
		label: "助動詞・た（濁音）",
		kind:  KindAuxiliary,
		forms: map[Role]string{
			Irrealis:     "だろ",
			Volitional:   "だろ",
			Terminal:     "だ",
			Attributive:  "だ",
			Hypothetical: "だら",
		},
	}
)

var all = []*Class{
	GodanKa, GodanGa, GodanSa, GodanTa, GodanNa, GodanBa, GodanMa, GodanRa, GodanWa, GodanIku,
	KamiIchidan, ShimoIchidan,
	KuruKana, KuruKanji, Suru, Zuru,
	Keiyoushi, Keiyoudoushi,
	AuxTa, AuxDa,
}

var byName = func() map[string]*Class {
	m := make(map[string]*Class, len(all))
	for _, c := range all {
		m[c.name] = c
	}
	return m
}()

// All returns every class in table order. The slice is a copy.
func All() []*Class {
	out := make([]*Class, len(all))
	copy(out, all)
	return out
}

// ByName looks up a class by Name.
func ByName(name string) (*Class, bool) {
	c, ok := byName[name]
	return c, ok
}

// godanByEnding maps the final mora of a five-row verb's dictionary form to
// its class. GodanIku is never selected here; it is a lexical exception.
var godanByEnding = map[string]*Class{
	"く": GodanKa,
	"ぐ": GodanGa,
	"す": GodanSa,
	"つ": GodanTa,
	"ぬ": GodanNa,
	"ぶ": GodanBa,
	"む": GodanMa,
	"る": GodanRa,
	"う": GodanWa,
}

// GodanByEnding returns the five-row class whose terminal suffix is ending.
func GodanByEnding(ending string) (*Class, bool) {
	c, ok := godanByEnding[ending]
	return c, ok
}
