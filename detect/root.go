// Package detect maps parsed tokens to the engine's inputs: a content word to
// its initial fragment, and the appendage tokens after it to feature helpers.
package detect

import (
	"strings"

	"japanesereflect/conjugation"
	"japanesereflect/errors"
	"japanesereflect/fragment"
	"japanesereflect/kana"
	"japanesereflect/model"
)

// ErrUnrecognizedRoot is returned for tokens whose part of speech cannot head
// a reflection.
var ErrUnrecognizedRoot = errors.New("unrecognized root")

// Lexical exceptions checked before any ending rule.
var (
	kuruLemmas = map[string]*conjugation.Class{
		"くる": conjugation.KuruKana,
		"来る": conjugation.KuruKanji,
		"來る": conjugation.KuruKanji,
	}
	suruLemmas = map[string]bool{"する": true, "為る": true}

	// ikuStems lists 行く and its variants with their stems. ゆく keeps い
	// so that its past renders as いった.
	ikuStems = map[string]string{
		"行く": "行",
		"往く": "往",
		"逝く": "逝",
		"いく": "い",
		"ゆく": "い",
	}

	// Single-kanji stems of one-row verbs. A る after a kanji is otherwise
	// read as five-row (帰る, 走る).
	kamiIchidanKanji  = map[string]bool{"見": true, "着": true, "居": true, "煮": true, "似": true, "射": true, "干": true}
	shimoIchidanKanji = map[string]bool{"寝": true, "出": true, "得": true, "経": true}

	// godanRuKana are kana-written five-row verbs whose mora before る would
	// otherwise read as one-row (はいる, かえる). The parser's inflection type
	// overrides this list when present.
	godanRuKana = map[string]bool{
		"はいる": true, "かえる": true, "はしる": true, "しる": true,
		"いじる": true, "にぎる": true, "まじる": true, "ねじる": true, "かじる": true,
		"しゃべる": true, "すべる": true, "へる": true, "ける": true, "ちる": true,
		"まいる": true, "よみがえる": true,
	}
)

// RootDetector recognizes the conjugation class of a content word. It holds
// no state and is safe for concurrent use.
type RootDetector struct{}

// NewRootDetector returns a RootDetector.
func NewRootDetector() *RootDetector {
	return &RootDetector{}
}

// Detect returns the initial fragment for tok. Verbs, adjectives and nouns
// yield an Inflectable; any other part of speech is ErrUnrecognizedRoot.
func (d *RootDetector) Detect(tok model.Token) (fragment.Fragment, error) {
	lemma := tok.Lemma
	if lemma == "" || lemma == "*" {
		lemma = tok.Text
	}

	switch tok.POS {
	case model.POSVerb:
		return detectVerb(lemma, tok.InflectionType), nil
	case model.POSAdj:
		if tok.HasTagPrefix("形容詞") {
			if stem, ok := strings.CutSuffix(lemma, "い"); ok {
				return fragment.NewInflectable(stem, conjugation.Keiyoushi), nil
			}
		}
		return fragment.NewInflectable(lemma, conjugation.Keiyoudoushi), nil
	case model.POSNoun, model.POSPropN:
		return fragment.NewInflectable(tok.Text, conjugation.Keiyoudoushi), nil
	}
	return nil, errors.Wrapf(ErrUnrecognizedRoot, "%s %q", tok.POS, tok.Text)
}

func detectVerb(lemma, inflectionType string) fragment.Inflectable {
	if c, ok := kuruLemmas[lemma]; ok {
		stem, _ := kana.SplitLast(lemma)
		if c == conjugation.KuruKana {
			stem = ""
		}
		return fragment.NewInflectable(stem, c)
	}
	if suruLemmas[lemma] {
		return fragment.NewInflectable("", conjugation.Suru)
	}
	if stem, ok := ikuStems[lemma]; ok {
		return fragment.NewInflectable(stem, conjugation.GodanIku)
	}

	if stem, ok := strings.CutSuffix(lemma, "する"); ok {
		return fragment.NewInflectable(stem, conjugation.Suru)
	}
	// A bare ずる is the five-row verb (to slide), not the light verb.
	if stem, ok := strings.CutSuffix(lemma, "ずる"); ok && stem != "" {
		return fragment.NewInflectable(stem, conjugation.Zuru)
	}

	if f, ok := fromInflectionType(lemma, inflectionType); ok {
		return f
	}

	head, last := kana.SplitLast(lemma)
	if godanRuKana[lemma] {
		return fragment.NewInflectable(head, conjugation.GodanRa)
	}
	if last == "る" {
		return fragment.NewInflectable(ruVerbStem(head))
	}
	if c, ok := conjugation.GodanByEnding(last); ok {
		return fragment.NewInflectable(head, c)
	}
	// No verb ending: a noun used as a sa-row verb (ウォーキング).
	return fragment.NewInflectable(lemma, conjugation.Suru)
}

// fromInflectionType uses the parser's conjugation type when it names a
// class (上一段-カ行, 下一段, 五段-ラ行, 一段 ...).
func fromInflectionType(lemma, inflectionType string) (fragment.Inflectable, bool) {
	head, last := kana.SplitLast(lemma)
	switch {
	case inflectionType == "":
		return fragment.Inflectable{}, false
	case strings.Contains(inflectionType, "上一段"):
		if last == "る" {
			return fragment.NewInflectable(head, conjugation.KamiIchidan), true
		}
	case strings.Contains(inflectionType, "下一段"):
		if last == "る" {
			return fragment.NewInflectable(head, conjugation.ShimoIchidan), true
		}
	case strings.Contains(inflectionType, "一段"):
		if last == "る" {
			stem, c := ruVerbStem(head)
			if c == conjugation.GodanRa {
				c = conjugation.ShimoIchidan
			}
			return fragment.NewInflectable(stem, c), true
		}
	case strings.Contains(inflectionType, "五段"):
		if c, ok := conjugation.GodanByEnding(last); ok {
			return fragment.NewInflectable(head, c), true
		}
	}
	return fragment.Inflectable{}, false
}

// ruVerbStem classifies a る-final verb by the mora before る: an い-column
// kana is upper one-row, an え-column kana lower one-row. Kanji stems are
// looked up in the one-row lexicon and default to five-row.
func ruVerbStem(head string) (string, *conjugation.Class) {
	r, ok := kana.LastRune(head)
	if !ok {
		return head, conjugation.GodanRa
	}
	switch kana.ColumnOf(r) {
	case kana.ColumnI:
		return head, conjugation.KamiIchidan
	case kana.ColumnE:
		return head, conjugation.ShimoIchidan
	}
	if kamiIchidanKanji[head] {
		return head, conjugation.KamiIchidan
	}
	if shimoIchidanKanji[head] {
		return head, conjugation.ShimoIchidan
	}
	return head, conjugation.GodanRa
}
