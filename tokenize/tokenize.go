// Package tokenize wraps the kagome morphological analyzer and maps its
// output onto model.Token: coarse part of speech, fine tag, lemma and the
// conjugation type the root detector can use as a hint.
package tokenize

import (
	"context"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"japanesereflect/errors"
	"japanesereflect/model"
)

// Dictionary names accepted by New.
const (
	DictUni = "uni"
	DictIPA = "ipa"
)

// Mode names accepted by New.
const (
	ModeNormal   = "normal"
	ModeSearch   = "search"
	ModeExtended = "extended"
)

// Tokenizer turns text into model tokens. It is safe for concurrent use.
type Tokenizer struct {
	kg       *tokenizer.Tokenizer
	dictName string
	mode     tokenizer.TokenizeMode
}

// New builds a tokenizer on the named system dictionary.
func New(dictName, mode string) (*Tokenizer, error) {
	var d *dict.Dict
	switch dictName {
	case DictUni, "":
		dictName = DictUni
		d = uni.Dict()
	case DictIPA:
		d = ipa.Dict()
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown dictionary %q", dictName),
			"use \"uni\" or \"ipa\"",
		)
	}

	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}

	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, errors.Wrapf(err, "create %s tokenizer", dictName)
	}
	return &Tokenizer{kg: kg, dictName: dictName, mode: m}, nil
}

func parseMode(mode string) (tokenizer.TokenizeMode, error) {
	switch mode {
	case ModeNormal, "":
		return tokenizer.Normal, nil
	case ModeSearch:
		return tokenizer.Search, nil
	case ModeExtended:
		return tokenizer.Extended, nil
	}
	return tokenizer.Normal, errors.Newf("unknown tokenize mode %q", mode)
}

// Dict returns the dictionary name.
func (t *Tokenizer) Dict() string {
	return t.dictName
}

// Tokenize analyzes text. Token indexes are positions in text; sentence
// segmentation renumbers them.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]model.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return FuseSahen(convert(t.kg.Analyze(text, t.mode))), nil
}

func convert(ktoks []tokenizer.Token) []model.Token {
	out := make([]model.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		parts := kt.POS()
		lemma, ok := kt.BaseForm()
		if !ok || lemma == "" || lemma == "*" {
			lemma = kt.Surface
		}
		reading, _ := kt.Reading()
		pron, _ := kt.Pronunciation()
		infType, _ := kt.InflectionalType()
		infForm, _ := kt.InflectionalForm()

		tok := model.Token{
			Index:          len(out),
			Text:           kt.Surface,
			Norm:           lemma,
			Lemma:          lemma,
			Tag:            fineTag(parts),
			Start:          kt.Start,
			End:            kt.End,
			Reading:        clean(reading),
			Pronunciation:  clean(pron),
			InflectionType: clean(infType),
			InflectionForm: clean(infForm),
		}
		var prev *model.Token
		if len(out) > 0 {
			prev = &out[len(out)-1]
		}
		tok.POS = coarsePOS(parts, prev)
		tok.Head = tok.Index
		out = append(out, tok)
	}
	return out
}

// clean drops kagome's "*" placeholder.
func clean(s string) string {
	if s == "*" {
		return ""
	}
	return s
}

// fineTag joins the POS hierarchy with "-", skipping placeholders:
// 名詞,普通名詞,サ変可能,* becomes 名詞-普通名詞-サ変可能.
func fineTag(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "*" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "-")
}

func part(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

// coarsePOS maps the IPA or UniDic hierarchy to a UD-style tag. prev is the
// preceding token, used to tell an auxiliary verb (食べている) from a main
// verb (猫がいる).
func coarsePOS(parts []string, prev *model.Token) string {
	top, sub := part(parts, 0), part(parts, 1)
	switch top {
	case "動詞":
		if (sub == "非自立" || sub == "非自立可能" || sub == "接尾") && followsPredicate(prev) {
			return model.POSAux
		}
		return model.POSVerb
	case "形容詞":
		return model.POSAdj
	case "形状詞":
		return model.POSAdj
	case "名詞":
		switch {
		case sub == "固有名詞":
			return model.POSPropN
		case sub == "代名詞":
			return model.POSPron
		case sub == "数" || sub == "数詞":
			return model.POSNum
		case sub == "形容動詞語幹":
			return model.POSAdj
		}
		return model.POSNoun
	case "代名詞":
		return model.POSPron
	case "接尾辞":
		switch sub {
		case "形容詞的", "形状詞的":
			return model.POSAdj
		case "動詞的":
			return model.POSAux
		}
		return model.POSNoun
	case "接頭辞", "接頭詞":
		return model.POSNoun
	case "助動詞":
		return model.POSAux
	case "助詞":
		switch sub {
		case "格助詞", "係助詞", "副助詞", "連体化":
			return model.POSAdp
		case "接続助詞", "準体助詞":
			return model.POSSConj
		case "並立助詞":
			return model.POSCConj
		}
		return model.POSPart
	case "副詞":
		return model.POSAdv
	case "連体詞":
		return model.POSDet
	case "接続詞":
		return model.POSCConj
	case "感動詞", "フィラー":
		return model.POSIntj
	case "記号", "補助記号":
		switch sub {
		case "句点", "読点", "括弧開", "括弧閉":
			return model.POSPunct
		}
		return model.POSSym
	case "空白":
		return model.POSSym
	}
	return model.POSX
}

func followsPredicate(prev *model.Token) bool {
	if prev == nil {
		return false
	}
	switch prev.POS {
	case model.POSVerb, model.POSAux, model.POSAdj:
		return true
	case model.POSSConj:
		return prev.Text == "て" || prev.Text == "で"
	}
	return false
}

// sahenLemmas are the lemmas of the light verb する across dictionaries.
var sahenLemmas = map[string]bool{"する": true, "為る": true}

// FuseSahen merges a sa-row noun and the する that follows it into one verb
// token: 勉強 + し becomes 勉強し with lemma 勉強する. Indexes and heads are
// renumbered.
func FuseSahen(tokens []model.Token) []model.Token {
	var out []model.Token
	for i := 0; i < len(tokens); i++ {
		tk := tokens[i]
		if i+1 < len(tokens) && isSahenNoun(tk) && sahenLemmas[tokens[i+1].Lemma] {
			suru := tokens[i+1]
			merged := suru
			merged.Text = tk.Text + suru.Text
			merged.Lemma = tk.Text + "する"
			merged.Norm = merged.Lemma
			merged.POS = model.POSVerb
			merged.Start = tk.Start
			merged.Reading = tk.Reading + suru.Reading
			merged.Pronunciation = tk.Pronunciation + suru.Pronunciation
			out = append(out, merged)
			i++
			continue
		}
		out = append(out, tk)
	}
	for i := range out {
		out[i].Index = i
		out[i].Head = i
	}
	return out
}

func isSahenNoun(tk model.Token) bool {
	return tk.POS == model.POSNoun && strings.Contains(tk.Tag, "サ変")
}
