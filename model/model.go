// Package model is the parsed view the engine reads: tokens with coarse and
// fine part-of-speech tags, sentences with dependency heads, documents.
package model

import "strings"

// Coarse part-of-speech tags (Universal Dependencies style).
const (
	POSVerb  = "VERB"
	POSAux   = "AUX"
	POSAdj   = "ADJ"
	POSNoun  = "NOUN"
	POSPropN = "PROPN"
	POSPron  = "PRON"
	POSNum   = "NUM"
	POSAdp   = "ADP"
	POSPart  = "PART"
	POSSConj = "SCONJ"
	POSCConj = "CCONJ"
	POSAdv   = "ADV"
	POSDet   = "DET"
	POSIntj  = "INTJ"
	POSPunct = "PUNCT"
	POSSym   = "SYM"
	POSX     = "X"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token struct {
	// Index is the position of the token in its sentence.
	Index int    `json:"index"`
	Text  string `json:"text"`
	// Norm is the normalized surface form used for marker lookups.
	Norm  string `json:"norm"`
	Lemma string `json:"lemma,omitempty"`
	// POS is the coarse tag, Tag the fine Japanese tag joined with "-"
	// (e.g. 名詞-普通名詞-サ変可能).
	POS            string `json:"pos"`
	Tag            string `json:"tag,omitempty"`
	Head           int    `json:"head"`
	Start          int    `json:"start"`
	End            int    `json:"end"`
	Reading        string `json:"reading,omitempty"`
	Pronunciation  string `json:"pronunciation,omitempty"`
	InflectionType string `json:"inflection_type,omitempty"`
	InflectionForm string `json:"inflection_form,omitempty"`
}

// IsRoot reports whether the token heads itself.
func (t Token) IsRoot() bool {
	return t.Head == t.Index
}

// HasTagPrefix reports whether the fine tag starts with prefix.
func (t Token) HasTagPrefix(prefix string) bool {
	return strings.HasPrefix(t.Tag, prefix)
}

func (t Token) String() string {
	return t.Text
}

// Sentence is one sentence of a document. Token heads index into Tokens.
type Sentence struct {
	ID     int     `json:"id"`
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
	Root   int     `json:"root"`
}

// RootToken returns the sentence root, or false for an empty sentence.
func (s Sentence) RootToken() (Token, bool) {
	if s.Root < 0 || s.Root >= len(s.Tokens) {
		return Token{}, false
	}
	return s.Tokens[s.Root], true
}

// Span returns the tokens in [start, end), clamped to the sentence.
func (s Sentence) Span(start, end int) []Token {
	if start < 0 {
		start = 0
	}
	if end > len(s.Tokens) {
		end = len(s.Tokens)
	}
	if start >= end {
		return nil
	}
	return s.Tokens[start:end]
}

// After returns the tokens following tok to the end of the sentence.
func (s Sentence) After(tok Token) []Token {
	return s.Span(tok.Index+1, len(s.Tokens))
}

// LeftChildren returns the dependents of tok that precede it, nearest last.
func (s Sentence) LeftChildren(tok Token) []Token {
	var out []Token
	for _, t := range s.Tokens[:min(tok.Index, len(s.Tokens))] {
		if t.Head == tok.Index && t.Index != tok.Index {
			out = append(out, t)
		}
	}
	return out
}

// Last returns the final token, or false for an empty sentence.
func (s Sentence) Last() (Token, bool) {
	if len(s.Tokens) == 0 {
		return Token{}, false
	}
	return s.Tokens[len(s.Tokens)-1], true
}

// Doc is a parsed input text.
type Doc struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Sentences []Sentence `json:"sentences"`
}

// Tokens returns every token of the document in order.
func (d Doc) Tokens() []Token {
	var out []Token
	for _, s := range d.Sentences {
		out = append(out, s.Tokens...)
	}
	return out
}

// Empty reports whether the document carries no visible text.
func (d Doc) Empty() bool {
	return strings.TrimSpace(d.Text) == ""
}
