// Package analyze builds the parsed view of a text: sentence segmentation
// and a dependency tree over bunsetsu (文節), the content word plus the
// particles and auxiliaries attached to it.
package analyze

import (
	"context"
	"strings"

	"japanesereflect/model"
	"japanesereflect/tokenize"
)

// Analyzer parses text into a model.Doc. It is safe for concurrent use.
type Analyzer struct {
	tok *tokenize.Tokenizer
}

// New returns an Analyzer on tok.
func New(tok *tokenize.Tokenizer) *Analyzer {
	return &Analyzer{tok: tok}
}

// Parse tokenizes text and segments it into sentences with dependency heads.
func (a *Analyzer) Parse(ctx context.Context, text string) (model.Doc, error) {
	toks, err := a.tok.Tokenize(ctx, text)
	if err != nil {
		return model.Doc{}, err
	}
	return model.Doc{Text: text, Sentences: Segment(toks)}, nil
}

var terminators = map[string]bool{"。": true, "！": true, "？": true, "!": true, "?": true, "．": true}

// Segment splits tokens into sentences at 。！？ and line breaks and assigns
// heads within each sentence. Whitespace tokens are dropped.
func Segment(tokens []model.Token) []model.Sentence {
	var (
		sents []model.Sentence
		cur   []model.Token
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		sents = append(sents, newSentence(len(sents), cur))
		cur = nil
	}

	for i := 0; i < len(tokens); i++ {
		tk := tokens[i]
		if strings.TrimSpace(tk.Text) == "" {
			if strings.Contains(tk.Text, "\n") {
				flush()
			}
			continue
		}
		cur = append(cur, tk)
		if !terminators[tk.Text] {
			continue
		}
		// closing brackets and repeated marks stay with the sentence: 「行く。」 / 本当？！
		for i+1 < len(tokens) && (terminators[tokens[i+1].Text] || strings.HasPrefix(tokens[i+1].Tag, "補助記号-括弧閉") || strings.HasPrefix(tokens[i+1].Tag, "記号-括弧閉")) {
			i++
			cur = append(cur, tokens[i])
		}
		flush()
	}
	flush()
	return sents
}

func newSentence(id int, tokens []model.Token) model.Sentence {
	s := model.Sentence{ID: id, Tokens: make([]model.Token, len(tokens))}
	var text strings.Builder
	for i, tk := range tokens {
		tk.Index = i
		tk.Head = i
		s.Tokens[i] = tk
		text.WriteString(tk.Text)
	}
	s.Text = text.String()
	s.Root = AssignHeads(s.Tokens)
	return s
}

// Bunsetsu is a phrase: tokens [Start, End) headed by the content token Head.
type Bunsetsu struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Head  int `json:"head"`
	// Connective is the conjunctive particle closing the phrase (が, ので, から ...).
	Connective string `json:"connective,omitempty"`
}

var connectives = map[string]bool{
	"が": true, "ので": true, "から": true, "けど": true, "けれど": true, "と": true, "ば": true, "のに": true,
}

func isFunction(tk model.Token) bool {
	switch tk.POS {
	case model.POSAux, model.POSAdp, model.POSPart, model.POSSConj, model.POSPunct:
		return true
	}
	return false
}

// Chunk groups tokens into bunsetsu: a content token after a function token
// opens a new phrase.
func Chunk(tokens []model.Token) []Bunsetsu {
	var out []Bunsetsu
	start := 0
	for i := 1; i <= len(tokens); i++ {
		if i < len(tokens) && !(isFunction(tokens[i-1]) && !isFunction(tokens[i])) {
			continue
		}
		out = append(out, newBunsetsu(tokens, start, i))
		start = i
	}
	return out
}

func newBunsetsu(tokens []model.Token, start, end int) Bunsetsu {
	b := Bunsetsu{Start: start, End: end, Head: start}
	for i := start; i < end; i++ {
		if !isFunction(tokens[i]) {
			b.Head = i
		}
	}
	last := tokens[end-1]
	if last.POS == model.POSSConj || (last.POS == model.POSAdp && connectives[last.Text]) {
		b.Connective = last.Text
	}
	return b
}

// AssignHeads links every token to its phrase head and every phrase head to
// the next phrase's head. It returns the root index, or -1 for no tokens.
func AssignHeads(tokens []model.Token) int {
	chunks := Chunk(tokens)
	if len(chunks) == 0 {
		return -1
	}
	root := chunks[len(chunks)-1].Head
	for ci, b := range chunks {
		for i := b.Start; i < b.End; i++ {
			tokens[i].Head = b.Head
		}
		if ci+1 < len(chunks) {
			tokens[b.Head].Head = chunks[ci+1].Head
		} else {
			tokens[b.Head].Head = b.Head
		}
	}
	return root
}

// Analysis summarizes a parsed document.
type Analysis struct {
	DocID         string       `json:"doc_id"`
	SentenceCount int          `json:"sentence_count"`
	TokenCount    int          `json:"token_count"`
	Phrases       [][]Bunsetsu `json:"phrases"`
}

// Analyze summarizes doc.
func Analyze(doc model.Doc) Analysis {
	a := Analysis{DocID: doc.ID, SentenceCount: len(doc.Sentences)}
	for _, s := range doc.Sentences {
		a.TokenCount += len(s.Tokens)
		a.Phrases = append(a.Phrases, Chunk(s.Tokens))
	}
	return a
}
