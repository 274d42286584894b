package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japanesereflect/errors"
	"japanesereflect/model"
	"japanesereflect/reflection"
)

// verbParser parses every text as a single verb in dictionary form.
type verbParser struct{}

func (verbParser) Parse(ctx context.Context, text string) (model.Doc, error) {
	if text == "fail" {
		return model.Doc{}, errors.New("parser exploded")
	}
	doc := model.Doc{Text: text}
	if text == "" {
		return doc, nil
	}
	doc.Sentences = []model.Sentence{{
		Text: text,
		Tokens: []model.Token{{
			Text: text, Lemma: text, Norm: text, POS: model.POSVerb, Tag: "動詞-一般",
		}},
	}}
	return doc, nil
}

func newPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	a, err := reflection.NewDefault()
	require.NoError(t, err)
	return NewPipeline(verbParser{}, a, opts...)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ＡＢＣ１２３", "ABC123"},
		{"ｶﾀｶﾅ", "カタカナ"},
		{"  歩く\n", "歩く"},
		{"本当？", "本当?"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestNew(t *testing.T) {
	in := New(" 読む ")
	assert.Equal(t, "読む", in.Text)
	assert.Equal(t, " 読む ", in.Raw)
	_, err := uuid.Parse(in.ID)
	assert.NoError(t, err)
	assert.False(t, in.CreatedAt.IsZero())

	same := New("読む")
	assert.Empty(t, same.Raw)
	assert.NotEqual(t, in.ID, same.ID)
}

func TestReflect(t *testing.T) {
	p := newPipeline(t)

	res, err := p.Reflect(context.Background(), "読む")
	require.NoError(t, err)
	assert.NoError(t, res.Err)
	assert.Equal(t, "読むんですね。", res.Reflection)
	assert.Equal(t, res.Input.ID, res.Doc.ID)

	res, err = p.Reflect(context.Background(), "   ")
	require.NoError(t, err)
	assert.True(t, errors.Is(res.Err, reflection.ErrEmptyInput))
	assert.Equal(t, reflection.DefaultInvalidMessage, res.Reflection)

	res, err = p.Reflect(context.Background(), "fail")
	require.NoError(t, err)
	assert.Error(t, res.Err)
	assert.Equal(t, reflection.DefaultInvalidMessage, res.Reflection)
}

func TestRunKeepsOrder(t *testing.T) {
	p := newPipeline(t, WithWorkers(3))

	verbs := []string{"歩く", "稼ぐ", "話す", "待つ", "死ぬ", "遊ぶ", "読む", "帰る", "買う"}
	results, err := p.Run(context.Background(), verbs)
	require.NoError(t, err)
	require.Len(t, results, len(verbs))
	for i, v := range verbs {
		assert.Equal(t, v, results[i].Input.Text)
		assert.Equal(t, v+"んですね。", results[i].Reflection)
	}
}

func TestRunCanceled(t *testing.T) {
	p := newPipeline(t, WithWorkers(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, []string{"歩く", "読む"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = p.Reflect(ctx, "歩く")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkersDefault(t *testing.T) {
	p := newPipeline(t, WithWorkers(0))
	assert.GreaterOrEqual(t, p.workers, 1)
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	p := newPipeline(t, WithDumpDir(dir))

	res, err := p.Reflect(context.Background(), "遊ぶ")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("%s.json", res.Input.ID)))
	require.NoError(t, err)

	var tr Trace
	require.NoError(t, json.Unmarshal(b, &tr))
	assert.Equal(t, "遊ぶんですね。", tr.Reflection)
	assert.Equal(t, 1, tr.Analysis.SentenceCount)
	assert.Empty(t, tr.Error)
}
