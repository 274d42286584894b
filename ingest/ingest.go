// Package ingest takes raw user text through normalization, parsing and
// reflection, one input at a time or as a concurrent batch.
package ingest

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"japanesereflect/analyze"
	"japanesereflect/logger"
	"japanesereflect/model"
	"japanesereflect/reflection"
)

// Input is one ingested utterance.
type Input struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Raw       string    `json:"raw,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Normalize folds full-width ASCII to half-width and half-width katakana to
// full-width, applies NFKC and trims surrounding space.
func Normalize(text string) string {
	return strings.TrimSpace(norm.NFKC.String(width.Fold.String(text)))
}

// New normalizes text and assigns it an ID. Blank text is kept; the
// assembler answers it with its invalid-document message.
func New(text string) Input {
	in := Input{
		ID:        uuid.NewString(),
		Text:      Normalize(text),
		CreatedAt: time.Now().UTC(),
	}
	if in.Text != text {
		in.Raw = text
	}
	return in
}

// Parser turns text into a parsed document.
type Parser interface {
	Parse(ctx context.Context, text string) (model.Doc, error)
}

// Result is the outcome for one input. Err records why the reflection fell
// back; Reflection is always set.
type Result struct {
	Input      Input     `json:"input"`
	Doc        model.Doc `json:"doc"`
	Reflection string    `json:"reflection"`
	Err        error     `json:"-"`
}

// Trace is the JSON dump written per input when a dump directory is set.
type Trace struct {
	Input      Input            `json:"input"`
	Doc        model.Doc        `json:"doc"`
	Analysis   analyze.Analysis `json:"analysis"`
	Reflection string           `json:"reflection"`
	Error      string           `json:"error,omitempty"`
}

// Pipeline reflects inputs with bounded concurrency. Results keep input order.
type Pipeline struct {
	parser    Parser
	assembler *reflection.Assembler
	workers   int
	dumpDir   string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers bounds the number of inputs processed at once. Values below one
// use the number of CPUs.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		p.workers = n
	}
}

// WithDumpDir writes a Trace per input to dir.
func WithDumpDir(dir string) Option {
	return func(p *Pipeline) {
		p.dumpDir = dir
	}
}

// NewPipeline returns a pipeline parsing with parser and reflecting with a.
func NewPipeline(parser Parser, a *reflection.Assembler, opts ...Option) *Pipeline {
	p := &Pipeline{parser: parser, assembler: a}
	for _, opt := range opts {
		opt(p)
	}
	if p.workers < 1 {
		p.workers = runtime.NumCPU()
	}
	return p
}

// Reflect processes a single text.
func (p *Pipeline) Reflect(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return p.process(ctx, New(text)), nil
}

// Run processes texts concurrently. It fails only when ctx is done; per-input
// failures are reported in each Result.
func (p *Pipeline) Run(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.process(gctx, New(text))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (p *Pipeline) process(ctx context.Context, in Input) Result {
	log := logger.Named("ingest")
	res := Result{Input: in}

	doc, err := p.parser.Parse(ctx, in.Text)
	if err != nil {
		log.Warnw("parse failed", "id", in.ID, "error", err)
		res.Err = err
		res.Reflection = p.assembler.InsteadOfError(err)
		p.dump(res)
		return res
	}
	doc.ID = in.ID
	res.Doc = doc

	text, err := p.assembler.Build(doc)
	if err != nil {
		log.Debugw("reflection fell back", "id", in.ID, "error", err)
		res.Err = err
		text = p.assembler.InsteadOfError(err)
	}
	res.Reflection = text
	p.dump(res)
	return res
}

func (p *Pipeline) dump(res Result) {
	if p.dumpDir == "" {
		return
	}
	tr := Trace{
		Input:      res.Input,
		Doc:        res.Doc,
		Analysis:   analyze.Analyze(res.Doc),
		Reflection: res.Reflection,
	}
	if res.Err != nil {
		tr.Error = res.Err.Error()
	}
	if err := logger.LogJSON(p.dumpDir, res.Input.ID, tr); err != nil {
		logger.Logger.Warnw("failed to write trace", "id", res.Input.ID, "error", err)
	}
}
