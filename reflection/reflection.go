// Package reflection assembles the reflective-listening reply for a parsed
// document: the words leading up to the last usable predicate, the predicate
// conjugated with its features, and a sympathetic ending.
package reflection

import (
	"fmt"
	"regexp"
	"strings"

	"japanesereflect/builder"
	"japanesereflect/errors"
	"japanesereflect/fragment"
	"japanesereflect/logger"
	"japanesereflect/model"
)

// Defaults for Options.
const (
	DefaultWordEnding     = "んですね。"
	DefaultUnparsedEnding = "、ですか。"
	DefaultInvalidMessage = "続けてください。"
)

// DefaultAllowedRootTags are the fine tag prefixes a sentence root must have.
var DefaultAllowedRootTags = []string{"動詞", "名詞", "接尾辞-名詞的", "形容詞", "形状詞"}

var (
	// ErrEmptyInput is returned for a document without visible text.
	ErrEmptyInput = errors.New("empty input")
	// ErrNoValidSentence is returned when no sentence root has an allowed tag.
	ErrNoValidSentence = errors.New("no valid sentence")
)

// ReflectionError is returned when a root was found but could not be
// conjugated. Instant is the fallback reply built from the bare root.
type ReflectionError struct {
	Err     error
	Instant string
}

func (e *ReflectionError) Error() string {
	return fmt.Sprintf("reflection failed (instant %q): %v", e.Instant, e.Err)
}

func (e *ReflectionError) Unwrap() error {
	return e.Err
}

// Options configures an Assembler.
type Options struct {
	AllowedRootTags []string
	WordEnding      string
	UnparsedEnding  string
	InvalidMessage  string
}

// DefaultOptions returns the standard endings and root tags.
func DefaultOptions() Options {
	return Options{
		AllowedRootTags: append([]string(nil), DefaultAllowedRootTags...),
		WordEnding:      DefaultWordEnding,
		UnparsedEnding:  DefaultUnparsedEnding,
		InvalidMessage:  DefaultInvalidMessage,
	}
}

// Assembler builds reflection texts. It is safe for concurrent use.
type Assembler struct {
	builder *builder.Builder
	opts    Options
	allowed *regexp.Regexp
}

// New returns an Assembler. Empty option fields take their defaults.
func New(b *builder.Builder, opts Options) (*Assembler, error) {
	def := DefaultOptions()
	if len(opts.AllowedRootTags) == 0 {
		opts.AllowedRootTags = def.AllowedRootTags
	}
	if opts.WordEnding == "" {
		opts.WordEnding = def.WordEnding
	}
	if opts.UnparsedEnding == "" {
		opts.UnparsedEnding = def.UnparsedEnding
	}
	if opts.InvalidMessage == "" {
		opts.InvalidMessage = def.InvalidMessage
	}

	allowed, err := allowedTagPattern(opts.AllowedRootTags)
	if err != nil {
		return nil, err
	}
	return &Assembler{builder: b, opts: opts, allowed: allowed}, nil
}

// NewDefault returns an Assembler with the default builder and options.
func NewDefault() (*Assembler, error) {
	b, err := builder.NewDefault()
	if err != nil {
		return nil, err
	}
	return New(b, DefaultOptions())
}

// allowedTagPattern matches a tag starting with any of tags.
func allowedTagPattern(tags []string) (*regexp.Regexp, error) {
	quoted := make([]string, 0, len(tags))
	for _, t := range tags {
		quoted = append(quoted, regexp.QuoteMeta(t))
	}
	re, err := regexp.Compile("^(?:" + strings.Join(quoted, "|") + ")")
	if err != nil {
		return nil, errors.Wrap(err, "compile allowed root tags")
	}
	return re, nil
}

// Options returns the effective options.
func (a *Assembler) Options() Options {
	return a.opts
}

// Build returns the reflection text for doc.
//
// A blank document is ErrEmptyInput and a document without an allowed root is
// ErrNoValidSentence. When the root cannot be conjugated the error is a
// *ReflectionError carrying the instant reply.
func (a *Assembler) Build(doc model.Doc) (text string, err error) {
	if doc.Empty() {
		return "", errors.WithStack(ErrEmptyInput)
	}

	sent, root, ok := a.Root(doc)
	if !ok {
		return "", errors.Wrapf(ErrNoValidSentence, "allowed root pattern %s", a.allowed)
	}

	var b strings.Builder
	for _, tok := range Leading(sent, root) {
		b.WriteString(tok.Text)
	}

	var f fragment.Fragment
	err = errors.PCall(func() error {
		var err error
		f, _, err = a.builder.Build(sent, root)
		return err
	})
	if err != nil {
		return "", &ReflectionError{Err: err, Instant: root.Text + a.opts.UnparsedEnding}
	}

	b.WriteString(fragment.Render(f))
	b.WriteString(a.opts.WordEnding)
	return b.String(), nil
}

// Root returns the root of the last sentence whose root tag is allowed.
func (a *Assembler) Root(doc model.Doc) (model.Sentence, model.Token, bool) {
	for i := len(doc.Sentences) - 1; i >= 0; i-- {
		sent := doc.Sentences[i]
		root, ok := sent.RootToken()
		if ok && a.allowed.MatchString(root.Tag) {
			return sent, root, true
		}
	}
	return model.Sentence{}, model.Token{}, false
}

// Leading returns the tokens from the leftmost end of root's nearest-left
// dependency chain up to, not including, root. For 私は彼女を愛している the
// chain is 愛 ← 彼女 ← 私 and the span is 私は彼女を.
func Leading(sent model.Sentence, root model.Token) []model.Token {
	head := root
	for {
		children := sent.LeftChildren(head)
		if len(children) == 0 {
			break
		}
		head = children[len(children)-1]
	}
	return sent.Span(head.Index, root.Index)
}

// InsteadOfError returns the reply to use when Build failed: the instant
// reply of a *ReflectionError, or the invalid-document message.
func (a *Assembler) InsteadOfError(err error) string {
	var rerr *ReflectionError
	if errors.As(err, &rerr) && rerr.Instant != "" {
		return rerr.Instant
	}
	return a.opts.InvalidMessage
}

// Reflect returns the reflection text for doc, or the fallback reply. It
// never fails.
func (a *Assembler) Reflect(doc model.Doc) string {
	text, err := a.Build(doc)
	if err != nil {
		logger.Named("reflection").Debugw("reflection fell back", "doc", doc.ID, "error", err)
		return a.InsteadOfError(err)
	}
	return text
}
