package detect

import (
	"strings"

	"japanesereflect/errors"
	"japanesereflect/feature"
	"japanesereflect/logger"
	"japanesereflect/model"
)

// ErrConfiguration is returned when a FeatureDetector is built from helpers
// it cannot use.
var ErrConfiguration = errors.New("invalid feature detector configuration")

type marker struct {
	norm string
	pos  string
}

// markers maps an appendage token to the feature it marks. ぬ and ん are
// allomorphs of ず; some dictionaries normalize them, some do not.
var markers = map[marker]feature.Kind{
	{"れる", model.POSAux}:  feature.Passive,
	{"られる", model.POSAux}: feature.Passive,
	{"せる", model.POSAux}:  feature.Causative,
	{"させる", model.POSAux}: feature.Causative,
	{"ない", model.POSAux}:  feature.Negation,
	{"ず", model.POSAux}:   feature.Negation,
	{"ぬ", model.POSAux}:   feature.Negation,
	{"ん", model.POSAux}:   feature.Negation,
	{"無い", model.POSAdj}:  feature.Negation,
	{"ない", model.POSAdj}:  feature.Negation,
	{"たい", model.POSAux}:  feature.DesireSelf,
	{"たがる", model.POSAux}: feature.DesireOther,
	{"た", model.POSAux}:   feature.Past,
}

// isPastInflection reports whether an auxiliary conjugates as the perfective
// た (助動詞-タ in unidic, 特殊・タ in ipadic). The voiced だ of 読んだ keeps
// the norm だ, so only its inflection type tells it from the copula (助動詞-ダ).
func isPastInflection(tok model.Token) bool {
	return tok.POS == model.POSAux &&
		(strings.HasSuffix(tok.InflectionType, "-タ") || strings.HasSuffix(tok.InflectionType, "・タ"))
}

// neutral auxiliaries carry politeness, copula or modality the reflection
// does not reproduce. Skipping them is not an error.
var neutral = map[string]bool{
	"ます": true, "です": true, "だ": true, "う": true, "よう": true,
	"らしい": true, "そう": true, "みたい": true, "て": true, "で": true,
	"いる": true, "ある": true, "しまう": true,
}

// FeatureDetector turns the appendage span after a content word into an
// ordered list of feature helpers. It is safe for concurrent use.
type FeatureDetector struct {
	helpers map[feature.Kind]*feature.Helper
}

// NewFeatureDetector builds a detector that emits the given helpers. Every
// helper must be of a supported kind and appear once. Kinds not given fall
// back to feature.Default; when some helpers are given, each fallback is
// logged.
func NewFeatureDetector(helpers ...*feature.Helper) (*FeatureDetector, error) {
	d := &FeatureDetector{helpers: make(map[feature.Kind]*feature.Helper, len(helpers))}
	for _, h := range helpers {
		if h == nil {
			return nil, errors.Wrap(ErrConfiguration, "nil helper")
		}
		if !h.Kind.Valid() {
			return nil, errors.Wrapf(ErrConfiguration, "unsupported helper kind %s", h.Kind)
		}
		if _, dup := d.helpers[h.Kind]; dup {
			return nil, errors.Wrapf(ErrConfiguration, "duplicate helper for %s", h.Kind)
		}
		d.helpers[h.Kind] = h
	}

	log := logger.Named("detect")
	for _, k := range feature.Kinds() {
		if _, ok := d.helpers[k]; ok {
			continue
		}
		if len(helpers) > 0 {
			log.Warnw("feature helper not configured, using default", "kind", k.String())
		}
		d.helpers[k] = feature.Default(k)
	}
	return d, nil
}

// Helper returns the helper the detector emits for kind.
func (d *FeatureDetector) Helper(kind feature.Kind) (*feature.Helper, bool) {
	h, ok := d.helpers[kind]
	return h, ok
}

// Detect scans span left to right and returns one helper per marker token.
// Tokens that mark nothing are skipped; hadError reports an auxiliary the
// detector neither knows nor can safely ignore.
func (d *FeatureDetector) Detect(span []model.Token) (helpers []*feature.Helper, hadError bool) {
	for _, tok := range span {
		kind, ok := lookup(tok)
		if ok {
			helpers = append(helpers, d.helpers[kind])
			continue
		}
		if tok.POS == model.POSAux && !neutral[normOf(tok)] {
			logger.Logger.Debugw("unrecognized auxiliary skipped", "text", tok.Text, "norm", normOf(tok))
			hadError = true
		}
	}
	return helpers, hadError
}

func lookup(tok model.Token) (feature.Kind, bool) {
	if isPastInflection(tok) {
		return feature.Past, true
	}
	if k, ok := markers[marker{normOf(tok), tok.POS}]; ok {
		return k, true
	}
	if tok.Lemma != "" {
		k, ok := markers[marker{tok.Lemma, tok.POS}]
		return k, ok
	}
	return 0, false
}

func normOf(tok model.Token) string {
	if tok.Norm != "" {
		return tok.Norm
	}
	return tok.Text
}
