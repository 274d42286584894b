// Package builder folds the feature helpers of a sentence over its root
// fragment.
package builder

import (
	"japanesereflect/detect"
	"japanesereflect/errors"
	"japanesereflect/feature"
	"japanesereflect/fragment"
	"japanesereflect/logger"
	"japanesereflect/model"
)

// Builder conjugates a sentence root with the features that follow it. A
// Builder is stateless and safe for concurrent use.
type Builder struct {
	roots    *detect.RootDetector
	features *detect.FeatureDetector
}

// New returns a Builder using the given detectors.
func New(roots *detect.RootDetector, features *detect.FeatureDetector) *Builder {
	return &Builder{roots: roots, features: features}
}

// NewDefault returns a Builder with default helpers for every feature.
func NewDefault() (*Builder, error) {
	features, err := detect.NewFeatureDetector()
	if err != nil {
		return nil, err
	}
	return New(detect.NewRootDetector(), features), nil
}

// Build returns the conjugated root of sent. An unrecognized root is an
// error. A helper that fails or panics is skipped: the fragment built so far
// is kept and hadError is set.
func (b *Builder) Build(sent model.Sentence, root model.Token) (f fragment.Fragment, hadError bool, err error) {
	f, err = b.roots.Detect(root)
	if err != nil {
		return nil, false, errors.Wrapf(err, "sentence %d", sent.ID)
	}

	helpers, detectErr := b.features.Detect(sent.After(root))
	f, foldErr := Fold(f, helpers)
	return f, detectErr || foldErr, nil
}

// Fold applies helpers to f from left to right with per-helper recovery.
// hadError reports whether any helper was skipped.
func Fold(f fragment.Fragment, helpers []*feature.Helper) (_ fragment.Fragment, hadError bool) {
	log := logger.Named("builder")
	for _, h := range helpers {
		var next fragment.Fragment
		err := errors.PCall(func() error {
			var err error
			next, err = fragment.Combine(f, h)
			return err
		})
		if err != nil {
			log.Warnw("feature skipped",
				"kind", h.Kind.String(),
				"fragment", fragment.Render(f),
				"error", err,
			)
			hadError = true
			continue
		}
		f = next
	}
	return f, hadError
}
