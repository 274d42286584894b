// Package feature implements the grammatical feature helpers: passive,
// causative, negation, desire and past. A helper knows how to attach its
// feature to a preceding fragment, choosing the connecting form from the
// fragment's conjugation class, and falls back to a bridge strategy when the
// class has no structural rule for it.
package feature

import (
	"fmt"

	"japanesereflect/errors"
	"japanesereflect/fragment"
)

// Kind identifies a grammatical feature.
type Kind int

const (
	// Passive is 受身 (れる/られる).
	Passive Kind = iota + 1
	// Causative is 使役 (せる/させる).
	Causative
	// Negation is 否定 (ない).
	Negation
	// DesireSelf is the speaker's own wish (たい).
	DesireSelf
	// DesireOther is a third party's wish (たがる).
	DesireOther
	// Past is the perfective た/だ.
	Past
)

var kindNames = map[Kind]string{
	Passive:     "passive",
	Causative:   "causative",
	Negation:    "negation",
	DesireSelf:  "desire-self",
	DesireOther: "desire-other",
	Past:        "past",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is a supported feature kind.
func (k Kind) Valid() bool {
	_, ok := behaviors[k]
	return ok
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{Passive, Causative, Negation, DesireSelf, DesireOther, Past}
}

// ParseKind resolves a kind by its String name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// ErrUnsupportedFragment is the sentinel behind every UnsupportedFragmentError.
var ErrUnsupportedFragment = errors.New("unsupported fragment")

// UnsupportedFragmentError is returned when a helper has neither a structural
// rule nor a bridge for the fragment it was asked to follow.
type UnsupportedFragmentError struct {
	Fragment fragment.Fragment
	Kind     Kind
}

func (e *UnsupportedFragmentError) Error() string {
	if in, ok := e.Fragment.(fragment.Inflectable); ok {
		return fmt.Sprintf("%s cannot follow %q (%s)", e.Kind, fragment.Render(in), in.Class)
	}
	return fmt.Sprintf("%s cannot follow %q", e.Kind, fragment.Render(e.Fragment))
}

func (e *UnsupportedFragmentError) Unwrap() error {
	return ErrUnsupportedFragment
}

func unsupported(kind Kind, pre fragment.Fragment) error {
	return errors.WithStack(&UnsupportedFragmentError{Fragment: pre, Kind: kind})
}
