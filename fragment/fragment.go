// Package fragment is the composition algebra of the conjugation engine.
//
// A Fragment is either Inflectable (a stem plus a conjugation class) or
// Inert (plain text). Fragments are values: every operation returns a new
// one. Joining two fragments is defined for all four pairings, and the
// element on the right decides which form the element on the left is
// rendered in, because Japanese suffixes are chosen by what follows them.
package fragment

import (
	"fmt"

	"japanesereflect/conjugation"
)

// Part is anything that can follow a Fragment in surface order: another
// Fragment, or a grammatical feature helper.
type Part interface {
	// Follow attaches the receiver after pre and returns the combined fragment.
	Follow(pre Fragment) (Fragment, error)
}

// Fragment is the closed variant {Inflectable, Inert}.
type Fragment interface {
	Part
	fmt.Stringer
	isFragment()
}

// Inflectable is a stem that still inflects according to Class.
type Inflectable struct {
	Stem  string
	Class *conjugation.Class

	// lead is the role a preceding Inflectable is rendered in when this one
	// follows it; zero means Continuative.
	lead conjugation.Role
	// tail is the role this fragment is rendered in when inert text follows;
	// zero means Attributive.
	tail conjugation.Role
}

// Inert is text that does not inflect: particles, nouns used as connectors,
// punctuation.
type Inert struct {
	Text string
}

func (Inflectable) isFragment() {}
func (Inert) isFragment()       {}

// NewInflectable returns a plain inflectable fragment.
func NewInflectable(stem string, class *conjugation.Class) Inflectable {
	return Inflectable{Stem: stem, Class: class}
}

// NewInert returns a plain text fragment.
func NewInert(text string) Inert {
	return Inert{Text: text}
}

// WithLead returns a copy of f that requires a preceding Inflectable to be
// rendered in role. Auxiliaries use this: れる follows the irrealis form.
func (f Inflectable) WithLead(role conjugation.Role) Inflectable {
	f.lead = role
	return f
}

// WithTail returns a copy of f that is rendered in role when inert text
// follows it.
func (f Inflectable) WithTail(role conjugation.Role) Inflectable {
	f.tail = role
	return f
}

// Lead is the role a preceding Inflectable takes before f.
func (f Inflectable) Lead() conjugation.Role {
	if f.lead == 0 {
		return conjugation.Continuative
	}
	return f.lead
}

// Tail is the role f takes before inert text.
func (f Inflectable) Tail() conjugation.Role {
	if f.tail == 0 {
		return conjugation.Attributive
	}
	return f.tail
}

// Form renders f in role.
func (f Inflectable) Form(role conjugation.Role) string {
	return f.Stem + f.Class.Form(role)
}

// Follow joins f after pre.
func (f Inflectable) Follow(pre Fragment) (Fragment, error) {
	return Join(pre, f), nil
}

func (f Inflectable) String() string {
	return f.Form(conjugation.Terminal)
}

// Follow joins f after pre.
func (f Inert) Follow(pre Fragment) (Fragment, error) {
	return Join(pre, f), nil
}

func (f Inert) String() string {
	return f.Text
}

// Join concatenates two fragments. It is total over the four pairings:
//
//	Inert + Inert             -> Inert, text concatenated
//	Inert + Inflectable       -> Inflectable, text prefixed to the stem, right's class
//	Inflectable + Inert       -> Inert, left rendered in its tail role (attributive)
//	Inflectable + Inflectable -> Inflectable, left rendered in right's lead role (continuative)
func Join(left, right Fragment) Fragment {
	switch l := left.(type) {
	case Inert:
		switch r := right.(type) {
		case Inert:
			return Inert{Text: l.Text + r.Text}
		case Inflectable:
			return Inflectable{Stem: l.Text + r.Stem, Class: r.Class}
		}
	case Inflectable:
		switch r := right.(type) {
		case Inert:
			return Inert{Text: l.Form(l.Tail()) + r.Text}
		case Inflectable:
			return Inflectable{Stem: l.Form(r.Lead()) + r.Stem, Class: r.Class}
		}
	}
	// Fragment is sealed; this is unreachable.
	panic(fmt.Sprintf("fragment: cannot join %T and %T", left, right))
}

// Combine attaches right after left. Fragments never fail to combine; only a
// feature helper's own merge logic may return an error.
func Combine(left Fragment, right Part) (Fragment, error) {
	return right.Follow(left)
}

// Chain combines parts onto first from left to right and stops at the first error.
func Chain(first Fragment, rest ...Part) (Fragment, error) {
	acc := first
	for _, p := range rest {
		next, err := Combine(acc, p)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// Render returns the surface string of f: the terminal form by default, or
// the first role given. Inert fragments ignore the role.
func Render(f Fragment, role ...conjugation.Role) string {
	switch v := f.(type) {
	case Inflectable:
		if len(role) > 0 {
			return v.Form(role[0])
		}
		return v.Form(conjugation.Terminal)
	case Inert:
		return v.Text
	}
	return ""
}
