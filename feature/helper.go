package feature

import (
	"japanesereflect/fragment"
)

// BridgeStrategy attaches a feature to a fragment the structural rule does
// not cover. It returns an *UnsupportedFragmentError for operands it cannot
// handle.
type BridgeStrategy func(pre fragment.Fragment) (fragment.Fragment, error)

// structuralMerge is the class-aware rule of a feature. ok is false when the
// fragment is outside the rule's classes; that is not an error.
type structuralMerge func(pre fragment.Fragment) (f fragment.Fragment, ok bool)

type behavior struct {
	structural structuralMerge
	bridge     func(kind Kind) BridgeStrategy
}

// behaviors is the feature table: kind to (structural merge, default bridge).
var behaviors = map[Kind]behavior{
	Passive:     {structural: mergePassive, bridge: func(Kind) BridgeStrategy { return bridgePassive }},
	Causative:   {structural: mergeCausative, bridge: func(Kind) BridgeStrategy { return bridgeCausative }},
	Negation:    {structural: mergeNegation, bridge: func(Kind) BridgeStrategy { return bridgeNegation }},
	DesireSelf:  {structural: mergeDesireSelf, bridge: structuralOnly},
	DesireOther: {structural: mergeDesireOther, bridge: structuralOnly},
	Past:        {structural: mergePast, bridge: func(Kind) BridgeStrategy { return bridgePast }},
}

// structuralOnly is the bridge of features that have no fallback.
func structuralOnly(kind Kind) BridgeStrategy {
	return func(pre fragment.Fragment) (fragment.Fragment, error) {
		return nil, unsupported(kind, pre)
	}
}

// Helper attaches one grammatical feature to a preceding fragment. Helpers
// hold no state beyond their bridge and are safe for concurrent use.
type Helper struct {
	Kind   Kind
	Bridge BridgeStrategy
}

// Option configures a Helper.
type Option func(*Helper)

// WithBridge replaces the default bridge strategy.
func WithBridge(bridge BridgeStrategy) Option {
	return func(h *Helper) {
		h.Bridge = bridge
	}
}

// New returns a helper for kind with the default bridge unless an option
// overrides it.
func New(kind Kind, opts ...Option) *Helper {
	h := &Helper{Kind: kind}
	if b, ok := behaviors[kind]; ok {
		h.Bridge = b.bridge(kind)
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Default returns a helper for kind with its default bridge.
func Default(kind Kind) *Helper {
	return New(kind)
}

// Merge attaches the feature after pre: the structural rule first, the
// bridge when the rule does not apply.
func (h *Helper) Merge(pre fragment.Fragment) (fragment.Fragment, error) {
	b, ok := behaviors[h.Kind]
	if !ok {
		return nil, unsupported(h.Kind, pre)
	}
	if f, ok := b.structural(pre); ok {
		return f, nil
	}
	if h.Bridge == nil {
		return nil, unsupported(h.Kind, pre)
	}
	return h.Bridge(pre)
}

// Follow implements fragment.Part so helpers compose with fragment.Combine.
func (h *Helper) Follow(pre fragment.Fragment) (fragment.Fragment, error) {
	return h.Merge(pre)
}

func (h *Helper) String() string {
	return h.Kind.String()
}
