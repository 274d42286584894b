package feature

import (
	"japanesereflect/conjugation"
	"japanesereflect/fragment"
	"japanesereflect/kana"
)

// Auxiliary verbs and adjectives the helpers attach. The lead role is the
// form the preceding word is rendered in.
var (
	reru   = fragment.NewInflectable("れ", conjugation.ShimoIchidan).WithLead(conjugation.IrrealisPassive)
	rareru = fragment.NewInflectable("られ", conjugation.ShimoIchidan).WithLead(conjugation.IrrealisPassive)
	seru   = fragment.NewInflectable("せ", conjugation.ShimoIchidan).WithLead(conjugation.IrrealisCausative)
	saseru = fragment.NewInflectable("させ", conjugation.ShimoIchidan).WithLead(conjugation.IrrealisCausative)
	nai    = fragment.NewInflectable("な", conjugation.Keiyoushi).WithLead(conjugation.Irrealis)
	tai    = fragment.NewInflectable("た", conjugation.Keiyoushi)
	tagaru = fragment.NewInflectable("たが", conjugation.GodanRa)

	// naru is なる (to become), the bridge verb for passives of non-verbs.
	naru = fragment.NewInflectable("な", conjugation.GodanRa)
)

// verbOf returns pre as an Inflectable when its class is verb-like.
func verbOf(pre fragment.Fragment) (fragment.Inflectable, bool) {
	in, ok := pre.(fragment.Inflectable)
	if !ok || in.Class == nil || !in.Class.IsVerb() {
		return fragment.Inflectable{}, false
	}
	return in, true
}

// voice picks between the two allomorphs of a passive or causative auxiliary.
// する always takes the short one (される, させる). ずる takes the long one
// (生ぜられる, 生じさせる). Any other verb takes the short one exactly when its
// irrealis ends in the あ column.
func voice(in fragment.Inflectable, short, long fragment.Inflectable) fragment.Inflectable {
	switch in.Class {
	case conjugation.Suru:
		return short
	case conjugation.Zuru:
		return long
	}
	if kana.EndsInColumn(in.Form(conjugation.Irrealis), kana.ColumnA) {
		return short
	}
	return long
}

func mergePassive(pre fragment.Fragment) (fragment.Fragment, bool) {
	in, ok := verbOf(pre)
	if !ok {
		return nil, false
	}
	return fragment.Join(in, voice(in, reru, rareru)), true
}

func mergeCausative(pre fragment.Fragment) (fragment.Fragment, bool) {
	in, ok := verbOf(pre)
	if !ok {
		return nil, false
	}
	return fragment.Join(in, voice(in, seru, saseru)), true
}

func mergeNegation(pre fragment.Fragment) (fragment.Fragment, bool) {
	in, ok := verbOf(pre)
	if !ok {
		return nil, false
	}
	return fragment.Join(in, nai), true
}

func mergeDesireSelf(pre fragment.Fragment) (fragment.Fragment, bool) {
	in, ok := verbOf(pre)
	if !ok {
		return nil, false
	}
	return fragment.Join(in, tai), true
}

func mergeDesireOther(pre fragment.Fragment) (fragment.Fragment, bool) {
	in, ok := verbOf(pre)
	if !ok {
		return nil, false
	}
	return fragment.Join(in, tagaru), true
}

// adjectival returns pre as an Inflectable of an adjective or adjectival
// noun class.
func adjectival(pre fragment.Fragment) (fragment.Inflectable, bool) {
	in, ok := pre.(fragment.Inflectable)
	if !ok || in.Class == nil {
		return fragment.Inflectable{}, false
	}
	return in, in.Class.IsAdjective() || in.Class.IsAdjectivalNoun()
}

// bridgePassive goes through なる: それになられる, 美しくなられる.
func bridgePassive(pre fragment.Fragment) (fragment.Fragment, error) {
	if _, ok := pre.(fragment.Inert); ok {
		return fragment.Chain(pre, fragment.NewInert("に"), naru, reru)
	}
	if _, ok := adjectival(pre); ok {
		return fragment.Chain(pre, naru, reru)
	}
	return nil, unsupported(Passive, pre)
}

// bridgeCausative attaches させる directly: それにさせる, 美しくさせる.
func bridgeCausative(pre fragment.Fragment) (fragment.Fragment, error) {
	if _, ok := pre.(fragment.Inert); ok {
		return fragment.Chain(pre, fragment.NewInert("に"), saseru)
	}
	if in, ok := adjectival(pre); ok {
		return fragment.Join(fragment.NewInert(in.Form(conjugation.Continuative)), saseru), nil
	}
	return nil, unsupported(Causative, pre)
}

// bridgeNegation treats ない as an adjective: それではない, 美しくない,
// 傲慢ではない.
func bridgeNegation(pre fragment.Fragment) (fragment.Fragment, error) {
	if _, ok := pre.(fragment.Inert); ok {
		return fragment.Chain(pre, fragment.NewInert("では"), nai)
	}
	if in, ok := adjectival(pre); ok {
		role := conjugation.Continuative
		if in.Class.IsAdjectivalNoun() {
			role = conjugation.ContinuativeNegation
		}
		return fragment.Join(fragment.NewInert(in.Form(role)), nai), nil
	}
	return nil, unsupported(Negation, pre)
}
