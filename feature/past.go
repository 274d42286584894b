package feature

import (
	"japanesereflect/conjugation"
	"japanesereflect/fragment"
)

// pastKey is a class together with the final mora of its dictionary form.
type pastKey struct {
	class *conjugation.Class
	mora  string
}

// pastRule is the sound change (音便) before た: the mora replacing the
// stem's final one, and whether the auxiliary voices to だ.
type pastRule struct {
	connect string
	aux     *conjugation.Class
}

var pastRules = map[pastKey]pastRule{
	// イ音便
	{conjugation.GodanKa, "く"}: {"い", conjugation.AuxTa},
	{conjugation.GodanGa, "ぐ"}: {"い", conjugation.AuxDa},
	// no sound change
	{conjugation.GodanSa, "す"}: {"し", conjugation.AuxTa},
	// 促音便
	{conjugation.GodanTa, "つ"}:  {"っ", conjugation.AuxTa},
	{conjugation.GodanRa, "る"}:  {"っ", conjugation.AuxTa},
	{conjugation.GodanWa, "う"}:  {"っ", conjugation.AuxTa},
	{conjugation.GodanIku, "く"}: {"っ", conjugation.AuxTa},
	// 撥音便
	{conjugation.GodanNa, "ぬ"}: {"ん", conjugation.AuxDa},
	{conjugation.GodanBa, "ぶ"}: {"ん", conjugation.AuxDa},
	{conjugation.GodanMa, "む"}: {"ん", conjugation.AuxDa},

	{conjugation.KamiIchidan, "る"}:  {"", conjugation.AuxTa},
	{conjugation.ShimoIchidan, "る"}: {"", conjugation.AuxTa},
	{conjugation.KuruKana, "くる"}:    {"き", conjugation.AuxTa},
	{conjugation.KuruKanji, "る"}:    {"", conjugation.AuxTa},
	{conjugation.Suru, "する"}:        {"し", conjugation.AuxTa},
	{conjugation.Zuru, "ずる"}:        {"じ", conjugation.AuxTa},

	{conjugation.Keiyoushi, "い"}:    {"かっ", conjugation.AuxTa},
	{conjugation.Keiyoudoushi, "だ"}: {"だっ", conjugation.AuxTa},
}

func mergePast(pre fragment.Fragment) (fragment.Fragment, bool) {
	in, ok := pre.(fragment.Inflectable)
	if !ok || in.Class == nil {
		return nil, false
	}
	rule, ok := pastRules[pastKey{in.Class, in.Class.Terminal()}]
	if !ok {
		return nil, false
	}
	return fragment.NewInflectable(in.Stem+rule.connect, rule.aux), true
}

// bridgePast treats inert text as a copula predicate: 明日だった.
func bridgePast(pre fragment.Fragment) (fragment.Fragment, error) {
	if t, ok := pre.(fragment.Inert); ok {
		return fragment.NewInflectable(t.Text+"だっ", conjugation.AuxTa), nil
	}
	return nil, unsupported(Past, pre)
}
