package kanji

import (
	"strings"

	"japanesereflect/kana"
)

// Segment is a piece of surface text. Reading is set only for kanji.
type Segment struct {
	Text    string `json:"text"`
	Reading string `json:"reading,omitempty"`
}

type run struct {
	text  []rune
	kanji bool
}

func runs(s string) []run {
	var out []run
	for _, r := range s {
		k := kana.IsKanji(r)
		if n := len(out); n > 0 && out[n-1].kanji == k {
			out[n-1].text = append(out[n-1].text, r)
			continue
		}
		out = append(out, run{text: []rune{r}, kanji: k})
	}
	return out
}

// Align splits surface against its reading (katakana or hiragana). Kana in
// the surface anchor the reading; each kanji run takes what lies between
// anchors. With a non-nil dict, kanji runs are further split per character
// when the readings account for the run exactly. When the surface cannot be
// anchored the whole word becomes one segment carrying the full reading.
func Align(surface, reading string, dict *Dictionary) []Segment {
	if surface == "" {
		return nil
	}
	if !kana.HasKanji(surface) || reading == "" {
		return []Segment{{Text: surface}}
	}
	rd := []rune(kana.ToHiragana(reading))
	whole := []Segment{{Text: surface, Reading: string(rd)}}

	rs := runs(surface)
	var (
		out []Segment
		pos int
	)
	for i, r := range rs {
		if !r.kanji {
			lit := []rune(kana.ToHiragana(string(r.text)))
			if !hasPrefix(rd[pos:], lit) {
				return whole
			}
			pos += len(lit)
			out = append(out, Segment{Text: string(r.text)})
			continue
		}

		end := len(rd)
		if i+1 < len(rs) {
			next := []rune(kana.ToHiragana(string(rs[i+1].text)))
			idx := index(rd, next, pos+1)
			if idx < 0 {
				return whole
			}
			end = idx
		}
		if end <= pos {
			return whole
		}
		out = append(out, splitRun(r.text, rd[pos:end], dict, i > 0)...)
		pos = end
	}
	if pos != len(rd) {
		return whole
	}
	return out
}

func splitRun(text, reading []rune, dict *Dictionary, voiced bool) []Segment {
	if dict != nil && len(text) > 1 {
		if parts, ok := match(text, reading, dict, voiced); ok {
			segs := make([]Segment, len(text))
			for i, r := range text {
				segs[i] = Segment{Text: string(r), Reading: parts[i]}
			}
			return segs
		}
	}
	return []Segment{{Text: string(text), Reading: string(reading)}}
}

// match finds one reading per kanji covering reading exactly, preferring
// longer readings first.
func match(text, reading []rune, dict *Dictionary, voiced bool) ([]string, bool) {
	if len(text) == 0 {
		return nil, len(reading) == 0
	}
	for _, v := range dict.variants(text[0], voiced) {
		vr := []rune(v)
		if !hasPrefix(reading, vr) {
			continue
		}
		if rest, ok := match(text[1:], reading[len(vr):], dict, true); ok {
			return append([]string{v}, rest...), true
		}
	}
	return nil, false
}

// Bracket renders segments as 食[た]べる.
func Bracket(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
		if s.Reading != "" {
			b.WriteString("[" + s.Reading + "]")
		}
	}
	return b.String()
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func index(s, sub []rune, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if hasPrefix(s[i:], sub) {
			return i
		}
	}
	return -1
}
