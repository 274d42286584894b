// Package kanji aligns kanji with their readings for furigana display. A
// KANJIDIC2 file, when loaded, lets compound kanji runs split per character.
package kanji

import (
	"encoding/xml"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"japanesereflect/errors"
	"japanesereflect/kana"
	"japanesereflect/logger"
)

// Dictionary maps a kanji to its on and kun readings.
type Dictionary struct {
	readings map[rune][]string
}

type character struct {
	Literal        string `xml:"literal"`
	ReadingMeaning struct {
		RMGroup []struct {
			Reading []struct {
				Value string `xml:",chardata"`
				Type  string `xml:"r_type,attr"`
			} `xml:"reading"`
		} `xml:"rmgroup"`
	} `xml:"reading_meaning"`
}

// LoadKanjidic streams <character> elements from a KANJIDIC2 document,
// keeping ja_on and ja_kun readings.
func LoadKanjidic(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{readings: make(map[rune][]string)}
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse kanjidic")
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "character" {
			continue
		}
		var c character
		if err := dec.DecodeElement(&c, &se); err != nil {
			return nil, errors.Wrap(err, "failed to decode kanjidic character")
		}
		if utf8.RuneCountInString(c.Literal) != 1 {
			continue
		}
		lit, _ := utf8.DecodeRuneInString(c.Literal)
		for _, g := range c.ReadingMeaning.RMGroup {
			for _, rd := range g.Reading {
				if rd.Type == "ja_on" || rd.Type == "ja_kun" {
					d.readings[lit] = append(d.readings[lit], rd.Value)
				}
			}
		}
	}
	logger.Named("kanji").Debugw("kanjidic loaded", "entries", len(d.readings))
	return d, nil
}

// LoadKanjidicFile opens path and loads it with LoadKanjidic.
func LoadKanjidicFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "failed to open kanjidic %s", path),
			"download kanjidic2.xml from the EDRDG and pass its path",
		)
	}
	defer f.Close()
	return LoadKanjidic(f)
}

// Len reports the number of kanji with readings.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.readings)
}

// Readings returns the raw KANJIDIC readings of r.
func (d *Dictionary) Readings(r rune) []string {
	if d == nil {
		return nil
	}
	return d.readings[r]
}

// variants returns the hiragana forms r may take inside a word, longest
// first. Okurigana markers are dropped: い.る yields いる and い.
func (d *Dictionary) variants(r rune, voiced bool) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, raw := range d.Readings(r) {
		raw = strings.Trim(raw, "-")
		stem, _, _ := strings.Cut(raw, ".")
		for _, v := range []string{NormalizeReading(raw), NormalizeReading(stem)} {
			add(v)
			if voiced {
				add(RendakuForm(v))
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i]) > utf8.RuneCountInString(out[j])
	})
	return out
}

// NormalizeReading converts a KANJIDIC reading to plain hiragana.
func NormalizeReading(s string) string {
	s = strings.NewReplacer(".", "", "-", "").Replace(s)
	return kana.ToHiragana(s)
}

var rendaku = map[rune]rune{
	'か': 'が', 'き': 'ぎ', 'く': 'ぐ', 'け': 'げ', 'こ': 'ご',
	'さ': 'ざ', 'し': 'じ', 'す': 'ず', 'せ': 'ぜ', 'そ': 'ぞ',
	'た': 'だ', 'ち': 'ぢ', 'つ': 'づ', 'て': 'で', 'と': 'ど',
	'は': 'ば', 'ひ': 'び', 'ふ': 'ぶ', 'へ': 'べ', 'ほ': 'ぼ',
}

// RendakuForm voices the first kana of s (かわ → がわ). Unvoiceable
// readings come back unchanged.
func RendakuForm(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if v, ok := rendaku[r]; ok {
		return string(v) + s[size:]
	}
	return s
}
