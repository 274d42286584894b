// Package kana classifies Japanese script: kanji versus kana, and the
// column (段) of a kana so conjugation code can ask "does this stem end in
// the あ-column?" without caring whether it was written in hiragana or katakana.
package kana

import (
	"unicode/utf8"
)

// Column is a vowel column (段) of the kana table.
type Column rune

const (
	ColumnNone Column = 0
	ColumnA    Column = 'a'
	ColumnI    Column = 'i'
	ColumnU    Column = 'u'
	ColumnE    Column = 'e'
	ColumnO    Column = 'o'
)

// columns maps every hiragana mora (plain, voiced, semi-voiced, small) to
// its vowel column. ん and the sokuon っ have no column.
var columns = buildColumns(map[Column]string{
	ColumnA: "あかがさざただなはばぱまやらわぁゃゎ",
	ColumnI: "いきぎしじちぢにひびぴみりゐぃ",
	ColumnU: "うくぐすずつづぬふぶぷむゆるぅゅゔ",
	ColumnE: "えけげせぜてでねへべぺめれゑぇ",
	ColumnO: "おこごそぞとどのほぼぽもよろをぉょ",
})

func buildColumns(src map[Column]string) map[rune]Column {
	out := make(map[rune]Column)
	for col, chars := range src {
		for _, r := range chars {
			out[r] = col
		}
	}
	return out
}

// IsKanji reports whether r is in the CJK unified ideograph block, plus the
// iteration mark 々.
func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF) || r == '々'
}

// IsHiragana returns true if r is a hiragana letter.
func IsHiragana(r rune) bool {
	return r >= 0x3041 && r <= 0x309F
}

// IsKatakana returns true if r is a katakana letter, including the prolonged sound mark.
func IsKatakana(r rune) bool {
	return (r >= 0x30A1 && r <= 0x30FA) || r == 'ー'
}

// IsKana returns true if rune is Hiragana or Katakana
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}

// ToHiragana converts katakana letters in s to hiragana; everything else is
// left untouched.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// ColumnOf returns the vowel column of a single kana, or ColumnNone for
// kanji, ん, っ, punctuation and latin text.
func ColumnOf(r rune) Column {
	if r >= 0x30A1 && r <= 0x30F6 {
		r -= 0x60
	}
	return columns[r]
}

// EndsInColumn reports whether the last rune of s is a kana of column col.
func EndsInColumn(s string, col Column) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return false
	}
	return ColumnOf(r) == col
}

// LastRune returns the final rune of s and whether s was non-empty.
func LastRune(s string) (rune, bool) {
	r, size := utf8.DecodeLastRuneInString(s)
	return r, size > 0
}

// SplitLast splits s into everything before its last rune and the last rune
// as a string. An empty s yields two empty strings.
func SplitLast(s string) (head, last string) {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size], s[len(s)-size:]
}

// HasKanji reports whether s contains at least one kanji.
func HasKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}
