package predicate

import (
	"strings"
	"unicode"
)

const (
	ideographicSpace = "\u3000"
	halfSpace        = " "
	longVowelMark    = "\u30FC"
)

// Unicode blocks, not scripts: the katakana block contains the long vowel
// mark and the middle dot, which unicode.Katakana does not.
var (
	katakanaBlock = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x30A0, Hi: 0x30FF, Stride: 1}},
	}
	hiraganaBlock = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x3040, Hi: 0x309F, Stride: 1}},
	}
	halfKatakanaBlock = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xFF65, Hi: 0xFF9F, Stride: 1}},
	}
)

// ScriptOptions lists the characters a script check ignores.
type ScriptOptions struct {
	Space     bool // ideographic space U+3000
	HalfSpace bool // ASCII space
	LongMarks bool // katakana-hiragana prolonged sound mark U+30FC
}

// Strip removes every occurrence of the characters allowed by opts.
func Strip(s string, opts ScriptOptions) string {
	if opts.Space {
		s = strings.ReplaceAll(s, ideographicSpace, "")
	}
	if opts.HalfSpace {
		s = strings.ReplaceAll(s, halfSpace, "")
	}
	if opts.LongMarks {
		s = strings.ReplaceAll(s, longVowelMark, "")
	}
	return s
}

// Katakana reports whether every rune left after Strip is in the
// full-width katakana block.
func Katakana(s string, opts ScriptOptions) bool {
	return inBlock(Strip(s, opts), katakanaBlock)
}

// Hiragana reports whether every rune left after Strip is in the hiragana block.
func Hiragana(s string, opts ScriptOptions) bool {
	return inBlock(Strip(s, opts), hiraganaBlock)
}

// HalfKatakana reports whether every rune is in the half-width katakana block.
func HalfKatakana(s string) bool {
	return inBlock(s, halfKatakanaBlock)
}

func inBlock(s string, block *unicode.RangeTable) bool {
	for _, r := range s {
		if !unicode.Is(block, r) {
			return false
		}
	}
	return true
}
