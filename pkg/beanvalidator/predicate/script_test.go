package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nakamurakj/bean-validation/pkg/beanvalidator/predicate"
)

const katakana = "アイウエオカキクケコサシスセソタチツテト" +
	"ナニヌネノハフフヘホヤユヨワヲン" +
	"ガギグゲゴザジズゼゾダヂヅテドバビブベボパピポペポ"

const hiragana = "あいうえおかきくけこさしすせそたちつてと" +
	"なにぬねのはひふへほやゆよわをん"

func TestKatakana(t *testing.T) {
	none := predicate.ScriptOptions{}
	all := predicate.ScriptOptions{Space: true, HalfSpace: true, LongMarks: true}

	tests := []struct {
		name     string
		value    string
		opts     predicate.ScriptOptions
		expected bool
	}{
		{"full katakana", katakana, none, true},
		{"trailing hiragana", katakana + "あ", none, false},
		{"long mark is in block", "コーヒー", none, true},
		{"ideographic space refused", "カタ　カナ", none, false},
		{"ideographic space allowed", "カタ　カナ", predicate.ScriptOptions{Space: true}, true},
		{"half space refused", "カタ カナ", predicate.ScriptOptions{Space: true}, false},
		{"half space allowed", "カタ カナ", predicate.ScriptOptions{HalfSpace: true}, true},
		{"all allowed mixed", " カ　タ ー", all, true},
		{"half-width katakana", "ｶﾀｶﾅ", none, false},
		{"latin", "katakana", all, false},
		{"empty", "", none, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, predicate.Katakana(tt.value, tt.opts))
		})
	}
}

func TestHiragana(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		opts     predicate.ScriptOptions
		expected bool
	}{
		{"full hiragana", hiragana, predicate.ScriptOptions{}, true},
		{"katakana mixed in", hiragana + "ア", predicate.ScriptOptions{}, false},
		{"long mark refused", "らーめん", predicate.ScriptOptions{}, false},
		{"long mark allowed", "らーめん", predicate.ScriptOptions{LongMarks: true}, true},
		{"spaces allowed", "やまだ　たろう", predicate.ScriptOptions{Space: true}, true},
		{"half space allowed everywhere", " やま だ ", predicate.ScriptOptions{HalfSpace: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, predicate.Hiragana(tt.value, tt.opts))
		})
	}
}

func TestHalfKatakana(t *testing.T) {
	assert.True(t, predicate.HalfKatakana("ｶﾀｶﾅ"))
	assert.True(t, predicate.HalfKatakana("ｺｰﾋｰ"))
	assert.True(t, predicate.HalfKatakana(""))
	assert.False(t, predicate.HalfKatakana("カタカナ"))
	assert.False(t, predicate.HalfKatakana("ｶﾀｶﾅ1"))
}

func TestStrip_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"カタ　カナ ー",
		"　　  ーー",
		"やまだ たろう",
		"mixed ー text　",
	}
	options := []predicate.ScriptOptions{
		{},
		{Space: true},
		{HalfSpace: true},
		{LongMarks: true},
		{Space: true, HalfSpace: true, LongMarks: true},
	}

	for _, in := range inputs {
		for _, opts := range options {
			once := predicate.Strip(in, opts)
			assert.Equal(t, once, predicate.Strip(once, opts), "input %q opts %+v", in, opts)
			assert.Equal(t, predicate.Katakana(in, opts), predicate.Katakana(once, opts))
			assert.Equal(t, predicate.Hiragana(in, opts), predicate.Hiragana(once, opts))
		}
	}
}

func TestStrip_RemovesAllOccurrences(t *testing.T) {
	got := predicate.Strip(" ア イ　ウーエ ", predicate.ScriptOptions{Space: true, HalfSpace: true, LongMarks: true})
	assert.Equal(t, "アイウエ", got)
}
