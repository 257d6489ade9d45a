package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCanonicalizer_Canonicalize(t *testing.T) {
	canonicalizer := NewCanonicalizer()

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", canonicalizer.Canonicalize(""))
		assert.Equal(t, "", canonicalizer.Canonicalize(" \t\n "))
	})

	t.Run("trim_and_collapse", func(t *testing.T) {
		assert.Equal(t, "평가 장소", canonicalizer.Canonicalize("  평가   장소\n"))
		assert.Equal(t, "1.1", canonicalizer.Canonicalize("\t1.1 "))
	})

	t.Run("invisible_chars", func(t *testing.T) {
		assert.Equal(t, "문항", canonicalizer.Canonicalize("\ufeff문항\u200b"))
		assert.Equal(t, "담당 위원", canonicalizer.Canonicalize("담당\u00a0위원"))
	})

	t.Run("nfd_hangul", func(t *testing.T) {
		decomposed := "\u1106\u116e\u11ab\u1112\u1161\u11bc" // 문항 as jamo
		assert.Equal(t, "문항", canonicalizer.Canonicalize(decomposed))
	})
}

func TestCanonicalizer_Clean(t *testing.T) {
	canonicalizer := NewCanonicalizer()

	assert.Equal(t, "첫째 줄\n  둘째 줄", canonicalizer.Clean(" \ufeff첫째 줄\n  둘째 줄\u200b\n"))
	assert.Equal(t, "문항", canonicalizer.Clean("\u1106\u116e\u11ab\u1112\u1161\u11bc"))
	assert.Equal(t, "첫째 줄 둘째 줄", canonicalizer.Canonicalize("첫째 줄\n  둘째 줄"))
}

func TestCanonicalizer_Key(t *testing.T) {
	canonicalizer := NewCanonicalizer()

	assert.Equal(t, "담당위원", canonicalizer.Key(" 담당 위원 "))
	assert.Equal(t, "no.", canonicalizer.Key("No ."))
	assert.Equal(t, "1.1", canonicalizer.Key(" 1. 1"))
	assert.Equal(t, canonicalizer.Key("김철수"), canonicalizer.Key("김 철수"))
}

func TestCanonicalizer_IsBlank(t *testing.T) {
	canonicalizer := NewCanonicalizer()

	for _, blank := range []string{"", "  ", "nan", "NaN", "None", "null", "<NA>", "\u200b"} {
		assert.True(t, canonicalizer.IsBlank(blank), "%q should be blank", blank)
	}

	for _, value := range []string{"0", "1.1", "nano", "상", "-"} {
		assert.False(t, canonicalizer.IsBlank(value), "%q should not be blank", value)
	}
}
