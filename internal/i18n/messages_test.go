package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"ja", language.Japanese},
		{"ja-JP", language.Japanese},
		{"en-US", language.English},
		{"fr", language.English},
		{"", language.English},
		{"not a locale!", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.locale))
		})
	}
}

func TestPrinter_T(t *testing.T) {
	en := NewPrinter("en")
	ja := NewPrinter("ja")

	assert.Equal(t, "Copied!", en.T(Copied))
	assert.Equal(t, "コピーしました！", ja.T(Copied))
	assert.Equal(t, "コピーに失敗しました。", ja.T(CopyFailed))
	assert.Equal(t, "クリップボードへのコピーに対応していません。", ja.T(ClipboardUnsupported))
}

func TestPrinter_T_WithArgs(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, "An error occurred: boom", NewPrinter("en").T(GenerateError, err))
	assert.Equal(t, "エラーが発生しました: boom", NewPrinter("ja").T(GenerateError, err))
}

func TestJapaneseCoversEveryKey(t *testing.T) {
	keys := []string{
		Copied, CopyFailed, ClipboardUnsupported, NoImage, GenerateError,
		LabelImage, LabelWidth, LabelPreset, LabelCustom, LabelInvert,
		LabelContrast, LabelVerticalScale, LabelOutput,
	}

	for _, key := range keys {
		_, ok := japanese[key]
		assert.True(t, ok, "missing Japanese translation for %q", key)
	}
}
