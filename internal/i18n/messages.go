// Package i18n holds the fixed user-facing strings in English and Japanese.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	Copied               = "Copied!"
	CopyFailed           = "Copy failed."
	ClipboardUnsupported = "Clipboard copy is not supported."
	NoImage              = "No image has been loaded."
	GenerateError        = "An error occurred: %v"

	LabelImage         = "Image"
	LabelWidth         = "Width (characters per line)"
	LabelPreset        = "Charset (preset)"
	LabelCustom        = "Custom charset"
	LabelInvert        = "Invert light/dark"
	LabelContrast      = "Contrast"
	LabelVerticalScale = "Vertical scale (glyph aspect fix)"
	LabelOutput        = "ASCII art output"
)

var japanese = map[string]string{
	Copied:               "コピーしました！",
	CopyFailed:           "コピーに失敗しました。",
	ClipboardUnsupported: "クリップボードへのコピーに対応していません。",
	NoImage:              "画像がアップロードされていません。",
	GenerateError:        "エラーが発生しました: %v",

	LabelImage:         "画像",
	LabelWidth:         "文字幅(横の文字数)",
	LabelPreset:        "文字セット（プリセット）",
	LabelCustom:        "カスタム文字セット",
	LabelInvert:        "明暗を反転する(ポジ/ネガ切り替え)",
	LabelContrast:      "コントラスト",
	LabelVerticalScale: "縦方向のスケール(フォント縦長補正)",
	LabelOutput:        "ASCIIアート出力",
}

var supported = []language.Tag{language.English, language.Japanese}

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range japanese {
		_ = b.SetString(language.Japanese, key, msg)
		_ = b.SetString(language.English, key, key)
	}
	return b
}

// Printer formats localized messages
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a printer for locale (BCP 47, e.g. "ja", "en-US", "ja_JP").
// Unknown or unsupported locales fall back to English.
func NewPrinter(locale string) *Printer {
	tag := Match(locale)
	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Match resolves locale to one of the supported languages
func Match(locale string) language.Tag {
	parsed, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	base, _ := parsed.Base()
	for _, tag := range supported {
		if b, _ := tag.Base(); b == base {
			return tag
		}
	}
	return language.English
}

// Language returns the resolved language tag
func (p *Printer) Language() language.Tag {
	return p.tag
}

// T returns the localized message for key
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
