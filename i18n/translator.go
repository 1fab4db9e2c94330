package i18n

import (
	"regexp"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// entry is a fixed message plus an optional detail template. The detail is
// appended only when data supplies every {placeholder} it mentions.
type entry struct {
	base   string
	detail string
}

var dictionaries = map[string]map[string]entry{
	"en": {
		"invalid_type":   {"invalid type", ", expected {expected}"},
		"required":       {"required property missing", ": {key}"},
		"unknown_key":    {"unknown key", ": {key}"},
		"duplicate_key":  {"duplicate key", ": {key}"},
		"too_small":      {"value too small", ", minimum {limit}"},
		"too_big":        {"value too big", ", maximum {limit}"},
		"pattern":        {"value does not match pattern", ""},
		"invalid_enum":   {"unknown variant", " {got}, expected one of {allowed}"},
		"invalid_format": {"invalid format", ": expected {format}"},
		"parse_error":    {"parse error", ""},
		"truncated":      {"input too large", ", limit {limit} bytes"},
	},
	"ja": {
		"invalid_type":   {"型が不正です", "（期待: {expected}）"},
		"required":       {"必須プロパティが不足しています", ": {key}"},
		"unknown_key":    {"未知のキーです", ": {key}"},
		"duplicate_key":  {"キーが重複しています", ": {key}"},
		"too_small":      {"小さすぎます", "（最小: {limit}）"},
		"too_big":        {"大きすぎます", "（最大: {limit}）"},
		"pattern":        {"パターンに一致しません", ""},
		"invalid_enum":   {"未知の値です", ": {got}（候補: {allowed}）"},
		"invalid_format": {"形式が不正です", "（期待: {format}）"},
		"parse_error":    {"解析エラー", ""},
		"truncated":      {"入力が大きすぎます", "（上限: {limit} バイト）"},
	},
}

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	e, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if e.detail == "" {
		return e.base
	}
	complete := true
	detail := placeholder.ReplaceAllStringFunc(e.detail, func(m string) string {
		v, ok := data[m[1:len(m)-1]]
		if !ok {
			complete = false
		}
		return v
	})
	if !complete {
		return e.base
	}
	return e.base + detail
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
