package streamconv

import eng "github.com/reoring/streamconv/internal/engine"

// Token is the unit a Source yields; it mirrors the engine token so callers
// can implement Source without importing internal packages.
type Token = eng.Token

// Source abstracts over polymorphic input sources.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONBytes wraps a byte slice as a JSON Source backed by go-json.
func JSONBytes(b []byte) Source { return eng.NewGoJSONBytes(b) }

// EnforceSource wraps a Source with duplicate-key, depth and size enforcement.
// Warn-level duplicates are forwarded to opt.OnWarning.
func EnforceSource(s Source, opt ParseOpt) Source {
	var sink func(eng.SimpleIssue)
	if opt.OnWarning != nil {
		sink = func(si eng.SimpleIssue) { opt.OnWarning(fromSimpleIssue(si)) }
	}
	return eng.WrapWithEnforcement(s, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink:   sink,
	})
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromSimpleIssue(si eng.SimpleIssue) Issue {
	var params map[string]string
	if si.Key != "" {
		params = map[string]string{"key": si.Key}
	}
	it := NewIssue(si.Path, si.Code, params)
	if it.Message == si.Code || si.Code == CodeParseError {
		it.Message = si.Message
	}
	return it
}
