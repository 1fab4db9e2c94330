package streamconv

import (
	"context"
	"errors"
	"io"
	"unicode/utf8"

	eng "github.com/reoring/streamconv/internal/engine"
)

// ParseTree consumes tokens from src and builds a JSON-compatible tree
// (map[string]any, []any, json.Number, string, bool, nil) while enforcing opt.
// Every failure is reported as Issues.
func ParseTree(ctx context.Context, src Source, opt ParseOpt) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := eng.DecodeAnyFromSource(EnforceSource(src, opt))
	if err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

// ParseTreeBytes checks size and UTF-8 validity before tokenizing data.
func ParseTreeBytes(ctx context.Context, data []byte, opt ParseOpt) (any, error) {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, AppendIssues(nil, NewIssue("/", CodeTruncated, map[string]string{"limit": formatInt(opt.MaxBytes)}))
	}
	if !utf8.Valid(data) {
		it := NewIssue("/", CodeParseError, nil)
		it.Message = "input is not valid UTF-8"
		return nil, AppendIssues(nil, it)
	}
	return ParseTree(ctx, JSONBytes(data), opt)
}

// ReadAll reads r to completion, marking failures with ErrRead.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrRead, err)
	}
	return data, nil
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, fromSimpleIssue(ie.SimpleIssue))
	}
	it := NewIssue("/", CodeParseError, nil)
	it.Message = err.Error()
	it.Cause = err
	return AppendIssues(nil, it)
}
