package streamconv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/streamconv/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeDuplicateKey  = "duplicate_key"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeTruncated     = "truncated"
)

var (
	// ErrRead marks failures to obtain the input bytes.
	ErrRead = errors.New("streamconv: read input")
	// ErrEncode marks failures to render a decoded request in an output format.
	ErrEncode = errors.New("streamconv: encode output")
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /gifts/1/price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"key":"user_id"}) for i18n.
	Params map[string]string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_format at /stream/user_id
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can see through an Issues value.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// NewIssue builds an Issue whose message comes from the active translator.
func NewIssue(path, code string, params map[string]string) Issue {
	if path == "" {
		path = "/"
	}
	return Issue{Path: path, Code: code, Message: i18n.T(code, params), Params: params}
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrorKind classifies pipeline failures.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindIO
	KindSyntax
	KindSchema
	KindEncode
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindIO:
		return "io"
	case KindSyntax:
		return "syntax"
	case KindSchema:
		return "schema"
	case KindEncode:
		return "encode"
	default:
		return "other"
	}
}

// KindOf reports which stage of the pipeline produced err.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	switch {
	case errors.Is(err, ErrRead):
		return KindIO
	case errors.Is(err, ErrEncode):
		return KindEncode
	}
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return KindOther
	}
	switch iss[0].Code {
	case CodeParseError, CodeDuplicateKey, CodeTruncated:
		return KindSyntax
	default:
		return KindSchema
	}
}
