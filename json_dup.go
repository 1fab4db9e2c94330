package streamconv

import (
	"errors"
	"io"
	"strconv"

	eng "github.com/reoring/streamconv/internal/engine"
)

// DetectJSONDuplicateKeysBytes walks data and reports every duplicated
// object key with its JSON Pointer. maxIssues < 0 means unlimited; 0
// disables reporting. A syntax error ends the scan with a parse_error issue.
func DetectJSONDuplicateKeysBytes(data []byte, maxIssues int) Issues {
	var iss Issues
	full := false
	src := eng.WrapWithEnforcement(eng.NewGoJSONBytes(data), eng.EnforceOptions{
		OnDuplicate: eng.DupWarn,
		IssueSink: func(si eng.SimpleIssue) {
			if maxIssues == 0 || full {
				return
			}
			iss = AppendIssues(iss, fromSimpleIssue(si))
			if maxIssues > 0 && len(iss) >= maxIssues {
				full = true
			}
		},
	})
	for {
		_, err := src.NextToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			iss = AppendIssues(iss, toIssues(err)...)
			break
		}
	}
	return iss
}

func formatInt(n int64) string { return strconv.FormatInt(n, 10) }
