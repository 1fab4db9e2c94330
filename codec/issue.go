package codec

import streamconv "github.com/reoring/streamconv"

func formatIssue(format string, cause error) streamconv.Issues {
	it := streamconv.NewIssue("/", streamconv.CodeInvalidFormat, map[string]string{"format": format})
	it.Cause = cause
	return streamconv.AppendIssues(nil, it)
}
