package streamconv

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys.
	UnknownStrict                      // Reject unknown keys with an error.
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON keys).
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	Unknown    UnknownPolicy
	MaxDepth   int   // 0 disables the depth check.
	MaxBytes   int64 // 0 disables the size check.
	// OnWarning receives issues that do not stop parsing (Warn severity).
	OnWarning func(Issue)
}

// DefaultParseOpt mirrors the command line defaults.
func DefaultParseOpt() ParseOpt {
	return ParseOpt{
		Strictness: Strictness{OnDuplicateKey: Error},
		Unknown:    UnknownStrip,
		MaxDepth:   32,
		MaxBytes:   1 << 20,
	}
}
