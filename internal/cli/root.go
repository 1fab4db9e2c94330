// Package cli wires configuration, logging and the conversion pipeline into
// the streamconv command tree.
package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	streamconv "github.com/reoring/streamconv"
	"github.com/reoring/streamconv/i18n"
	"github.com/reoring/streamconv/internal/config"
	"github.com/reoring/streamconv/internal/lib/sl"
	"github.com/reoring/streamconv/internal/logger"
)

const appName = "streamconv"

// Exit codes returned by ExitCode.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// ExitCode maps an Execute error onto the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// app is the state shared by every command once PersistentPreRunE has run.
type app struct {
	input    string
	logLevel string
	strict   bool

	cfg *config.Config
	log *slog.Logger
}

func NewRootCmd(version, buildDate string) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   appName,
		Short: "Convert a Request document from JSON to YAML and TOML",
		Long: "streamconv reads one JSON Request document, validates it and writes\n" +
			"its YAML rendering followed by its TOML rendering to stdout.",
		Args:              noArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.convert,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	f := root.PersistentFlags()
	f.StringVarP(&a.input, "input", "i", "", "input JSON file (default from config, request.json)")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.BoolVar(&a.strict, "strict", false, "reject keys the Request schema does not declare")

	root.AddCommand(newVersionCmd(version, buildDate))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newSchemaCmd(a))
	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = a.input
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("strict") && a.strict {
		cfg.Parse.UnknownKeys = "strict"
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}

	log, err := logger.NewWithWriter(cmd.ErrOrStderr(), appName, &logger.Config{
		Encoding: cfg.Log.Encoding,
		Level:    cfg.Log.Level,
	})
	if err != nil {
		return err
	}
	i18n.SetLanguage(cfg.Lang)

	a.cfg = cfg
	a.log = log.With(slog.String("env", cfg.Env))
	return nil
}

// parseOpt returns the decoder options with warnings routed to the logger.
func (a *app) parseOpt() streamconv.ParseOpt {
	opt := a.cfg.ParseOpt()
	opt.OnWarning = func(it streamconv.Issue) {
		a.log.Warn("input warning", sl.Issue(it.Path, it.Code, it.Message)...)
	}
	return opt
}

// report logs err once per issue, or once when it carries none.
func (a *app) report(msg string, err error) {
	iss, ok := streamconv.AsIssues(err)
	if !ok {
		a.log.Error(msg, slog.String("kind", streamconv.KindOf(err).String()), sl.Err(err))
		return
	}
	for _, it := range iss {
		a.log.Error(msg, sl.Issue(it.Path, it.Code, it.Message)...)
	}
}
