package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/reoring/streamconv/convert"
)

func (a *app) convert(cmd *cobra.Command, _ []string) error {
	a.log.Debug("converting", slog.String("input", a.cfg.Input))
	req, err := convert.Run(cmd.Context(), a.cfg.Input, cmd.OutOrStdout(), a.parseOpt())
	if err != nil {
		a.report("convert failed", err)
		return err
	}
	a.log.Debug("converted",
		slog.String("input", a.cfg.Input),
		slog.Int("gifts", len(req.Gifts)),
	)
	return nil
}
