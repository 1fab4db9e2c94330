package cli

import (
	"fmt"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/streamconv/model"
)

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the Request JSON Schema",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strict := a.cfg.Parse.UnknownKeys == "strict"
			b, err := j.MarshalIndent(model.RequestSchema(strict), "", "  ")
			if err != nil {
				return fmt.Errorf("schema: marshal: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)
			return err
		},
	}
}
