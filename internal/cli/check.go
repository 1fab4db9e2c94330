package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	streamconv "github.com/reoring/streamconv"
	"github.com/reoring/streamconv/convert"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the input without writing any output document",
		Long: "check decodes and validates the input. Decoding stops at the first\n" +
			"duplicate key; check then lists every duplicate key in the document.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dec, err := convert.NewDecoder(a.parseOpt())
			if err != nil {
				return err
			}
			data, err := os.ReadFile(a.cfg.Input)
			if err != nil {
				err = errors.Join(streamconv.ErrRead, err)
				a.report("check failed", err)
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := dec.Decode(cmd.Context(), data); err != nil {
				iss, ok := streamconv.AsIssues(err)
				if ok && len(iss) > 0 && iss[0].Code == streamconv.CodeDuplicateKey {
					if dups := streamconv.DetectJSONDuplicateKeysBytes(data, -1); len(dups) > 0 {
						iss, err = dups, dups
					}
				}
				for _, it := range iss {
					fmt.Fprintf(out, "%s\t%s\t%s\n", it.Path, it.Code, it.Message)
				}
				a.report("check failed", err)
				return err
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}
