package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/ui/output"
	"go.trai.ch/conda-project/internal/ui/style"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every environment has an up-to-date lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Check(cmd.Context(), directory(cmd))
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			r := style.Renderer(out)
			for _, res := range report.Results {
				if res.OK() {
					_, _ = fmt.Fprintf(out, "%s %s\n", style.Paint(r, style.Check, style.Green), res.Environment)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s %s\n", style.Paint(r, style.Cross, style.Red), res.Problem)
				_, _ = fmt.Fprintf(out, "  %s %s\n", style.Paint(r, style.Arrow, style.Slate), res.Hint)
			}

			if !report.OK() {
				return domain.ErrCheckFailed
			}
			return nil
		},
	}
}
