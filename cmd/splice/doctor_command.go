package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"splice/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check directories and external binaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			failed := 0
			for _, result := range preflight.RunAll(cfg) {
				if !result.Passed {
					failed++
				}
				fmt.Fprintln(out, renderCheckLine(result.Name, result.Passed, result.Detail, colorize))
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			fmt.Fprintln(out, "All checks passed")
			return nil
		},
	}
}
