package cli

import (
	"context"
	"fmt"

	"github.com/light-merlin-dark/smart-find/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report the find wrapper, backup and PATH state without changing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd.Context(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(doctor.FormatText), "output format (text, toml, yaml, json)")
	return cmd
}

func (a *App) runStatus(ctx context.Context, format string) error {
	f, err := doctor.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("cli.status: %w", err)
	}

	l, err := a.layout()
	if err != nil {
		return err
	}

	report := &doctor.Report{
		FindScript: l.FindScript,
		Checks:     doctor.RunAll(ctx, a.Commander, l),
	}

	if f == doctor.FormatText {
		fmt.Fprintf(a.stdout(), "smart-find status (%s)\n", l.InstallDir)
	}
	return report.Encode(a.stdout(), f)
}
