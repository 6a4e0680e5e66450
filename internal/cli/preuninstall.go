package cli

import (
	"fmt"

	"github.com/light-merlin-dark/smart-find/internal/cleanup"
	"github.com/spf13/cobra"
)

func (a *App) newPreuninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preuninstall",
		Short: "Remove the find wrapper and restore the original find",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPreuninstall()
		},
	}
}

func (a *App) runPreuninstall() error {
	l, err := a.layout()
	if err != nil {
		return err
	}

	c := &cleanup.Cleaner{
		Layout:  l,
		Mutator: a.Mutator,
		Out:     a.stdout(),
		Trace:   a.trace(),
	}
	res, err := c.Run()
	if tw := a.trace(); tw != nil && res != nil {
		fmt.Fprintf(tw, "preuninstall: state=%s removed=%t restored=%t\n", res.State, res.Removed, res.Restored)
	}
	return err
}
