package cli

import (
	"fmt"

	"github.com/light-merlin-dark/smart-find/internal/banner"
	"github.com/spf13/cobra"
)

func (a *App) newPostinstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "postinstall",
		Short: "Print the post-install instructions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPostinstall()
		},
	}
}

// runPostinstall은 설치 안내 문구를 출력한다. 외부 상태를 변경하지 않는다.
func (a *App) runPostinstall() error {
	if err := banner.WriteInstall(a.stdout()); err != nil {
		return fmt.Errorf("cli.postinstall: %w", err)
	}
	return nil
}
