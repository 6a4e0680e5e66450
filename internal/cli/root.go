package cli

import (
	"io"
	"os"

	"github.com/light-merlin-dark/smart-find/internal/cmdexec"
	"github.com/light-merlin-dark/smart-find/internal/fsops"
	"github.com/light-merlin-dark/smart-find/internal/layout"
	"github.com/spf13/cobra"
)

// App은 CLI 명령이 공유하는 의존성이다. 테스트에서는 필드를 직접 주입한다.
type App struct {
	HomeDir   string // 비어 있으면 os.UserHomeDir를 사용한다.
	Commander cmdexec.Commander
	Mutator   fsops.Mutator
	Stdout    io.Writer
	Stderr    io.Writer
	Version   string

	verbose bool
}

// NewApp은 실제 파일시스템과 프로세스를 사용하는 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander: &cmdexec.RealCommander{},
		Mutator:   fsops.OSMutator{},
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Version:   "dev",
	}
}

// NewRootCmd는 smart-find-lifecycle의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "smart-find-lifecycle",
		Short:        "smart-find package install/uninstall hooks",
		Version:      a.Version,
		SilenceUsage: true,
	}
	cmd.SetOut(a.stdout())
	cmd.SetErr(a.stderr())

	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "print step traces to stderr")

	cmd.AddCommand(
		a.newPostinstallCmd(),
		a.newPreuninstallCmd(),
		a.newStatusCmd(),
	)
	return cmd
}

func (a *App) layout() (layout.Layout, error) {
	return layout.Resolve(a.HomeDir)
}

func (a *App) stdout() io.Writer {
	if a.Stdout == nil {
		return os.Stdout
	}
	return a.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr == nil {
		return os.Stderr
	}
	return a.Stderr
}

// trace는 --verbose일 때만 stderr writer를 반환한다.
func (a *App) trace() io.Writer {
	if !a.verbose {
		return nil
	}
	return a.stderr()
}
