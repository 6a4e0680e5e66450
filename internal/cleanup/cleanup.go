// Package cleanup removes the find wrapper before the smart-find package is
// uninstalled and restores the original find from its backup.
package cleanup

import (
	"errors"
	"fmt"
	"io"

	"github.com/light-merlin-dark/smart-find/internal/banner"
	"github.com/light-merlin-dark/smart-find/internal/fsops"
	"github.com/light-merlin-dark/smart-find/internal/layout"
	"github.com/light-merlin-dark/smart-find/internal/wrapper"
)

// ErrFilesystem는 정리 중 파일 조회/삭제/이름 변경이 실패했을 때의 sentinel error다.
var ErrFilesystem = errors.New("파일시스템 작업 실패")

// Result는 한 번의 정리 실행 결과다.
type Result struct {
	State    wrapper.State
	Removed  bool
	Restored bool
}

// Cleaner는 preuninstall 정리의 진입점이다.
type Cleaner struct {
	Layout  layout.Layout
	Mutator fsops.Mutator
	Out     io.Writer
	Trace   io.Writer // nil이면 추적 로그를 출력하지 않는다.
}

// Run은 정리를 한 번 수행한다. 재시도나 롤백은 없다.
// 마커가 없는 find는 경고 없이 그대로 둔다.
func (c *Cleaner) Run() (*Result, error) {
	if _, err := io.WriteString(c.Out, banner.CleanupHeader); err != nil {
		return nil, fmt.Errorf("cleanup.Run: %w", err)
	}

	res, err := c.clean()
	if err != nil {
		return res, err
	}

	if _, err := io.WriteString(c.Out, banner.CleanupFooter); err != nil {
		return res, fmt.Errorf("cleanup.Run: %w", err)
	}
	return res, nil
}

func (c *Cleaner) clean() (*Result, error) {
	findScript := c.Layout.FindScript

	state, err := wrapper.Inspect(findScript)
	if err != nil {
		return nil, fmt.Errorf("cleanup.Run: %w: %w", ErrFilesystem, err)
	}
	res := &Result{State: state}
	c.tracef("%s: %s", findScript, state)

	if state != wrapper.StateOwned {
		return res, nil
	}

	if err := c.Mutator.Remove(findScript); err != nil {
		return res, fmt.Errorf("cleanup.Run: %w: %w", ErrFilesystem, err)
	}
	res.Removed = true
	if _, err := io.WriteString(c.Out, banner.Removed(findScript)); err != nil {
		return res, fmt.Errorf("cleanup.Run: %w", err)
	}

	backup := c.Layout.BackupScript
	ok, err := wrapper.Exists(backup)
	if err != nil {
		return res, fmt.Errorf("cleanup.Run: %w: %w", ErrFilesystem, err)
	}
	if !ok {
		c.tracef("%s: missing, nothing to restore", backup)
		return res, nil
	}

	if err := c.Mutator.Rename(backup, findScript); err != nil {
		return res, fmt.Errorf("cleanup.Run: %w: %w", ErrFilesystem, err)
	}
	res.Restored = true
	if _, err := io.WriteString(c.Out, banner.Restored(findScript)); err != nil {
		return res, fmt.Errorf("cleanup.Run: %w", err)
	}
	return res, nil
}

func (c *Cleaner) tracef(format string, args ...any) {
	if c.Trace == nil {
		return
	}
	fmt.Fprintf(c.Trace, "cleanup: "+format+"\n", args...)
}
