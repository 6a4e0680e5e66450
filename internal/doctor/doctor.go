package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/light-merlin-dark/smart-find/internal/cmdexec"
	"github.com/light-merlin-dark/smart-find/internal/layout"
	"github.com/light-merlin-dark/smart-find/internal/shell"
	"github.com/light-merlin-dark/smart-find/internal/wrapper"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string `toml:"name" yaml:"name" json:"name"`
	Status  Status `toml:"status" yaml:"status" json:"status"`
	Message string `toml:"message" yaml:"message" json:"message"`
	Fix     string `toml:"fix,omitempty" yaml:"fix,omitempty" json:"fix,omitempty"`
}

// CheckWrapper는 find 래퍼의 소유 상태를 확인한다.
func CheckWrapper(l layout.Layout) DiagResult {
	state, err := wrapper.Inspect(l.FindScript)
	if err != nil {
		return DiagResult{
			Name:    "wrapper",
			Status:  StatusFail,
			Message: err.Error(),
		}
	}
	switch state {
	case wrapper.StateOwned:
		return DiagResult{
			Name:    "wrapper",
			Status:  StatusOK,
			Message: fmt.Sprintf("%s installed", l.FindScript),
		}
	case wrapper.StateForeign:
		return DiagResult{
			Name:    "wrapper",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s exists but was not created by smart-find", l.FindScript),
			Fix:     "inspect the file; uninstall will leave it untouched",
		}
	default:
		return DiagResult{
			Name:    "wrapper",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s not found", l.FindScript),
			Fix:     "run smart-find-setup",
		}
	}
}

// CheckBackup는 원본 find 백업 존재 여부를 확인한다.
// 래퍼가 설치되어 있는데 백업이 없으면 제거 후 복원할 대상이 없다.
func CheckBackup(l layout.Layout) DiagResult {
	ok, err := wrapper.Exists(l.BackupScript)
	if err != nil {
		return DiagResult{Name: "backup", Status: StatusFail, Message: err.Error()}
	}
	if ok {
		return DiagResult{
			Name:    "backup",
			Status:  StatusOK,
			Message: fmt.Sprintf("%s present", l.BackupScript),
		}
	}

	state, err := wrapper.Inspect(l.FindScript)
	if err == nil && state == wrapper.StateOwned {
		return DiagResult{
			Name:    "backup",
			Status:  StatusWarn,
			Message: "no backup; uninstall will remove the wrapper without restoring anything",
		}
	}
	return DiagResult{Name: "backup", Status: StatusOK, Message: "no backup"}
}

// CheckWhichFind는 셸에서 find가 래퍼로 해석되는지 확인한다.
func CheckWhichFind(ctx context.Context, cmd cmdexec.Commander, l layout.Layout) DiagResult {
	out, err := cmd.Run(ctx, "sh", "-c", "command -v find")
	if err != nil {
		return DiagResult{
			Name:    "which_find",
			Status:  StatusFail,
			Message: "find not found on PATH",
			Fix:     "check PATH",
		}
	}
	resolved := strings.TrimSpace(string(out))
	if resolved == l.FindScript {
		return DiagResult{
			Name:    "which_find",
			Status:  StatusOK,
			Message: resolved,
		}
	}
	return DiagResult{
		Name:    "which_find",
		Status:  StatusWarn,
		Message: fmt.Sprintf("find resolves to %s", resolved),
		Fix:     "reload your shell: exec zsh (or: exec bash)",
	}
}

// CheckRCFiles는 각 셸 rc 파일의 PATH 항목을 확인한다.
// PATH 항목 누락은 현재 셸($SHELL)의 rc 파일에서만 경고한다. 셸을 알 수 없으면 모두 경고한다.
func CheckRCFiles(l layout.Layout) []DiagResult {
	active := shell.DetectShell()
	var results []DiagResult
	for _, rc := range shell.RCFiles(l.Home) {
		name := "rc_" + rc.Shell
		exists, has, err := shell.CheckRCFile(rc.Path, l.Home, l.InstallDir)
		switch {
		case err != nil:
			results = append(results, DiagResult{Name: name, Status: StatusFail, Message: err.Error()})
		case !exists:
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusOK,
				Message: fmt.Sprintf("%s not present", rc.Path),
			})
		case has:
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusOK,
				Message: fmt.Sprintf("%s adds %s to PATH", rc.Path, l.InstallDir),
			})
		case active != "" && active != rc.Shell:
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusOK,
				Message: fmt.Sprintf("%s has no PATH entry for %s (not the active shell)", rc.Path, l.InstallDir),
			})
		default:
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s has no PATH entry for %s", rc.Path, l.InstallDir),
				Fix:     "run smart-find-setup",
			})
		}
	}
	return results
}

// RunAll은 모든 진단을 실행한다. 파일시스템을 변경하지 않는다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, l layout.Layout) []DiagResult {
	var results []DiagResult
	results = append(results, CheckWrapper(l))
	results = append(results, CheckBackup(l))
	results = append(results, CheckWhichFind(ctx, cmd, l))
	results = append(results, CheckRCFiles(l)...)
	return results
}
