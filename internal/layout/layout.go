// Package layout resolves the fixed filesystem locations shared by
// smart-find-setup, the find wrapper and the lifecycle hooks.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrHomeDir는 홈 디렉토리를 확인할 수 없을 때의 sentinel error다.
var ErrHomeDir = errors.New("홈 디렉토리 확인 실패")

const (
	// FindName은 래퍼 스크립트 파일 이름이다.
	FindName = "find"
	// BackupSuffix는 원본 find를 보관하는 백업 파일 접미사다.
	BackupSuffix = ".backup"
)

// Layout은 홈 디렉토리 기준으로 계산된 설치 경로 묶음이다.
type Layout struct {
	Home         string
	InstallDir   string
	FindScript   string
	BackupScript string
}

// FromHome은 주어진 홈 디렉토리에서 Layout을 계산한다.
func FromHome(home string) Layout {
	installDir := filepath.Join(home, ".local", "bin")
	findScript := filepath.Join(installDir, FindName)
	return Layout{
		Home:         home,
		InstallDir:   installDir,
		FindScript:   findScript,
		BackupScript: findScript + BackupSuffix,
	}
}

// Resolve는 home이 비어 있으면 현재 사용자의 홈 디렉토리로 Layout을 계산한다.
func Resolve(home string) (Layout, error) {
	if home != "" {
		return FromHome(home), nil
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return Layout{}, fmt.Errorf("layout.Resolve: %w: %w", ErrHomeDir, err)
	}
	return FromHome(h), nil
}
