package cli

import (
	"github.com/light-merlin-dark/smart-find/internal/cleanup"
	"github.com/light-merlin-dark/smart-find/internal/layout"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrHomeDir는 홈 디렉토리를 확인할 수 없을 때의 sentinel error다.
	ErrHomeDir = layout.ErrHomeDir
	// ErrFilesystem는 정리 중 삭제/복원이 실패했을 때의 sentinel error다.
	ErrFilesystem = cleanup.ErrFilesystem
)
