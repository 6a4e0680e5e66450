package cli

import (
	"errors"
)

// ExitCode는 smart-find-lifecycle의 종료 코드다.
// 패키지 매니저는 0이 아니면 라이프사이클 훅 실패로 처리한다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitFilesystem는 정리 중 파일시스템 작업 실패다.
	ExitFilesystem ExitCode = 2
	// ExitHomeDir는 홈 디렉토리 확인 실패다.
	ExitHomeDir ExitCode = 3
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrHomeDir):
		return ExitHomeDir
	case errors.Is(err, ErrFilesystem):
		return ExitFilesystem
	default:
		return ExitGeneral
	}
}
