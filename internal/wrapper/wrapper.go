package wrapper

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Marker는 smart-find-setup이 생성한 래퍼 스크립트에 반드시 포함되는 문자열이다.
// 이 문자열이 없는 find 파일은 건드리지 않는다.
const Marker = "Smart find wrapper"

// State는 find 경로의 소유 상태다.
type State string

const (
	// StateAbsent는 파일이 없는 상태다.
	StateAbsent State = "absent"
	// StateForeign는 파일이 있지만 마커가 없는 상태다.
	StateForeign State = "foreign"
	// StateOwned는 마커가 있는 래퍼 스크립트다.
	StateOwned State = "owned"
)

// IsOwned는 내용에 마커가 포함되어 있는지 확인한다.
func IsOwned(content []byte) bool {
	return bytes.Contains(content, []byte(Marker))
}

// Inspect는 path의 래퍼 소유 상태를 판정한다.
// 파일이 없으면 에러 없이 StateAbsent를 반환한다.
func Inspect(path string) (State, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return StateAbsent, nil
	}
	if err != nil {
		return "", fmt.Errorf("wrapper.Inspect: %w", err)
	}
	if IsOwned(content) {
		return StateOwned, nil
	}
	return StateForeign, nil
}

// Exists는 path에 파일이 존재하는지 확인한다.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("wrapper.Exists: %w", err)
}
