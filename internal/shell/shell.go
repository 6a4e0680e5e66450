package shell

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// RCFile은 smart-find-setup이 PATH를 추가하는 셸 설정 파일이다.
type RCFile struct {
	Shell string
	Path  string
}

// RCFiles는 홈 디렉토리 기준 zsh, bash rc 파일 목록을 반환한다.
func RCFiles(home string) []RCFile {
	return []RCFile{
		{Shell: "zsh", Path: filepath.Join(home, ".zshrc")},
		{Shell: "bash", Path: filepath.Join(home, ".bashrc")},
	}
}

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// HasPathEntry는 rc 내용에 installDir를 PATH에 추가하는 줄이 있는지 확인한다.
// 주석 줄은 무시한다. ~, $HOME, ${HOME} 표기를 모두 인식한다.
func HasPathEntry(content []byte, home, installDir string) bool {
	rel, err := filepath.Rel(home, installDir)
	if err != nil {
		rel = ""
	}
	needles := []string{installDir}
	if rel != "" && !strings.HasPrefix(rel, "..") {
		rel = filepath.ToSlash(rel)
		needles = append(needles, "~/"+rel, "$HOME/"+rel, "${HOME}/"+rel)
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.Contains(line, "PATH") {
			continue
		}
		for _, n := range needles {
			if strings.Contains(line, n) {
				return true
			}
		}
	}
	return false
}

// CheckRCFile은 rc 파일을 읽어 PATH 항목 존재 여부를 반환한다.
// 파일이 없으면 (false, false, nil)이다.
func CheckRCFile(path, home, installDir string) (exists bool, hasEntry bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("shell.CheckRCFile: %w", err)
	}
	return true, HasPathEntry(data, home, installDir), nil
}
