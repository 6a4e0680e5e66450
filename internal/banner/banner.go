// Package banner holds the fixed console text printed by the lifecycle hooks.
package banner

import (
	"fmt"
	"io"
)

// Install은 패키지 설치 직후 출력하는 안내 문구다.
const Install = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃  Smart Find                        ┃
┃  Installation Complete!            ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛

The 'smart-find' command is now available globally.

IMPORTANT: To intercept the 'find' command system-wide:

  1. Run the following command:
     $ smart-find-setup

  2. Reload your shell:
     $ exec zsh
     (or: exec bash)

  3. Verify installation:
     $ which find
     Should show: ~/.local/bin/find

CONFIGURATION:

  • View ignored directories:    smart-find --config
  • Add custom ignore:            smart-find --add-ignore <dir>
  • Remove custom ignore:         smart-find --remove-ignore <dir>

UNINSTALL:

  To remove smart-find interception:
  $ find --uninstall
  (This only removes the interception, npm package remains)

  To completely remove:
  $ npm uninstall -g @light-merlin-dark/smart-find

For more info: https://github.com/light-merlin-dark/smart-find


`

// CleanupHeader는 정리 시작 시 출력하는 문구다.
const CleanupHeader = "\nSmart Find - Cleanup...\n\n"

// CleanupFooter는 정리 종료 시 항상 출력하는 문구다.
// 셸 rc 파일의 PATH 수정은 되돌리지 않는다는 안내를 포함한다.
const CleanupFooter = `
✅ Smart Find cleanup complete!

Note: PATH modifications in ~/.zshrc and ~/.bashrc remain.
      (They're harmless but you can remove them manually if desired)


`

// WriteInstall은 설치 안내 문구를 w에 출력한다.
func WriteInstall(w io.Writer) error {
	_, err := io.WriteString(w, Install)
	return err
}

// Removed는 래퍼 삭제 완료 줄이다.
func Removed(path string) string {
	return fmt.Sprintf("✅ Removed %s\n", path)
}

// Restored는 백업 복원 완료 줄이다.
func Restored(path string) string {
	return fmt.Sprintf("✅ Restored backup to %s\n", path)
}
