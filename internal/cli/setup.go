package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// setupTemplate는 dirprofile setup이 생성하는 기본 config.toml 내용이다.
const setupTemplate = `# dirprofile configuration file
# 모든 항목은 선택 사항이며, 주석 처리된 값이 기본값이다.

# store_path = "~/Library/Application Support/iTerm2/DynamicProfiles/dirprofile.json"
# assignments_path = "~/.config/dirprofile/presets.json"
# catalog_path = "/Applications/iTerm.app/Contents/Resources/ColorPresets.plist"
# preferences_path = "~/Library/Preferences/com.googlecode.iterm2.plist"
# command_timeout_seconds = 10
# log_level = "warn"
`

func (a *App) newSetupCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "설정 파일 템플릿을 생성한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	return cmd
}

// runSetup는 설정 파일 템플릿을 생성한다.
func (a *App) runSetup(cmd *cobra.Command, force bool) error {
	_, err := os.Stat(a.CfgPath)
	switch {
	case err == nil && !force:
		return fmt.Errorf("cli.setup: 설정 파일이 이미 존재합니다: %s", a.CfgPath)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("cli.setup: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(a.CfgPath), 0700); err != nil {
		return fmt.Errorf("cli.setup: 디렉토리 생성 실패: %w", err)
	}
	if err := os.WriteFile(a.CfgPath, []byte(setupTemplate), 0600); err != nil {
		return fmt.Errorf("cli.setup: 설정 파일 생성 실패: %w", err)
	}

	fmt.Fprintf(out(cmd), "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	fmt.Fprintln(out(cmd), "값을 수정한 후 dirprofile doctor로 환경을 확인하세요.")
	return nil
}
