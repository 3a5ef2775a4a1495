// Package iterm queries the iTerm2 application and its preference store
// through external commands. Results are returned as opaque cmdexec.Result
// tuples; interpretation is left to the caller.
package iterm

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hbjs97/dirprofile/internal/cmdexec"
)

const (
	// PreferencesDomain는 iTerm2의 defaults 도메인이다.
	PreferencesDomain = "com.googlecode.iterm2"
	// DefaultCatalogPath는 앱 번들 안의 기본 색상 프리셋 카탈로그 위치다.
	DefaultCatalogPath = "/Applications/iTerm.app/Contents/Resources/ColorPresets.plist"

	activeProfileScript = `tell application "iTerm2" to get profile name of current session of current window`
)

// DefaultPreferencesPath는 iTerm2 preference plist의 기본 경로를 반환한다.
func DefaultPreferencesPath(home string) string {
	return filepath.Join(home, "Library", "Preferences", PreferencesDomain+".plist")
}

// DefaultStorePath는 dirprofile이 관리하는 Dynamic Profiles 문서의 기본 경로를 반환한다.
func DefaultStorePath(home string) string {
	return filepath.Join(home, "Library", "Application Support", "iTerm2", "DynamicProfiles", "dirprofile.json")
}

// Adapter는 iTerm2 관련 외부 명령을 Commander를 통해 실행한다.
type Adapter struct {
	cmd             cmdexec.Commander
	preferencesPath string
}

// NewAdapter는 새 iTerm2 Adapter를 생성한다.
func NewAdapter(cmd cmdexec.Commander, preferencesPath string) *Adapter {
	return &Adapter{cmd: cmd, preferencesPath: preferencesPath}
}

// DefaultBookmarkGUID는 기본 프로필의 Guid를 조회한다.
func (a *Adapter) DefaultBookmarkGUID(ctx context.Context) cmdexec.Result {
	return a.cmd.Run(ctx, "defaults", "read", PreferencesDomain, "Default Bookmark Guid")
}

// Bookmarks는 전체 프로필 목록을 JSON으로 변환해 조회한다.
func (a *Adapter) Bookmarks(ctx context.Context) cmdexec.Result {
	return a.cmd.Run(ctx, "plutil", "-extract", "New Bookmarks", "json", "-o", "-", a.preferencesPath)
}

// CatalogExists는 색상 프리셋 카탈로그 파일이 디스크에 있는지 확인한다.
func CatalogExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ColorPresets는 색상 프리셋 카탈로그 파일을 JSON으로 변환해 조회한다.
func (a *Adapter) ColorPresets(ctx context.Context, catalogPath string) cmdexec.Result {
	return a.cmd.Run(ctx, "plutil", "-convert", "json", "-o", "-", catalogPath)
}

// ActiveProfileName은 현재 세션의 프로필 이름을 조회한다.
func (a *Adapter) ActiveProfileName(ctx context.Context) cmdexec.Result {
	return a.cmd.Run(ctx, "osascript", "-e", activeProfileScript)
}
