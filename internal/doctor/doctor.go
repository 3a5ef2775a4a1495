package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/dirprofile/internal/cmdexec"
	"github.com/hbjs97/dirprofile/internal/config"
	"github.com/hbjs97/dirprofile/internal/iterm"
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
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckBinaries는 필수 바이너리(defaults, plutil, git, osascript) 존재 여부를 확인한다.
func CheckBinaries(ctx context.Context, cmd cmdexec.Commander) []DiagResult {
	binaries := []struct {
		name     string
		severity Status
		fix      string
	}{
		{"defaults", StatusFail, "macOS 기본 도구입니다. PATH를 확인하세요"},
		{"plutil", StatusFail, "macOS 기본 도구입니다. PATH를 확인하세요"},
		{"git", StatusWarn, "설치: https://git-scm.com/downloads (없으면 badge에 경로를 표시)"},
		{"osascript", StatusWarn, "macOS 기본 도구입니다 (없으면 --delete에 경로 인자가 필요)"},
	}

	var results []DiagResult
	for _, b := range binaries {
		res := cmd.Run(ctx, "which", b.name)
		if !res.Success {
			results = append(results, DiagResult{
				Name:    b.name,
				Status:  b.severity,
				Message: fmt.Sprintf("%s 없음", b.name),
				Fix:     b.fix,
			})
			continue
		}
		results = append(results, DiagResult{
			Name:    b.name,
			Status:  StatusOK,
			Message: res.Trimmed(),
		})
	}
	return results
}

// CheckCatalog는 색상 프리셋 카탈로그 파일 존재 여부를 확인한다.
func CheckCatalog(path string) DiagResult {
	if !iterm.CatalogExists(path) {
		return DiagResult{
			Name:    "catalog",
			Status:  StatusFail,
			Message: fmt.Sprintf("카탈로그 없음: %s", path),
			Fix:     "iTerm2 설치 위치를 확인하거나 config.toml의 catalog_path를 수정",
		}
	}
	return DiagResult{
		Name:    "catalog",
		Status:  StatusOK,
		Message: path,
	}
}

// CheckDefaultProfile은 기본 프로필 id 조회가 가능한지 확인한다.
func CheckDefaultProfile(ctx context.Context, adapter *iterm.Adapter) DiagResult {
	res := adapter.DefaultBookmarkGUID(ctx)
	if !res.Success || res.Trimmed() == "" {
		return DiagResult{
			Name:    "default_profile",
			Status:  StatusFail,
			Message: "기본 프로필 id를 읽을 수 없음",
			Fix:     "iTerm2를 한 번 실행해 기본 프로필을 생성",
		}
	}
	return DiagResult{
		Name:    "default_profile",
		Status:  StatusOK,
		Message: res.Trimmed(),
	}
}

// CheckStoreDir는 Dynamic Profiles 디렉토리 존재 여부를 확인한다.
// 없어도 첫 생성 시 만들어지므로 경고로만 표시한다.
func CheckStoreDir(storePath string) DiagResult {
	dir := filepath.Dir(storePath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return DiagResult{
			Name:    "store_dir",
			Status:  StatusWarn,
			Message: fmt.Sprintf("디렉토리 없음: %s", dir),
			Fix:     "첫 프로필 생성 시 자동으로 만들어집니다",
		}
	}
	return DiagResult{
		Name:    "store_dir",
		Status:  StatusOK,
		Message: dir,
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfg *config.Config) []DiagResult {
	var results []DiagResult
	results = append(results, CheckBinaries(ctx, cmd)...)
	results = append(results, CheckCatalog(cfg.CatalogPath))
	results = append(results, CheckDefaultProfile(ctx, iterm.NewAdapter(cmd, cfg.PreferencesPath)))
	results = append(results, CheckStoreDir(cfg.StorePath))
	return results
}
