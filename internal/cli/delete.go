package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/dirprofile/internal/config"
	"github.com/hbjs97/dirprofile/internal/iterm"
	"github.com/hbjs97/dirprofile/internal/manager"
	"github.com/hbjs97/dirprofile/internal/preset"
	"github.com/hbjs97/dirprofile/internal/profile"
	"github.com/hbjs97/dirprofile/internal/store"
	"github.com/spf13/cobra"
)

func (a *App) runDelete(cmd *cobra.Command, arg string) error {
	cfg, err := a.prepare(cmd)
	if err != nil {
		return err
	}

	// 삭제 경로에서 읽기 실패는 빈 문서로 취급한다. 변경이 없으면 쓰지 않으므로 원본은 보존된다.
	st, _, err := store.Load(cfg.StorePath)
	if err != nil {
		a.Logger.Warn("profile store unreadable, treating as empty", "err", err)
		st = store.New()
	}
	as, _, err := preset.LoadAssignments(cfg.AssignmentsPath)
	if err != nil {
		a.Logger.Warn("preset assignments unreadable, treating as empty", "err", err)
		as = preset.Assignments{}
	}

	path, err := a.deletePath(cmd.Context(), cfg, arg, st)
	if err != nil {
		return fmt.Errorf("cli.delete: %w", err)
	}

	r := manager.Delete(st, as, path)
	if r.ProfileRemoved {
		if err := st.Save(cfg.StorePath); err != nil {
			return err
		}
	}
	if r.AssignmentRemoved {
		if err := as.Save(cfg.AssignmentsPath); err != nil {
			return err
		}
	}

	if !r.Found() {
		fmt.Fprintf(out(cmd), "삭제할 프로필이 없습니다: %s\n", path)
		return nil
	}
	fmt.Fprintf(out(cmd), "프로필 삭제: %s%s\n", profile.NamePrefix, path)
	return nil
}

// deletePath는 삭제 대상 경로를 정한다.
// 인자 > 활성 iTerm2 프로필 (NamePrefix가 있고 store에서 찾은 경우) > 현재 디렉토리.
func (a *App) deletePath(ctx context.Context, cfg *config.Config, arg string, st *store.Store) (string, error) {
	if arg != "" {
		return targetPath(arg)
	}

	active := iterm.NewAdapter(a.Commander, cfg.PreferencesPath).ActiveProfileName(ctx)
	if active.Success {
		name := active.Trimmed()
		if strings.HasPrefix(name, profile.NamePrefix) {
			if path, ok := manager.ResolvePathFromActiveName(name, st); ok {
				a.Logger.Debug("resolved path from active profile", "name", name)
				return path, nil
			}
		}
	}
	return targetPath("")
}

func (a *App) runClear(cmd *cobra.Command) error {
	cfg, err := a.prepare(cmd)
	if err != nil {
		return err
	}
	for _, err := range manager.ClearAll(cfg.StorePath, cfg.AssignmentsPath) {
		a.Logger.Warn("clear failed", "err", err)
	}
	fmt.Fprintln(out(cmd), "모든 dirprofile 프로필과 프리셋 배정을 삭제했습니다")
	return nil
}
