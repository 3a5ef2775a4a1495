package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/dirprofile/internal/config"
	"github.com/hbjs97/dirprofile/internal/git"
	"github.com/hbjs97/dirprofile/internal/iterm"
	"github.com/hbjs97/dirprofile/internal/manager"
	"github.com/hbjs97/dirprofile/internal/preset"
	"github.com/hbjs97/dirprofile/internal/store"
	"github.com/spf13/cobra"
)

func (a *App) runCreate(cmd *cobra.Command, arg, explicitPreset string, pick bool) error {
	cfg, err := a.prepare(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	path, err := targetPath(arg)
	if err != nil {
		return fmt.Errorf("cli.create: %w", err)
	}

	st, _, err := store.Load(cfg.StorePath)
	if err != nil {
		return err
	}
	as, _, err := preset.LoadAssignments(cfg.AssignmentsPath)
	if err != nil {
		return err
	}

	if pick {
		explicitPreset, err = a.formRunner().RunPresetSelect(preset.Catalog, as[path])
		if err != nil {
			return err
		}
	}

	in := a.gatherCreateInputs(ctx, cfg, path)
	in.ExplicitPreset = explicitPreset
	in.Store = st
	in.Assignments = as
	in.Pick = a.Pick

	res, err := manager.Create(in)
	if err != nil {
		var merr *manager.Error
		if errors.As(err, &merr) && merr.Detail != "" {
			a.Logger.Debug("create failed", "path", path, "detail", merr.Detail)
		}
		return err
	}

	if err := res.Store.Save(cfg.StorePath); err != nil {
		return err
	}
	if err := res.Assignments.Save(cfg.AssignmentsPath); err != nil {
		return err
	}

	a.Logger.Info("profile written", "guid", res.Profile.GUID(), "store", cfg.StorePath)
	fmt.Fprintf(out(cmd), "프로필 생성: %s (프리셋: %s, badge: %v)\n", res.Profile.Name(), res.Preset, res.Profile["Badge Text"])
	return nil
}

// gatherCreateInputs는 외부 조회를 순서대로 실행한다. 조회 하나가 실패하면
// 이후 조회는 실행하지 않고, 실패 결과는 manager.Create가 보고한다.
func (a *App) gatherCreateInputs(ctx context.Context, cfg *config.Config, path string) manager.CreateInputs {
	host := iterm.NewAdapter(a.Commander, cfg.PreferencesPath)
	in := manager.CreateInputs{Path: path}

	if in.DefaultGUID = host.DefaultBookmarkGUID(ctx); !in.DefaultGUID.Success {
		return in
	}
	if in.Bookmarks = host.Bookmarks(ctx); !in.Bookmarks.Success {
		return in
	}
	if in.CatalogExists = iterm.CatalogExists(cfg.CatalogPath); !in.CatalogExists {
		return in
	}
	if in.Catalog = host.ColorPresets(ctx, cfg.CatalogPath); !in.Catalog.Success {
		return in
	}

	branch := git.NewAdapter(a.Commander).CurrentBranch(ctx, path)
	if !branch.Success {
		a.Logger.Debug("branch query failed, using path as badge", "path", path)
	}
	in.Branch = &branch
	return in
}

// targetPath는 arg의 절대 경로를 반환한다. arg가 비어있으면 현재 디렉토리다.
func targetPath(arg string) (string, error) {
	if arg == "" {
		return os.Getwd()
	}
	return filepath.Abs(arg)
}
