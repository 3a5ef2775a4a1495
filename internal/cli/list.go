package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/hbjs97/dirprofile/internal/manager"
	"github.com/hbjs97/dirprofile/internal/preset"
	"github.com/hbjs97/dirprofile/internal/store"
	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "관리 중인 디렉토리 프로필을 표시한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *App) runList(cmd *cobra.Command) error {
	cfg, err := a.prepare(cmd)
	if err != nil {
		return err
	}
	st, _, err := store.Load(cfg.StorePath)
	if err != nil {
		return err
	}
	as, _, err := preset.LoadAssignments(cfg.AssignmentsPath)
	if err != nil {
		return err
	}

	entries := manager.List(st, as)
	if len(entries) == 0 {
		fmt.Fprintln(out(cmd), "관리 중인 프로필이 없습니다.")
		return nil
	}

	w := tabwriter.NewWriter(out(cmd), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tGUID\tPRESET")
	for _, e := range entries {
		p := e.Preset
		if p == "" {
			p = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Path, e.GUID, p)
	}
	return w.Flush()
}
