package git

import (
	"context"

	"github.com/hbjs97/dirprofile/internal/cmdexec"
)

// Adapter는 git CLI를 Commander를 통해 실행한다.
type Adapter struct {
	cmd cmdexec.Commander
}

// NewAdapter는 새 Git Adapter를 생성한다.
func NewAdapter(cmd cmdexec.Commander) *Adapter {
	return &Adapter{cmd: cmd}
}

// CurrentBranch는 dir의 현재 브랜치명을 조회한다. detached HEAD이면 stdout이 비어있다.
// 조회는 index 잠금을 잡지 않는다.
func (a *Adapter) CurrentBranch(ctx context.Context, dir string) cmdexec.Result {
	env := map[string]string{"GIT_OPTIONAL_LOCKS": "0"}
	return a.cmd.RunWithEnv(ctx, env, "git", "-C", dir, "branch", "--show-current")
}
