// Package logging builds the slog logger used for diagnostics on stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmLog "github.com/charmbracelet/log"
)

// EnvLevel은 설정 파일과 --verbose보다 우선하는 로그 레벨 환경변수다.
const EnvLevel = "DIRPROFILE_LOG_LEVEL"

// New는 charmbracelet/log 핸들러를 쓰는 *slog.Logger를 생성한다.
// 우선순위: EnvLevel > verbose(debug) > level.
func New(w io.Writer, level string, verbose bool) (*slog.Logger, error) {
	if verbose {
		level = "debug"
	}
	if env := strings.TrimSpace(os.Getenv(EnvLevel)); env != "" {
		level = env
	}
	lvl, err := charmLog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("logging.New: 알 수 없는 로그 레벨 %q", level)
	}

	handler := charmLog.NewWithOptions(w, charmLog.Options{
		Level:           lvl,
		Prefix:          "dirprofile",
		ReportTimestamp: lvl <= charmLog.DebugLevel,
	})
	return slog.New(handler), nil
}

// Discard는 아무것도 출력하지 않는 로거를 반환한다.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
