package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hbjs97/dirprofile/internal/cmdexec"
	"github.com/hbjs97/dirprofile/internal/config"
	"github.com/hbjs97/dirprofile/internal/logging"
	"github.com/hbjs97/dirprofile/internal/picker"
	"github.com/spf13/cobra"
)

// App은 CLI 실행에 필요한 의존성을 담는다. 테스트에서는 필드를 직접 주입한다.
type App struct {
	// Commander가 nil이면 설정의 제한 시간을 쓰는 RealCommander를 만든다.
	Commander cmdexec.Commander
	CfgPath   string
	// FormRunner가 nil이면 huh 기반 구현을 쓴다.
	FormRunner picker.FormRunner
	// Logger가 nil이면 설정의 log_level로 stderr 로거를 만든다.
	Logger *slog.Logger
	// Pick은 무작위 프리셋 선택 함수다. nil이면 math/rand/v2.IntN.
	Pick func(n int) int

	verbose bool
}

// NewRootCmd는 기본 의존성으로 dirprofile CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	app := &App{CfgPath: config.DefaultPath(homeDir())}
	return app.NewRootCmd()
}

// NewRootCmd는 dirprofile CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	var (
		deleteFlag bool
		clearFlag  bool
		presetFlag string
		pickFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "dirprofile [path]",
		Short: "디렉토리별 iTerm2 프로필 관리자",
		Long: `dirprofile은 디렉토리마다 색상 프리셋이 적용된 iTerm2 Dynamic Profile을 만든다.
경로를 생략하면 현재 디렉토리를 사용한다.`,
		Example: `  dirprofile                         현재 디렉토리 프로필 생성/갱신
  dirprofile ~/src/app --preset "Tango Dark"
  dirprofile --delete                현재 활성 프로필(또는 현재 디렉토리) 삭제
  dirprofile --clear                 관리 중인 모든 데이터 삭제`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			switch {
			case clearFlag:
				return a.runClear(cmd)
			case deleteFlag:
				return a.runDelete(cmd, arg)
			default:
				return a.runCreate(cmd, arg, presetFlag, pickFlag)
			}
		},
	}

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = config.DefaultPath(homeDir())
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", defaultCfg, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "상세 출력")

	cmd.Flags().BoolVarP(&deleteFlag, "delete", "d", false, "프로필 삭제")
	cmd.Flags().BoolVar(&clearFlag, "clear", false, "관리 중인 모든 프로필과 프리셋 배정 삭제")
	cmd.Flags().StringVarP(&presetFlag, "preset", "p", "", "사용할 색상 프리셋 이름")
	cmd.Flags().BoolVar(&pickFlag, "pick", false, "색상 프리셋을 대화형으로 선택")
	cmd.MarkFlagsMutuallyExclusive("delete", "clear")
	cmd.MarkFlagsMutuallyExclusive("preset", "pick")

	cmd.AddCommand(
		a.newListCmd(),
		a.newDoctorCmd(),
		a.newSetupCmd(),
	)
	return cmd
}

// prepare는 설정을 로드하고 Logger와 Commander를 채운다.
func (a *App) prepare(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, err
	}
	if a.Logger == nil {
		logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, a.verbose)
		if err != nil {
			return nil, err
		}
		a.Logger = logger
	}
	if a.Commander == nil {
		a.Commander = &cmdexec.RealCommander{Timeout: cfg.CommandTimeout(), Logger: a.Logger}
	}
	a.Logger.Debug("config loaded", "path", a.CfgPath, "store", cfg.StorePath, "assignments", cfg.AssignmentsPath)
	return cfg, nil
}

func (a *App) formRunner() picker.FormRunner {
	if a.FormRunner == nil {
		return &picker.HuhFormRunner{}
	}
	return a.FormRunner
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
