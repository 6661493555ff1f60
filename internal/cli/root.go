package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rualdi/rualdi/internal/config"
	"github.com/rualdi/rualdi/internal/resolver"
	"github.com/rualdi/rualdi/internal/shell"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envHelp = `ENVIRONMENT VARIABLES
    _RAD_ALIASES_DIR        Directory where the aliases file is stored
    _RAD_NO_ECHO            Set to 1 to not print the directory name before cd'ing to it
    _RAD_RESOLVE_SYMLINKS   Set to 1 to print physical directories (pwd -P)
    _RAD_COLOR              auto, always or never
`

// App은 CLI 실행에 필요한 의존성을 담는다. 비어 있는 필드는 실행 시 채워진다.
type App struct {
	// Config가 nil이면 환경변수와 플래그에서 로드한다.
	Config *config.Config
	// Cwd가 비어 있으면 os.Getwd를 쓴다.
	Cwd string
	// Home이 비어 있으면 현재 사용자의 홈을 쓴다.
	Home string
	// Shell이 비어 있으면 $SHELL에서 감지한다. 감지하지 못하면 셸 훅 진단을 건너뛴다.
	Shell string
	// Logger가 nil이면 stderr로 쓰는 logger를 만든다.
	Logger *logrus.Logger

	aliasesDir string
	verbose    bool
}

// NewRootCmd는 기본 App으로 rualdi CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return (&App{}).NewRootCmd()
}

// NewRootCmd는 rualdi CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rualdi",
		Short:        "Rualdi Allows Users to Leverage Directory Indirections",
		Long:         "Rualdi binds short aliases to directories and resolves them for a shell wrapper.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetUsageTemplate(cmd.UsageTemplate() + "\n" + envHelp)

	cmd.PersistentFlags().StringVar(&a.aliasesDir, "aliases-dir", "", "aliases directory (overrides $_RAD_ALIASES_DIR)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	cmd.AddCommand(
		a.newAddCmd(),
		a.newAddEnvCmd(),
		a.newRemoveCmd(),
		a.newRemoveEnvCmd(),
		a.newResolveCmd(),
		a.newResolveEnvCmd(),
		a.newListCmd(),
		a.newListEnvCmd(),
		a.newListAliasCompletionsCmd(),
		a.newListEnvCompletionsCmd(),
		a.newInitCmd(),
		a.newCompletionsCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

// setup은 명령 실행 전에 로거와 설정, 작업 디렉토리를 준비한다.
func (a *App) setup(cmd *cobra.Command) error {
	if a.Logger == nil {
		a.Logger = newLogger(cmd.ErrOrStderr())
	}
	if a.verbose {
		a.Logger.SetLevel(logrus.DebugLevel)
	}

	if a.Config == nil {
		v := viper.New()
		if err := v.BindPFlag(config.KeyAliasesDir, cmd.Flags().Lookup("aliases-dir")); err != nil {
			return fmt.Errorf("cli.setup: %w", err)
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		a.Config = cfg
	} else if a.aliasesDir != "" {
		a.Config.AliasesDir = a.aliasesDir
	}

	if a.Cwd == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("cli.setup: %w", err)
		}
		a.Cwd = cwd
	}
	if a.Home == "" {
		home, err := resolver.HomeDir()
		if err != nil {
			a.Logger.WithError(err).Warn("could not determine home directory")
		}
		a.Home = home
	}

	if a.Shell == "" {
		a.Shell = shell.DetectShell()
	}

	a.Logger.WithFields(logrus.Fields{
		"aliases_dir": a.Config.AliasesDir,
		"cwd":         a.Cwd,
		"shell":       a.Shell,
		"color":       a.Config.Color,
	}).Debug("configuration loaded")
	return nil
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.WarnLevel)
	return logger
}
