package cmd

import (
	"berquerant/excel-launcher-go/config"
	"berquerant/excel-launcher-go/errorx"
	"berquerant/excel-launcher-go/exit"
	"berquerant/excel-launcher-go/filepathx"
	"berquerant/excel-launcher-go/launcher"
	"berquerant/excel-launcher-go/logx"
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	rootCmd = &cobra.Command{
		Use:   "excel-launcher",
		Short: "Prepare Python and run the Excel processor.",
		Long: `excel-launcher checks that Python is installed, installs pandas, openpyxl, pyxlsb and xlrd,
then runs simple_excel_processor.py placed next to excel-launcher and waits for a key.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			kind, _ := cmd.Flags().GetString("logger")
			logx.Setup(logx.Kind(kind), debug)
			cmd.SetOut(os.Stdout)
			displayFlags(cmd.Flags())
		},
		RunE: run,
	}
)

func Execute() error {
	defer func() {
		_ = logx.Sync()
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// the launcher has already told the user
		if errors.Is(err, launcher.ErrInterpreterNotFound) {
			logx.Debug("execute", logx.Err(err))
		} else {
			logx.Error("execute", logx.Err(err))
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logs")
	rootCmd.PersistentFlags().String("logger", string(logx.KindBlock), "Log backend [block, zap]")
	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file, - to read from stdin (default launcher.yml in the launcher directory if exists)")
	rootCmd.PersistentFlags().String("dir", "", "Launcher directory (default directory of the executable)")
	fail(rootCmd.MarkPersistentFlagFilename("config", "yml", "yaml"))
	fail(rootCmd.MarkPersistentFlagDirname("dir"))
	rootCmd.Flags().Bool("no-pause", false, "Do not wait for a key")
}

func run(cmd *cobra.Command, _ []string) error {
	baseDir, err := getBaseDir(cmd)
	if err != nil {
		return err
	}
	cfg, err := parseConfigFromFlag(cmd, baseDir)
	if err != nil {
		return err
	}
	noPause, _ := cmd.Flags().GetBool("no-pause")
	logx.Info("launch",
		logx.S("dir", baseDir.String()),
		logx.SS("interpreter", cfg.Interpreter),
		logx.SS("installer", cfg.Installer),
		logx.S("script", cfg.Script),
		logx.B("no_pause", noPause),
	)

	return launcher.New(&launcher.Argument{
		Config:  cfg,
		BaseDir: baseDir,
		Stdin:   os.Stdin,
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		NoPause: noPause,
	}).Run(cmd.Context())
}

func displayFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		logx.Debug(
			"flags",
			logx.S("name", f.Name),
			logx.B("changed", f.Changed),
			logx.S("value", f.Value.String()),
		)
	})
}

// getBaseDir returns the directory the launcher runs in.
func getBaseDir(cmd *cobra.Command) (filepathx.DirPath, error) {
	if v, _ := cmd.Flags().GetString("dir"); v != "" {
		p, err := filepathx.NewPath(v)
		if err != nil {
			return filepathx.DirPath{}, errorx.Errorf(err, "invalid dir")
		}
		return p.DirPath(), nil
	}
	exe, err := filepathx.Executable()
	if err != nil {
		return filepathx.DirPath{}, errorx.Errorf(err, "locate executable")
	}
	return exe.DirPath(), nil
}

func parseConfigFromFlag(cmd *cobra.Command, baseDir filepathx.DirPath) (*config.Config, error) {
	opt, _ := cmd.Flags().GetString("config")
	logx.Info("config", logx.S("value", opt))
	switch opt {
	case "-":
		return parseConfigFromStdin()
	case "":
		path := baseDir.Join(config.DefaultFile).FilePath()
		if !path.Exist() {
			logx.Debug("no config file", logx.S("path", path.String()))
			return config.Default()
		}
		return parseConfigFile(path.String())
	default:
		return parseConfigFile(opt)
	}
}

func parseConfigFromStdin() (*config.Config, error) {
	cfg, err := config.Parse(os.Stdin)
	if err != nil {
		return nil, errorx.Errorf(err, "load config from stdin")
	}
	return cfg, nil
}

func parseConfigFile(cfgFile string) (*config.Config, error) {
	logx.Debug("parse config", logx.S("path", cfgFile))
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, errorx.Errorf(err, "load config file %s", cfgFile)
	}
	return cfg, nil
}

func fail(err error) {
	if err == nil {
		return
	}
	logx.Error("fail", logx.Err(err))
	exit.Fail()
}
