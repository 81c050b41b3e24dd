package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mrsinham/visitnote/internal/clipboard"
	"github.com/mrsinham/visitnote/internal/config"
	"github.com/mrsinham/visitnote/internal/logging"
)

// version is set at build time via -ldflags
var version = "dev"

// app carries what the commands share once the root command has loaded the
// settings.
type app struct {
	configPath string
	v          *viper.Viper
	cfg        *config.Config
	logger     *zap.Logger
	copier     clipboard.Copier
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "visitnote",
		Short: "Fill in a home-visit form and produce its report",
		Long: `visitnote records a home-visit form (vitals, medication, hospital visits,
patient state) and turns it into the plain-text report pasted into the
nursing record.

Run without arguments to start the interactive wizard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWizard(cmd, "")
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $HOME/.visitnote.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-file", "", "write JSON logs to this file (disabled when empty)")

	root.AddCommand(
		newWizardCmd(a),
		newRenderCmd(a),
		newTemplateCmd(a),
		newVersionCmd(),
	)
	return root
}

// load merges defaults, the config file, the environment and the flags,
// then builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	a.v = config.New()
	flags := cmd.Root().PersistentFlags()
	if err := a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")); err != nil {
		return err
	}
	if err := a.v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file")); err != nil {
		return err
	}

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))

	if a.copier == nil {
		a.copier = clipboard.System{Terminal: os.Stderr}
	}

	a.logger.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("default_output", cfg.DefaultOutput),
		zap.Bool("copy_on_render", cfg.CopyOnRender))
	return nil
}

// defaultOutput returns the configured visit file path. A relative path set
// in a config file is taken relative to that file.
func (a *app) defaultOutput() string {
	out := a.cfg.DefaultOutput
	if dir := config.ConfigDir(a.v); dir != "" && !filepath.IsAbs(out) && a.v.InConfig(config.KeyDefaultOutput) {
		return filepath.Join(dir, out)
	}
	return out
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
)

func printStatus(w io.Writer, failed bool, format string, args ...any) {
	c := successColor
	if failed {
		c = failureColor
	}
	c.Fprintf(w, format+"\n", args...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "visitnote %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
