package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrsinham/visitnote/cmd/visitnote/wizard"
	"github.com/mrsinham/visitnote/internal/clipboard"
	"github.com/mrsinham/visitnote/internal/form"
	"github.com/mrsinham/visitnote/internal/report"
	"github.com/mrsinham/visitnote/internal/visitfile"
)

func newWizardCmd(a *app) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Fill in a visit form interactively",
		Long: `Starts the interactive wizard. The form can be preloaded from a visit file
with --from. On exit through 終了 the report is printed to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWizard(cmd, from)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "preload the form from a visit file (.yaml, .yml, .toml)")
	return cmd
}

func (a *app) runWizard(cmd *cobra.Command, from string) error {
	state := form.New()
	if from != "" {
		loaded, err := visitfile.Load(from)
		if err != nil {
			return err
		}
		state = loaded
		a.logger.Info("visit loaded", zap.String("path", from))
	}

	text, err := wizard.Run(wizard.Options{
		State:    state,
		Copier:   a.copier,
		Logger:   a.logger,
		SavePath: a.defaultOutput(),
	})
	if err != nil {
		return err
	}
	if text != "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		copyReport bool
		out        string
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print the report of a visit file",
		Long: `Loads a visit file and prints its report to stdout, or writes it to --out.
With --copy (or copy_on_render in the config) the report is also copied to
the clipboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args[0], out, copyReport || a.cfg.CopyOnRender)
		},
	}
	cmd.Flags().BoolVar(&copyReport, "copy", false, "copy the report to the clipboard")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the report to this file instead of stdout")
	return cmd
}

func (a *app) render(cmd *cobra.Command, path, out string, copyReport bool) error {
	state, err := visitfile.Load(path)
	if err != nil {
		return err
	}
	text := report.Build(state)
	a.logger.Info("report built", zap.String("path", path), zap.Int("length", len(text)))

	if out != "" {
		if err := os.WriteFile(out, []byte(text+"\n"), 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		printStatus(cmd.ErrOrStderr(), false, "%s に出力しました", out)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}

	if copyReport {
		err := a.copier.Copy(text)
		printStatus(cmd.ErrOrStderr(), err != nil, "%s", clipboard.Message(err))
		if err != nil {
			a.logger.Warn("copy failed", zap.Error(err))
			return err
		}
	}
	return nil
}

func newTemplateCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "template [PATH]",
		Short: "Write an empty visit file",
		Long: `Writes an empty visit file to PATH (default: default_output from the config).
The format follows the extension: .yaml, .yml or .toml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.defaultOutput()
			if len(args) == 1 {
				path = args[0]
			}
			return a.writeTemplate(cmd, path, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func (a *app) writeTemplate(cmd *cobra.Command, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	n, err := visitfile.Save(path, form.New())
	if err != nil {
		return err
	}
	a.logger.Info("template written", zap.String("path", path), zap.Int("bytes", n))
	printStatus(cmd.ErrOrStderr(), false, "%s を作成しました (%s)", path, humanize.Bytes(uint64(n)))
	return nil
}
