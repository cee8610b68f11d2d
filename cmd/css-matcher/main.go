package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	balance "github.com/walteh/css-matcher/cmd/css-matcher/balance"
	match_caret "github.com/walteh/css-matcher/cmd/css-matcher/match-caret"
	scan_tokens "github.com/walteh/css-matcher/cmd/css-matcher/scan-tokens"
	split_value "github.com/walteh/css-matcher/cmd/css-matcher/split-value"
	cssdebug "github.com/walteh/css-matcher/pkg/debug"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func NewRootCommand(fs afero.Fs) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "css-matcher",
		Short: "Find balanced selector and property ranges in stylesheets",
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "debug", false, "enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(cssdebug.WithLogger(ctx, cmd.ErrOrStderr(), cssdebug.Options{
			Debug:     verbose,
			WithColor: !color.NoColor,
		}))
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	rootCmd.AddCommand(scan_tokens.NewScanCommand(fs))
	rootCmd.AddCommand(match_caret.NewMatchCommand(fs))
	rootCmd.AddCommand(balance.NewBalanceCommand(fs))
	rootCmd.AddCommand(split_value.NewSplitCommand(fs))

	rootCmd.SilenceUsage = true

	return rootCmd
}

func run() error {
	rootCmd := NewRootCommand(afero.NewOsFs())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
