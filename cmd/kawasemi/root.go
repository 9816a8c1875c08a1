package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harunnryd/kawasemi/internal/config"
	"github.com/harunnryd/kawasemi/internal/logger"
	"github.com/harunnryd/kawasemi/internal/model"
	anthropicProvider "github.com/harunnryd/kawasemi/internal/model/providers/anthropic"
	"github.com/harunnryd/kawasemi/internal/render"
	"github.com/harunnryd/kawasemi/internal/runner"
	"github.com/harunnryd/kawasemi/internal/toolset"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// errUsage marks the no-prompt path: usage text already printed, exit
// status 1, no extra error line.
var errUsage = errors.New("usage")

var rootCmd = &cobra.Command{
	Use:   "kawasemi [prompt...]",
	Short: "Kawasemi Claude Tool-Use CLI",
	Long: `Kawasemi sends one prompt to Claude with advanced tool-use beta
features enabled (tool search, programmatic tool calling, tool use
examples) and prints the structured response.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd)
		if err != nil {
			return err
		}

		logger.Setup(cfg.Server.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			printUsage(cmd.OutOrStdout())
			return errUsage
		}

		prompt := strings.Join(args, " ")
		return runPrompt(cmd, prompt)
	},
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "Usage: kawasemi 'your prompt'")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  kawasemi 'Analyze src/core/*.ts files and find patterns'")
	fmt.Fprintln(out, "  kawasemi 'Search KB for react streaming and summarize'")
}

func runPrompt(cmd *cobra.Command, prompt string) error {
	selectedModel, err := cmd.Flags().GetString("model")
	if err != nil {
		return err
	}
	if selectedModel == "" {
		selector := model.NewSelector(cfg.Models.Default, cfg.Models.Advanced, cfg.Selector.Triggers)
		selectedModel = selector.Select(prompt)
	}

	provider := anthropicProvider.New(cfg.Models.APIKey)
	renderer := render.New(cmd.OutOrStdout())
	run := runner.New(provider, renderer, runner.Options{
		Tools:     toolset.Default(),
		Betas:     cfg.Models.Betas,
		MaxTokens: cfg.Models.MaxTokens,
	})

	ctx := logger.WithTraceID(cmd.Context(), logger.NewTraceID())
	resp, runErr := run.Run(ctx, prompt, selectedModel)

	saveTranscript(ctx, prompt, selectedModel, resp, runErr)

	// Runner failures surface as printed text only; the process still
	// exits 0 so the interface stays scriptable the same way on both
	// paths. Exit 1 is reserved for the no-prompt usage case.
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kawasemi/config.yaml)")
	rootCmd.PersistentFlags().String("server.log_level", config.DefaultServerLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringP("model", "m", "", "model id (overrides keyword-based selection)")
}
