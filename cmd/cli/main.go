// Command cli runs the assistant pipeline from a terminal, without the HTTP
// layer or the database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"emotion-assistant/config"
	"emotion-assistant/internal/assistant"
	"emotion-assistant/pkg/log"
)

var sessionID string

var rootCmd = &cobra.Command{
	Use:   "cli",
	Short: "Talk to the assistant from a terminal",
	Long: `Runs the classification pipeline locally.

Available subcommands:
  chat      - REPL through the full router
  classify  - REPL printing the classified directives
  recommend - One-shot mood and food recommendation`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sessionID, "session", "cli", "session id used for the transcript and chat history")
	rootCmd.AddCommand(chatCmd, classifyCmd, recommendCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildAssistant loads config.yaml and wires the pipeline. Logs go to stderr
// at warn level so they do not interleave with replies.
func buildAssistant(ctx context.Context) (*assistant.Assistant, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	return assistant.Build(ctx, cfg, logger)
}
