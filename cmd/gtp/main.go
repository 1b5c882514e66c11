package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gtp/internal/cli"
	"gtp/internal/cli/commands"
	"gtp/internal/config"
)

var version = "dev"

func main() {
	// The SDK variable may come from a .env file next to the project
	_ = godotenv.Load()

	log := newLogger(os.Getenv("LOG_LEVEL"))

	rootCmd := &cobra.Command{
		Use:   "gtp",
		Short: "Parallel googletest suite processor",
		Long: `Discover the suites of a googletest binary, run parameterized suites in parallel
and all other suites sequentially, then merge the JSON reports into one verdict.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(cfg, log)
	cmds.Register(rootCmd, &flags, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
