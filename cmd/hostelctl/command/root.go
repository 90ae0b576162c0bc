package command

// root.go defines the root command for hostelctl, the operator tool that
// talks to the database directly.

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"hostelhub/database"
	"hostelhub/internal/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var verbose bool // Global flag for debug logging

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hostelctl",
	Short: "hostelctl - HostelHub operator tool",
	Long: `hostelctl manages a HostelHub deployment from the command line. It reads the
same environment (.env, DATABASE_URL, ...) as the API server and can:
- Apply or roll back database migrations
- Recompute dish recommendations
- Create hostels and user accounts

Use "hostelctl command --help" to see all available commands.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(recomputeCmd)
	rootCmd.AddCommand(createHostelCmd)
	rootCmd.AddCommand(createUserCmd)
}

// openDB loads config and connects without running migrations.
func openDB() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
