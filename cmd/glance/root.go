// Root command for the glance CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/glance/internal/paths"
	"github.com/mesh-intelligence/glance/internal/sqlread"
	"github.com/mesh-intelligence/glance/pkg/glance"
)

// Global flag values.
var (
	flagDatabase  string
	flagConfigDir string
	flagJSON      bool
	flagVerbose   bool
)

// Set by PersistentPreRunE for all subcommands.
var (
	logger *zap.Logger
	engine *sqlread.Engine
)

var rootCmd = &cobra.Command{
	Use:   "glance",
	Short: "Glance is a read-only inspector for SQLite databases",
	Long: `Glance answers read-only questions about a SQLite database file:
which tables exist, what their columns look like, and what a SELECT
returns. Anything carrying write or DDL intent is rejected before it
reaches the database.`,
	Version:           glance.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initEngine,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDatabase, "database", "d", "",
		"path to the SQLite database file (overrides config and "+paths.EnvDatabasePath+")")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "",
		"configuration directory (default: $(CWD)/"+paths.DefaultConfigDirName+")")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(rowsCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(serveCmd)
}

// initEngine resolves configuration and the database path once, then
// builds the engine that all subcommands share. The resolved path is
// threaded into the engine explicitly; nothing reads it from ambient
// state afterward.
func initEngine(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	var err error
	logger, err = newLogger()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := paths.ResolveDatabasePath(flagDatabase, cfg.GetString(cfgKeyDatabase), "")
	if err != nil {
		return err
	}

	engine = sqlread.NewEngine(dbPath, logger)
	logger.Debug("engine ready", zap.String("database", dbPath))
	return nil
}

func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}
