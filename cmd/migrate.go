package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/database"
	"github.com/chimlimhao/SpeechDataPrepTool/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run GORM auto migration for all application models.

The serve command migrates on startup as well; this command exists for
preparing a database without starting the server.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	log.Printf("[INFO] Migrations applied to %s", cfg.Database.Path)
	return nil
}
