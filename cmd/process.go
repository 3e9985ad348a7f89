package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/chimlimhao/SpeechDataPrepTool/pkg/config"
)

var (
	processProjectID string
	processUserID    string
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the processing pipeline for one project",
	Long: `Denoise and transcribe every pending recording of a project without
starting the API server. Useful for re-running a project after fixing
its recordings or the external tooling.

Example:
  speechprep process --project 7f3b... --user auth0|abc123`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&processProjectID, "project", "", "project ID to process (required)")
	processCmd.Flags().StringVar(&processUserID, "user", "", "owning user ID (required)")
	processCmd.MarkFlagRequired("project")
	processCmd.MarkFlagRequired("user")
}

func runProcess(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()
	db, deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	summary, err := deps.Runner.Run(ctx, processProjectID, processUserID)
	if err != nil {
		return fmt.Errorf("processing run failed: %w", err)
	}

	log.Printf("[INFO] Processed %d/%d files, project status: %s",
		summary.ProcessedFiles, summary.TotalFiles, summary.Status)
	return nil
}
