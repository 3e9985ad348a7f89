package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chimlimhao/SpeechDataPrepTool/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speechprep",
	Short: "Speech data preparation API server",
	Long: `Speech Data Prep - a backend for collecting and preparing speech datasets.

The server manages recording projects, denoises uploaded audio with
DeepFilterNet and transcribes it through an external ASR service.

Features:
  • Project and recording management with per-file status tracking
  • Noise reduction via the deepFilter CLI with graceful fallback
  • Transcription through a pluggable HTTP ASR service
  • Pluggable blob storage (filesystem, MinIO, Supabase)`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig initializes the configuration for commands that need it
func loadConfig() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}
	return nil
}
