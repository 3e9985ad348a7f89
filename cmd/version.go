package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chimlimhao/SpeechDataPrepTool/api/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("speechprep %s (%s)\n", version.Version, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
