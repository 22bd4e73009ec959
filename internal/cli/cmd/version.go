package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/confirm/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		renderer := styles.NewRenderer(styles.NewTheme(nil))
		fmt.Print(renderer.RenderVersion(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
