package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aref-vc/youtube-content-analyzer/agents/channel-insights"
)

var titleViews int64

var titleCmd = &cobra.Command{
	Use:   "title <text>",
	Short: "Score a single video title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		report := channelinsights.NewEngine(cfg).AnalyzeTitle(title, titleViews)
		return writeJSON(cmd.OutOrStdout(), report)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("channel-insights " + version)
	},
}

func init() {
	titleCmd.Flags().Int64Var(&titleViews, "views", 0, "View count used for performance insights")
	rootCmd.AddCommand(titleCmd, versionCmd)
}
