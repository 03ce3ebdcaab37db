package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches",
	Long:  `Lists recorded search runs, newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No recorded searches.")
		return nil
	}

	cmd.Printf("%-20s  %-24s  %7s  %7s  %s\n", "WHEN", "PATTERN", "FILES", "MATCHES", "ARTIFACTS")
	for _, run := range runs {
		artifacts := "-"
		switch {
		case run.HTMLPath != "" && run.MergePath != "":
			artifacts = "html, pdf"
		case run.HTMLPath != "":
			artifacts = "html"
		case run.MergePath != "":
			artifacts = "pdf"
		}
		cmd.Printf("%-20s  %-24s  %7d  %7d  %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			truncate(run.Pattern, 24),
			run.FilesScanned,
			run.MatchCount,
			artifacts,
		)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
