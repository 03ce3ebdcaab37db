// Package cli implements the command line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
	"github.com/custodia-labs/gpdf/internal/core/ports/driving"
	"github.com/custodia-labs/gpdf/internal/logger"
)

// Exit codes: 1 for failures including no usable inputs, 2 for an
// invalid pattern.
const (
	exitOK             = 0
	exitError          = 1
	exitInvalidPattern = 2
)

// defaultContextWindow is the context size on each side of a match when
// neither the flag nor configuration sets one.
const defaultContextWindow = 120

// Services and version are injected at wiring time.
var (
	grepService    driving.GrepService
	historyService driving.HistoryService
	configStore    driven.ConfigStore

	version = "dev"
)

// Root command flags.
var (
	contextWindow int
	htmlFlag      bool
	htmlPath      string
	mergeFlag     bool
	mergePath     string
	titleFlag     string
	reportFlag    bool
	outputDir     string
	copyPDFs      bool
	verboseFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "gpdf <pattern> [path ...]",
	Short: "grep-like search for PDFs",
	Long: `Searches PDF collections page by page with a case-insensitive regular
expression and reports every match with highlighted context.

Paths may be PDF files or directories; directories expand to the PDF
files directly inside them, and with no paths the current directory is
searched. Beyond the terminal output, matches can be assembled into an
HTML index (--html), a merged PDF of all matching pages (--merge), or a
self-contained report bundle of both plus the source files (--report).`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGrep,
}

func init() {
	flags := rootCmd.Flags()

	// "help" is registered without a shorthand so -h stays free for
	// --html; --help keeps working through cobra's help handling.
	flags.Bool("help", false, "show this help message and exit")

	flags.IntVarP(&contextWindow, "context", "c", defaultContextWindow, "context window size")
	flags.BoolVarP(&htmlFlag, "html", "h", false, "write an HTML index of all matches")
	flags.StringVar(&htmlPath, "html-path", "", "write html index to path")
	flags.BoolVarP(&mergeFlag, "merge", "m", false, "merge all matching pages into one PDF")
	flags.StringVar(&mergePath, "merge-path", "", "write merged pdf to path")
	flags.StringVar(&titleFlag, "name", "", "title for the HTML report")
	flags.BoolVar(&reportFlag, "report", false, "create a self-contained report bundle")
	flags.StringVar(&outputDir, "output-dir", "", "directory for generated artifacts")
	flags.BoolVar(&copyPDFs, "copy-pdfs", false, "copy matched source PDFs into the output directory")

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetServices wires the driving ports consumed by the commands.
func SetServices(grep driving.GrepService, history driving.HistoryService, config driven.ConfigStore) {
	grepService = grep
	historyService = history
	configStore = config
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		if errors.Is(err, domain.ErrInvalidPattern) {
			return exitInvalidPattern
		}
		return exitError
	}
	return exitOK
}

func runGrep(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verboseFlag)

	if grepService == nil {
		return errors.New("grep service not configured")
	}

	opts := domain.RunOptions{
		Pattern:       args[0],
		Paths:         args[1:],
		ContextWindow: contextWindow,
		HTML:          htmlFlag,
		HTMLPath:      htmlPath,
		Merge:         mergeFlag,
		MergePath:     mergePath,
		Title:         titleFlag,
		Report:        reportFlag,
		OutputDir:     outputDir,
		CopyPDFs:      copyPDFs,
	}
	applyConfigDefaults(cmd, &opts)

	result, err := grepService.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if result.MergePath != "" {
		cmd.Printf("Merged PDF written to %s\n", result.MergePath)
	}
	if result.HTMLPath != "" {
		cmd.Printf("HTML index written to %s\n", result.HTMLPath)
	}
	cmd.Printf("%d matches in %d files\n", len(result.Records), result.FilesScanned)

	return nil
}

// applyConfigDefaults fills options from the config file for flags the
// user did not set on the command line.
func applyConfigDefaults(cmd *cobra.Command, opts *domain.RunOptions) {
	if configStore == nil {
		return
	}
	flags := cmd.Flags()

	if !flags.Changed("context") {
		if v := configStore.GetInt("search.context"); v > 0 {
			opts.ContextWindow = v
		}
	}
	if !flags.Changed("output-dir") {
		if v := configStore.GetString("output.dir"); v != "" {
			opts.OutputDir = v
		}
	}
	if !flags.Changed("name") {
		if v := configStore.GetString("report.title"); v != "" {
			opts.Title = v
		}
	}
	if !flags.Changed("copy-pdfs") && configStore.GetBool("output.copy_pdfs") {
		opts.CopyPDFs = true
	}
}
