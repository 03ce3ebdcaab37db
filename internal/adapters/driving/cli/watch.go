package cli

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/logger"
)

// watchLimiter spaces out re-scans: at most one every two seconds, with
// a burst of one so editor save storms collapse into a single run.
var watchLimiter = rate.NewLimiter(rate.Every(2*time.Second), 1)

var watchCmd = &cobra.Command{
	Use:   "watch <pattern> [path ...]",
	Short: "Re-run a search whenever the watched PDFs change",
	Long: `Runs the search once, then watches the input directories and re-runs
it whenever a PDF is added, changed, or removed. Stop with Ctrl-C.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWatch,
}

func init() {
	watchCmd.Flags().IntVarP(&contextWindow, "context", "c", defaultContextWindow, "context window size")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verboseFlag)

	if grepService == nil {
		return errors.New("grep service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := domain.RunOptions{
		Pattern:       args[0],
		Paths:         args[1:],
		ContextWindow: contextWindow,
	}
	applyConfigDefaults(cmd, &opts)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range watchDirs(opts.Paths) {
		if err := watcher.Add(dir); err != nil {
			logger.Warn("cannot watch %s: %v", dir, err)
		}
	}

	runOnce := func() {
		result, err := grepService.Run(ctx, opts)
		switch {
		case errors.Is(err, domain.ErrNoInput):
			cmd.Println("No PDF files found.")
		case err != nil:
			logger.Error("%v", err)
		default:
			cmd.Printf("%d matches in %d files\n", len(result.Records), result.FilesScanned)
		}
	}

	runOnce()
	cmd.Println("Watching for changes...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isPDFEvent(event) {
				continue
			}
			if err := watchLimiter.Wait(ctx); err != nil {
				return nil
			}
			drainEvents(watcher)
			runOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// watchDirs maps the input paths to the directories to watch: given
// directories as-is, given files by their parent, and no paths at all
// as the current directory.
func watchDirs(paths []string) []string {
	if len(paths) == 0 {
		return []string{"."}
	}
	seen := make(map[string]bool)
	var dirs []string
	for _, path := range paths {
		dir := path
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			dir = filepath.Dir(path)
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func isPDFEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".pdf")
}

// drainEvents discards events queued while the limiter was waiting so
// one batch of writes triggers one re-scan.
func drainEvents(watcher *fsnotify.Watcher) {
	for {
		select {
		case <-watcher.Events:
		default:
			return
		}
	}
}
