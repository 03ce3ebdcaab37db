package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/gpdf/internal/core/domain"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
	"github.com/custodia-labs/gpdf/internal/core/ports/driving"
	"github.com/custodia-labs/gpdf/internal/logger"
)

// Ensure GrepService implements the interface.
var _ driving.GrepService = (*GrepService)(nil)

// defaultResultsDir receives auto-named artifacts outside report mode
// when no output directory was chosen.
const defaultResultsDir = "_gpdf_results"

// GrepService orchestrates the match-and-assemble pipeline: path
// collection, per-document scanning, the composite document, the HTML
// index and the directory index.
type GrepService struct {
	library   driven.Library
	history   driven.HistoryStore
	scanner   *Scanner
	assembler *Assembler
	sink      domain.RecordSink
	now       func() time.Time
}

// NewGrepService creates the pipeline service. The history store is
// optional (nil disables run recording).
func NewGrepService(library driven.Library, history driven.HistoryStore) *GrepService {
	return &GrepService{
		library:   library,
		history:   history,
		scanner:   NewScanner(library),
		assembler: NewAssembler(library),
		now:       time.Now,
	}
}

// SetRecordSink registers a callback receiving each match record as it is
// found, before any aggregate artifact is produced.
func (g *GrepService) SetRecordSink(sink domain.RecordSink) {
	g.sink = sink
}

// runPlan is the resolved placement of one invocation's artifacts.
type runPlan struct {
	htmlPath  string
	mergePath string
	outputDir string
	layout    domain.LinkLayout
	copyPDFs  bool
	title     string
	report    bool
}

// Run executes one pipeline invocation. Files are scanned one at a time;
// a file that cannot be opened is skipped with a warning and the batch
// continues. Only batch-level failures return an error.
func (g *GrepService) Run(ctx context.Context, opts domain.RunOptions) (*domain.RunResult, error) {
	startedAt := g.now()

	pattern, err := domain.CompilePattern(opts.Pattern)
	if err != nil {
		return nil, err
	}

	paths := CollectPaths(opts.Paths)
	if len(paths) == 0 {
		return nil, domain.ErrNoInput
	}

	plan, err := g.resolvePlan(opts, startedAt)
	if err != nil {
		return nil, err
	}
	paths = excludeOutputs(paths, plan.htmlPath, plan.mergePath)

	logger.Section("Scan")
	logger.Debug("Pattern: %q, %d candidate files", opts.Pattern, len(paths))

	result := &domain.RunResult{}
	var files []domain.FileMatches

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			logger.Warn("missing %s", path)
			continue
		}
		if !IsPDFPath(path) {
			logger.Warn("skipping non-pdf %s", path)
			continue
		}

		records, matchedPages := g.scanner.Scan(path, pattern, opts.ContextWindow)
		result.Records = append(result.Records, records...)
		result.FilesScanned++
		files = append(files, domain.FileMatches{Path: path, PageIndices: matchedPages})

		if g.sink != nil {
			for _, rec := range records {
				g.sink(rec)
			}
		}
	}

	if len(result.Records) > 0 {
		if err := g.writeArtifacts(plan, opts.Pattern, result, files); err != nil {
			return nil, err
		}
	}

	g.recordRun(ctx, opts, plan, result, startedAt)
	return result, nil
}

// resolvePlan turns the request options into concrete artifact paths and
// a link layout. Auto names are probed up front so generated outputs can
// be excluded from the inputs.
func (g *GrepService) resolvePlan(opts domain.RunOptions, now time.Time) (runPlan, error) {
	if opts.Report {
		outputDir := opts.OutputDir
		if outputDir == "" {
			outputDir = domain.ReportBundleDir
		}

		htmlPath, err := ResolveOutputPath(opts.HTMLPath, filepath.Join(outputDir, domain.ReportHTMLDir), "html", now)
		if err != nil {
			return runPlan{}, err
		}
		mergePath, err := ResolveOutputPath(opts.MergePath, filepath.Join(outputDir, domain.ReportSummariesDir), "pdf", now)
		if err != nil {
			return runPlan{}, err
		}

		return runPlan{
			htmlPath:  htmlPath,
			mergePath: mergePath,
			outputDir: outputDir,
			layout:    domain.BundleLayout(),
			copyPDFs:  true,
			title:     resolveTitle(opts.Title, reportDefaultTitle(outputDir)),
			report:    true,
		}, nil
	}

	htmlWanted := opts.HTML || opts.HTMLPath != ""
	mergeWanted := opts.Merge || opts.MergePath != ""

	outputDir := opts.OutputDir
	if outputDir == "" && (htmlWanted || mergeWanted) {
		outputDir = defaultResultsDir
	}

	plan := runPlan{
		outputDir: outputDir,
		copyPDFs:  opts.CopyPDFs,
		title:     resolveTitle(opts.Title, "gpdf results"),
	}

	var err error
	if htmlWanted {
		if plan.htmlPath, err = ResolveOutputPath(opts.HTMLPath, outputDir, "html", now); err != nil {
			return runPlan{}, err
		}
	}
	if mergeWanted {
		if plan.mergePath, err = ResolveOutputPath(opts.MergePath, outputDir, "pdf", now); err != nil {
			return runPlan{}, err
		}
	}
	return plan, nil
}

// writeArtifacts produces the requested outputs for a run with matches.
func (g *GrepService) writeArtifacts(plan runPlan, pattern string, result *domain.RunResult, files []domain.FileMatches) error {
	if err := makeOutputDirs(plan); err != nil {
		return err
	}

	if plan.mergePath != "" {
		logger.Section("Composite")
		pageMap, err := g.assembler.Assemble(plan.mergePath, files)
		if err != nil {
			return err
		}
		if len(pageMap) > 0 {
			result.PageMap = pageMap
			result.MergePath = plan.mergePath
		}
	}

	if plan.htmlPath != "" {
		logger.Section("Report Index")
		summaryFile := ""
		if result.MergePath != "" {
			summaryFile = filepath.Base(result.MergePath)
		}

		doc, err := RenderReportIndex(
			result.Records, pattern, plan.layout, summaryFile, result.PageMap, plan.title)
		if err != nil {
			return err
		}
		if err := os.WriteFile(plan.htmlPath, []byte(doc), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", plan.htmlPath, err)
		}
		result.HTMLPath = plan.htmlPath

		if plan.outputDir != "" {
			if err := BuildReportsDirectoryIndex(plan.outputDir, plan.title); err != nil {
				return err
			}
		}
	}

	if plan.copyPDFs && plan.outputDir != "" {
		destDir := plan.outputDir
		if plan.report {
			destDir = filepath.Join(plan.outputDir, domain.ReportSourceDir)
		}
		copyMatchedSources(destDir, files)
	}

	return nil
}

// recordRun stores the completed run in the history store, best-effort.
func (g *GrepService) recordRun(
	ctx context.Context, opts domain.RunOptions, plan runPlan, result *domain.RunResult, startedAt time.Time,
) {
	if g.history == nil {
		return
	}
	run := domain.SearchRun{
		Pattern:      opts.Pattern,
		Title:        plan.title,
		StartedAt:    startedAt,
		Duration:     g.now().Sub(startedAt),
		FilesScanned: result.FilesScanned,
		MatchCount:   len(result.Records),
		HTMLPath:     result.HTMLPath,
		MergePath:    result.MergePath,
	}
	if err := g.history.Record(ctx, run); err != nil {
		logger.Warn("failed to record run history: %v", err)
	}
}

// makeOutputDirs creates the output directory tree for the plan.
func makeOutputDirs(plan runPlan) error {
	if plan.outputDir == "" {
		return nil
	}
	dirs := []string{plan.outputDir}
	if plan.report {
		dirs = append(dirs,
			filepath.Join(plan.outputDir, domain.ReportHTMLDir),
			filepath.Join(plan.outputDir, domain.ReportSourceDir),
			filepath.Join(plan.outputDir, domain.ReportSummariesDir),
		)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// excludeOutputs removes this run's own generated artifacts from the
// input set, so a re-run over the same directory never scans them.
func excludeOutputs(paths []string, outputs ...string) []string {
	excluded := make(map[string]bool, len(outputs))
	for _, out := range outputs {
		if out == "" {
			continue
		}
		if abs, err := filepath.Abs(out); err == nil {
			excluded[abs] = true
		}
	}
	if len(excluded) == 0 {
		return paths
	}

	kept := paths[:0]
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err == nil && excluded[abs] {
			continue
		}
		kept = append(kept, path)
	}
	return kept
}

// copyMatchedSources copies every source document with at least one
// matched page into destDir. Copy failures are warnings.
func copyMatchedSources(destDir string, files []domain.FileMatches) {
	for _, file := range files {
		if len(file.PageIndices) == 0 {
			continue
		}
		if err := copyFile(file.Path, filepath.Join(destDir, filepath.Base(file.Path))); err != nil {
			logger.Warn("failed to copy %s: %v", file.Path, err)
		}
	}
}

// copyFile copies src to dst unless they are the same file.
func copyFile(src, dst string) error {
	absSrc, errSrc := filepath.Abs(src)
	absDst, errDst := filepath.Abs(dst)
	if errSrc == nil && errDst == nil && absSrc == absDst {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// resolveTitle picks the explicit title when given, else the default.
func resolveTitle(explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}
	return fallback
}

// reportDefaultTitle names a report bundle after the directory it sits in.
func reportDefaultTitle(outputDir string) string {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return "gpdf report"
	}
	return filepath.Base(filepath.Dir(abs))
}
