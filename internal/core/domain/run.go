package domain

// Report bundle layout. The subpaths are fixed; every generated per-search
// HTML page carries a recoverable embedded copy of the search pattern.
const (
	// ReportBundleDir is the default bundle directory name.
	ReportBundleDir = "gpdf_report"

	// ReportHTMLDir holds the per-search HTML index pages.
	ReportHTMLDir = "html"

	// ReportSourceDir holds copies of the matched source documents.
	ReportSourceDir = "source"

	// ReportSummariesDir holds the composite documents.
	ReportSummariesDir = "summaries"

	// ReportIndexFile is the master listing over all reports.
	ReportIndexFile = "index.html"
)

// LinkLayout configures how a report index links to its companion
// artifacts. It is threaded explicitly into the render call so one builder
// serves the flat, bundled, and caller-custom layouts.
type LinkLayout struct {
	// SourcePrefix is prepended to source file base names.
	SourcePrefix string

	// SummaryPrefix is prepended to the composite file name.
	SummaryPrefix string

	// BackHref, when non-empty, renders a back link in the header.
	BackHref string
}

// BundleLayout is the link layout for pages inside a report bundle's
// html/ directory.
func BundleLayout() LinkLayout {
	return LinkLayout{
		SourcePrefix:  "../" + ReportSourceDir + "/",
		SummaryPrefix: "../" + ReportSummariesDir + "/",
		BackHref:      "../" + ReportIndexFile,
	}
}

// RunOptions configures one pipeline invocation.
type RunOptions struct {
	// Pattern is the regular expression, compiled case-insensitively.
	Pattern string

	// Paths are the input files and directories. Empty means the
	// current directory's PDF files.
	Paths []string

	// ContextWindow is the context size on each side of a match.
	ContextWindow int

	// HTML requests an HTML index with an auto-generated name.
	HTML bool

	// HTMLPath requests an HTML index at an explicit path.
	HTMLPath string

	// Merge requests a composite document with an auto-generated name.
	Merge bool

	// MergePath requests a composite document at an explicit path.
	MergePath string

	// Title overrides the report title.
	Title string

	// Report creates a full report bundle (implies HTML, Merge and
	// CopyPDFs under the bundle layout).
	Report bool

	// OutputDir overrides the output directory for generated artifacts.
	OutputDir string

	// CopyPDFs copies matched source documents into the output directory.
	CopyPDFs bool
}

// RunResult is the outcome of one pipeline invocation.
type RunResult struct {
	// Records are all matches in scan order.
	Records []MatchRecord

	// PageMap maps source pages to composite page numbers. Nil when no
	// composite was requested or no page was copied.
	PageMap PageMap

	// HTMLPath is the written index path, empty if none was written.
	HTMLPath string

	// MergePath is the written composite path, empty if none was written.
	MergePath string

	// FilesScanned is the number of input documents processed.
	FilesScanned int
}

// RecordSink receives match records as they are found, before any
// aggregate artifact is produced.
type RecordSink func(MatchRecord)
