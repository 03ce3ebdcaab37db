package services

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/gpdf/internal/logger"
)

// CollectPaths resolves the input arguments to candidate PDF files.
// Directories expand to the PDF files directly inside them (no recursion);
// explicit file arguments are kept as given. With no arguments, the
// current working directory's PDF files are used.
func CollectPaths(args []string) []string {
	if len(args) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			logger.Warn("failed to resolve working directory: %v", err)
			return nil
		}
		return pdfFilesIn(cwd)
	}

	var collected []string
	for _, path := range args {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			collected = append(collected, pdfFilesIn(path)...)
			continue
		}
		// Missing or non-pdf files are surfaced later, during the scan,
		// so a single bad argument does not hide the rest.
		collected = append(collected, path)
	}
	return collected
}

// pdfFilesIn lists the PDF files directly inside dir, in name order.
func pdfFilesIn(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("failed to read %s: %v", dir, err)
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsPDFPath(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files
}

// IsPDFPath reports whether a path names a PDF file, by extension.
func IsPDFPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
