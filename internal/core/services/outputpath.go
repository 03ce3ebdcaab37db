package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/gpdf/internal/core/domain"
)

// autoNameLimit is the highest sequence number probed for auto-generated
// output names.
const autoNameLimit = 999

// NextAvailableOutput returns the first free auto-generated output path in
// baseDir, probing gpdf-<YYYY-MM-DD>-<NNN>.<ext> from 001 upward. It
// returns ErrNamingExhausted when every name up to 999 is taken.
func NextAvailableOutput(baseDir, ext string, now time.Time) (string, error) {
	stamp := now.Format("2006-01-02")
	for n := 1; n <= autoNameLimit; n++ {
		name := fmt.Sprintf("gpdf-%s-%03d.%s", stamp, n, ext)
		path := filepath.Join(baseDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", domain.ErrNamingExhausted
}

// ResolveOutputPath applies the naming and placement policy for one
// requested artifact:
//
//   - requested == "" asks for an auto-generated name in outputDir
//     (or the working directory when outputDir is empty);
//   - an explicit requested path is placed into outputDir by base name
//     when outputDir is set, and used verbatim otherwise.
func ResolveOutputPath(requested, outputDir, ext string, now time.Time) (string, error) {
	if requested == "" {
		baseDir := outputDir
		if baseDir == "" {
			baseDir = "."
		}
		return NextAvailableOutput(baseDir, ext, now)
	}
	if outputDir != "" {
		return filepath.Join(outputDir, filepath.Base(requested)), nil
	}
	return requested, nil
}
