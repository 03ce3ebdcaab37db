// Command gpdf is a grep-style search tool for PDF collections.
package main

import (
	"os"

	"github.com/custodia-labs/gpdf/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gpdf/internal/adapters/driven/pdf"
	"github.com/custodia-labs/gpdf/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/gpdf/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/gpdf/internal/adapters/driving/cli"
	"github.com/custodia-labs/gpdf/internal/core/ports/driven"
	"github.com/custodia-labs/gpdf/internal/core/services"
	"github.com/custodia-labs/gpdf/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("config unavailable: %v", err)
	}

	// History persistence is best effort; a broken database must never
	// block a search.
	var historyStore driven.HistoryStore
	sqliteStore, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("history database unavailable: %v", err)
		historyStore = memory.NewHistoryStore()
	} else {
		historyStore = sqliteStore
		defer sqliteStore.Close()
	}

	library := pdf.NewLibrary()

	grepService := services.NewGrepService(library, historyStore)
	grepService.SetRecordSink(cli.TerminalSink(os.Stdout))
	historyService := services.NewHistoryService(historyStore)

	cli.SetVersion(version)
	if configStore != nil {
		cli.SetServices(grepService, historyService, configStore)
	} else {
		cli.SetServices(grepService, historyService, nil)
	}

	return cli.Execute()
}
