// Command flpindex scans a directory tree for .flp files and records each
// one's metadata in the SQLite project catalog (internal/catalog).
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sonicvault/flp/internal/catalog"
	"github.com/sonicvault/flp/internal/config"
	"github.com/sonicvault/flp/internal/fingerprint"
	"github.com/sonicvault/flp/internal/logger"
	"github.com/sonicvault/flp/internal/project"
)

func main() {
	logger.Configure()
	cfg := config.Load()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <directory>\n", os.Args[0])
		os.Exit(2)
	}
	root := os.Args[1]

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("flpindex: %v", err)
	}
	defer cat.Close()

	indexed := 0
	failed := 0

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("flpindex: walk %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if depth(root, path) > cfg.MaxScanDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".flp") {
			return nil
		}

		if err := indexOne(cat, path); err != nil {
			logger.Warn("flpindex: %s: %v", path, err)
			failed++
			return nil
		}
		indexed++
		return nil
	})
	if err != nil {
		logger.Fatal("flpindex: walk %s: %v", root, err)
	}

	logger.Info("flpindex: indexed %d file(s), %d failure(s)", indexed, failed)
}

func indexOne(cat *catalog.Catalog, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	p, err := project.Open(data)
	if err != nil {
		return err
	}

	sum := fingerprint.Of(p.Serialize())
	return cat.Upsert(catalog.Entry{
		Path:            path,
		DetectedVersion: p.DetectedVersion(),
		Title:           p.Title(),
		Fingerprint:     fmt.Sprintf("%x", sum),
		IndexedAt:       time.Now(),
	})
}

func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
