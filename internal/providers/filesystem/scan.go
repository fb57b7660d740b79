package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"

	"github.com/diskwise/backend/internal/shared/types"
)

// errScanLimit stops the walk once the entry cap is hit.
var errScanLimit = errors.New("scan entry limit reached")

// scanReport accumulates walk results behind a mutex; fastwalk runs the
// callback from multiple goroutines.
type scanReport struct {
	mu          sync.Mutex
	fileCount   int64
	dirCount    int64
	totalSize   int64
	byExtension map[string]int64
	byMimeType  map[string]int64
	mimeSampled int
	truncated   bool
}

func (p *Provider) scan(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return failure("path required")
	}

	maxDepth := 0
	if depth, ok := params["max_depth"].(float64); ok {
		maxDepth = int(depth)
	}

	info, err := os.Stat(path)
	if err != nil {
		return failure("Directory does not exist")
	}
	if !info.IsDir() {
		return failure("Path is not a directory")
	}

	report := &scanReport{
		byExtension: make(map[string]int64),
		byMimeType:  make(map[string]int64),
	}

	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, path, func(entryPath string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return nil // skip unreadable entries
		}
		if entryPath == path {
			return nil
		}

		relPath, _ := filepath.Rel(path, entryPath)
		depth := len(strings.Split(relPath, string(os.PathSeparator)))
		if maxDepth > 0 && depth > maxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		return report.record(entryPath, d, p.cfg)
	})

	if err != nil && !errors.Is(err, errScanLimit) {
		return failure("scan failed: " + err.Error())
	}

	return success(map[string]interface{}{
		"path":         path,
		"file_count":   report.fileCount,
		"dir_count":    report.dirCount,
		"total_size":   report.totalSize,
		"by_extension": report.byExtension,
		"by_mime_type": report.byMimeType,
		"truncated":    report.truncated,
	})
}

func (r *scanReport) record(path string, d os.DirEntry, cfg Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fileCount+r.dirCount >= int64(cfg.MaxEntries) {
		r.truncated = true
		return errScanLimit
	}

	if d.IsDir() {
		r.dirCount++
		return nil
	}

	r.fileCount++
	info, err := d.Info()
	if err != nil {
		return nil
	}
	r.totalSize += info.Size()

	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		ext = "(none)"
	}
	r.byExtension[ext]++

	// Content sniffing is bounded separately; it reads file headers.
	if r.mimeSampled < cfg.MimeSamples {
		r.mimeSampled++
		if mtype, err := mimetype.DetectFile(path); err == nil {
			r.byMimeType[mtype.String()]++
		}
	}

	return nil
}
