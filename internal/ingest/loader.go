package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/domain"
	"go.uber.org/zap"
)

// ErrNoData means no valid record survived ingestion. It is the only fatal
// ingestion outcome; individual rows and files fail locally.
var ErrNoData = errors.New("no evaluation data loaded")

var periodInName = regexp.MustCompile(`\d{4}-[12]`)

// Stats summarizes one full ingestion pass.
type Stats struct {
	Files          int
	FailedFiles    []string
	Rows           int
	Records        int
	SkippedRows    int
	SkippedAnswers int
}

// Loader performs the single cold-start ingestion pass: one catalog file
// plus every evaluation CSV found in the data directory.
type Loader struct {
	dataDir     string
	catalogPath string
	logger      *zap.Logger
}

// NewLoader creates a Loader. A nil logger gets a no-op one.
func NewLoader(dataDir, catalogPath string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		dataDir:     dataDir,
		catalogPath: catalogPath,
		logger:      logger.Named("ingest"),
	}
}

// LoadAll loads the catalog, then every evaluation file in sorted name
// order. A file that cannot be read or lacks required columns is reported
// in Stats.FailedFiles without aborting the batch. Only an empty overall
// result is fatal.
func (l *Loader) LoadAll() (*domain.Catalog, []domain.Record, Stats, error) {
	var stats Stats

	catalogRaw, err := os.ReadFile(l.catalogPath)
	if err != nil {
		return nil, nil, stats, fmt.Errorf("read catalog: %w", err)
	}
	questions, err := parseCatalog(catalogRaw, l.logger)
	if err != nil {
		return nil, nil, stats, fmt.Errorf("parse catalog %s: %w", l.catalogPath, err)
	}
	catalog := domain.NewCatalog(questions)
	l.logger.Info("catalog loaded",
		zap.String("path", l.catalogPath),
		zap.Int("questions", catalog.Len()),
		zap.Bool("weighted", catalog.HasWeights()))

	files, err := l.findEvaluationFiles()
	if err != nil {
		return nil, nil, stats, err
	}
	if len(files) == 0 {
		return nil, nil, stats, fmt.Errorf("%w: no evaluation files in %s", ErrNoData, l.dataDir)
	}

	var records []domain.Record
	for _, path := range files {
		name := filepath.Base(path)
		raw, err := os.ReadFile(path)
		if err != nil {
			stats.FailedFiles = append(stats.FailedFiles, name)
			l.logger.Error("cannot read evaluation file", zap.String("file", name), zap.Error(err))
			continue
		}

		fallbackPeriod := periodInName.FindString(name)
		fileRecords, fs, err := parseEvaluations(raw, catalog, fallbackPeriod, name, l.logger)
		if err != nil {
			stats.FailedFiles = append(stats.FailedFiles, name)
			l.logger.Error("evaluation file rejected", zap.String("file", name), zap.Error(err))
			continue
		}

		records = append(records, fileRecords...)
		stats.Files++
		stats.Rows += fs.Rows
		stats.Records += fs.Records
		stats.SkippedRows += fs.SkippedRows
		stats.SkippedAnswers += fs.SkippedAnswers
		l.logger.Info("evaluation file loaded",
			zap.String("file", name),
			zap.Int("rows", fs.Rows),
			zap.Int("records", fs.Records),
			zap.Int("skipped_rows", fs.SkippedRows),
			zap.Int("skipped_answers", fs.SkippedAnswers))
	}

	if len(records) == 0 {
		return nil, nil, stats, ErrNoData
	}
	return catalog, records, stats, nil
}

// findEvaluationFiles returns Evaluacion*.csv / evaluacion*.csv paths in
// sorted name order so ingestion is reproducible.
func (l *Loader) findEvaluationFiles() ([]string, error) {
	entries, err := os.ReadDir(l.dataDir)
	if err != nil {
		return nil, fmt.Errorf("scan data dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if strings.HasPrefix(name, "evaluacion") && strings.HasSuffix(name, ".csv") {
			files = append(files, filepath.Join(l.dataDir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
