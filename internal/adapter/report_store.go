// Package adapter provides primer's filesystem edges.
package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "primer.dev/pkg/primer/internal/model"
)

// checkReportName is the file the check command writes into the reports dir.
const checkReportName = "check.yaml"

// ReportStore persists check reports and lesson transcripts.
type ReportStore interface {
	SaveCheckReports(dir m.Path, reports []m.CheckReport) error
	LoadCheckReports(dir m.Path) ([]m.CheckReport, error)
	SaveTranscript(dir m.Path, transcript m.Transcript) error
}

type localReportStore struct{}

// NewReportStore creates a store backed by the local filesystem.
func NewReportStore() ReportStore {
	return &localReportStore{}
}

// SaveCheckReports implements ReportStore.
func (s *localReportStore) SaveCheckReports(dir m.Path, reports []m.CheckReport) error {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("encode check reports: %w", err)
	}

	path := filepath.Join(string(dir), checkReportName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write check reports: %w", err)
	}

	slog.Debug("saved check reports", "path", path, "count", len(reports))

	return nil
}

// LoadCheckReports implements ReportStore.
func (s *localReportStore) LoadCheckReports(dir m.Path) ([]m.CheckReport, error) {
	path := filepath.Join(string(dir), checkReportName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read check reports: %w", err)
	}

	var reports []m.CheckReport
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decode check reports: %w", err)
	}

	return reports, nil
}

// SaveTranscript implements ReportStore.
func (s *localReportStore) SaveTranscript(dir m.Path, transcript m.Transcript) error {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	path := filepath.Join(string(dir), string(transcript.Lesson)+".txt")
	if err := os.WriteFile(path, []byte(transcript.Output), 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	slog.Debug("saved transcript", "path", path, "lesson", transcript.Lesson)

	return nil
}
