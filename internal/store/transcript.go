// Package store persists the last exchange under ~/.kawasemi. Writes
// are best-effort: the caller logs failures and moves on, the run's
// console output never depends on them.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harunnryd/kawasemi/internal/model/contract"

	"github.com/natefinch/atomic"
)

// Transcript is one recorded run: what was asked and what came back.
type Transcript struct {
	TraceID    string                       `json:"trace_id"`
	Timestamp  time.Time                    `json:"timestamp"`
	Model      string                       `json:"model"`
	Prompt     string                       `json:"prompt"`
	Response   *contract.CompletionResponse `json:"response,omitempty"`
	FailureMsg string                       `json:"failure,omitempty"`
}

// ResolveTranscriptPath resolves the configured transcript path.
// If empty, it falls back to ~/.kawasemi/last_run.json.
func ResolveTranscriptPath(configured string) (string, error) {
	if trimmed := strings.TrimSpace(configured); trimmed != "" {
		return trimmed, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".kawasemi", "last_run.json"), nil
}

// WriteTranscript replaces the previous run's record via atomic rename
// so a killed process never leaves a truncated file behind.
func WriteTranscript(path string, tr Transcript) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return atomic.WriteFile(path, bytes.NewReader(data))
}

// ReadTranscript loads the previous run's record, if any.
func ReadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tr Transcript
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}
