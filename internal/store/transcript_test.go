package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harunnryd/kawasemi/internal/model/contract"
)

func TestWriteReadTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "last_run.json")

	tr := Transcript{
		TraceID:   "01TESTTRACE",
		Timestamp: time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
		Model:     "claude-sonnet-4-5-20250929",
		Prompt:    "say hello",
		Response: &contract.CompletionResponse{
			Content: []contract.ContentBlock{{Type: contract.BlockTypeText, Text: "Hello"}},
			Usage:   contract.Usage{InputTokens: 10, OutputTokens: 5},
		},
	}

	if err := WriteTranscript(path, tr); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := ReadTranscript(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.TraceID != tr.TraceID || got.Prompt != tr.Prompt || got.Model != tr.Model {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.Response == nil || len(got.Response.Content) != 1 || got.Response.Content[0].Text != "Hello" {
		t.Errorf("Response not preserved: %+v", got.Response)
	}
}

func TestWriteTranscriptOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_run.json")

	if err := WriteTranscript(path, Transcript{Prompt: "first"}); err != nil {
		t.Fatal(err)
	}
	if err := WriteTranscript(path, Transcript{Prompt: "second", FailureMsg: "completion call failed"}); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTranscript(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Prompt != "second" {
		t.Errorf("Expected latest run, got %q", got.Prompt)
	}
	if got.FailureMsg == "" {
		t.Error("Failure message not preserved")
	}
}

func TestResolveTranscriptPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	path, err := ResolveTranscriptPath("")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(tmpDir, ".kawasemi", "last_run.json")
	if path != want {
		t.Errorf("Expected %s, got %s", want, path)
	}

	explicit := filepath.Join(tmpDir, "elsewhere.json")
	path, err = ResolveTranscriptPath("  " + explicit + "  ")
	if err != nil {
		t.Fatal(err)
	}
	if path != explicit {
		t.Errorf("Expected %s, got %s", explicit, path)
	}
}

func TestReadTranscriptMissingFile(t *testing.T) {
	_, err := ReadTranscript(filepath.Join(t.TempDir(), "missing.json"))
	if !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
