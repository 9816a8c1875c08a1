package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/harunnryd/kawasemi/internal/logger"
	"github.com/harunnryd/kawasemi/internal/model/contract"
	"github.com/harunnryd/kawasemi/internal/store"
)

// saveTranscript records the exchange under ~/.kawasemi. Best-effort:
// a failed write is logged and never affects the run's outcome.
func saveTranscript(ctx context.Context, prompt, model string, resp *contract.CompletionResponse, runErr error) {
	if cfg == nil || !cfg.Store.TranscriptEnabled {
		return
	}

	path, err := store.ResolveTranscriptPath(cfg.Store.TranscriptPath)
	if err != nil {
		slog.Warn("Could not resolve transcript path", "error", err)
		return
	}

	tr := store.Transcript{
		TraceID:   logger.GetTraceID(ctx),
		Timestamp: time.Now().UTC(),
		Model:     model,
		Prompt:    prompt,
		Response:  resp,
	}
	if runErr != nil {
		tr.FailureMsg = runErr.Error()
	}

	if err := store.WriteTranscript(path, tr); err != nil {
		slog.Warn("Could not write transcript", "path", path, "error", err)
	}
}
