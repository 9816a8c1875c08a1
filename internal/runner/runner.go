// Package runner drives the single completion exchange: validate the
// prompt, build the request, issue one blocking call, render what came
// back. No retries, no streaming, no conversation state.
package runner

import (
	"context"
	"log/slog"
	"strings"

	kawasemiErrors "github.com/harunnryd/kawasemi/internal/errors"
	"github.com/harunnryd/kawasemi/internal/logger"
	"github.com/harunnryd/kawasemi/internal/model/contract"
	"github.com/harunnryd/kawasemi/internal/render"
)

// Completer is the provider boundary: one request in, one full
// response out.
type Completer interface {
	Complete(ctx context.Context, req contract.CompletionRequest, betas []string) (*contract.CompletionResponse, error)
	Name() string
}

type Options struct {
	Tools     []contract.ToolDecl
	Betas     []string
	MaxTokens int
}

type Runner struct {
	provider  Completer
	renderer  *render.Renderer
	tools     []contract.ToolDecl
	betas     []string
	maxTokens int
}

func New(provider Completer, renderer *render.Renderer, opts Options) *Runner {
	return &Runner{
		provider:  provider,
		renderer:  renderer,
		tools:     opts.Tools,
		betas:     opts.Betas,
		maxTokens: opts.MaxTokens,
	}
}

// Run sends prompt to model and renders the response. On failure the
// error is rendered as a single diagnostic line and returned; output
// written before the failure point stays visible.
func (r *Runner) Run(ctx context.Context, prompt, model string) (*contract.CompletionResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		err := kawasemiErrors.InvalidInput("prompt is empty")
		r.renderer.Error(err)
		return nil, err
	}

	r.renderer.Header(model, prompt)

	req := contract.CompletionRequest{
		Model:     model,
		MaxTokens: r.maxTokens,
		Tools:     r.tools,
		Messages: []contract.Message{
			{Role: "user", Content: prompt},
		},
	}

	traceID := logger.GetTraceID(ctx)
	slog.Info("Issuing completion request",
		"provider", r.provider.Name(),
		"model", model,
		"tools", len(req.Tools),
		"trace_id", traceID)

	resp, err := r.provider.Complete(ctx, req, r.betas)
	if err != nil {
		slog.Error("Completion request failed", "model", model, "error", err, "trace_id", traceID)
		r.renderer.Error(err)
		return nil, err
	}

	for _, block := range resp.Content {
		r.renderer.Block(block)
	}
	r.renderer.Footer(resp.Usage)

	slog.Info("Completion request finished",
		"model", model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"trace_id", traceID)

	return resp, nil
}
