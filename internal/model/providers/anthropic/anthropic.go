package anthropic

import (
	"context"
	"os"
	"strings"

	kawasemiErrors "github.com/harunnryd/kawasemi/internal/errors"
	"github.com/harunnryd/kawasemi/internal/model/contract"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type Provider struct {
	client anthropic.Client
}

func New(apiKey string, opts ...option.RequestOption) *Provider {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := anthropic.NewClient(opts...)
	return &Provider{client: client}
}

func (p *Provider) Name() string {
	return "anthropic"
}

// Complete issues the single blocking messages call. Beta flags travel
// in the anthropic-beta header; the request body is the raw wire
// contract so beta-only tool fields pass through untouched by the
// SDK's typed params.
func (p *Provider) Complete(ctx context.Context, req contract.CompletionRequest, betas []string) (*contract.CompletionResponse, error) {
	opts := []option.RequestOption{}
	if len(betas) > 0 {
		opts = append(opts, option.WithHeader("anthropic-beta", strings.Join(betas, ",")))
	}

	var resp contract.CompletionResponse
	if err := p.client.Post(ctx, "/v1/messages", req, &resp, opts...); err != nil {
		return nil, kawasemiErrors.WrapWithCategory(err, "anthropic request failed", kawasemiErrors.ErrCallFailed)
	}

	return &resp, nil
}
