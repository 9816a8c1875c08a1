// Package render writes the call narration to the console. Labels get
// lipgloss styling; payload text (model output, tool inputs, code) is
// printed unstyled so output stays pipe-friendly.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/harunnryd/kawasemi/internal/model/contract"
	"github.com/harunnryd/kawasemi/internal/pricing"

	"charm.land/lipgloss/v2"
)

type Renderer struct {
	out io.Writer

	headerStyle lipgloss.Style
	toolStyle   lipgloss.Style
	serverStyle lipgloss.Style
	usageStyle  lipgloss.Style
	errorStyle  lipgloss.Style
}

func New(out io.Writer) *Renderer {
	purple := lipgloss.Color("99")
	orange := lipgloss.Color("214")
	gray := lipgloss.Color("245")
	red := lipgloss.Color("9")

	return &Renderer{
		out:         out,
		headerStyle: lipgloss.NewStyle().Bold(true),
		toolStyle:   lipgloss.NewStyle().Foreground(purple),
		serverStyle: lipgloss.NewStyle().Foreground(orange),
		usageStyle:  lipgloss.NewStyle().Foreground(gray),
		errorStyle:  lipgloss.NewStyle().Foreground(red).Bold(true),
	}
}

func (r *Renderer) divider() string {
	return strings.Repeat("-", 50)
}

// Header prints the model and prompt before the call is issued.
func (r *Renderer) Header(model, prompt string) {
	fmt.Fprintf(r.out, "\n🤖 %s %s\n", r.headerStyle.Render("Using model:"), model)
	fmt.Fprintf(r.out, "📝 %s %s\n\n", r.headerStyle.Render("Prompt:"), prompt)
	fmt.Fprintln(r.out, r.divider())
}

// Block prints one response content block keyed by its type. Unknown
// block types are skipped; the service may add kinds we do not render.
func (r *Renderer) Block(b contract.ContentBlock) {
	switch b.Type {
	case contract.BlockTypeText:
		fmt.Fprintf(r.out, "\n💬 %s\n%s\n", r.headerStyle.Render("Response:"), b.Text)
	case contract.BlockTypeToolUse:
		fmt.Fprintf(r.out, "\n🔧 %s %s\n", r.toolStyle.Render("Tool Call:"), b.Name)
		fmt.Fprintf(r.out, "   Input: %s\n", indentJSON(b.Input))
	case contract.BlockTypeServerToolUse:
		fmt.Fprintf(r.out, "\n⚡ %s %s\n", r.serverStyle.Render("Server Tool:"), b.Name)
		if code, ok := b.Code(); ok {
			fmt.Fprintf(r.out, "   Code:\n%s\n", code)
		}
	}
}

// Footer prints the usage counters and the derived cost estimate.
func (r *Renderer) Footer(usage contract.Usage) {
	cost := pricing.Estimate(usage.InputTokens, usage.OutputTokens)

	fmt.Fprintf(r.out, "\n%s\n", r.divider())
	fmt.Fprintf(r.out, "📊 %s %d in / %d out\n", r.usageStyle.Render("Usage:"), usage.InputTokens, usage.OutputTokens)
	fmt.Fprintf(r.out, "💰 %s $%s\n", r.usageStyle.Render("Est. cost:"), pricing.Format(cost))
}

// Error prints the single catch-all failure line.
func (r *Renderer) Error(err error) {
	fmt.Fprintf(r.out, "❌ %s %v\n", r.errorStyle.Render("Error:"), err)
}

func indentJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "   ", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
