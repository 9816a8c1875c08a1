// Package pricing derives the printed cost estimate from token usage.
//
// The rates are a single hardcoded tier applied regardless of which
// model handled the request. That is deliberate: the estimate is part
// of the tool's observable output, and per-model rates would change
// the printed numbers. Treat it as a ballpark, not a bill.
package pricing

import "fmt"

// USD per 1000 tokens.
const (
	inputPerKTok  = 0.003
	outputPerKTok = 0.015
)

func Estimate(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*inputPerKTok + float64(outputTokens)*outputPerKTok) / 1000
}

// Format renders a cost to the fixed 4-decimal display precision.
func Format(cost float64) string {
	return fmt.Sprintf("%.4f", cost)
}
