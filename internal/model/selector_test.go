package model

import (
	"testing"

	"github.com/harunnryd/kawasemi/internal/config"

	"github.com/stretchr/testify/assert"
)

func newTestSelector() *Selector {
	return NewSelector(
		config.DefaultModelDefault,
		config.DefaultModelAdvanced,
		config.DefaultSelectorTriggers(),
	)
}

func TestSelectorSelect_TriggersRouteToAdvanced(t *testing.T) {
	selector := newTestSelector()

	cases := []struct {
		name   string
		prompt string
		want   string
	}{
		{"plain prompt", "summarize this file", config.DefaultModelDefault},
		{"architect keyword", "architect a new billing service", config.DefaultModelAdvanced},
		{"design keyword", "propose a design for the cache", config.DefaultModelAdvanced},
		{"complex keyword", "this is a complex migration", config.DefaultModelAdvanced},
		{"analyze all phrase", "analyze all modules for cycles", config.DefaultModelAdvanced},
		{"case insensitive", "ARCHITECT the pipeline", config.DefaultModelAdvanced},
		{"trigger inside word", "redesign the login page", config.DefaultModelAdvanced},
		{"analyze alone is not a trigger", "analyze the logs", config.DefaultModelDefault},
		{"empty prompt", "", config.DefaultModelDefault},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, selector.Select(tc.prompt))
		})
	}
}

func TestSelectorSelect_IgnoresEmptyTriggers(t *testing.T) {
	selector := NewSelector("small", "big", []string{"", "deep"})

	assert.Equal(t, "small", selector.Select("shallow question"))
	assert.Equal(t, "big", selector.Select("a deep question"))
}
