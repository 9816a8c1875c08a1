package model

import "strings"

// Selector picks one of exactly two configured model identifiers from
// the raw prompt text. Pure; always returns a valid identifier.
type Selector struct {
	defaultModel  string
	advancedModel string
	triggers      []string
}

func NewSelector(defaultModel, advancedModel string, triggers []string) *Selector {
	return &Selector{
		defaultModel:  defaultModel,
		advancedModel: advancedModel,
		triggers:      triggers,
	}
}

// Select returns the advanced model when the lower-cased prompt
// contains any trigger substring, the default model otherwise.
func (s *Selector) Select(prompt string) string {
	lowered := strings.ToLower(prompt)
	for _, trigger := range s.triggers {
		if trigger == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(trigger)) {
			return s.advancedModel
		}
	}
	return s.defaultModel
}
