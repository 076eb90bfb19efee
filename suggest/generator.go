package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Prompt is the two-turn instruction sent to a provider.
type Prompt struct {
	System      string
	User        string
	Temperature float32
}

// TextGenerator produces free-form text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// GeneratorFunc adapts a plain function to TextGenerator.
type GeneratorFunc func(context.Context, Prompt) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt Prompt) (string, error) {
	return f(ctx, prompt)
}

// Generation is the outcome of one provider call: Text on success, Err otherwise.
type Generation struct {
	Text string
	Err  error
}

// OK reports whether the call produced text.
func (g Generation) OK() bool {
	return g.Err == nil
}

const userPromptTemplate = "Provide exactly 6 brief, actionable safety suggestions for a %s situation in %s. " +
	"Return ONLY the 6 suggestions as a simple list, one per line. Do not number them. Do not include introductory text."

// BuildPrompt interpolates the request into the suggestion instruction.
func BuildPrompt(req SuggestionRequest, systemPrompt string, temperature float32) Prompt {
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = defaultSystemPrompt
	}
	return Prompt{
		System:      systemPrompt,
		User:        fmt.Sprintf(userPromptTemplate, req.DisasterType, req.Location),
		Temperature: temperature,
	}
}

// Invoke runs gen and folds every failure mode, panics included, into the result.
func Invoke(ctx context.Context, gen TextGenerator, prompt Prompt) (result Generation) {
	if gen == nil {
		return Generation{Err: errors.New("text generator not initialized")}
	}

	defer func() {
		if r := recover(); r != nil {
			result = Generation{Err: fmt.Errorf("text generator panicked: %v", r)}
		}
	}()

	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		return Generation{Err: err}
	}
	return Generation{Text: text}
}

// NewGenerator builds the provider named by cfg.Provider.
func NewGenerator(cfg Config) (TextGenerator, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(cfg), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown suggestion provider %q (want %s or %s)", cfg.Provider, ProviderGemini, ProviderOpenAI)
	}
}
