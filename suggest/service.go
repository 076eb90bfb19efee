package suggest

import (
	"context"
	"log"
)

// SuggestionRequest is the inbound (location, disaster type) pair.
type SuggestionRequest struct {
	Location     string `json:"location"`
	DisasterType string `json:"disaster_type"`
}

// SuggestionResponse always carries between 1 and MaxSuggestions entries.
type SuggestionResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Service answers suggestion requests and never surfaces an error to its caller.
type Service struct {
	cfg Config
	gen TextGenerator
}

// NewService wires an immutable config and a provider. gen may be nil when
// no credential is configured.
func NewService(cfg Config, gen TextGenerator) *Service {
	return &Service{cfg: cfg, gen: gen}
}

// GetSuggestions asks the provider for suggestions, degrading to a static set
// when no credential is configured or the provider call fails.
func (s *Service) GetSuggestions(ctx context.Context, req SuggestionRequest) SuggestionResponse {
	if s == nil || !s.cfg.HasCredential() || s.gen == nil {
		log.Printf("suggest: no API key configured, returning offline suggestions")
		return SuggestionResponse{Suggestions: OfflineSuggestions()}
	}

	prompt := BuildPrompt(req, s.cfg.SystemPrompt, s.cfg.Temperature)
	result := Invoke(ctx, s.gen, prompt)
	if !result.OK() {
		log.Printf("suggest: generation failed for %q in %q: %v", req.DisasterType, req.Location, result.Err)
		return SuggestionResponse{Suggestions: DegradedSuggestions()}
	}

	return SuggestionResponse{Suggestions: Normalize(result.Text)}
}
