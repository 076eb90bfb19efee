package suggest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func credentialConfig() Config {
	return Config{
		Provider:     ProviderGemini,
		APIKey:       "test-key",
		SystemPrompt: defaultSystemPrompt,
		Temperature:  defaultTemperature,
	}
}

func TestGetSuggestionsWithoutCredentialReturnsOfflineSet(t *testing.T) {
	called := false
	gen := GeneratorFunc(func(ctx context.Context, p Prompt) (string, error) {
		called = true
		return "- should not be used", nil
	})

	for _, key := range []string{"", "   ", PlaceholderAPIKey} {
		svc := NewService(Config{APIKey: key}, gen)

		for _, req := range []SuggestionRequest{
			{Location: "Coastal Town", DisasterType: "flood"},
			{},
		} {
			resp := svc.GetSuggestions(context.Background(), req)
			require.Equal(t, OfflineSuggestions(), resp.Suggestions)
		}
	}
	require.False(t, called)
}

func TestGetSuggestionsWithNilGeneratorReturnsOfflineSet(t *testing.T) {
	svc := NewService(credentialConfig(), nil)

	resp := svc.GetSuggestions(context.Background(), SuggestionRequest{Location: "Lima", DisasterType: "earthquake"})

	require.Equal(t, OfflineSuggestions(), resp.Suggestions)
}

func TestGetSuggestionsNormalizesProviderText(t *testing.T) {
	var got Prompt
	gen := GeneratorFunc(func(ctx context.Context, p Prompt) (string, error) {
		got = p
		return "- Move to higher ground\n• Avoid walking in moving water\n\n* Turn off utilities", nil
	})
	svc := NewService(credentialConfig(), gen)

	resp := svc.GetSuggestions(context.Background(), SuggestionRequest{Location: "Coastal Town", DisasterType: "flood"})

	require.Equal(t, []string{
		"Move to higher ground",
		"Avoid walking in moving water",
		"Turn off utilities",
	}, resp.Suggestions)
	require.Equal(t, defaultSystemPrompt, got.System)
	require.Contains(t, got.User, "flood situation in Coastal Town")
	require.InDelta(t, 0.3, got.Temperature, 1e-6)
}

func TestGetSuggestionsProviderErrorReturnsDegradedSet(t *testing.T) {
	gen := GeneratorFunc(func(ctx context.Context, p Prompt) (string, error) {
		return "", errors.New("network unreachable")
	})
	svc := NewService(credentialConfig(), gen)

	resp := svc.GetSuggestions(context.Background(), SuggestionRequest{Location: "Manila", DisasterType: "typhoon"})

	require.Equal(t, DegradedSuggestions(), resp.Suggestions)
}

func TestGetSuggestionsProviderPanicReturnsDegradedSet(t *testing.T) {
	gen := GeneratorFunc(func(ctx context.Context, p Prompt) (string, error) {
		panic("malformed payload")
	})
	svc := NewService(credentialConfig(), gen)

	resp := svc.GetSuggestions(context.Background(), SuggestionRequest{Location: "Reno", DisasterType: "wildfire"})

	require.Equal(t, DegradedSuggestions(), resp.Suggestions)
}

func TestGetSuggestionsBlankProviderTextUsesSingleInstruction(t *testing.T) {
	gen := GeneratorFunc(func(ctx context.Context, p Prompt) (string, error) {
		return "\n - \n•\n", nil
	})
	svc := NewService(credentialConfig(), gen)

	resp := svc.GetSuggestions(context.Background(), SuggestionRequest{Location: "Oslo", DisasterType: "storm"})

	require.Equal(t, []string{EmptyFallback}, resp.Suggestions)
}

func TestFallbackSetsAreDistinctAndCopied(t *testing.T) {
	offline := OfflineSuggestions()
	degraded := DegradedSuggestions()

	require.Len(t, offline, MaxSuggestions)
	require.Len(t, degraded, MaxSuggestions)
	require.NotEqual(t, offline, degraded)

	for _, s := range append(offline, degraded...) {
		require.NotEmpty(t, strings.TrimSpace(s))
	}

	offline[0] = "mutated"
	require.NotEqual(t, "mutated", OfflineSuggestions()[0])
}

func TestInvokeNilGenerator(t *testing.T) {
	result := Invoke(context.Background(), nil, Prompt{})

	require.False(t, result.OK())
	require.Error(t, result.Err)
}

func TestBuildPromptDefaultsSystemPrompt(t *testing.T) {
	p := BuildPrompt(SuggestionRequest{Location: "Kathmandu", DisasterType: "landslide"}, "  ", 0.1)

	require.Equal(t, defaultSystemPrompt, p.System)
	require.Equal(t,
		"Provide exactly 6 brief, actionable safety suggestions for a landslide situation in Kathmandu. "+
			"Return ONLY the 6 suggestions as a simple list, one per line. Do not number them. Do not include introductory text.",
		p.User)
	require.InDelta(t, 0.1, p.Temperature, 1e-6)
}
