// Package search wraps the generative-search provider used by the alerts
// screen. Queries are passed through verbatim with web grounding enabled;
// responses come back as a summary plus ordered web citations.
package search

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/Lavender333/Aeraapp-sub001/models"
)

const (
	// NoUpdatesMessage replaces an empty summary from the provider.
	NoUpdatesMessage = "No recent updates found."

	// FallbackMessage is shown for any provider failure, regardless of cause.
	FallbackMessage = "Unable to fetch live updates. Please check your connection."
)

// Provider is the generative-search boundary. Handlers depend on this
// interface so tests can stub the outbound call.
type Provider interface {
	Search(ctx context.Context, query string) (models.SearchResult, error)
}

// GeminiConfig configures the Gemini-backed provider.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Gemini implements Provider using the Gemini API with the Google Search
// grounding tool enabled.
type Gemini struct {
	apiKey  string
	model   string
	timeout time.Duration
	log     *zap.Logger

	mu     sync.Mutex
	client *genai.Client
}

// NewGemini creates a Gemini provider. The underlying client is built on
// first use so the service can start without an API key configured.
func NewGemini(cfg GeminiConfig, log *zap.Logger) *Gemini {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Gemini{
		apiKey:  cfg.APIKey,
		model:   model,
		timeout: cfg.Timeout,
		log:     log,
	}
}

func (g *Gemini) ensureClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	key := g.apiKey
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	g.client = client
	return client, nil
}

// Search issues one web-grounded generation call for the raw query text.
func (g *Gemini) Search(ctx context.Context, query string) (models.SearchResult, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return models.SearchResult{}, err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(query), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	})
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("generate content: %w", err)
	}

	result := resultFromResponse(resp)
	g.log.Debug("grounded search completed",
		zap.String("model", g.model),
		zap.Duration("duration", time.Since(start)),
		zap.Int("sources", len(result.Sources)))
	return result, nil
}

// resultFromResponse flattens a grounded generation response into a
// summary plus its web sources. Grounding chunks without a web payload
// are dropped; source order follows the provider's order.
func resultFromResponse(resp *genai.GenerateContentResponse) models.SearchResult {
	result := models.SearchResult{
		Summary: strings.TrimSpace(resp.Text()),
		Sources: []models.SourceRef{},
	}
	if result.Summary == "" {
		result.Summary = NoUpdatesMessage
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return result
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		result.Sources = append(result.Sources, models.SourceRef{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}
	return result
}
