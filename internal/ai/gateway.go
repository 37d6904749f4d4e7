package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/pkg/logger"
	"github.com/jwalitptl/medlink-api/pkg/metrics"
)

// ErrUnavailable is returned by generators that have no backend configured.
var ErrUnavailable = errors.New("generative backend not configured")

// Generator is the transport to a generative model. Each call is a single
// request; implementations must not retry.
type Generator interface {
	// GroundedSearch runs prompt with map grounding around loc.
	GroundedSearch(ctx context.Context, prompt string, loc model.Location) (model.PlaceSearchResult, error)
	// Chat continues a conversation under a system instruction.
	Chat(ctx context.Context, system string, history []model.ChatTurn, message string) (string, error)
	// SOAPNotes asks for a JSON object matching the SOAP schema and returns the raw text.
	SOAPNotes(ctx context.Context, prompt string) (string, error)
}

// Assistant is what the rest of the portal calls. Its methods never fail:
// backend errors are logged and replaced with fixed fallbacks.
type Assistant interface {
	FindNearbySpecialists(ctx context.Context, specialty string, loc model.Location) model.PlaceSearchResult
	FindNearbyPharmacies(ctx context.Context, loc model.Location) model.PlaceSearchResult
	FindNearbyLabs(ctx context.Context, testName string, loc model.Location) model.PlaceSearchResult
	SymptomCheck(ctx context.Context, history []model.ChatTurn, message string) string
	SummarizeConsultation(ctx context.Context, transcript string) model.SOAPNotes
}

type Config struct {
	RequestTimeout time.Duration
	CacheTTL       time.Duration
}

type Gateway struct {
	gen     Generator
	cfg     Config
	places  *cache.Cache
	logger  *logger.Logger
	metrics *metrics.Metrics
}

var _ Assistant = (*Gateway)(nil)

func NewGateway(gen Generator, cfg Config, l *logger.Logger, m *metrics.Metrics) *Gateway {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	g := &Gateway{
		gen:     gen,
		cfg:     cfg,
		logger:  l,
		metrics: m,
	}
	if cfg.CacheTTL > 0 {
		g.places = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	return g
}

func (g *Gateway) FindNearbySpecialists(ctx context.Context, specialty string, loc model.Location) model.PlaceSearchResult {
	return g.placeSearch(ctx, OpSpecialists, specialistsPrompt(specialty), specialty, loc, specialistsFallback)
}

func (g *Gateway) FindNearbyPharmacies(ctx context.Context, loc model.Location) model.PlaceSearchResult {
	return g.placeSearch(ctx, OpPharmacies, pharmaciesPrompt(), "", loc, pharmaciesFallback)
}

func (g *Gateway) FindNearbyLabs(ctx context.Context, testName string, loc model.Location) model.PlaceSearchResult {
	return g.placeSearch(ctx, OpLabs, labsPrompt(testName), testName, loc, labsFallback)
}

func (g *Gateway) SymptomCheck(ctx context.Context, history []model.ChatTurn, message string) string {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	reply, err := g.gen.Chat(ctx, SymptomCheckerInstruction, history, message)
	g.observe(OpSymptoms, start, err)
	if err != nil {
		g.logger.WithContext(ctx).Error(err, "symptom checker request failed")
		return symptomFallback
	}
	return reply
}

func (g *Gateway) SummarizeConsultation(ctx context.Context, transcript string) model.SOAPNotes {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	raw, err := g.gen.SOAPNotes(ctx, summaryPrompt(transcript))
	if err == nil {
		var notes model.SOAPNotes
		if err = json.Unmarshal([]byte(strings.TrimSpace(raw)), &notes); err == nil {
			g.observe(OpSummary, start, nil)
			return notes
		}
		err = fmt.Errorf("decode summary: %w", err)
	}
	g.observe(OpSummary, start, err)
	g.logger.WithContext(ctx).Error(err, "consultation summary request failed")
	return model.SOAPNotes{
		Subjective: summaryFallbackSubjective,
		Objective:  summaryFallbackObjective,
	}
}

func (g *Gateway) placeSearch(ctx context.Context, op, prompt, query string, loc model.Location, fallback string) model.PlaceSearchResult {
	key := cacheKey(op, query, loc)
	if g.places != nil {
		if v, ok := g.places.Get(key); ok {
			g.metrics.AICacheHit.WithLabelValues(op).Inc()
			return clonePlaces(v.(model.PlaceSearchResult))
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	res, err := g.gen.GroundedSearch(ctx, prompt, loc)
	g.observe(op, start, err)
	if err != nil {
		g.logger.WithContext(ctx).Error(err, "place search failed", "operation", op)
		return model.PlaceSearchResult{Text: fallback, GroundingChunks: []model.GroundingChunk{}}
	}
	if res.GroundingChunks == nil {
		res.GroundingChunks = []model.GroundingChunk{}
	}

	if g.places != nil {
		g.places.SetDefault(key, clonePlaces(res))
	}
	return res
}

func (g *Gateway) observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "fallback"
	}
	g.metrics.AIRequests.WithLabelValues(op, outcome).Inc()
	g.metrics.AILatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// cacheKey rounds coordinates to three decimals, roughly 100m, so nearby
// repeat searches share an entry.
func cacheKey(op, query string, loc model.Location) string {
	return fmt.Sprintf("%s|%s|%.3f|%.3f", op, strings.ToLower(strings.TrimSpace(query)), loc.Latitude, loc.Longitude)
}

func clonePlaces(r model.PlaceSearchResult) model.PlaceSearchResult {
	chunks := make([]model.GroundingChunk, 0, len(r.GroundingChunks))
	for _, c := range r.GroundingChunks {
		if c.Maps != nil {
			m := *c.Maps
			c.Maps = &m
		}
		chunks = append(chunks, c)
	}
	r.GroundingChunks = chunks
	return r
}

// Unavailable is the generator used when no API key is configured. Every
// call fails, so every gateway operation yields its fallback.
type Unavailable struct{}

func (Unavailable) GroundedSearch(context.Context, string, model.Location) (model.PlaceSearchResult, error) {
	return model.PlaceSearchResult{}, ErrUnavailable
}

func (Unavailable) Chat(context.Context, string, []model.ChatTurn, string) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) SOAPNotes(context.Context, string) (string, error) {
	return "", ErrUnavailable
}
