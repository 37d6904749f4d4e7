package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/jwalitptl/medlink-api/internal/model"
)

const DefaultModel = "gemini-2.5-flash"

// Gemini talks to the Gemini API through the genai SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

var _ Generator = (*Gemini)(nil)

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Gemini{client: client, model: modelName}, nil
}

func (g *Gemini) GroundedSearch(ctx context.Context, prompt string, loc model.Location) (model.PlaceSearchResult, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
		ToolConfig: &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(loc.Latitude),
					Longitude: genai.Ptr(loc.Longitude),
				},
			},
		},
	})
	if err != nil {
		return model.PlaceSearchResult{}, fmt.Errorf("generate content: %w", err)
	}

	return model.PlaceSearchResult{
		Text:            resp.Text(),
		GroundingChunks: mapChunks(resp),
	}, nil
}

func (g *Gemini) Chat(ctx context.Context, system string, history []model.ChatTurn, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		contents = append(contents, &genai.Content{
			Role:  turn.Role,
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}

	chat, err := g.client.Chats.Create(ctx, g.model, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}, contents)
	if err != nil {
		return "", fmt.Errorf("create chat: %w", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	return resp.Text(), nil
}

func (g *Gemini) SOAPNotes(ctx context.Context, prompt string) (string, error) {
	field := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"subjective": field("Patient's reported symptoms and feelings."),
				"objective":  field("Doctor's objective findings and observations."),
				"assessment": field("Doctor's diagnosis or clinical impression."),
				"plan":       field("Treatment plan, next steps, and follow-up."),
			},
			Required: []string{"subjective", "objective", "assessment", "plan"},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

func mapChunks(resp *genai.GenerateContentResponse) []model.GroundingChunk {
	chunks := []model.GroundingChunk{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return chunks
	}
	for _, c := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if c == nil || c.Maps == nil {
			continue
		}
		chunks = append(chunks, model.GroundingChunk{
			Maps: &model.MapsPlace{URI: c.Maps.URI, Title: c.Maps.Title},
		})
	}
	return chunks
}
