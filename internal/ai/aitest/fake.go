// Package aitest provides an in-memory ai.Assistant for tests.
package aitest

import (
	"context"
	"sync"

	"github.com/jwalitptl/medlink-api/internal/ai"
	"github.com/jwalitptl/medlink-api/internal/model"
)

// Call records one invocation of the fake.
type Call struct {
	Op       string
	Query    string
	Location model.Location
	History  []model.ChatTurn
}

// Assistant answers every request with the configured canned values.
type Assistant struct {
	Places model.PlaceSearchResult
	Reply  string
	Notes  model.SOAPNotes

	mu    sync.Mutex
	calls []Call
}

var _ ai.Assistant = (*Assistant)(nil)

func (a *Assistant) record(c Call) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, c)
}

// Calls returns a copy of the recorded invocations.
func (a *Assistant) Calls() []Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Call(nil), a.calls...)
}

func (a *Assistant) FindNearbySpecialists(ctx context.Context, specialty string, loc model.Location) model.PlaceSearchResult {
	a.record(Call{Op: ai.OpSpecialists, Query: specialty, Location: loc})
	return a.Places
}

func (a *Assistant) FindNearbyPharmacies(ctx context.Context, loc model.Location) model.PlaceSearchResult {
	a.record(Call{Op: ai.OpPharmacies, Location: loc})
	return a.Places
}

func (a *Assistant) FindNearbyLabs(ctx context.Context, testName string, loc model.Location) model.PlaceSearchResult {
	a.record(Call{Op: ai.OpLabs, Query: testName, Location: loc})
	return a.Places
}

func (a *Assistant) SymptomCheck(ctx context.Context, history []model.ChatTurn, message string) string {
	a.record(Call{Op: ai.OpSymptoms, Query: message, History: history})
	return a.Reply
}

func (a *Assistant) SummarizeConsultation(ctx context.Context, transcript string) model.SOAPNotes {
	a.record(Call{Op: ai.OpSummary, Query: transcript})
	return a.Notes
}
