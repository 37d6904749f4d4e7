package model

import "time"

type MapsPlace struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// GroundingChunk is one source the model cited. Only map places are kept.
type GroundingChunk struct {
	Maps *MapsPlace `json:"maps,omitempty"`
}

type PlaceSearchResult struct {
	Text            string           `json:"text"`
	GroundingChunks []GroundingChunk `json:"grounding_chunks"`
}

// Places returns the chunks that carry a map place.
func (r PlaceSearchResult) Places() []MapsPlace {
	out := make([]MapsPlace, 0, len(r.GroundingChunks))
	for _, c := range r.GroundingChunks {
		if c.Maps != nil {
			out = append(out, *c.Maps)
		}
	}
	return out
}

type SymptomSender string

const (
	SymptomSenderUser SymptomSender = "user"
	SymptomSenderBot  SymptomSender = "bot"
)

type SymptomChatMessage struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Sender    SymptomSender `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
}

// ChatTurn is one prior exchange handed to the model, role "user" or "model".
type ChatTurn struct {
	Role string
	Text string
}

type SymptomCheckRequest struct {
	Message string `json:"message" binding:"required,notblank"`
}

type SpecialistSearchRequest struct {
	Specialty string `json:"specialty"`
}

type LabSearchRequest struct {
	TestName string `json:"test_name"`
}

type SummaryResult struct {
	Transcript string    `json:"transcript"`
	Notes      SOAPNotes `json:"notes"`
}
