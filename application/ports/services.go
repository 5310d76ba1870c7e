// Package ports defines the interfaces the application layer depends on.
// Infrastructure packages provide the implementations; the application
// never imports infrastructure directly.
package ports

import (
	"context"

	"mindmesh-backend/domain/graph"
)

// ContentAPI is the upstream content service, with paywall handling
// already applied: implementations settle payment challenges and retry
// transparently, so callers see at most one logical attempt.
type ContentAPI interface {
	// SearchNodes fetches the raw graph payload for a search term.
	// An empty term fetches the latest published content instead.
	SearchNodes(ctx context.Context, term string) (*graph.SearchResponse, error)

	// Trends fetches the currently trending topics.
	Trends(ctx context.Context) (*TrendingResponse, error)

	// Sentiments fetches sentiment analysis, optionally filtered by
	// topic and cutoff date (unix seconds as a string).
	Sentiments(ctx context.Context, topic, cutoffDate string) (*SentimentResponse, error)

	// TeachMe submits transcripts for lesson generation.
	TeachMe(ctx context.Context, payload TeachPayload) error

	// AskQuestion submits a question against transcripts.
	AskQuestion(ctx context.Context, payload QuestionPayload) error

	// Instagraph submits transcripts for instant graph generation.
	Instagraph(ctx context.Context, payload TeachPayload) error
}

// PaymentSettler settles a payment challenge and returns the proof to
// attach as an authorization credential on the retried request.
//
// Settling moves real money. Implementations must never be invoked
// speculatively, and callers must invoke them at most once per challenge.
type PaymentSettler interface {
	Settle(ctx context.Context, challenge string) (proof string, err error)
}

// Positioner is the external layout collaborator: given a style and a
// finished node list it assigns coordinates and derives the link set.
// Treated as a black box by the pipeline.
type Positioner interface {
	Position(style string, nodes []*graph.NodeExtended) (*graph.Data, error)
}

// Cache is a read-through cache for query results.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, ttl int) error
	Delete(ctx context.Context, key string) error
}

// TrendingTopic is one trending entry from the upstream API.
type TrendingTopic struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// TrendingResponse is the upstream trends payload.
type TrendingResponse struct {
	Trends []TrendingTopic `json:"trends"`
}

// SentimentPoint is one dated sentiment score.
type SentimentPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"sentiment_score"`
}

// SentimentResponse is the upstream sentiment payload.
type SentimentResponse struct {
	Data []SentimentPoint `json:"data"`
}

// TeachPayload is the body for lesson and instant-graph submissions.
type TeachPayload struct {
	Term        string `json:"term"`
	Transcripts string `json:"transcripts"`
}

// QuestionPayload is the body for question submissions.
type QuestionPayload struct {
	SearchTerm     string `json:"search_term"`
	Transcripts    string `json:"transcripts"`
	ExpertiseLevel string `json:"expertise_level"`
	QuestionText   string `json:"question_text"`
}
