package queries

import "mindmesh-backend/application/ports"

// GetTrendsQuery requests the currently trending topics.
type GetTrendsQuery struct{}

// Validate validates the query
func (q GetTrendsQuery) Validate() error {
	return nil
}

// GetTrendsResult wraps the upstream trends payload.
type GetTrendsResult struct {
	Trends []ports.TrendingTopic `json:"trends"`
}
