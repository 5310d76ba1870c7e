package queries

import (
	"strconv"

	"mindmesh-backend/application/ports"
	pkgerrors "mindmesh-backend/pkg/errors"
)

// GetSentimentsQuery requests sentiment analysis, optionally filtered by
// topic and a cutoff date in unix seconds.
type GetSentimentsQuery struct {
	Topic      string `json:"topic,omitempty"`
	CutoffDate string `json:"cutoff_date,omitempty"`
}

// Validate validates the query
func (q GetSentimentsQuery) Validate() error {
	if q.CutoffDate != "" {
		if _, err := strconv.ParseInt(q.CutoffDate, 10, 64); err != nil {
			return pkgerrors.NewValidationError("cutoff_date must be unix seconds")
		}
	}
	return nil
}

// GetSentimentsResult wraps the upstream sentiment payload.
type GetSentimentsResult struct {
	Data []ports.SentimentPoint `json:"data"`
}
