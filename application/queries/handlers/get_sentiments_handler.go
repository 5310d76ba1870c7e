package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mindmesh-backend/application/ports"
	"mindmesh-backend/application/queries"
	"mindmesh-backend/application/queries/bus"
)

// GetSentimentsHandler handles sentiment analysis queries
type GetSentimentsHandler struct {
	api    ports.ContentAPI
	logger *zap.Logger
}

// NewGetSentimentsHandler creates a new sentiments query handler
func NewGetSentimentsHandler(api ports.ContentAPI, logger *zap.Logger) *GetSentimentsHandler {
	return &GetSentimentsHandler{
		api:    api,
		logger: logger,
	}
}

// Handle executes the sentiments query
func (h *GetSentimentsHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.GetSentimentsQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", q)
	}

	response, err := h.api.Sentiments(ctx, query.Topic, query.CutoffDate)
	if err != nil {
		h.logger.Error("Failed to fetch sentiments",
			zap.String("topic", query.Topic),
			zap.Error(err),
		)
		return nil, err
	}

	return &queries.GetSentimentsResult{Data: response.Data}, nil
}
