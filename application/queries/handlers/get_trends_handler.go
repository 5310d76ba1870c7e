package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mindmesh-backend/application/ports"
	"mindmesh-backend/application/queries"
	"mindmesh-backend/application/queries/bus"
)

// GetTrendsHandler handles trending topic queries
type GetTrendsHandler struct {
	api    ports.ContentAPI
	logger *zap.Logger
}

// NewGetTrendsHandler creates a new trends query handler
func NewGetTrendsHandler(api ports.ContentAPI, logger *zap.Logger) *GetTrendsHandler {
	return &GetTrendsHandler{
		api:    api,
		logger: logger,
	}
}

// Handle executes the trends query
func (h *GetTrendsHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	if _, ok := q.(queries.GetTrendsQuery); !ok {
		return nil, fmt.Errorf("unexpected query type %T", q)
	}

	response, err := h.api.Trends(ctx)
	if err != nil {
		h.logger.Error("Failed to fetch trends", zap.Error(err))
		return nil, err
	}

	return &queries.GetTrendsResult{Trends: response.Trends}, nil
}
