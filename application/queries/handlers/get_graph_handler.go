package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mindmesh-backend/application/pipeline"
	"mindmesh-backend/application/queries"
	"mindmesh-backend/application/queries/bus"
	"mindmesh-backend/domain/graph"
)

// GetGraphHandler handles graph construction queries
type GetGraphHandler struct {
	pipeline *pipeline.Pipeline
	logger   *zap.Logger
}

// NewGetGraphHandler creates a new graph query handler
func NewGetGraphHandler(p *pipeline.Pipeline, logger *zap.Logger) *GetGraphHandler {
	return &GetGraphHandler{
		pipeline: p,
		logger:   logger,
	}
}

// Handle executes the graph query. The pipeline degrades internally, so
// this handler never returns an error for upstream failures: the result
// is a well-formed, possibly empty graph.
func (h *GetGraphHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.GetGraphQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", q)
	}

	style := query.Style
	if style == "" {
		style = graph.DefaultStyle
	}

	data := h.pipeline.FetchGraphData(ctx, query.Term, style)

	h.logger.Debug("Graph query handled",
		zap.String("term", query.Term),
		zap.String("style", style),
		zap.Int("nodeCount", len(data.Nodes)),
		zap.Int("linkCount", len(data.Links)),
	)

	return &queries.GetGraphResult{
		Nodes: data.Nodes,
		Links: data.Links,
	}, nil
}
