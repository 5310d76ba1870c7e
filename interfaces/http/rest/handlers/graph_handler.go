package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mindmesh-backend/application/queries"
	querybus "mindmesh-backend/application/queries/bus"
	"mindmesh-backend/domain/graph"
	"mindmesh-backend/pkg/common"
	pkgerrors "mindmesh-backend/pkg/errors"
)

// GraphHandler serves the graph visualization endpoint
type GraphHandler struct {
	queryBus *querybus.QueryBus
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, errors *pkgerrors.ErrorHandler, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		queryBus: queryBus,
		errors:   errors,
		logger:   logger,
	}
}

// GetGraph handles GET /api/v1/graph?search=...&style=...
//
// The response is always a well-formed graph payload. Upstream failures
// degrade to empty nodes and links rather than an error status, so the
// visualization client can always render.
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	query := queries.GetGraphQuery{
		Term:  r.URL.Query().Get("search"),
		Style: r.URL.Query().Get("style"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		if pkgerrors.IsValidation(err) {
			h.errors.Handle(w, r, err)
			return
		}
		h.logger.Error("Graph query failed", zap.Error(err))
		common.RespondRaw(w, http.StatusOK, graph.EmptyData())
		return
	}

	common.RespondRaw(w, http.StatusOK, result)
}
