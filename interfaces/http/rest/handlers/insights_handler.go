package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"mindmesh-backend/application/commands"
	commandbus "mindmesh-backend/application/commands/bus"
	"mindmesh-backend/application/queries"
	querybus "mindmesh-backend/application/queries/bus"
	"mindmesh-backend/pkg/common"
	pkgerrors "mindmesh-backend/pkg/errors"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// InsightsHandler serves the trend, sentiment, and content submission
// endpoints. Failures flow through the shared error responder, which maps
// each error type onto its HTTP status: validation 400, payment required
// 402, upstream 502.
type InsightsHandler struct {
	commandBus *commandbus.CommandBus
	queryBus   *querybus.QueryBus
	errors     *pkgerrors.ErrorHandler
	logger     *zap.Logger
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(commandBus *commandbus.CommandBus, queryBus *querybus.QueryBus, errors *pkgerrors.ErrorHandler, logger *zap.Logger) *InsightsHandler {
	return &InsightsHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errors:     errors,
		logger:     logger,
	}
}

// GetTrends handles GET /api/v1/trends
func (h *InsightsHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetTrendsQuery{})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetSentiments handles GET /api/v1/sentiments?topic=...&cutoff_date=...
func (h *InsightsHandler) GetSentiments(w http.ResponseWriter, r *http.Request) {
	query := queries.GetSentimentsQuery{
		Topic:      r.URL.Query().Get("topic"),
		CutoffDate: r.URL.Query().Get("cutoff_date"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// TeachMe handles POST /api/v1/teach
func (h *InsightsHandler) TeachMe(w http.ResponseWriter, r *http.Request) {
	var cmd commands.TeachMeCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.dispatch(w, r, cmd)
}

// AskQuestion handles POST /api/v1/ask
func (h *InsightsHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	var cmd commands.AskQuestionCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.dispatch(w, r, cmd)
}

// Instagraph handles POST /api/v1/instagraph
func (h *InsightsHandler) Instagraph(w http.ResponseWriter, r *http.Request) {
	var cmd commands.InstagraphCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.dispatch(w, r, cmd)
}

func (h *InsightsHandler) dispatch(w http.ResponseWriter, r *http.Request, cmd commandbus.Command) {
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "submitted"})
}
