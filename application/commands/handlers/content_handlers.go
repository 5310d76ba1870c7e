package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mindmesh-backend/application/commands"
	"mindmesh-backend/application/commands/bus"
	"mindmesh-backend/application/ports"
)

// TeachMeHandler forwards lesson submissions to the upstream service
type TeachMeHandler struct {
	api    ports.ContentAPI
	logger *zap.Logger
}

// NewTeachMeHandler creates a new teach-me handler
func NewTeachMeHandler(api ports.ContentAPI, logger *zap.Logger) *TeachMeHandler {
	return &TeachMeHandler{api: api, logger: logger}
}

// Handle executes the command
func (h *TeachMeHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.TeachMeCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	err := h.api.TeachMe(ctx, ports.TeachPayload{
		Term:        c.Term,
		Transcripts: c.Transcripts,
	})
	if err != nil {
		h.logger.Error("Teach submission failed",
			zap.String("term", c.Term),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("Teach submission accepted", zap.String("term", c.Term))
	return nil
}

// AskQuestionHandler forwards question submissions to the upstream service
type AskQuestionHandler struct {
	api    ports.ContentAPI
	logger *zap.Logger
}

// NewAskQuestionHandler creates a new ask-question handler
func NewAskQuestionHandler(api ports.ContentAPI, logger *zap.Logger) *AskQuestionHandler {
	return &AskQuestionHandler{api: api, logger: logger}
}

// Handle executes the command
func (h *AskQuestionHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.AskQuestionCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	err := h.api.AskQuestion(ctx, ports.QuestionPayload{
		SearchTerm:     c.SearchTerm,
		Transcripts:    c.Transcripts,
		ExpertiseLevel: c.ExpertiseLevel,
		QuestionText:   c.QuestionText,
	})
	if err != nil {
		h.logger.Error("Question submission failed",
			zap.String("term", c.SearchTerm),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("Question submission accepted", zap.String("term", c.SearchTerm))
	return nil
}

// InstagraphHandler forwards instant-graph submissions to the upstream service
type InstagraphHandler struct {
	api    ports.ContentAPI
	logger *zap.Logger
}

// NewInstagraphHandler creates a new instagraph handler
func NewInstagraphHandler(api ports.ContentAPI, logger *zap.Logger) *InstagraphHandler {
	return &InstagraphHandler{api: api, logger: logger}
}

// Handle executes the command
func (h *InstagraphHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.InstagraphCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	err := h.api.Instagraph(ctx, ports.TeachPayload{
		Term:        c.Term,
		Transcripts: c.Transcripts,
	})
	if err != nil {
		h.logger.Error("Instagraph submission failed",
			zap.String("term", c.Term),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("Instagraph submission accepted", zap.String("term", c.Term))
	return nil
}
