// Package commands defines the write-side operations: submissions that
// move data (and money, via the paywall) toward the upstream service.
package commands

import (
	"github.com/go-playground/validator/v10"

	pkgerrors "mindmesh-backend/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// TeachMeCommand submits transcripts for lesson generation.
type TeachMeCommand struct {
	Term        string `json:"term" validate:"required,max=200"`
	Transcripts string `json:"transcripts" validate:"required"`
}

// Validate validates the command
func (c TeachMeCommand) Validate() error {
	if err := validate.Struct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// AskQuestionCommand submits a question against transcripts.
type AskQuestionCommand struct {
	SearchTerm     string `json:"search_term" validate:"required,max=200"`
	Transcripts    string `json:"transcripts" validate:"required"`
	ExpertiseLevel string `json:"expertise_level" validate:"required,oneof=beginner intermediate advanced expert"`
	QuestionText   string `json:"question_text" validate:"required,max=2000"`
}

// Validate validates the command
func (c AskQuestionCommand) Validate() error {
	if err := validate.Struct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// InstagraphCommand submits transcripts for instant graph generation.
type InstagraphCommand struct {
	Term        string `json:"term" validate:"required,max=200"`
	Transcripts string `json:"transcripts" validate:"required"`
}

// Validate validates the command
func (c InstagraphCommand) Validate() error {
	if err := validate.Struct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
