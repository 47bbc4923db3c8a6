package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/selflab/internal/domain/dailylog"
	"github.com/rpggio/selflab/internal/domain/experiment"
	"github.com/rpggio/selflab/internal/domain/template"
	"github.com/rpggio/selflab/internal/domain/wiki"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
	cause        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, experiment.ErrExperimentNotFound):
		return &APIError{Code: "EXPERIMENT_NOT_FOUND", Message: "experiment not found", RecoveryHint: "Call list_experiments for valid IDs", cause: err}
	case errors.Is(err, wiki.ErrEntryNotFound):
		return &APIError{Code: "WIKI_ENTRY_NOT_FOUND", Message: "wiki entry not found", RecoveryHint: "Call list_wiki_entries for valid IDs", cause: err}
	case errors.Is(err, template.ErrTemplateNotFound):
		return &APIError{Code: "TEMPLATE_NOT_FOUND", Message: "template not found", RecoveryHint: "Call list_templates for valid IDs", cause: err}
	case errors.Is(err, experiment.ErrInvalidInput),
		errors.Is(err, dailylog.ErrInvalidInput),
		errors.Is(err, wiki.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Fix the listed fields and retry", cause: err}
	default:
		return nil
	}
}

// toolError converts a service error into the error returned to the client.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
