// internal/common/errors/handler.go
package errors

import (
	"time"
)

// Logger is the minimal logging surface the handler needs.
type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

// Handler normalizes and logs per-scheme evaluation errors so one malformed
// record never aborts a whole ranking pass.
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// HandleSchemeError classifies an error raised while evaluating a single
// scheme. It returns true when the scheme should be skipped and the pass
// should continue; false means the error is not per-scheme and must
// propagate.
func (h *Handler) HandleSchemeError(schemeID string, err error) bool {
	stdErr := h.normalize(err)

	if stdErr.Code == ErrCodeEligibilityDataIntegrity {
		h.logger.Warn("skipping scheme with malformed eligibility record", map[string]interface{}{
			"schemeId":  schemeID,
			"errorCode": string(stdErr.Code),
			"details":   stdErr.Details,
		})
		return true
	}

	h.logger.Error("scheme evaluation failed", map[string]interface{}{
		"schemeId":  schemeID,
		"errorCode": string(stdErr.Code),
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	})
	return false
}

// normalize ensures we always have a StandardError.
func (h *Handler) normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}
