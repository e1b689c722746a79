package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacksmith/taskd/internal/ops"
	"github.com/jacksmith/taskd/internal/storage"
)

// errorResponse is the body of every non-2xx response: a machine-readable
// error code, a human-readable message, and context fields that apply
// only to specific codes.
type errorResponse struct {
	Error              string `json:"error"`
	Message            string `json:"message"`
	ProvidedID         string `json:"providedId,omitempty"`
	TaskID             string `json:"taskId,omitempty"`
	AvailableTaskCount *int   `json:"availableTaskCount,omitempty"`
	Details            string `json:"details,omitempty"`
}

// writeError maps an operation error to its status code and error code.
// The mapping is exhaustive over the errors the ops and storage layers
// produce; anything unrecognized reports INTERNAL_ERROR.
func writeError(c *gin.Context, err error) {
	var missingErr *ops.MissingIDError
	if errors.As(err, &missingErr) {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "MISSING_TASK_ID",
			Message: "Task ID is required.",
		})
		return
	}

	var invalidErr *ops.InvalidIDError
	if errors.As(err, &invalidErr) {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:      "INVALID_TASK_ID_FORMAT",
			Message:    "Task ID must contain only digits.",
			ProvidedID: invalidErr.Provided,
		})
		return
	}

	var notFoundErr *ops.NotFoundError
	if errors.As(err, &notFoundErr) {
		available := notFoundErr.Available
		c.JSON(http.StatusNotFound, errorResponse{
			Error:              "TASK_NOT_FOUND",
			Message:            "No task exists with the given ID.",
			TaskID:             notFoundErr.ID,
			AvailableTaskCount: &available,
		})
		return
	}

	var validationErr *ops.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "MISSING_TITLE",
			Message: "Task title is required.",
		})
		return
	}

	var storeErr *storage.Error
	if errors.As(err, &storeErr) {
		status, code, message := classifyStoreError(storeErr.Kind)
		resp := errorResponse{Error: code, Message: message}
		switch storeErr.Kind {
		case storage.KindReadFailed, storage.KindBadJSON, storage.KindWriteFailed:
			resp.Details = details(storeErr)
		}
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "An unexpected error occurred.",
	})
}

// classifyStoreError maps a storage error kind to the wire error table.
func classifyStoreError(kind storage.ErrorKind) (status int, code, message string) {
	switch kind {
	case storage.KindNotFound:
		return http.StatusNotFound, "DATABASE_NOT_FOUND", "Task database does not exist."
	case storage.KindAccessDenied:
		return http.StatusInternalServerError, "FILE_ACCESS_DENIED", "Permission denied while reading the task database."
	case storage.KindReadFailed:
		return http.StatusInternalServerError, "FILE_READ_ERROR", "Failed to read the task database."
	case storage.KindBadJSON:
		return http.StatusInternalServerError, "INVALID_JSON", "Task database contains invalid JSON."
	case storage.KindNotArray:
		return http.StatusInternalServerError, "INVALID_DATABASE_STRUCTURE", "Task database must contain a JSON array."
	case storage.KindWriteDenied:
		return http.StatusInternalServerError, "FILE_WRITE_PERMISSION_DENIED", "Permission denied while writing the task database."
	case storage.KindNoSpace:
		return http.StatusInternalServerError, "DISK_SPACE_ERROR", "Not enough disk space to save the task database."
	case storage.KindWriteFailed:
		return http.StatusInternalServerError, "FILE_WRITE_ERROR", "Failed to write the task database."
	default:
		return http.StatusInternalServerError, "FILE_READ_ERROR", "Failed to read the task database."
	}
}

// details surfaces the underlying cause of a storage error.
func details(err *storage.Error) string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Error()
}
