package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacksmith/taskd/internal/model"
	"github.com/jacksmith/taskd/internal/ops"
)

// deleteResponse is the body of a successful delete.
type deleteResponse struct {
	Message             string     `json:"message"`
	DeletedTask         model.Task `json:"deletedTask"`
	RemainingTasksCount int        `json:"remainingTasksCount"`
}

// createRequest is the body accepted by the add-task endpoint.
type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// createResponse is the body of a successful create.
type createResponse struct {
	Message string     `json:"message"`
	Task    model.Task `json:"task"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleDeleteTask validates the path id, removes the first matching
// task, and reports the removed record with the new collection size.
func (s *Server) handleDeleteTask(c *gin.Context) {
	res, err := ops.DeleteTask(s.store, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteResponse{
		Message:             "Task deleted successfully.",
		DeletedTask:         res.Deleted,
		RemainingTasksCount: res.Remaining,
	})
}

// handleMissingID answers delete requests that carry no id segment.
func (s *Server) handleMissingID(c *gin.Context) {
	writeError(c, &ops.MissingIDError{})
}

func (s *Server) handleAddTask(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "INVALID_REQUEST_BODY",
			Message: "Request body must be valid JSON.",
			Details: err.Error(),
		})
		return
	}

	task, err := ops.AddTask(s.store, req.Title, ops.TaskOptions{
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createResponse{
		Message: "Task created successfully.",
		Task:    *task,
	})
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := ops.ListTasks(s.store)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
