package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gotodo/backend/internal/model"
	"github.com/gotodo/backend/internal/service"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List godoc
// @Summary List the caller's todos
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Todo
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	user := GetAuthUser(c)

	todos, err := h.svc.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, todos)
}

// Create godoc
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateTodoRequest true "Todo payload"
// @Success 201 {object} model.Todo
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	user := GetAuthUser(c)

	var req model.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	todo, err := h.svc.Create(c.Request.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// Get godoc
// @Summary Get one todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} model.Todo
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/todos/{id} [get]
func (h *TodoHandler) Get(c *gin.Context) {
	user := GetAuthUser(c)

	id, ok := todoID(c)
	if !ok {
		return
	}

	todo, err := h.svc.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// UpdateStatus godoc
// @Summary Set the status of a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param request body model.UpdateStatusRequest true "New status"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/todos/{id}/status [patch]
func (h *TodoHandler) UpdateStatus(c *gin.Context) {
	user := GetAuthUser(c)

	id, ok := todoID(c)
	if !ok {
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), user.ID, id, req.Status); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "ok"})
}

// UpdatePriority godoc
// @Summary Set the priority of a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param request body model.UpdatePriorityRequest true "New priority"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/todos/{id}/priority [patch]
func (h *TodoHandler) UpdatePriority(c *gin.Context) {
	user := GetAuthUser(c)

	id, ok := todoID(c)
	if !ok {
		return
	}

	var req model.UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.UpdatePriority(c.Request.Context(), user.ID, id, req.Priority); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "ok"})
}

// UpdateDeadline godoc
// @Summary Set the deadline of a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param request body model.UpdateDeadlineRequest true "New deadline"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/todos/{id}/deadline [patch]
func (h *TodoHandler) UpdateDeadline(c *gin.Context) {
	user := GetAuthUser(c)

	id, ok := todoID(c)
	if !ok {
		return
	}

	var req model.UpdateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.UpdateDeadline(c.Request.Context(), user.ID, id, req.Deadline); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "ok"})
}

// UpdateDone godoc
// @Summary Set the done flag of a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param request body model.UpdateDoneRequest true "New done flag"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/todos/{id}/done [patch]
func (h *TodoHandler) UpdateDone(c *gin.Context) {
	user := GetAuthUser(c)

	id, ok := todoID(c)
	if !ok {
		return
	}

	var req model.UpdateDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.UpdateDone(c.Request.Context(), user.ID, id, *req.Done); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "ok"})
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} model.DeleteResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)

	id, ok := todoID(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), user.ID, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DeleteResponse{Deleted: deleted})
}

func todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
