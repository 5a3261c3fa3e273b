package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gotodo/backend/internal/model"
	"github.com/gotodo/backend/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user := GetAuthUser(c)

	stored, err := h.svc.GetByID(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewUserResponse(stored))
}
