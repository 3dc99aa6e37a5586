package httpHandler

import (
	"exercise-tracker/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

type createUserRequest struct {
	Username string `form:"username" json:"username"`
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, err, "Error creating user")
		return
	}

	user, err := h.useCase.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, err, "Error creating user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"_id":      user.ID,
	})
}

// GetAllUsers handles GET /api/users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.useCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error retrieving users")
		return
	}

	c.JSON(http.StatusOK, users)
}
