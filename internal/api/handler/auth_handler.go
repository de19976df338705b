package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/chirp/internal/api/dto"
	"github.com/martijn/chirp/internal/core/domain"
	"github.com/martijn/chirp/internal/core/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "username and password are required",
		})
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{
		User: toUserResponse(user, true),
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "username and password are required",
		})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user, false),
	})
}

func toUserResponse(user *domain.User, withCreatedAt bool) dto.UserResponse {
	response := dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
	if withCreatedAt {
		createdAt := user.CreatedAt
		response.CreatedAt = &createdAt
	}
	return response
}
