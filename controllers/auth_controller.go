package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bean-bloom/models"
	"bean-bloom/repositories"
	"bean-bloom/services"
)

type AuthController struct {
	authService *services.AuthService
	userRepo    *repositories.UserRepository
}

func NewAuthController() *AuthController {
	return &AuthController{
		authService: services.NewAuthService(),
		userRepo:    repositories.NewUserRepository(),
	}
}

// @Summary Login
// @Description Authenticate and receive a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Email and password are required",
			Error:   err.Error(),
		})
		return
	}

	user, token, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Incorrect username or password.",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: gin.H{
			"token": token,
			"user":  user,
		},
	})
}

// @Summary Get profile
// @Description Get the authenticated user's profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	uidVal, _ := c.Get("user_id")
	uid, _ := uidVal.(int)

	user, err := ctrl.userRepo.GetUserByID(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile retrieved",
		Data:    user,
	})
}
