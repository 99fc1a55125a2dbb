package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bean-bloom/models"
)

type ContactController struct{}

func NewContactController() *ContactController {
	return &ContactController{}
}

// @Summary Request an account
// @Description Submit an account request; storefront accounts are provisioned manually
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/contact [post]
func (ctrl *ContactController) SubmitRequest(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	emailService, err := models.NewEmailService()
	if err != nil {
		// No SMTP configured; accept the request and rely on logs.
		log.Printf("Account request from %s <%s> (mail disabled): %s", req.FullName, req.Email, req.Message)
	} else if err := emailService.SendAccountRequestEmail(req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to send your request. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Your request has been sent. We'll contact you soon!",
	})
}
