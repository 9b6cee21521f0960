package handlers

import (
	"net/http"

	"arheb/internal/domain"
	"arheb/internal/http/middleware"
	"arheb/internal/repositories"
	"arheb/internal/services"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	PhoneNumber    string `json:"phoneNumber"`
	RecaptchaToken string `json:"recaptchaToken"`
}

type verifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	SessionInfo string `json:"sessionInfo"`
	OTP         string `json:"otp"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{
		Users:     repositories.UserRepository{},
		Tokens:    getTokens(),
		Sender:    getSender(),
		RequestID: middleware.GetRequestID(c),
	}

	res, err := svc.Register(req.PhoneNumber, req.RecaptchaToken)
	if err != nil {
		if domain.IsValidation(err) {
			RespondDomainError(c, err)
			return
		}
		// sender failures surface as case 2 so clients can retry
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   err.Error(),
			"case":      services.RegisterCaseError,
			"timestamp": timestamp(),
		})
		return
	}

	payload := gin.H{
		"success":   true,
		"message":   res.Message,
		"case":      res.Case,
		"timestamp": timestamp(),
	}
	if res.SessionInfo != "" {
		payload["sessionInfo"] = res.SessionInfo
	}
	c.JSON(http.StatusOK, payload)
}

// POST /api/auth/verify-otp
func VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{
		Users:     repositories.UserRepository{},
		Tokens:    getTokens(),
		Sender:    getSender(),
		RequestID: middleware.GetRequestID(c),
	}

	res, err := svc.VerifyOTP(req.PhoneNumber, req.SessionInfo, req.OTP)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusOK, "Login successful", gin.H{
		"token":       res.Token,
		"phoneNumber": res.PhoneNumber,
	})
}
