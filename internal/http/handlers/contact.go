package handlers

import (
	"net/http"
	"regexp"

	"arheb/internal/http/middleware"
	"arheb/internal/repositories"

	"github.com/gin-gonic/gin"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// GET /api/contact
func GetContact(c *gin.Context) {
	contact, err := repositories.ContactRepository{}.Latest()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "Contact information retrieved", contact)
}

type contactRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PUT /api/contact, admin only.
func UpdateContact(c *gin.Context) {
	user, err := repositories.UserRepository{}.FindByPhone(middleware.GetIdentity(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if user.Type != "admin" {
		RespondError(c, http.StatusForbidden, "Only admins can update contact information", nil)
		return
	}

	var req contactRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Email == "" && req.Phone == "" {
		RespondError(c, http.StatusBadRequest, "email or phone is required", nil)
		return
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		RespondError(c, http.StatusBadRequest, "Invalid email format", nil)
		return
	}
	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		RespondError(c, http.StatusBadRequest, "Invalid phone format", nil)
		return
	}

	repo := repositories.ContactRepository{}
	if err := repo.Update(req.Email, req.Phone); err != nil {
		RespondDomainError(c, err)
		return
	}
	contact, err := repo.Latest()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "Contact information updated", contact)
}
