package handlers

import (
	"math"
	"net/http"

	"arheb/internal/http/middleware"
	"arheb/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/profile
func GetProfile(c *gin.Context) {
	user, err := repositories.UserRepository{}.FindByPhone(middleware.GetIdentity(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "Profile retrieved", gin.H{
		"phoneNumber": user.PhoneNumber,
		"name":        user.Name,
		"addressName": user.AddressName,
		"addressLong": user.AddressLong,
		"addressLat":  user.AddressLat,
	})
}

type profileRequest struct {
	Name        *string  `json:"name"`
	AddressName *string  `json:"addressName"`
	AddressLong *float64 `json:"addressLong"`
	AddressLat  *float64 `json:"addressLat"`
}

// PUT /api/profile
func UpdateProfile(c *gin.Context) {
	var req profileRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	for _, coord := range []*float64{req.AddressLong, req.AddressLat} {
		if coord != nil && (math.IsNaN(*coord) || math.IsInf(*coord, 0)) {
			RespondError(c, http.StatusBadRequest, "Coordinates must be valid numbers", nil)
			return
		}
	}

	repo := repositories.UserRepository{}
	identity := middleware.GetIdentity(c)
	err := repo.UpdateProfile(identity, repositories.ProfilePatch{
		Name:        req.Name,
		AddressName: req.AddressName,
		AddressLong: req.AddressLong,
		AddressLat:  req.AddressLat,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	user, err := repo.FindByPhone(identity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "Profile updated successfully", gin.H{
		"phoneNumber": user.PhoneNumber,
		"name":        user.Name,
		"addressName": user.AddressName,
		"addressLong": user.AddressLong,
		"addressLat":  user.AddressLat,
	})
}
