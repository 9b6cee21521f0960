package handlers

import (
	"net/http"

	intconfig "arheb/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	Respond(c, http.StatusOK, "Server is running", gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusInternalServerError, "Database not connected", err)
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		RespondError(c, http.StatusInternalServerError, "Database query failed", err)
		return
	}
	Respond(c, http.StatusOK, "Database connection OK", gin.H{"usersInDb": count})
}
