package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/users/:id
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.userService().Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
