package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
	"github.com/BruksfildServices01/restaurant-api/internal/httpresp"
	"github.com/BruksfildServices01/restaurant-api/internal/middleware"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		First(&user, middleware.UserID(c)).Error; err != nil {

		if httperr.IsNotFound(err) {
			httperr.Respond(c, httperr.ErrNotFound("user_not_found"))
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": userView(&user)})
}
