package handlers

import (
	"net/http"

	"humanizer-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.statsSvc.Stats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("stats query failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
