package handlers

import (
	"humanizer-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	rewriteSvc *services.RewriteService
	presetSvc  *services.PresetService
	lexiconSvc *services.LexiconService
	statsSvc   *services.StatsService
}

func New(
	rewriteSvc *services.RewriteService,
	presetSvc *services.PresetService,
	lexiconSvc *services.LexiconService,
	statsSvc *services.StatsService,
) *Handler {
	return &Handler{
		rewriteSvc: rewriteSvc,
		presetSvc:  presetSvc,
		lexiconSvc: lexiconSvc,
		statsSvc:   statsSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Rewrites
	r.POST("/rewrites", h.CreateRewrite)
	r.GET("/rewrites", h.ListRewrites)
	r.GET("/rewrites/:id", h.GetRewrite)
	r.DELETE("/rewrites/:id", h.DeleteRewrite)

	// Presets
	r.GET("/presets", h.ListPresets)
	r.GET("/presets/:id", h.GetPreset)
	r.GET("/preset", h.GetPresetByName)
	r.POST("/presets", h.CreatePreset)
	r.PATCH("/presets/:id", h.UpdatePreset)
	r.DELETE("/presets/:id", h.DeletePreset)

	// Lexicon
	r.GET("/lexicon", h.ListLexiconEntries)
	r.GET("/lexicon/:id", h.GetLexiconEntry)
	r.POST("/lexicon", h.CreateLexiconEntry)
	r.PATCH("/lexicon/:id", h.UpdateLexiconEntry)
	r.DELETE("/lexicon/:id", h.DeleteLexiconEntry)

	// Stats
	r.GET("/stats", h.GetStats)
}
