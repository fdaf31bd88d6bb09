package handlers

import (
	"net/http"

	"humanizer-service/internal/adapters/primary/http/dto"
	"humanizer-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListPresets(c *gin.Context) {
	presets, err := h.presetSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list presets failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PresetResponse, 0, len(presets))
	for _, p := range presets {
		items = append(items, dto.ToPresetResponse(p))
	}

	c.JSON(http.StatusOK, dto.ListPresetsResponse{Items: items, Total: len(items)})
}

func (h *Handler) GetPreset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset id"})
		return
	}

	preset, err := h.presetSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

func (h *Handler) GetPresetByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidPresetName.Error()})
		return
	}

	preset, err := h.presetSvc.GetByName(c.Request.Context(), name)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

func (h *Handler) CreatePreset(c *gin.Context) {
	var req dto.CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := h.presetSvc.Create(c.Request.Context(), req.Name, req.Description, req.Intensity, req.DeepThink, req.Cycles)
	if err != nil {
		log.WithError(err).Error("create preset failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPresetResponse(preset))
}

func (h *Handler) UpdatePreset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset id"})
		return
	}

	var req dto.UpdatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Intensity != nil {
		updates["intensity"] = *req.Intensity
	}
	if req.DeepThink != nil {
		updates["deep_think"] = *req.DeepThink
	}
	if req.Cycles != nil {
		updates["cycles"] = *req.Cycles
	}

	preset, err := h.presetSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update preset failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

func (h *Handler) DeletePreset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset id"})
		return
	}

	if err := h.presetSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete preset failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
