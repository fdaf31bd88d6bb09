package handlers

import (
	"net/http"
	"strconv"

	"humanizer-service/internal/adapters/primary/http/dto"
	ports "humanizer-service/internal/core/ports/output"
	"humanizer-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreateRewrite(c *gin.Context) {
	var req dto.RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.rewriteSvc.Rewrite(c.Request.Context(), services.RewriteRequest{
		Text:      req.Text,
		Intensity: req.Intensity,
		DeepThink: req.DeepThink,
		Cycles:    req.Cycles,
		PresetID:  req.PresetID,
	})
	if err != nil {
		log.WithError(err).Error("rewrite failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRewriteJobResponse(job))
}

func (h *Handler) ListRewrites(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.JobListFilter{
		Mode:   c.Query("mode"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Offset: offset,
	}

	jobs, total, err := h.rewriteSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list rewrites failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.RewriteJobSummary, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, dto.ToRewriteJobSummary(job))
	}

	c.JSON(http.StatusOK, dto.ListRewriteJobsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetRewrite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rewrite job id"})
		return
	}

	job, err := h.rewriteSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRewriteJobResponse(job))
}

func (h *Handler) DeleteRewrite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rewrite job id"})
		return
	}

	if err := h.rewriteSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete rewrite failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
