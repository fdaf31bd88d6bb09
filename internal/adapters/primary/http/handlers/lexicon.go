package handlers

import (
	"net/http"
	"strconv"

	"humanizer-service/internal/adapters/primary/http/dto"
	"humanizer-service/internal/core/domain"
	ports "humanizer-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListLexiconEntries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.LexiconListFilter{
		Pos:    c.Query("pos"),
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	}

	entries, total, err := h.lexiconSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list lexicon entries failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.LexiconEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ToLexiconEntryResponse(e))
	}

	c.JSON(http.StatusOK, dto.ListLexiconEntriesResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}

func (h *Handler) GetLexiconEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lexicon entry id"})
		return
	}

	entry, err := h.lexiconSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLexiconEntryResponse(entry))
}

func (h *Handler) CreateLexiconEntry(c *gin.Context) {
	var req dto.CreateLexiconEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.lexiconSvc.Create(c.Request.Context(), req.Word, domain.PartOfSpeech(req.Pos), req.Synonyms)
	if err != nil {
		log.WithError(err).Error("create lexicon entry failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLexiconEntryResponse(entry))
}

func (h *Handler) UpdateLexiconEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lexicon entry id"})
		return
	}

	var req dto.UpdateLexiconEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Word != nil {
		updates["word"] = *req.Word
	}
	if req.Pos != nil {
		updates["pos"] = *req.Pos
	}
	if req.Synonyms != nil {
		updates["synonyms"] = req.Synonyms
	}

	entry, err := h.lexiconSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update lexicon entry failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLexiconEntryResponse(entry))
}

func (h *Handler) DeleteLexiconEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lexicon entry id"})
		return
	}

	if err := h.lexiconSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete lexicon entry failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
