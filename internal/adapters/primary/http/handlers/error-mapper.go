package handlers

import (
	"errors"
	"net/http"

	"humanizer-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrPresetNotFound),
		errors.Is(err, domain.ErrLexiconEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrPresetNameConflict),
		errors.Is(err, domain.ErrLexiconEntryConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrEmptyText),
		errors.Is(err, domain.ErrTextTooLarge),
		errors.Is(err, domain.ErrInvalidIntensity),
		errors.Is(err, domain.ErrInvalidCycles),
		errors.Is(err, domain.ErrInvalidPresetName),
		errors.Is(err, domain.ErrInvalidWord),
		errors.Is(err, domain.ErrInvalidPartOfSpeech),
		errors.Is(err, domain.ErrEmptySynonyms):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
