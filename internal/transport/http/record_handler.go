package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/record-store/internal/domain"
	"github.com/Gunvolt24/record-store/pkg/httpx"
	"github.com/Gunvolt24/record-store/pkg/validate"
)

// listRecords — GET /records: фильтры + keyset-пагинация.
func (h *Handler) listRecords(c *gin.Context) {
	limit, err := httpx.ParseLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cursor, err := httpx.ParseCursor(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := domain.ListQuery{
		Filter: domain.RecordFilter{
			Q:        c.Query("q"),
			Artist:   c.Query("artist"),
			Album:    c.Query("album"),
			Format:   c.Query("format"),
			Category: c.Query("category"),
		},
		Limit:  limit,
		Cursor: cursor,
	}

	page, err := h.records.List(c.Request.Context(), q)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "List failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// createRecord — POST /records.
func (h *Handler) createRecord(c *gin.Context) {
	var data domain.RecordData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.records.Create(c.Request.Context(), data)
	if err != nil {
		h.writeRecordError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// updateRecord — PUT /records/:id.
func (h *Handler) updateRecord(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	var data domain.RecordData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.records.Update(c.Request.Context(), id, data)
	if err != nil {
		h.writeRecordError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// writeRecordError — отображение доменных ошибок каталога на HTTP-статусы.
func (h *Handler) writeRecordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validate.ErrInvalidRecord):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateRecord):
		c.JSON(http.StatusConflict, gin.H{"error": "record already exists"})
	case errors.Is(err, domain.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		h.log.Errorf(c.Request.Context(), "record operation failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
