// Package api translates HTTP requests into registry calls and registry
// results into the uniform response envelope.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/registrolabs/registro/pkg/registry"
	"github.com/registrolabs/registro/pkg/schema"
)

// Handler serves the resource endpoints against any registry.Service.
type Handler struct {
	Service registry.Service
	Version string
	Started time.Time
}

// List handles GET /resources.
func (h *Handler) List(c *gin.Context) {
	records, err := h.Service.List()
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "could not list records")
		return
	}
	respondOK(c, http.StatusOK, fmt.Sprintf("found %d records", len(records)), records)
}

// Create handles POST /resources.
func (h *Handler) Create(c *gin.Context) {
	var in schema.NewRecord
	if err := c.ShouldBindJSON(&in); err != nil {
		respondErr(c, http.StatusBadRequest, "malformed request body")
		return
	}

	rec, err := h.Service.Create(in.Name, in.Email)
	if err != nil {
		var verr *registry.ValidationError
		if errors.As(err, &verr) {
			respondErr(c, http.StatusBadRequest, verr.Error())
			return
		}
		respondErr(c, http.StatusInternalServerError, "could not create record")
		return
	}

	recordsCreatedTotal.Inc()
	respondOK(c, http.StatusCreated, "record created", rec)
}

// GetByID handles GET /resources/:id. A non-numeric or non-positive id is
// a client error distinct from not-found.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondErr(c, http.StatusBadRequest, registry.ErrInvalidID.Error())
		return
	}

	rec, err := h.Service.Get(id)
	switch {
	case errors.Is(err, registry.ErrInvalidID):
		respondErr(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, registry.ErrNotFound):
		respondErr(c, http.StatusNotFound, err.Error())
	case err != nil:
		respondErr(c, http.StatusInternalServerError, "could not fetch record")
	default:
		respondOK(c, http.StatusOK, "record found", rec)
	}
}

// Home handles GET / with a short description of the service.
func (h *Handler) Home(c *gin.Context) {
	respondOK(c, http.StatusOK, "registro resource registry", gin.H{
		"version": h.Version,
		"endpoints": []string{
			"/resources",
			"/resources/{id}",
			"/health",
			"/status",
			"/metrics",
		},
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	respondOK(c, http.StatusOK, "server is healthy", gin.H{
		"status":      "healthy",
		"server_time": time.Now().UTC().Format(time.RFC3339),
	})
}

// Status handles GET /status with uptime and the current record count.
func (h *Handler) Status(c *gin.Context) {
	records, err := h.Service.List()
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "could not read registry state")
		return
	}
	respondOK(c, http.StatusOK, "server status", gin.H{
		"version": h.Version,
		"uptime":  time.Since(h.Started).Round(time.Second).String(),
		"records": len(records),
	})
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, schema.Envelope{Success: true, Message: message, Data: data})
}

func respondErr(c *gin.Context, status int, msg string) {
	c.JSON(status, schema.Envelope{Success: false, Error: msg})
}
