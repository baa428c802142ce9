package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SearchUseCase is the orchestrator surface the HTTP layer depends on
type SearchUseCase interface {
	Search(ctx context.Context, origin, destination string, outbound, inbound time.Time, passengers int) (*entity.FlightSearch, error)
	GetSearch(ctx context.Context, id uuid.UUID) (*entity.FlightSearch, error)
	ListSearches(ctx context.Context) ([]entity.FlightSearch, error)
	PriceSummary(ctx context.Context, id uuid.UUID) (*entity.PriceSummary, error)
	OriginCity(ctx context.Context, search *entity.FlightSearch) (*entity.Place, error)
	DestinationCity(ctx context.Context, search *entity.FlightSearch) (*entity.Place, error)
}

// SearchRequest is the inbound search contract
type SearchRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Outbound    string `json:"outbound" binding:"required"`
	Inbound     string `json:"inbound" binding:"required"`
	Passengers  int    `json:"passengers"`
}

// SearchHandler serves the search endpoints
type SearchHandler struct {
	usecase SearchUseCase
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(usecase SearchUseCase) *SearchHandler {
	return &SearchHandler{usecase: usecase}
}

// Register mounts the search routes on the given group
func (h *SearchHandler) Register(router *gin.RouterGroup) {
	router.POST("/searches", h.create)
	router.GET("/searches", h.list)
	router.GET("/searches/:id", h.get)
	router.GET("/searches/:id/prices", h.prices)
}

func (h *SearchHandler) create(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outbound, err := utils.ParseDate(req.Outbound)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid outbound date"})
		return
	}
	inbound, err := utils.ParseDate(req.Inbound)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inbound date"})
		return
	}
	if req.Passengers <= 0 {
		req.Passengers = 1
	}

	search, err := h.usecase.Search(c.Request.Context(), req.Origin, req.Destination, outbound, inbound, req.Passengers)
	if err != nil {
		status := http.StatusInternalServerError
		body := gin.H{"error": err.Error()}

		var searchErr *entity.SearchError
		var malformedErr *entity.MalformedRecordError
		var lookupErr *entity.LookupError
		switch {
		case errors.As(err, &searchErr):
			status = http.StatusBadGateway
			body["upstream_status"] = searchErr.StatusCode
		case errors.As(err, &malformedErr), errors.As(err, &lookupErr):
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, search)
}

func (h *SearchHandler) list(c *gin.Context) {
	searches, err := h.usecase.ListSearches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, searches)
}

func (h *SearchHandler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search id"})
		return
	}
	search, err := h.usecase.GetSearch(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	// city resolution is best-effort, nil when no unambiguous match exists
	originCity, _ := h.usecase.OriginCity(c.Request.Context(), search)
	destinationCity, _ := h.usecase.DestinationCity(c.Request.Context(), search)

	c.JSON(http.StatusOK, gin.H{
		"search":           search,
		"origin_city":      originCity,
		"destination_city": destinationCity,
	})
}

func (h *SearchHandler) prices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search id"})
		return
	}
	summary, err := h.usecase.PriceSummary(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
