package api

import (
	"net/http"

	"flightsearch-service/internal/domain/repository"
	"flightsearch-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the operator list/detail views over the persisted
// entities. Thin presentation layer only.
type AdminHandler struct {
	places   repository.PlaceRepository
	carriers repository.CarrierRepository
	agents   repository.AgentRepository
	legs     repository.LegRepository
	searches repository.FlightSearchRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	places repository.PlaceRepository,
	carriers repository.CarrierRepository,
	agents repository.AgentRepository,
	legs repository.LegRepository,
	searches repository.FlightSearchRepository,
) *AdminHandler {
	return &AdminHandler{
		places:   places,
		carriers: carriers,
		agents:   agents,
		legs:     legs,
		searches: searches,
	}
}

// Register mounts the admin routes on the given group
func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/places", h.listPlaces)
	router.GET("/carriers", h.listCarriers)
	router.GET("/agents", h.listAgents)
	router.GET("/legs", h.listLegs)
	router.GET("/legs/:id", h.getLeg)
	router.GET("/searches", h.listSearches)
}

func (h *AdminHandler) listPlaces(c *gin.Context) {
	places, err := h.places.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, places)
}

func (h *AdminHandler) listCarriers(c *gin.Context) {
	carriers, err := h.carriers.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, carriers)
}

func (h *AdminHandler) listAgents(c *gin.Context) {
	agents, err := h.agents.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agents)
}

func (h *AdminHandler) listLegs(c *gin.Context) {
	legs, err := h.legs.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]gin.H, 0, len(legs))
	for i := range legs {
		views = append(views, gin.H{
			"leg":      legs[i],
			"label":    legs[i].Label(),
			"duration": utils.FormatDuration(legs[i].Duration),
			"stops":    len(legs[i].Stops),
		})
	}
	c.JSON(http.StatusOK, views)
}

func (h *AdminHandler) listSearches(c *gin.Context) {
	searches, err := h.searches.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]gin.H, 0, len(searches))
	for i := range searches {
		views = append(views, gin.H{
			"search":  searches[i],
			"display": searches[i].String(),
		})
	}
	c.JSON(http.StatusOK, views)
}

func (h *AdminHandler) getLeg(c *gin.Context) {
	leg, err := h.legs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"leg":      leg,
		"label":    leg.Label(),
		"duration": utils.FormatDuration(leg.Duration),
	})
}
