package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resortbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content/events", h.Events)
	rg.GET("/content/promotions", h.Promotions)
	rg.GET("/content/pricing", h.Pricing)
}

func (h *Handler) Events(c *gin.Context) {
	events, err := h.service.UpcomingEvents(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

func (h *Handler) Promotions(c *gin.Context) {
	promos, err := h.service.ActivePromotions(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"promotions": promos})
}

func (h *Handler) Pricing(c *gin.Context) {
	entries, err := h.service.Pricing(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pricing": entries})
}
