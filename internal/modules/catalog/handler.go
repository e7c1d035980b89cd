package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resortbooking/internal/pkg/response"
	"resortbooking/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/all-availability", h.AllAvailability)
	rg.GET("/rooms/:id", h.GetRoom)
	rg.GET("/rooms/:id/availability", h.RoomAvailability)
}

func (h *Handler) ListRooms(c *gin.Context) {
	var f repository.RoomFilter
	f.RoomType = c.Query("room_type")
	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &p
		}
	}
	if v := c.Query("min_capacity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinCapacity = &n
		}
	}

	rooms, err := h.service.ListRooms(c.Request.Context(), f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) RoomAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}

	av, err := h.service.RoomAvailability(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, av)
}

func (h *Handler) AllAvailability(c *gin.Context) {
	avs, err := h.service.AllAvailability(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": avs})
}
