package payment

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resortbooking/internal/pkg/response"
)

// Webhook bodies beyond this size are rejected before parsing.
const maxWebhookBody = 64 << 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/proof", h.SubmitProof)
	rg.POST("/payments/create-intent", h.CreateIntent)
	rg.POST("/payments/confirm/:booking_id", h.Confirm)
}

func (h *Handler) RegisterWebhookRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/webhook/stripe", h.StripeWebhook)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/:id/review", h.Review)
}

func (h *Handler) SubmitProof(c *gin.Context) {
	var req SubmitProofRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id is required")
		return
	}
	file, err := c.FormFile("proof_of_payment")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "proof_of_payment file is required")
		return
	}

	p, err := h.service.SubmitProof(c.Request.Context(), c.GetInt64("user_id"), req, file)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"payment": toView(p)})
}

func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id is required")
		return
	}

	intent, err := h.service.CreateIntent(c.Request.Context(), c.GetInt64("user_id"), req.BookingID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"intent": intent})
}

func (h *Handler) Confirm(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("booking_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	result, err := h.service.ConfirmByPoll(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// StripeWebhook answers 200 for every event it could verify, including
// replays and events it does not care about, so the gateway stops retrying.
func (h *Handler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable payload")
		return
	}

	if err := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"received": true})
}

func (h *Handler) Review(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment id")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "action must be approve or reject")
		return
	}

	p, err := h.service.ReviewProof(c.Request.Context(), id, req.Action == "approve")
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payment": toView(p)})
}
