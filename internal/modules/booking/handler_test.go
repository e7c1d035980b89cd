package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"resortbooking/internal/database"
	"resortbooking/internal/domain"
	"resortbooking/internal/middleware"
	jwtsvc "resortbooking/internal/pkg/jwt"
	"resortbooking/internal/repository"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	bookingRepo := repository.NewBookingRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	handler := NewHandler(NewService(bookingRepo, roomRepo))

	j := jwtsvc.New("test-secret", time.Hour)

	router := gin.New()
	v1 := router.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))
	handler.RegisterRoutes(protected)

	admin := v1.Group("/admin")
	admin.Use(middleware.Auth(j), middleware.AdminOnly())
	handler.RegisterAdminRoutes(admin)

	return router, db, j
}

func seedRoomAndUsers(t *testing.T, db *gorm.DB) *domain.Room {
	t.Helper()
	night := 1500.0
	room := &domain.Room{
		Name: "Cottage 1", RoomType: domain.RoomCottage,
		DayPrice: 1000, NightPrice: &night, Capacity: 8, IsActive: true,
	}
	require.NoError(t, db.Create(room).Error)
	require.NoError(t, db.Create(&domain.User{Email: "guest@example.com", PasswordHash: "x", Role: domain.RoleGuest}).Error)
	require.NoError(t, db.Create(&domain.User{Email: "admin@example.com", PasswordHash: "x", Role: domain.RoleAdmin}).Error)
	return room
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHandler_CreateAndCancelBooking(t *testing.T) {
	router, db, j := setupRouter(t)
	room := seedRoomAndUsers(t, db)

	token, err := j.GenerateToken(1, "guest")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings", CreateBookingRequest{
		RoomID: room.ID,
		Slots: []domain.SlotInput{
			{Date: "2026-09-01", Slot: "day"},
			{Date: "2026-09-01", Slot: "night"},
		},
		Guests: 4,
	}, token)

	require.Equal(t, http.StatusCreated, resp.Code)
	var created envelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.True(t, created.Success)

	var payload struct {
		Booking BookingView `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(created.Data, &payload))
	assert.Equal(t, 2500.0, payload.Booking.TotalPrice)
	assert.Equal(t, "pending", payload.Booking.Status)
	assert.Equal(t, "1 day + 1 night", payload.Booking.SlotsSummary)

	// The same slot cannot be booked twice.
	resp = performRequest(router, http.MethodPost, "/api/v1/bookings", CreateBookingRequest{
		RoomID: room.ID,
		Slots:  []domain.SlotInput{{Date: "2026-09-01", Slot: "day"}},
	}, token)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	var conflict envelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &conflict))
	assert.Equal(t, "VALIDATION_ERROR", conflict.Error.Code)
	assert.Contains(t, conflict.Error.Message, "already booked")

	// Cancelling frees the slot.
	resp = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%d", payload.Booking.ID), nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodPost, "/api/v1/bookings", CreateBookingRequest{
		RoomID: room.ID,
		Slots:  []domain.SlotInput{{Date: "2026-09-01", Slot: "day"}},
	}, token)
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestHandler_RequiresAuth(t *testing.T) {
	router, db, _ := setupRouter(t)
	seedRoomAndUsers(t, db)

	resp := performRequest(router, http.MethodGet, "/api/v1/bookings", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHandler_AdminStatusGate(t *testing.T) {
	router, db, j := setupRouter(t)
	room := seedRoomAndUsers(t, db)

	guestToken, _ := j.GenerateToken(1, "guest")
	adminToken, _ := j.GenerateToken(2, "admin")

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings", CreateBookingRequest{
		RoomID: room.ID,
		Slots:  []domain.SlotInput{{Date: "2026-09-03", Slot: "day"}},
	}, guestToken)
	require.Equal(t, http.StatusCreated, resp.Code)

	// Guests cannot reach the admin endpoint.
	resp = performRequest(router, http.MethodPatch, "/api/v1/admin/bookings/1/status",
		UpdateStatusRequest{Status: "cancelled"}, guestToken)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(router, http.MethodPatch, "/api/v1/admin/bookings/1/status",
		UpdateStatusRequest{Status: "cancelled"}, adminToken)
	assert.Equal(t, http.StatusOK, resp.Code)
}
