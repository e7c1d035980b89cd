package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"resortbooking/internal/database"
	"resortbooking/internal/middleware"
	"resortbooking/internal/modules/auth"
	"resortbooking/internal/modules/booking"
	"resortbooking/internal/modules/catalog"
	"resortbooking/internal/modules/content"
	"resortbooking/internal/modules/payment"
	jwtsvc "resortbooking/internal/pkg/jwt"
	"resortbooking/internal/repository"
	"resortbooking/internal/storage"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "resort.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	stripeWebhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if stripeKey == "" {
		log.Println("STRIPE_SECRET_KEY is empty, card payments will fail until it is set")
	}
	uploadDir := os.Getenv("UPLOAD_DIR")

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	contentRepo := repository.NewContentRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	files := storage.NewFileStore(uploadDir, "")
	gateway := payment.NewStripeGateway(stripeKey, stripeWebhookSecret)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo, bookingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	contentService := content.NewService(contentRepo)
	contentHandler := content.NewHandler(contentService)

	bookingService := booking.NewService(bookingRepo, roomRepo)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, files, gateway, os.Getenv("PAYMENT_CURRENCY"))
	paymentHandler := payment.NewHandler(paymentService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.RequestLogger())
	r.Static("/static/uploads", files.BaseDir())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		contentHandler.RegisterRoutes(v1)
		paymentHandler.RegisterWebhookRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
		}

		// admin
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			bookingHandler.RegisterAdminRoutes(admin)
			paymentHandler.RegisterAdminRoutes(admin)
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
