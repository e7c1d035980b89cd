package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"resortbooking/internal/database"
	"resortbooking/internal/domain"
	"resortbooking/internal/pkg/validator"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "resort.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM booking_slots")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM promotions")
	db.Exec("DELETE FROM pricing_entries")

	log.Println("Seeding users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	guestHash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
	users := []domain.User{
		{Email: "admin@resort.local", PasswordHash: string(adminHash), Name: "Resort Admin", Role: domain.RoleAdmin},
		{Email: "guest@example.com", PasswordHash: string(guestHash), Name: "Sample Guest", Phone: "+639171234567", Role: domain.RoleGuest},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatal("Seeding users failed:", err)
	}

	log.Println("Seeding rooms...")
	rooms := []domain.Room{
		{
			Name: "Cottage 1", RoomType: domain.RoomCottage,
			Description: "Open cottage by the pool, good for small groups.",
			DayPrice:    800, NightPrice: price(1000), Capacity: 8,
			Amenities: []string{"table", "benches", "electric outlet"},
		},
		{
			Name: "Dos Andanas", RoomType: domain.RoomDosAndanas,
			Description: "Two-storey cottage with a view of the whole resort.",
			DayPrice:    1500, NightPrice: price(2000), Capacity: 15,
			Amenities: []string{"two floors", "tables", "electric outlet"},
		},
		{
			Name: "Lavender House", RoomType: domain.RoomLavenderHouse,
			Description: "Air-conditioned family house with its own restroom.",
			DayPrice:    3500, NightPrice: price(4500), Capacity: 10,
			Amenities: []string{"aircon", "restroom", "kitchenette", "wifi"},
		},
		{
			Name: "AC Karaoke Room", RoomType: domain.RoomACKaraoke,
			Description: "Air-conditioned room with a karaoke machine.",
			DayPrice:    2500, NightPrice: price(3000), Capacity: 12,
			Amenities: []string{"aircon", "karaoke", "restroom"},
		},
		{
			Name: "Kubo 1", RoomType: domain.RoomKubo,
			Description: "Native bamboo hut, daytime use only.",
			DayPrice:    500, IsDayOnly: true, Capacity: 6,
			Amenities: []string{"table", "benches"},
		},
		{
			Name: "Function Hall", RoomType: domain.RoomFunctionHall,
			Description: "Covered hall for birthdays, reunions and company events.",
			DayPrice:    8000, NightPrice: price(10000), Capacity: 100,
			Amenities: []string{"stage", "sound system", "tables and chairs"},
		},
		{
			Name: "Trapal Table 1", RoomType: domain.RoomTrapalTable,
			Description: "Shaded table under trapal, daytime use only.",
			DayPrice:    300, IsDayOnly: true, Capacity: 6,
		},
	}
	for i := range rooms {
		if problems := validator.Validate(&rooms[i]); problems != nil {
			log.Fatalf("Invalid seed room %q: %v", rooms[i].Name, problems)
		}
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Fatal("Seeding rooms failed:", err)
	}

	log.Println("Seeding content...")
	now := time.Now().UTC()
	events := []domain.Event{
		{
			Title:       "Acoustic Night by the Pool",
			Description: "Live acoustic band every last Saturday of the month.",
			Date:        now.AddDate(0, 0, 14),
		},
		{
			Title:       "Summer Splash Festival",
			Description: "Games, raffles and free use of the kiddie pool.",
			Date:        now.AddDate(0, 1, 0),
		},
	}
	if err := db.Create(&events).Error; err != nil {
		log.Fatal("Seeding events failed:", err)
	}

	promos := []domain.Promotion{
		{
			Title:        "Weekday Day Tour Promo",
			Description:  "Discounted cottage rates from Monday to Thursday.",
			DiscountInfo: "20% off day slots",
			ValidFrom:    now.AddDate(0, 0, -7),
			ValidUntil:   now.AddDate(0, 2, 0),
		},
	}
	if err := db.Create(&promos).Error; err != nil {
		log.Fatal("Seeding promotions failed:", err)
	}

	pricing := []domain.PricingEntry{
		{RoomType: domain.RoomTrapalTable, Label: "Trapal Table", DayPrice: 300, Notes: "day tour only", Order: 1},
		{RoomType: domain.RoomKubo, Label: "Kubo", DayPrice: 500, Notes: "day tour only", Order: 2},
		{RoomType: domain.RoomCottage, Label: "Cottage", DayPrice: 800, NightPrice: price(1000), Order: 3},
		{RoomType: domain.RoomDosAndanas, Label: "Dos Andanas", DayPrice: 1500, NightPrice: price(2000), Order: 4},
		{RoomType: domain.RoomACKaraoke, Label: "AC Karaoke Room", DayPrice: 2500, NightPrice: price(3000), Order: 5},
		{RoomType: domain.RoomLavenderHouse, Label: "Lavender House", DayPrice: 3500, NightPrice: price(4500), Order: 6},
		{RoomType: domain.RoomFunctionHall, Label: "Function Hall", DayPrice: 8000, NightPrice: price(10000), Order: 7},
	}
	if err := db.Create(&pricing).Error; err != nil {
		log.Fatal("Seeding pricing failed:", err)
	}

	log.Printf("Done: %d users, %d rooms, %d events, %d promotions, %d pricing entries",
		len(users), len(rooms), len(events), len(promos), len(pricing))
}

func price(v float64) *float64 { return &v }
