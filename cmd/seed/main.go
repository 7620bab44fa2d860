package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/draperhq/storefront-api/config"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	"github.com/draperhq/storefront-api/pkg/helpers"
)

type sampleProduct struct {
	name        string
	description string
	priceCents  int64
	category    string
	stock       int
}

var catalog = []sampleProduct{
	{"Linen Blackout Curtains", "Room-darkening linen drapes, sold per pair.", 8999, entity.CategoryCurtainsDrapes, 40},
	{"Sheer Voile Panel", "Light-filtering white voile, 140x250 cm.", 2499, entity.CategoryCurtainsDrapes, 120},
	{"Bamboo Roman Shade", "Natural bamboo weave with cord-free lift.", 6499, entity.CategoryBlindsShades, 35},
	{"Aluminium Venetian Blind", "25 mm slats, moisture resistant.", 3999, entity.CategoryBlindsShades, 80},
	{"Motorised Roller Blind", "App-controlled roller blind with solar charging.", 15999, entity.CategorySmartHome, 18},
	{"Smart Curtain Track", "Quiet belt-driven track, works with the major voice assistants.", 21999, entity.CategorySmartHome, 12},
	{"Velvet Cushion Cover", "50x50 cm cover in deep emerald velvet.", 1899, entity.CategoryFurnishings, 200},
	{"Wool Throw Blanket", "Lambswool throw in herringbone weave.", 5499, entity.CategoryFurnishings, 60},
	{"Curtain Tieback Pair", "Braided cotton tiebacks, brass fittings.", 1299, entity.CategoryAccessories, 150},
	{"Extendable Curtain Rod", "Matte black rod, 120-210 cm.", 3499, entity.CategoryAccessories, 90},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@draperhome.test"
	password := "changeme123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var adminID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, first_name, last_name, is_admin)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (email) DO UPDATE SET is_admin = true
		RETURNING id
	`, email, hash, "Store", "Admin").Scan(&adminID)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", adminID, email, password)

	for _, p := range catalog {
		if _, err := db.Exec(`
			INSERT INTO products (name, description, price_cents, category, stock, in_stock)
			VALUES ($1, $2, $3, $4, $5, $5 > 0)
			ON CONFLICT (name) DO NOTHING
		`, p.name, p.description, p.priceCents, p.category, p.stock); err != nil {
			log.Fatalf("failed to seed product %q: %v", p.name, err)
		}
	}
	fmt.Printf("seeded %d products\n", len(catalog))

	if _, err := db.Exec(`
		INSERT INTO stores (name, street, city, country, phone, latitude, longitude, opening_hours)
		VALUES
			('Draper Home Amsterdam', 'Herengracht 120', 'Amsterdam', 'Netherlands', '+31201234567', 52.3702, 4.8952, 'Mon-Sat 09:00-18:00'),
			('Draper Home Rotterdam', 'Coolsingel 45', 'Rotterdam', 'Netherlands', '+31107654321', 51.9225, 4.4792, 'Mon-Sat 09:30-18:00')
		ON CONFLICT (name) DO NOTHING
	`); err != nil {
		log.Fatalf("failed to seed stores: %v", err)
	}
	fmt.Println("seeded stores")
}
