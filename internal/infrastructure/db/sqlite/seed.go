package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/strahovochka/insurance-system/internal/core/domain"
)

// DemoPassword is shared by the three demo accounts created at first run.
const DemoPassword = "password123"

type seedType struct {
	name      string
	category  string
	options   string
	basePrice float64
}

type seedUser struct {
	username string
	role     string
	fullName string
	email    string
}

var seedTypes = []seedType{
	{"Home", "property", `{"coverage": ["fire", "flooding", "theft"]}`, 15000.00},
	{"Auto - OSAGO", "auto", `{"type": "OSAGO", "coverage": ["third-party liability"]}`, 5000.00},
	{"Auto - KASKO", "auto", `{"type": "KASKO", "coverage": ["damage", "theft", "total loss"]}`, 30000.00},
}

var seedUsers = []seedUser{
	{"admin", domain.RoleAdmin, "System Administrator", "admin@strahovochka.ru"},
	{"manager1", domain.RoleManager, "Ivan Ivanov", "manager@strahovochka.ru"},
	{"client1", domain.RoleClient, "Petr Petrov", "client@mail.ru"},
}

// Seed inserts the fixed catalog, the demo accounts and one demo
// application. Every insert is keyed on a natural unique, so calling Seed
// on an already-seeded database is a no-op. The demo password is hashed
// here at runtime rather than stored as a digest constant.
func Seed(ctx context.Context, db *sql.DB) error {
	for _, t := range seedTypes {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO insurance_types (name, category, options, base_price)
			 VALUES (?, ?, ?, ?)`,
			t.name, t.category, t.options, t.basePrice)
		if err != nil {
			return fmt.Errorf("seed insurance type %q: %w", t.name, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	for _, u := range seedUsers {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (username, password_hash, role, full_name, email)
			 VALUES (?, ?, ?, ?, ?)`,
			u.username, string(hash), u.role, u.fullName, u.email)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.username, err)
		}
	}

	return seedDemoApplication(ctx, db)
}

// seedDemoApplication gives the demo client one pending OSAGO application
// so the listings have something to show out of the box.
func seedDemoApplication(ctx context.Context, db *sql.DB) error {
	var clientID, typeID int64

	err := db.QueryRowContext(ctx, `SELECT id FROM users WHERE username = 'client1'`).Scan(&clientID)
	if err != nil {
		return fmt.Errorf("seed application: %w", err)
	}
	err = db.QueryRowContext(ctx, `SELECT id FROM insurance_types WHERE name LIKE '%OSAGO%'`).Scan(&typeID)
	if err != nil {
		return fmt.Errorf("seed application: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO applications (client_id, insurance_type_id, insurance_subtype, details, status, created_at)
		 SELECT ?, ?, 'passenger car', ?, 'Pending', ?
		 WHERE NOT EXISTS (SELECT 1 FROM applications WHERE client_id = ?)`,
		clientID, typeID, `{"model": "Toyota Camry", "year": 2020, "plate": "A123BC777"}`,
		formatTime(time.Now()), clientID)
	if err != nil {
		return fmt.Errorf("seed application: %w", err)
	}
	return nil
}
