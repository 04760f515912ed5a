package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"golang.org/x/crypto/bcrypt"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	collegeID := uuid.New().String()
	_, err = db.Exec(`
		INSERT INTO colleges (id, name, location, contact_email)
		VALUES (?, 'Seeder College', 'Seedville', 'sports@seeder.edu')
	`, collegeID)
	if err != nil {
		log.Fatalf("Failed to seed college: %s", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %s", err)
	}
	_, err = db.Exec(`
		INSERT INTO users (id, name, email, password_hash, role, college_id, skill_level, is_active, created_at)
		VALUES (?, 'Seeder Admin', 'admin@seeder.edu', ?, 'admin', ?, 5, 1, ?)
	`, uuid.New().String(), string(hash), collegeID, time.Now().Unix())
	if err != nil {
		log.Fatalf("Failed to seed admin user: %s", err)
	}

	for i := 1; i <= 8; i++ {
		_, err = db.Exec(`
			INSERT INTO users (id, name, email, password_hash, role, college_id, skill_level, is_active, created_at)
			VALUES (?, ?, ?, ?, 'student', ?, ?, 1, ?)
		`, uuid.New().String(),
			fmt.Sprintf("Seeder Student %d", i),
			fmt.Sprintf("student%d@seeder.edu", i),
			string(hash), collegeID, 1+rand.Intn(10), time.Now().Unix())
		if err != nil {
			log.Fatalf("Failed to seed student: %s", err)
		}
	}

	categoryID := uuid.New().String()
	_, err = db.Exec(`
		INSERT INTO game_categories (id, name, type, description)
		VALUES (?, 'Basketball', 'team', '5-a-side basketball')
	`, categoryID)
	if err != nil {
		log.Fatalf("Failed to seed game category: %s", err)
	}

	_, err = db.Exec(`
		INSERT INTO venues (id, name, location, capacity, college_id, is_available)
		VALUES (?, 'Seeder Main Court', 'Building A', 200, ?, 1)
	`, uuid.New().String(), collegeID)
	if err != nil {
		log.Fatalf("Failed to seed venue: %s", err)
	}

	for i := 1; i <= 3; i++ {
		scheduled := time.Now().AddDate(0, 0, i).Truncate(time.Hour)
		_, err = db.Exec(`
			INSERT INTO matches (id, game_category_id, scheduled_time, status, min_players, max_players, skill_level_range)
			VALUES (?, ?, ?, 'scheduled', 2, 10, 1)
		`, uuid.New().String(), categoryID, scheduled.Unix())
		if err != nil {
			log.Fatalf("Failed to seed match: %s", err)
		}
	}

	log.Info("Seeding complete.", "collegeID", collegeID)
}
