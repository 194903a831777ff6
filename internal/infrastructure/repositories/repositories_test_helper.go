package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		name TEXT,
		password_hash TEXT,
		role TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createGuideProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE guide_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		display_name TEXT NOT NULL,
		bio TEXT,
		location TEXT,
		languages TEXT,
		hourly_rate NUMERIC,
		is_verified BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createBookingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bookings (
		id TEXT PRIMARY KEY,
		tourist_id TEXT NOT NULL,
		guide_id TEXT,
		tour_id TEXT,
		destination TEXT NOT NULL,
		start_date DATETIME NOT NULL,
		duration_hours INTEGER NOT NULL,
		total_amount NUMERIC NOT NULL,
		status TEXT NOT NULL,
		special_requests TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createWalletTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE guide_tokens (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		balance NUMERIC NOT NULL DEFAULT 0,
		currency TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE token_transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		booking_id TEXT,
		amount NUMERIC NOT NULL,
		direction TEXT NOT NULL,
		reason TEXT NOT NULL,
		metadata TEXT,
		created_at DATETIME
	);`)
}

func createKYCTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE kyc_verifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		guide_profile_id TEXT NOT NULL,
		full_government_name TEXT NOT NULL,
		date_of_birth TEXT,
		gender TEXT,
		permanent_address TEXT,
		citizenship_doc_url TEXT,
		national_id_url TEXT,
		live_photo_url TEXT,
		drivers_license_url TEXT,
		qualification TEXT,
		profession TEXT,
		languages TEXT,
		experience_description TEXT,
		services_provided TEXT,
		bad_habits TEXT,
		hobbies TEXT,
		dreams TEXT,
		personality_type TEXT,
		why_choose_you TEXT,
		emergency_contact_name TEXT,
		emergency_contact_phone TEXT,
		emergency_contact_rel TEXT,
		verification_status TEXT NOT NULL,
		verification_notes TEXT,
		verified_at DATETIME,
		verified_by TEXT,
		created_at DATETIME
	);`)
}
