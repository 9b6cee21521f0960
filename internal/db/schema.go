package db

import (
	"database/sql"
	"fmt"
)

// schemaStatements are run in order at startup. Every statement is
// idempotent so restarts against an existing database are safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		phone_number VARCHAR(32) NOT NULL UNIQUE,
		firebase_uid VARCHAR(128),
		token TEXT,
		name VARCHAR(255),
		address_name VARCHAR(255),
		address_long DOUBLE,
		address_lat DOUBLE,
		type VARCHAR(32) DEFAULT 'user',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS otp_challenges (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		phone_number VARCHAR(32) NOT NULL,
		session_info VARCHAR(64) NOT NULL UNIQUE,
		code_hash VARCHAR(128) NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		phone_number VARCHAR(32) NOT NULL,
		name VARCHAR(255),
		address_name VARCHAR(255),
		address_long DOUBLE,
		address_lat DOUBLE,
		discount DOUBLE DEFAULT 0,
		delivery_fee DOUBLE DEFAULT 0,
		total_amount DOUBLE NOT NULL,
		status VARCHAR(64) DEFAULT 'Waiting confirmation',
		payment_type VARCHAR(64) NOT NULL,
		promo_code VARCHAR(64),
		order_rating INT DEFAULT 0,
		store_id VARCHAR(64),
		nearby VARCHAR(255),
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_id BIGINT NOT NULL,
		product_id VARCHAR(64) NOT NULL,
		product_name VARCHAR(255) NOT NULL,
		price DOUBLE NOT NULL,
		quantity INT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS promo_codes (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(64) NOT NULL UNIQUE,
		value DOUBLE NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS contact_us (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		name_ar VARCHAR(255),
		name_en VARCHAR(255),
		image TEXT,
		is_coming_soon TINYINT(1) DEFAULT 0,
		display_order INT
	)`,
	`CREATE TABLE IF NOT EXISTS subcategories (
		id VARCHAR(64) PRIMARY KEY,
		category_id VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		name_ar VARCHAR(255),
		name_en VARCHAR(255),
		image TEXT,
		is_coming_soon TINYINT(1) DEFAULT 0,
		display_order INT,
		CONSTRAINT fk_subcategories_category FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS home_banners (
		id VARCHAR(64) PRIMARY KEY,
		image TEXT,
		title VARCHAR(255),
		link TEXT,
		display_order INT
	)`,
	`CREATE TABLE IF NOT EXISTS home_categories (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255),
		name_ar VARCHAR(255),
		name_en VARCHAR(255),
		image TEXT,
		is_coming_soon TINYINT(1) DEFAULT 0,
		display_order INT
	)`,
	`CREATE TABLE IF NOT EXISTS home_stores (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255),
		name_ar VARCHAR(255),
		name_en VARCHAR(255),
		cover TEXT,
		logo TEXT,
		rate DOUBLE,
		number_of_reviews INT,
		is_favorite TINYINT(1) DEFAULT 0,
		delivery_time VARCHAR(64),
		delivery_fee DOUBLE,
		minimum_order DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS home_offers (
		id VARCHAR(64) PRIMARY KEY,
		image TEXT,
		title VARCHAR(255),
		title_ar VARCHAR(255),
		title_en VARCHAR(255),
		description TEXT,
		description_ar TEXT,
		description_en TEXT,
		link TEXT,
		valid_until VARCHAR(64),
		display_order INT
	)`,
	`CREATE TABLE IF NOT EXISTS store_listings (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255),
		name_ar VARCHAR(255),
		name_en VARCHAR(255),
		cover TEXT,
		logo TEXT,
		rate DOUBLE,
		number_of_reviews INT,
		is_favorite TINYINT(1) DEFAULT 0,
		delivery_time VARCHAR(64),
		delivery_fee DOUBLE,
		minimum_order DOUBLE,
		is_open TINYINT(1) DEFAULT 0,
		opening_hours_open VARCHAR(32),
		opening_hours_close VARCHAR(32),
		address VARCHAR(255),
		address_ar VARCHAR(255),
		address_en VARCHAR(255),
		phone VARCHAR(64),
		category VARCHAR(255),
		category_ar VARCHAR(255),
		category_en VARCHAR(255)
	)`,
}

// EnsureSchema creates every table the service owns.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
