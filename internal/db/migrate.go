package db

import "fmt"

// RunMigrations creates the schema. DDL sticks to types every supported
// driver understands (VARCHAR, TEXT, TIMESTAMP, DECIMAL, INT).
func RunMigrations(d *DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id VARCHAR(36) PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			phone VARCHAR(50) NOT NULL,
			address VARCHAR(255) NOT NULL,
			city VARCHAR(100) NOT NULL,
			country VARCHAR(100) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			status VARCHAR(20) NOT NULL,
			join_date TIMESTAMP NOT NULL,
			last_login TIMESTAMP NOT NULL,
			login_count INT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS service_requests (
			id VARCHAR(36) PRIMARY KEY,
			customer_name VARCHAR(200) NOT NULL,
			customer_email VARCHAR(255) NOT NULL,
			customer_phone VARCHAR(50) NOT NULL,
			type_number VARCHAR(100) NOT NULL,
			serial_number VARCHAR(100) NOT NULL,
			address VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			status VARCHAR(20) NOT NULL,
			request_date TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id VARCHAR(36) PRIMARY KEY,
			customer_name VARCHAR(200) NOT NULL,
			customer_email VARCHAR(255) NOT NULL,
			order_type VARCHAR(100) NOT NULL,
			message TEXT NOT NULL,
			status VARCHAR(20) NOT NULL,
			sent_date TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS brochure_requests (
			id VARCHAR(36) PRIMARY KEY,
			product_id VARCHAR(36) NOT NULL,
			product_name VARCHAR(200) NOT NULL,
			product_price DECIMAL(10,2) NOT NULL,
			customer_email VARCHAR(255) NOT NULL,
			customer_phone VARCHAR(50) NOT NULL,
			status VARCHAR(20) NOT NULL,
			request_date TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS categories (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			slug VARCHAR(100) NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			slug VARCHAR(200) NOT NULL,
			description TEXT NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			stock_status VARCHAR(20) NOT NULL,
			image_url VARCHAR(500) NOT NULL,
			category_id VARCHAR(36) NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);`,
	}

	for _, q := range queries {
		if _, err := d.Exec(q); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
