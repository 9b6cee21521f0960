package repositories

import (
	"database/sql"
	"fmt"

	intconfig "arheb/internal/config"
	"arheb/internal/domain"
	"arheb/internal/domain/models"
)

type ContactRepository struct {
	DB *sql.DB
}

func (r ContactRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ContactRepository) Latest() (*models.Contact, error) {
	var c models.Contact
	err := r.db().QueryRow(`SELECT email, phone FROM contact_us ORDER BY id DESC LIMIT 1`).
		Scan(&c.Email, &c.Phone)
	if err == sql.ErrNoRows {
		return nil, domain.NotFoundError{Resource: "contact information"}
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// Update patches the latest row, inserting one when none exists.
// Empty strings mean "keep current value".
func (r ContactRepository) Update(email, phone string) error {
	var id int64
	err := r.db().QueryRow(`SELECT id FROM contact_us ORDER BY id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		_, err := r.db().Exec(`INSERT INTO contact_us (email, phone) VALUES (?, ?)`, email, phone)
		if err != nil {
			return fmt.Errorf("insert contact: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("find contact: %w", err)
	}

	_, err = r.db().Exec(`UPDATE contact_us
		SET email = COALESCE(NULLIF(?, ''), email), phone = COALESCE(NULLIF(?, ''), phone)
		WHERE id = ?`, email, phone, id)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// SeedDefault inserts the initial contact row when the table is empty.
func (r ContactRepository) SeedDefault(email, phone string) error {
	var count int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM contact_us`).Scan(&count); err != nil {
		return fmt.Errorf("count contact rows: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := r.db().Exec(`INSERT INTO contact_us (email, phone) VALUES (?, ?)`, email, phone); err != nil {
		return fmt.Errorf("seed contact: %w", err)
	}
	return nil
}
