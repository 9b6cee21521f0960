package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "arheb/internal/config"
	"arheb/internal/domain"
	"arheb/internal/domain/models"
)

type PromoRepository struct {
	DB *sql.DB
}

func (r PromoRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PromoRepository) FindByName(name string) (*models.PromoCode, error) {
	var p models.PromoCode
	err := r.db().QueryRow(`SELECT id, name, value FROM promo_codes WHERE name = ?`,
		strings.TrimSpace(name)).Scan(&p.ID, &p.Name, &p.Value)
	if err == sql.ErrNoRows {
		return nil, domain.NotFoundError{Resource: "promo code"}
	}
	if err != nil {
		return nil, fmt.Errorf("find promo code: %w", err)
	}
	return &p, nil
}
