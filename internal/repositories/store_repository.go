package repositories

import (
	"database/sql"
	"fmt"

	intconfig "arheb/internal/config"
	"arheb/internal/domain"
	"arheb/internal/domain/models"
)

type StoreRepository struct {
	DB *sql.DB
}

func (r StoreRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetRating returns the current aggregate rating of one store listing.
func (r StoreRepository) GetRating(storeID string) (rate float64, reviews int, err error) {
	err = r.db().QueryRow(`SELECT COALESCE(rate,0), COALESCE(number_of_reviews,0)
		FROM store_listings WHERE id = ?`, storeID).Scan(&rate, &reviews)
	if err == sql.ErrNoRows {
		return 0, 0, domain.NotFoundError{Resource: "store"}
	}
	if err != nil {
		return 0, 0, fmt.Errorf("get store rating: %w", err)
	}
	return rate, reviews, nil
}

// ApplyRating rolls one new order rating into the store's running
// average.
func (r StoreRepository) ApplyRating(storeID string, rating int) error {
	oldRate, oldReviews, err := r.GetRating(storeID)
	if err != nil {
		return err
	}
	newReviews := oldReviews + 1
	newRate := (oldRate*float64(oldReviews) + float64(rating)) / float64(newReviews)

	_, err = r.db().Exec(`UPDATE store_listings SET rate = ?, number_of_reviews = ? WHERE id = ?`,
		newRate, newReviews, storeID)
	if err != nil {
		return fmt.Errorf("update store rating: %w", err)
	}
	return nil
}

// SeedStores upserts the fixture store listings.
func (r StoreRepository) SeedStores(stores []models.Store) error {
	for _, s := range stores {
		var open, close string
		if s.OpeningHours != nil {
			open, close = s.OpeningHours.Open, s.OpeningHours.Close
		}
		_, err := r.db().Exec(`INSERT INTO store_listings (
				id, name, name_ar, name_en, cover, logo, rate, number_of_reviews, is_favorite,
				delivery_time, delivery_fee, minimum_order, is_open, opening_hours_open,
				opening_hours_close, address, address_ar, address_en, phone, category,
				category_ar, category_en
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				name = VALUES(name), name_ar = VALUES(name_ar), name_en = VALUES(name_en),
				cover = VALUES(cover), logo = VALUES(logo), rate = VALUES(rate),
				number_of_reviews = VALUES(number_of_reviews), is_favorite = VALUES(is_favorite),
				delivery_time = VALUES(delivery_time), delivery_fee = VALUES(delivery_fee),
				minimum_order = VALUES(minimum_order), is_open = VALUES(is_open),
				opening_hours_open = VALUES(opening_hours_open),
				opening_hours_close = VALUES(opening_hours_close),
				address = VALUES(address), address_ar = VALUES(address_ar),
				address_en = VALUES(address_en), phone = VALUES(phone),
				category = VALUES(category), category_ar = VALUES(category_ar),
				category_en = VALUES(category_en)`,
			s.ID, s.Name, s.NameAr, s.NameEn, s.Cover, s.Logo, s.Rate, s.NumberOfReviews,
			boolToInt(s.IsFavorite), s.DeliveryTime, s.DeliveryFee, s.MinimumOrder,
			boolToInt(s.IsOpen), open, close, s.Address, s.AddressAr, s.AddressEn,
			s.Phone, s.Category, s.CategoryAr, s.CategoryEn,
		)
		if err != nil {
			return fmt.Errorf("seed store %s: %w", s.ID, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
