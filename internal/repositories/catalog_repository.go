package repositories

import (
	"database/sql"
	"fmt"

	intconfig "arheb/internal/config"
	"arheb/internal/domain/models"
)

// CatalogRepository seeds the catalog tables from the fixture
// payloads. Reads are served straight from the fixtures; the tables
// exist so other features (checkout, ratings) have rows to reference.
type CatalogRepository struct {
	DB *sql.DB
}

func (r CatalogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CatalogRepository) SeedCategories(categories []models.Category) error {
	for i, c := range categories {
		order := c.Order
		if order == 0 {
			order = i + 1
		}
		_, err := r.db().Exec(`INSERT INTO categories (id, name, name_ar, name_en, image, is_coming_soon, display_order)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				name = VALUES(name), name_ar = VALUES(name_ar), name_en = VALUES(name_en),
				image = VALUES(image), is_coming_soon = VALUES(is_coming_soon),
				display_order = VALUES(display_order)`,
			c.ID, c.Name, c.NameAr, c.NameEn, c.Image, boolToInt(c.IsComingSoon), order)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}

		for j, sub := range c.SubCategories {
			subOrder := sub.Order
			if subOrder == 0 {
				subOrder = j + 1
			}
			_, err := r.db().Exec(`INSERT INTO subcategories (id, category_id, name, name_ar, name_en, image, is_coming_soon, display_order)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
				ON DUPLICATE KEY UPDATE
					category_id = VALUES(category_id), name = VALUES(name),
					name_ar = VALUES(name_ar), name_en = VALUES(name_en),
					image = VALUES(image), is_coming_soon = VALUES(is_coming_soon),
					display_order = VALUES(display_order)`,
				sub.ID, c.ID, sub.Name, sub.NameAr, sub.NameEn, sub.Image,
				boolToInt(sub.IsComingSoon), subOrder)
			if err != nil {
				return fmt.Errorf("seed subcategory %s: %w", sub.ID, err)
			}
		}
	}
	return nil
}

func (r CatalogRepository) SeedHome(banners []models.Banner, categories []models.Category, stores []models.Store, offers []models.Offer) error {
	for i, b := range banners {
		order := b.Order
		if order == 0 {
			order = i + 1
		}
		_, err := r.db().Exec(`INSERT INTO home_banners (id, image, title, link, display_order)
			VALUES (?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE image = VALUES(image), title = VALUES(title),
				link = VALUES(link), display_order = VALUES(display_order)`,
			b.ID, b.Image, b.Title, b.Link, order)
		if err != nil {
			return fmt.Errorf("seed banner %s: %w", b.ID, err)
		}
	}

	for i, c := range categories {
		order := c.Order
		if order == 0 {
			order = i + 1
		}
		_, err := r.db().Exec(`INSERT INTO home_categories (id, name, name_ar, name_en, image, is_coming_soon, display_order)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE name = VALUES(name), name_ar = VALUES(name_ar),
				name_en = VALUES(name_en), image = VALUES(image),
				is_coming_soon = VALUES(is_coming_soon), display_order = VALUES(display_order)`,
			c.ID, c.Name, c.NameAr, c.NameEn, c.Image, boolToInt(c.IsComingSoon), order)
		if err != nil {
			return fmt.Errorf("seed home category %s: %w", c.ID, err)
		}
	}

	for _, s := range stores {
		_, err := r.db().Exec(`INSERT INTO home_stores (id, name, name_ar, name_en, cover, logo, rate,
				number_of_reviews, is_favorite, delivery_time, delivery_fee, minimum_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE name = VALUES(name), name_ar = VALUES(name_ar),
				name_en = VALUES(name_en), cover = VALUES(cover), logo = VALUES(logo),
				rate = VALUES(rate), number_of_reviews = VALUES(number_of_reviews),
				is_favorite = VALUES(is_favorite), delivery_time = VALUES(delivery_time),
				delivery_fee = VALUES(delivery_fee), minimum_order = VALUES(minimum_order)`,
			s.ID, s.Name, s.NameAr, s.NameEn, s.Cover, s.Logo, s.Rate, s.NumberOfReviews,
			boolToInt(s.IsFavorite), s.DeliveryTime, s.DeliveryFee, s.MinimumOrder)
		if err != nil {
			return fmt.Errorf("seed home store %s: %w", s.ID, err)
		}
	}

	for i, o := range offers {
		order := o.Order
		if order == 0 {
			order = i + 1
		}
		_, err := r.db().Exec(`INSERT INTO home_offers (id, image, title, title_ar, title_en,
				description, description_ar, description_en, link, valid_until, display_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE image = VALUES(image), title = VALUES(title),
				title_ar = VALUES(title_ar), title_en = VALUES(title_en),
				description = VALUES(description), description_ar = VALUES(description_ar),
				description_en = VALUES(description_en), link = VALUES(link),
				valid_until = VALUES(valid_until), display_order = VALUES(display_order)`,
			o.ID, o.Image, o.Title, o.TitleAr, o.TitleEn, o.Description, o.DescriptionAr,
			o.DescriptionEn, o.Link, o.ValidUntil, order)
		if err != nil {
			return fmt.Errorf("seed offer %s: %w", o.ID, err)
		}
	}
	return nil
}
