package models

// Catalog payload shapes, matching the static fixture responses field for
// field so the API can return them untouched.

type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	NameAr        string     `json:"nameAr,omitempty"`
	NameEn        string     `json:"nameEn,omitempty"`
	Image         string     `json:"image,omitempty"`
	IsComingSoon  bool       `json:"isComingSoon"`
	Order         int        `json:"order,omitempty"`
	SubCategories []Category `json:"subCategories,omitempty"`
}

type Product struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	NameAr        string        `json:"nameAr,omitempty"`
	NameEn        string        `json:"nameEn,omitempty"`
	Description   string        `json:"description,omitempty"`
	Image         string        `json:"image,omitempty"`
	Price         float64       `json:"price"`
	OldPrice      float64       `json:"oldPrice,omitempty"`
	IsAvailable   bool          `json:"isAvailable"`
	CategoryID    string        `json:"categoryId,omitempty"`
	SubCategoryID string        `json:"subCategoryId,omitempty"`
	Store         *ProductStore `json:"store,omitempty"`
}

type ProductStore struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Logo string `json:"logo,omitempty"`
}

type Banner struct {
	ID    string `json:"id"`
	Image string `json:"image,omitempty"`
	Title string `json:"title,omitempty"`
	Link  string `json:"link,omitempty"`
	Order int    `json:"order,omitempty"`
}

type Offer struct {
	ID            string `json:"id"`
	Image         string `json:"image,omitempty"`
	Title         string `json:"title,omitempty"`
	TitleAr       string `json:"titleAr,omitempty"`
	TitleEn       string `json:"titleEn,omitempty"`
	Description   string `json:"description,omitempty"`
	DescriptionAr string `json:"descriptionAr,omitempty"`
	DescriptionEn string `json:"descriptionEn,omitempty"`
	Link          string `json:"link,omitempty"`
	ValidUntil    string `json:"validUntil,omitempty"`
	Order         int    `json:"order,omitempty"`
}
