package models

type Store struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	NameAr          string        `json:"nameAr,omitempty"`
	NameEn          string        `json:"nameEn,omitempty"`
	Cover           string        `json:"cover,omitempty"`
	Logo            string        `json:"logo,omitempty"`
	Rate            float64       `json:"rate"`
	NumberOfReviews int           `json:"numberOfReviews"`
	IsFavorite      bool          `json:"isFavorite"`
	DeliveryTime    string        `json:"deliveryTime,omitempty"`
	DeliveryFee     float64       `json:"deliveryFee"`
	MinimumOrder    float64       `json:"minimumOrder"`
	IsOpen          bool          `json:"isOpen"`
	OpeningHours    *OpeningHours `json:"openingHours,omitempty"`
	Address         string        `json:"address,omitempty"`
	AddressAr       string        `json:"addressAr,omitempty"`
	AddressEn       string        `json:"addressEn,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	Category        string        `json:"category,omitempty"`
	CategoryAr      string        `json:"categoryAr,omitempty"`
	CategoryEn      string        `json:"categoryEn,omitempty"`
}

type OpeningHours struct {
	Open  string `json:"open,omitempty"`
	Close string `json:"close,omitempty"`
}
