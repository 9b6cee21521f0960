package models

// Order mirrors one row of the orders table plus its items.
type Order struct {
	ID          int64       `json:"id"`
	UserID      string      `json:"userId"`
	PhoneNumber string      `json:"phoneNumber"`
	Name        string      `json:"name,omitempty"`
	AddressName string      `json:"addressName,omitempty"`
	AddressLong *float64    `json:"addressLong"`
	AddressLat  *float64    `json:"addressLat"`
	Discount    float64     `json:"discount"`
	DeliveryFee float64     `json:"deliveryFee"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	PaymentType string      `json:"paymentType"`
	PromoCode   string      `json:"promoCode,omitempty"`
	OrderRating int         `json:"orderRating"`
	StoreID     string      `json:"storeId,omitempty"`
	Nearby      string      `json:"nearby,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   string      `json:"createdAt"`
	Items       []OrderItem `json:"items"`
}

type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OwnedBy reports whether identity matches either legacy owner field.
func (o Order) OwnedBy(identity string) bool {
	return identity != "" && (o.UserID == identity || o.PhoneNumber == identity)
}

type PromoCode struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
