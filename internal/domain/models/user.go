package models

// User is the phone-identified account row.
type User struct {
	ID          int64    `json:"id"`
	PhoneNumber string   `json:"phoneNumber"`
	FirebaseUID string   `json:"firebaseUid,omitempty"`
	Name        string   `json:"name,omitempty"`
	AddressName string   `json:"addressName,omitempty"`
	AddressLong *float64 `json:"addressLong"`
	AddressLat  *float64 `json:"addressLat"`
	Type        string   `json:"type,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

type Profile struct {
	PhoneNumber string   `json:"phoneNumber"`
	Name        *string  `json:"name"`
	AddressName *string  `json:"addressName"`
	AddressLong *float64 `json:"addressLong"`
	AddressLat  *float64 `json:"addressLat"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}
