package tracking

import (
	"encoding/json"

	"arheb/internal/domain"
)

// Role of one tracking participant, inferred at admission time.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
)

// Event type tags. Outbound frames always carry one of these in "type";
// inbound frames are dispatched on the same field.
const (
	TypeConnected      = "connected"
	TypeLocationUpdate = "location_update"
	TypeLocationSent   = "location_sent"
	TypeError          = "error"
	TypeDriverLocation = "driver_location"
)

type Connected struct {
	Type    string `json:"type"`
	Role    Role   `json:"role"`
	OrderID int64  `json:"orderId"`
	Message string `json:"message"`
}

type LocationUpdate struct {
	Type       string  `json:"type"`
	OrderID    int64   `json:"orderId"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
	ObservedAt string  `json:"observedAt"`
}

type LocationSent struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func newConnected(role Role, orderID int64, message string) Connected {
	return Connected{Type: TypeConnected, Role: role, OrderID: orderID, Message: message}
}

func newLocationUpdate(orderID int64, loc Location) LocationUpdate {
	return LocationUpdate{
		Type:       TypeLocationUpdate,
		OrderID:    orderID,
		Longitude:  loc.Longitude,
		Latitude:   loc.Latitude,
		ObservedAt: loc.ObservedAt,
	}
}

func newErrorMsg(message string) ErrorMsg {
	return ErrorMsg{Type: TypeError, Message: message}
}

// Inbound is the envelope every client frame must fit.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// DriverLocation is the only inbound event payload. Pointer fields keep
// "missing" distinguishable from zero.
type DriverLocation struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

func parseDriverLocation(data json.RawMessage) (DriverLocation, error) {
	var dl DriverLocation
	if len(data) == 0 {
		return dl, domain.ValidationError{Msg: "Invalid coordinates"}
	}
	if err := json.Unmarshal(data, &dl); err != nil {
		return dl, domain.ValidationError{Msg: "Invalid coordinates", Err: err}
	}
	if dl.Longitude == nil || dl.Latitude == nil ||
		!isFinite(*dl.Longitude) || !isFinite(*dl.Latitude) {
		return dl, domain.ValidationError{Msg: "Invalid coordinates"}
	}
	return dl, nil
}
