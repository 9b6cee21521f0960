package services

import (
	"fmt"
	"math"

	"arheb/internal/domain"
	"arheb/internal/domain/models"
	"arheb/internal/repositories"
	"arheb/internal/utils"
)

// CheckoutService creates and rates orders. ResolveStoreID is
// injectable so tests do not need the fixture catalog.
type CheckoutService struct {
	Orders         repositories.OrderRepository
	Promos         repositories.PromoRepository
	Stores         repositories.StoreRepository
	ResolveStoreID func(productID string) string
	RequestID      string
}

type CheckoutInput struct {
	Items       []models.OrderItem `json:"items"`
	Name        string             `json:"name"`
	PhoneNumber string             `json:"phoneNumber"`
	AddressName string             `json:"addressName"`
	AddressLong *float64           `json:"addressLong"`
	AddressLat  *float64           `json:"addressLat"`
	Discount    *float64           `json:"discount"`
	DeliveryFee *float64           `json:"deliveryFee"`
	TotalAmount *float64           `json:"totalAmount"`
	PaymentType string             `json:"paymentType"`
	PromoCode   string             `json:"promoCode"`
	StoreID     string             `json:"storeId"`
	Nearby      string             `json:"nearby"`
	Notes       string             `json:"notes"`
}

func (in CheckoutInput) validate() error {
	if len(in.Items) == 0 {
		return domain.ValidationError{Msg: "Items array is required and must not be empty"}
	}
	for _, item := range in.Items {
		if item.ID == "" || item.Name == "" || item.Quantity == 0 {
			return domain.ValidationError{Msg: "Each item must have id, name, price, and quantity"}
		}
	}
	if in.PhoneNumber == "" {
		return domain.ValidationError{Msg: "phoneNumber is required"}
	}
	if in.TotalAmount == nil {
		return domain.ValidationError{Msg: "totalAmount is required"}
	}
	if in.PaymentType == "" {
		return domain.ValidationError{Msg: "paymentType is required"}
	}
	if in.AddressLong != nil && !finite(*in.AddressLong) {
		return domain.ValidationError{Msg: "addressLong must be a valid number"}
	}
	if in.AddressLat != nil && !finite(*in.AddressLat) {
		return domain.ValidationError{Msg: "addressLat must be a valid number"}
	}
	if in.DeliveryFee == nil || !finite(*in.DeliveryFee) {
		return domain.ValidationError{Msg: "deliveryFee is required and must be a valid number"}
	}
	if !finite(*in.TotalAmount) {
		return domain.ValidationError{Msg: "totalAmount must be a valid number"}
	}
	return nil
}

// CreateOrder validates the payload, resolves the promo code and store
// and inserts the order with its items.
func (s CheckoutService) CreateOrder(identity string, in CheckoutInput) (*models.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	discount := 0.0
	if in.Discount != nil {
		if !finite(*in.Discount) {
			return nil, domain.ValidationError{Msg: "discount must be a valid number"}
		}
		discount = *in.Discount
	}
	promoCode := ""
	if in.PromoCode != "" {
		promo, err := s.Promos.FindByName(in.PromoCode)
		if err != nil {
			return nil, domain.ValidationError{Msg: "invalid promoCode", Err: err}
		}
		discount = promo.Value
		promoCode = promo.Name
	}

	storeID := in.StoreID
	if storeID == "" && s.ResolveStoreID != nil {
		storeID = s.ResolveStoreID(in.Items[0].ID)
	}

	order := &models.Order{
		UserID:      identity,
		PhoneNumber: in.PhoneNumber,
		Name:        in.Name,
		AddressName: in.AddressName,
		AddressLong: in.AddressLong,
		AddressLat:  in.AddressLat,
		Discount:    discount,
		DeliveryFee: *in.DeliveryFee,
		TotalAmount: *in.TotalAmount,
		Status:      "Waiting confirmation",
		PaymentType: in.PaymentType,
		PromoCode:   promoCode,
		StoreID:     storeID,
		Nearby:      in.Nearby,
		Notes:       in.Notes,
		Items:       in.Items,
	}

	orderID, err := s.Orders.Create(order)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to create order", Err: err}
	}

	utils.LogEvent(s.RequestID, "checkout", "order_created", fmt.Sprintf("order_id=%d store_id=%s", orderID, storeID))

	created, err := s.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	created.Items = in.Items
	return created, nil
}

// RateOrder stores the order rating and rolls it into the store's
// running average when the order references a store.
func (s CheckoutService) RateOrder(identity string, orderID int64, rating int) (*models.Order, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.ValidationError{Msg: "Rating must be an integer between 1 and 5"}
	}

	order, err := s.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !order.OwnedBy(identity) {
		return nil, domain.ForbiddenError{Msg: "Can't rate this order"}
	}

	if err := s.Orders.UpdateRating(orderID, rating); err != nil {
		return nil, domain.InternalError{Msg: "failed to rate order", Err: err}
	}

	if order.StoreID != "" {
		// a missing store listing just skips the rollup
		if err := s.Stores.ApplyRating(order.StoreID, rating); err != nil && !domain.IsNotFound(err) {
			return nil, domain.InternalError{Msg: "failed to update store rating", Err: err}
		}
	}

	utils.LogEvent(s.RequestID, "checkout", "order_rated", fmt.Sprintf("order_id=%d rating=%d", orderID, rating))

	updated, err := s.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	updated.Items, _ = s.Orders.ListItems(orderID)
	return updated, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
