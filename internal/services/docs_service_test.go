package services

import (
	"bytes"
	"strings"
	"testing"

	"arheb/internal/domain"
	"arheb/internal/domain/models"
)

func TestGenerateInvoiceProducesPDF(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (*models.Order, error) {
			return &models.Order{
				ID:          id,
				PhoneNumber: "+201001112233",
				Name:        "Ali",
				Status:      "Waiting confirmation",
				PaymentType: "cash",
				DeliveryFee: 15,
				TotalAmount: 135,
				PromoCode:   "SAVE20",
				Discount:    20,
				CreatedAt:   "2025-01-01 10:00:00",
				Items: []models.OrderItem{
					{ID: "p-1", Name: "Margherita", Price: 120, Quantity: 1},
				},
			}, nil
		},
	}

	data, filename, err := svc.GenerateInvoice(42)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if filename != "INVOICE_42_201001112233.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestGenerateInvoicePropagatesLoadError(t *testing.T) {
	svc := DocsService{
		Loader: func(int64) (*models.Order, error) {
			return nil, domain.NotFoundError{Resource: "order"}
		},
	}
	if _, _, err := svc.GenerateInvoice(9); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSafeFallsBack(t *testing.T) {
	if got := safe("", "-"); got != "-" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := safe("x", "-"); got != "x" {
		t.Fatalf("expected value, got %q", got)
	}
	if strings.TrimSpace(safe(" ", "-")) == "-" {
		t.Fatalf("whitespace is a value, not an empty field")
	}
}
