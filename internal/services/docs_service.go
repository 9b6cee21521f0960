package services

import (
	"bytes"
	"fmt"

	"arheb/internal/domain/models"
	"arheb/internal/repositories"
	"arheb/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the order invoice PDF.
type DocsService struct {
	Orders    repositories.OrderRepository
	RequestID string
	// Loader is injectable for tests.
	Loader func(int64) (*models.Order, error)
}

func (s DocsService) GenerateInvoice(orderID int64) ([]byte, string, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("order_id=%d", orderID))
	return buildInvoicePDF(order)
}

func (s DocsService) loadOrder(orderID int64) (*models.Order, error) {
	if s.Loader != nil {
		return s.Loader(orderID)
	}
	order, err := s.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	order.Items, _ = s.Orders.ListItems(orderID)
	return order, nil
}

func buildInvoicePDF(o *models.Order) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("INVOICE #%d", o.ID))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Customer      : %s", safe(o.Name, o.PhoneNumber)),
		fmt.Sprintf("Phone         : %s", safe(o.PhoneNumber, "-")),
		fmt.Sprintf("Address       : %s", safe(o.AddressName, "-")),
		fmt.Sprintf("Payment       : %s", safe(o.PaymentType, "-")),
		fmt.Sprintf("Status        : %s", safe(o.Status, "-")),
		fmt.Sprintf("Date          : %s", safe(o.CreatedAt, "-")),
	}
	for _, line := range header {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(90, 8, "Item")
	pdf.Cell(25, 8, "Qty")
	pdf.Cell(35, 8, "Price")
	pdf.Cell(35, 8, "Total")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	for _, item := range o.Items {
		pdf.Cell(90, 7, item.Name)
		pdf.Cell(25, 7, fmt.Sprintf("%d", item.Quantity))
		pdf.Cell(35, 7, fmt.Sprintf("%.2f", item.Price))
		pdf.Cell(35, 7, fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	totals := []string{
		fmt.Sprintf("Discount      : %.2f", o.Discount),
		fmt.Sprintf("Delivery fee  : %.2f", o.DeliveryFee),
		fmt.Sprintf("Total amount  : %.2f", o.TotalAmount),
	}
	if o.PromoCode != "" {
		totals = append([]string{fmt.Sprintf("Promo code    : %s", o.PromoCode)}, totals...)
	}
	for _, line := range totals {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", o.ID, utils.SafeFilenamePart(o.PhoneNumber))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
