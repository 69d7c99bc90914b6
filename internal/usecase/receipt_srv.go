package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

type ReceiptService interface {
	// GenerateReceipt builds a PDF receipt for a paid booking. Returns the
	// document bytes and a suggested filename.
	GenerateReceipt(ctx context.Context, userID, bookingID string, isAdmin bool) ([]byte, string, error)
}

type receiptService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReceiptService(repo *repository.Repository, log *zap.Logger) ReceiptService {
	return &receiptService{
		repo: repo,
		log:  log.With(zap.String("service", "receipt")),
	}
}

func (s *receiptService) GenerateReceipt(ctx context.Context, userID, bookingID string, isAdmin bool) ([]byte, string, error) {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, "", fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, "", fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, "", fmt.Errorf("booking %s not found", bookingID)
	}

	if !isAdmin && booking.UserID.String() != userID {
		return nil, "", fmt.Errorf("unauthorized to view this booking")
	}

	// Receipts only exist for paid bookings
	if booking.Status != entity.BookingStatusConfirmed && booking.Status != entity.BookingStatusCompleted {
		return nil, "", fmt.Errorf("booking is not paid")
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to find payment", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, "", fmt.Errorf("find payment: %w", err)
	}

	data, err := buildReceiptPDF(booking, payment)
	if err != nil {
		s.log.Error("Failed to build receipt PDF", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, "", fmt.Errorf("build receipt: %w", err)
	}

	s.log.Info("Receipt generated",
		zap.String("booking_id", bookingID),
		zap.String("order_id", booking.OrderID))

	filename := fmt.Sprintf("RECEIPT_%s.pdf", booking.OrderID)
	return data, filename, nil
}

func buildReceiptPDF(booking *entity.Booking, payment *entity.Payment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Rental Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RENTAL RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Order ID    : "+booking.OrderID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued      : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Customer")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	customerLines := []string{
		fmt.Sprintf("Name    : %s", booking.CustomerName),
		fmt.Sprintf("Phone   : %s", booking.Phone),
		fmt.Sprintf("License : %s", booking.LicenseNumber),
	}
	for _, line := range customerLines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rental")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	rentalLines := []string{
		fmt.Sprintf("Vehicle Class : %s", booking.VehicleClass),
		fmt.Sprintf("Persons       : %d", booking.Persons),
		fmt.Sprintf("Pickup        : %s (%s)", booking.PickupLocation, booking.PickupDate.Format("2006-01-02")),
		fmt.Sprintf("Drop          : %s (%s)", booking.DropLocation, booking.ReturnDate.Format("2006-01-02")),
		fmt.Sprintf("Days          : %d", booking.Days),
	}
	for _, line := range rentalLines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Charges")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	chargeLines := []string{
		fmt.Sprintf("Rate per day : %d", booking.PricePerDay),
		fmt.Sprintf("Subtotal     : %d", booking.Subtotal),
		fmt.Sprintf("Tax (10%%)    : %d", booking.Tax),
	}
	for _, line := range chargeLines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Total        : %d", booking.Total))
	pdf.Ln(10)

	if payment != nil {
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Paid via %s on %s", payment.Method, payment.CreatedAt.Format("2006-01-02 15:04")))
		pdf.Ln(7)
		if payment.TransactionID != nil {
			pdf.Cell(0, 7, "Transaction : "+*payment.TransactionID)
			pdf.Ln(7)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry a valid driving license and this receipt at pickup.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
