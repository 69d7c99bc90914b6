package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/data/repository/memory"
	"vehicle-rental/internal/dto/request"
	"vehicle-rental/internal/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRepo() *repository.Repository {
	return memory.NewRepository(memory.NewStore())
}

func newTestUser(t *testing.T, repo *repository.Repository, role entity.UserRole) *entity.User {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Test User",
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	if err := repo.User.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func futureDate(daysAhead int) string {
	return time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func validDraftRequest() *request.BookingDraftRequest {
	return &request.BookingDraftRequest{
		CustomerName:   "Ravi Kumar",
		Phone:          "9876543210",
		Age:            30,
		LicenseNumber:  "DL-0420110012345",
		Persons:        12,
		PickupDate:     futureDate(1),
		ReturnDate:     futureDate(4),
		PickupLocation: "Airport",
		DropLocation:   "City Center",
	}
}

func TestQuoteResolvesClassFromPartySize(t *testing.T) {
	svc := NewBookingService(newTestRepo(), pricing.StandardRates, zap.NewNop())

	quote, err := svc.Quote(context.Background(), validDraftRequest())
	if err != nil {
		t.Fatalf("quote error: %v", err)
	}

	if !quote.IsValid {
		t.Fatalf("expected valid quote, got errors %v", quote.Errors)
	}
	if quote.VehicleClass != "Mini Bus" {
		t.Errorf("vehicle class = %q, want Mini Bus", quote.VehicleClass)
	}
	if quote.Breakdown == nil {
		t.Fatal("expected breakdown on valid quote")
	}
	if quote.Breakdown.Days != 3 {
		t.Errorf("days = %d, want 3", quote.Breakdown.Days)
	}
	if quote.Breakdown.Total != quote.Breakdown.Subtotal+quote.Breakdown.Tax {
		t.Errorf("total %d != subtotal %d + tax %d",
			quote.Breakdown.Total, quote.Breakdown.Subtotal, quote.Breakdown.Tax)
	}
}

func TestQuoteCollectsAllRuleFailures(t *testing.T) {
	svc := NewBookingService(newTestRepo(), pricing.StandardRates, zap.NewNop())

	req := validDraftRequest()
	req.Age = 17
	req.Phone = "12345"
	req.Persons = 2
	req.LicenseNumber = "short"
	req.PickupDate = ""
	req.ReturnDate = ""

	quote, err := svc.Quote(context.Background(), req)
	if err != nil {
		t.Fatalf("quote error: %v", err)
	}

	if quote.IsValid {
		t.Fatal("expected invalid quote")
	}
	if quote.Breakdown != nil {
		t.Error("quote without dates must not carry a breakdown")
	}
	for _, field := range []string{"age", "phone", "persons", "licenseNumber", "vehicle", "dates"} {
		if _, ok := quote.Errors[field]; !ok {
			t.Errorf("missing error for field %q, got %v", field, quote.Errors)
		}
	}
}

func TestQuotePricesInvalidDraftWithClassAndDates(t *testing.T) {
	svc := NewBookingService(newTestRepo(), pricing.StandardRates, zap.NewNop())

	// Underage driver, but class and dates resolve; the form still shows
	// the charges next to the rule failures.
	req := validDraftRequest()
	req.Age = 17

	quote, err := svc.Quote(context.Background(), req)
	if err != nil {
		t.Fatalf("quote error: %v", err)
	}

	if quote.IsValid {
		t.Fatal("expected invalid quote")
	}
	if _, ok := quote.Errors["age"]; !ok {
		t.Errorf("expected age error, got %v", quote.Errors)
	}
	if quote.VehicleClass != "Mini Bus" {
		t.Errorf("vehicle class = %q, want Mini Bus", quote.VehicleClass)
	}
	if quote.Breakdown == nil {
		t.Fatal("expected price preview despite rule failures")
	}
	// Mini Bus at 6000/day over 3 days
	if quote.Breakdown.Subtotal != 18000 || quote.Breakdown.Total != 19800 {
		t.Errorf("breakdown = %d/%d, want 18000/19800",
			quote.Breakdown.Subtotal, quote.Breakdown.Total)
	}
}

func TestQuoteClearsClassThatNoLongerFits(t *testing.T) {
	svc := NewBookingService(newTestRepo(), pricing.StandardRates, zap.NewNop())

	// Maxi Cab needs 13; a party of 6 falls back to auto-resolution
	req := validDraftRequest()
	req.VehicleClass = "Maxi Cab"
	req.Persons = 6

	quote, err := svc.Quote(context.Background(), req)
	if err != nil {
		t.Fatalf("quote error: %v", err)
	}
	if quote.VehicleClass != "SUV" {
		t.Errorf("vehicle class = %q, want SUV after re-resolution", quote.VehicleClass)
	}
}

func TestCreateBookingRejectsInvalidDraft(t *testing.T) {
	repo := newTestRepo()
	svc := NewBookingService(repo, pricing.StandardRates, zap.NewNop())
	user := newTestUser(t, repo, entity.RoleUser)

	req := validDraftRequest()
	req.Age = 65

	_, err := svc.CreateBooking(context.Background(), user.ID.String(), req)
	if err == nil {
		t.Fatal("expected error for invalid draft")
	}

	var draftErr *DraftValidationError
	if !errors.As(err, &draftErr) {
		t.Fatalf("expected DraftValidationError, got %T: %v", err, err)
	}
	if _, ok := draftErr.Errors["age"]; !ok {
		t.Errorf("expected age error, got %v", draftErr.Errors)
	}
}

func TestCreateAndPayBookingLifecycle(t *testing.T) {
	repo := newTestRepo()
	svc := NewBookingService(repo, pricing.StandardRates, zap.NewNop())
	user := newTestUser(t, repo, entity.RoleUser)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, user.ID.String(), validDraftRequest())
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if booking.Status != entity.BookingStatusPending {
		t.Fatalf("new booking status = %s, want pending", booking.Status)
	}
	if booking.OrderID == "" {
		t.Error("expected a generated order ID")
	}
	// Mini Bus at 6000/day over 3 days
	if booking.Subtotal != 18000 || booking.Tax != 1800 || booking.Total != 19800 {
		t.Errorf("breakdown = %d/%d/%d, want 18000/1800/19800",
			booking.Subtotal, booking.Tax, booking.Total)
	}

	paid, err := svc.PayBooking(ctx, user.ID.String(), booking.ID, &request.PayBookingRequest{Method: "upi"})
	if err != nil {
		t.Fatalf("pay booking: %v", err)
	}
	if paid.Status != entity.BookingStatusConfirmed {
		t.Errorf("paid booking status = %s, want confirmed", paid.Status)
	}
	if paid.Payment == nil {
		t.Fatal("expected payment on paid booking")
	}
	if paid.Payment.Amount != 19800 {
		t.Errorf("payment amount = %d, want 19800", paid.Payment.Amount)
	}
	if paid.Payment.Status != entity.PaymentStatusCompleted {
		t.Errorf("payment status = %s, want completed", paid.Payment.Status)
	}

	// Paying twice is rejected
	_, err = svc.PayBooking(ctx, user.ID.String(), booking.ID, &request.PayBookingRequest{Method: "card"})
	if err == nil {
		t.Fatal("expected error on double payment")
	}
}

func TestPayBookingRejectsOtherUsers(t *testing.T) {
	repo := newTestRepo()
	svc := NewBookingService(repo, pricing.StandardRates, zap.NewNop())
	owner := newTestUser(t, repo, entity.RoleUser)
	other := newTestUser(t, repo, entity.RoleUser)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, owner.ID.String(), validDraftRequest())
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	_, err = svc.PayBooking(ctx, other.ID.String(), booking.ID, &request.PayBookingRequest{Method: "cash"})
	if err == nil {
		t.Fatal("expected error when paying someone else's booking")
	}
}

func TestUpdateBookingStatusTransitions(t *testing.T) {
	repo := newTestRepo()
	svc := NewBookingService(repo, pricing.StandardRates, zap.NewNop())
	user := newTestUser(t, repo, entity.RoleUser)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, user.ID.String(), validDraftRequest())
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// pending -> completed skips payment and is refused
	_, err = svc.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "completed"})
	if err == nil {
		t.Fatal("expected error for pending -> completed")
	}

	if _, err := svc.PayBooking(ctx, user.ID.String(), booking.ID, &request.PayBookingRequest{Method: "upi"}); err != nil {
		t.Fatalf("pay booking: %v", err)
	}

	updated, err := svc.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "completed"})
	if err != nil {
		t.Fatalf("confirmed -> completed: %v", err)
	}
	if updated.Status != entity.BookingStatusCompleted {
		t.Errorf("status = %s, want completed", updated.Status)
	}

	// completed is terminal
	_, err = svc.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "cancelled"})
	if err == nil {
		t.Fatal("expected error for completed -> cancelled")
	}
}

func TestDashboardCountsPaidRevenueOnly(t *testing.T) {
	repo := newTestRepo()
	svc := NewBookingService(repo, pricing.StandardRates, zap.NewNop())
	user := newTestUser(t, repo, entity.RoleUser)
	ctx := context.Background()

	paidBooking, err := svc.CreateBooking(ctx, user.ID.String(), validDraftRequest())
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if _, err := svc.PayBooking(ctx, user.ID.String(), paidBooking.ID, &request.PayBookingRequest{Method: "card"}); err != nil {
		t.Fatalf("pay booking: %v", err)
	}

	// A second booking stays pending; its total must not count as revenue
	if _, err := svc.CreateBooking(ctx, user.ID.String(), validDraftRequest()); err != nil {
		t.Fatalf("create second booking: %v", err)
	}

	dashboard, err := svc.GetDashboard(ctx)
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}

	if dashboard.TotalBookings != 2 {
		t.Errorf("total bookings = %d, want 2", dashboard.TotalBookings)
	}
	if dashboard.PendingBookings != 1 {
		t.Errorf("pending bookings = %d, want 1", dashboard.PendingBookings)
	}
	if dashboard.ConfirmedBookings != 1 {
		t.Errorf("confirmed bookings = %d, want 1", dashboard.ConfirmedBookings)
	}
	if dashboard.TotalRevenue != 19800 {
		t.Errorf("revenue = %d, want 19800", dashboard.TotalRevenue)
	}
}

func TestGetUserBookingsPaginates(t *testing.T) {
	repo := newTestRepo()
	svc := NewBookingService(repo, pricing.StandardRates, zap.NewNop())
	user := newTestUser(t, repo, entity.RoleUser)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateBooking(ctx, user.ID.String(), validDraftRequest()); err != nil {
			t.Fatalf("create booking %d: %v", i, err)
		}
	}

	page, err := svc.GetUserBookings(ctx, user.ID.String(), &request.PaginatedRequest{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("get user bookings: %v", err)
	}

	if len(page.Data) != 2 {
		t.Errorf("page size = %d, want 2", len(page.Data))
	}
	if page.Pagination.Total != 3 {
		t.Errorf("total = %d, want 3", page.Pagination.Total)
	}
	if page.Pagination.TotalPages != 2 {
		t.Errorf("total pages = %d, want 2", page.Pagination.TotalPages)
	}
}
