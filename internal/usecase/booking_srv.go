package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/dto/request"
	"vehicle-rental/internal/dto/response"
	"vehicle-rental/internal/pricing"
	"vehicle-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DraftValidationError carries the field-keyed rule failures of a booking
// draft so handlers can return them to the form intact.
type DraftValidationError struct {
	Errors map[string]string
}

func (e *DraftValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Errors)
}

type BookingService interface {
	// Quote previews a draft without persisting anything. Invalid drafts
	// are not an error; the response carries the rule failures.
	Quote(ctx context.Context, req *request.BookingDraftRequest) (*response.QuoteResponse, error)

	// User endpoints (need auth)
	CreateBooking(ctx context.Context, userID string, req *request.BookingDraftRequest) (*response.BookingResponse, error)
	PayBooking(ctx context.Context, userID, bookingID string, req *request.PayBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, userID, bookingID string, isAdmin bool) (*response.BookingResponse, error)

	// Admin endpoints
	GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	GetDashboard(ctx context.Context) (*response.DashboardResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	rates pricing.RateTable
	log   *zap.Logger

	// paying guards one in-flight payment per booking
	paying sync.Map
}

func NewBookingService(repo *repository.Repository, rates pricing.RateTable, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		rates: rates,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Quote(ctx context.Context, req *request.BookingDraftRequest) (*response.QuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	draft, extraErrs, err := s.buildDraft(ctx, req)
	if err != nil {
		return nil, err
	}

	result := pricing.Validate(draft, time.Now())
	for field, msg := range extraErrs {
		if result.Errors == nil {
			result.Errors = make(map[string]string)
		}
		result.Errors[field] = msg
		result.IsValid = false
	}

	resp := &response.QuoteResponse{
		IsValid:      result.IsValid,
		Errors:       result.Errors,
		VehicleClass: draft.VehicleClass,
	}
	// The price preview stands on the class and dates alone so the form
	// can show the charges while other fields are still being corrected.
	if draft.VehicleClass != "" &&
		!draft.PickupDate.IsZero() && !draft.ReturnDate.IsZero() &&
		!draft.ReturnDate.Before(draft.PickupDate) {
		breakdown := pricing.Quote(draft.PricePerDay, draft.PickupDate, draft.ReturnDate)
		resp.Breakdown = &breakdown
	}

	return resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.BookingDraftRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	draft, extraErrs, err := s.buildDraft(ctx, req)
	if err != nil {
		return nil, err
	}

	result := pricing.Validate(draft, time.Now())
	if !result.IsValid || len(extraErrs) > 0 {
		if result.Errors == nil {
			result.Errors = make(map[string]string)
		}
		for field, msg := range extraErrs {
			result.Errors[field] = msg
		}
		s.log.Warn("Booking draft rejected", zap.Any("errors", result.Errors))
		return nil, &DraftValidationError{Errors: result.Errors}
	}

	breakdown := pricing.Quote(draft.PricePerDay, draft.PickupDate, draft.ReturnDate)

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:        utils.GenerateOrderID(),
		UserID:         userUUID,
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Age:            req.Age,
		LicenseNumber:  req.LicenseNumber,
		Persons:        req.Persons,
		VehicleClass:   draft.VehicleClass,
		PricePerDay:    breakdown.PricePerDay,
		Days:           breakdown.Days,
		Subtotal:       breakdown.Subtotal,
		Tax:            breakdown.Tax,
		Total:          breakdown.Total,
		PickupDate:     draft.PickupDate,
		ReturnDate:     draft.ReturnDate,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		Status:         entity.BookingStatusPending,
	}
	if req.VehicleID != "" {
		vehicleUUID, err := uuid.Parse(req.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("invalid vehicle ID format %s: %w", req.VehicleID, err)
		}
		booking.VehicleID = &vehicleUUID
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("order_id", booking.OrderID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("user_id", userID),
		zap.String("vehicle_class", booking.VehicleClass),
		zap.Int64("total", booking.Total),
	)

	resp := response.BookingToResponse(booking, nil)
	return &resp, nil
}

func (s *bookingService) PayBooking(ctx context.Context, userID, bookingID string, req *request.PayBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Pay booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	// One payment attempt per booking at a time
	if _, loaded := s.paying.LoadOrStore(bookingUUID, struct{}{}); loaded {
		return nil, fmt.Errorf("payment already in progress for this booking")
	}
	defer s.paying.Delete(bookingUUID)

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.UserID != userUUID {
		return nil, fmt.Errorf("unauthorized to pay for this booking")
	}

	switch booking.Status {
	case entity.BookingStatusPending:
		// payable
	case entity.BookingStatusConfirmed, entity.BookingStatusCompleted:
		return nil, fmt.Errorf("booking already paid")
	default:
		return nil, fmt.Errorf("booking is not payable")
	}

	// Simulated gateway: every attempt settles immediately. A declined
	// attempt would be recorded as failed and leave the booking pending.
	transactionID := utils.GenerateTransactionID()
	if req.TransactionID != nil && *req.TransactionID != "" {
		transactionID = *req.TransactionID
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:     booking.ID,
		Method:        entity.PaymentMethod(req.Method),
		Amount:        booking.Total,
		Status:        entity.PaymentStatusCompleted,
		TransactionID: &transactionID,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("method", req.Method),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
		s.log.Error("Failed to confirm booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("confirm booking: %w", err)
	}
	booking.Status = entity.BookingStatusConfirmed
	booking.UpdatedAt = time.Now()

	s.log.Info("Booking paid",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("method", req.Method),
		zap.Int64("amount", payment.Amount),
	)

	resp := response.BookingToResponse(booking, payment)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toBookingResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID string, isAdmin bool) (*response.BookingResponse, error) {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if !isAdmin && booking.UserID.String() != userID {
		return nil, fmt.Errorf("unauthorized to view this booking")
	}

	payment, _ := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	resp := response.BookingToResponse(booking, payment)
	return &resp, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toBookingResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	next := entity.BookingStatus(req.Status)
	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot change booking status from %s to %s", booking.Status, next)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, next); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = next
	booking.UpdatedAt = time.Now()

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	payment, _ := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	resp := response.BookingToResponse(booking, payment)
	return &resp, nil
}

func (s *bookingService) GetDashboard(ctx context.Context) (*response.DashboardResponse, error) {
	totalVehicles, err := s.repo.Vehicle.CountAll(ctx, repository.VehicleFilter{})
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}
	availableVehicles, err := s.repo.Vehicle.CountAll(ctx, repository.VehicleFilter{OnlyAvailable: true})
	if err != nil {
		return nil, fmt.Errorf("count available vehicles: %w", err)
	}
	totalBookings, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	pendingBookings, err := s.repo.Booking.CountByStatus(ctx, entity.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending bookings: %w", err)
	}
	confirmedBookings, err := s.repo.Booking.CountByStatus(ctx, entity.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed bookings: %w", err)
	}
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	// Revenue counts only bookings that were actually paid
	totalRevenue, err := s.repo.Booking.SumTotalByStatuses(ctx, entity.BookingStatusConfirmed, entity.BookingStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("sum booking totals: %w", err)
	}

	return &response.DashboardResponse{
		TotalVehicles:     totalVehicles,
		AvailableVehicles: availableVehicles,
		TotalBookings:     totalBookings,
		PendingBookings:   pendingBookings,
		ConfirmedBookings: confirmedBookings,
		TotalUsers:        totalUsers,
		TotalRevenue:      totalRevenue,
	}, nil
}

// buildDraft turns the raw form into a pricing draft. The vehicle class is
// taken from the chosen vehicle, the chosen class, or resolved from the
// party size, in that order. A chosen class that no longer fits the party
// is cleared and re-resolved rather than silently downgraded.
func (s *bookingService) buildDraft(ctx context.Context, req *request.BookingDraftRequest) (pricing.Draft, map[string]string, error) {
	draft := pricing.Draft{
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Age:            req.Age,
		LicenseNumber:  req.LicenseNumber,
		Persons:        req.Persons,
		PickupDate:     utils.ParseDate(req.PickupDate),
		ReturnDate:     utils.ParseDate(req.ReturnDate),
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
	}

	extraErrs := make(map[string]string)

	switch {
	case req.VehicleID != "":
		vehicleUUID, err := uuid.Parse(req.VehicleID)
		if err != nil {
			return draft, nil, fmt.Errorf("invalid vehicle ID format %s: %w", req.VehicleID, err)
		}
		vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleUUID)
		if err != nil {
			s.log.Error("Failed to find vehicle for draft", zap.Error(err), zap.String("vehicle_id", req.VehicleID))
			return draft, nil, fmt.Errorf("find vehicle: %w", err)
		}
		switch {
		case vehicle == nil:
			extraErrs["vehicle"] = "Selected vehicle not found"
		case !vehicle.Available:
			extraErrs["vehicle"] = "Selected vehicle is not available"
		case req.Persons > vehicle.Seats:
			extraErrs["vehicle"] = fmt.Sprintf("Selected vehicle seats only %d persons", vehicle.Seats)
		default:
			draft.VehicleClass = vehicle.Type
			draft.PricePerDay = vehicle.PricePerDay
		}

	case req.VehicleClass != "":
		if s.rates.Fits(req.VehicleClass, req.Persons) {
			rate, _ := s.rates.RateFor(req.VehicleClass)
			draft.VehicleClass = req.VehicleClass
			draft.PricePerDay = rate
			break
		}
		fallthrough

	default:
		tier := s.rates.Resolve(req.Persons)
		draft.VehicleClass = tier.Class
		draft.PricePerDay = tier.PricePerDay
	}

	return draft, extraErrs, nil
}

func (s *bookingService) toBookingResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		payment, _ := s.repo.Payment.FindByBookingID(ctx, booking.ID)
		responses[i] = response.BookingToResponse(booking, payment)
	}
	return responses
}
