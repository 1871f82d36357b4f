package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/traveldesk/api/dao"
	"github.com/traveldesk/api/db"
	travel_errors "github.com/traveldesk/api/errors"
	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
	"github.com/traveldesk/api/util"
)

type IBookingService interface {
	CreateBooking(ctx context.Context, travelerID string, req model.BookingRequest) (*model.Booking, error)
	GetBooking(ctx context.Context, confirmationCode string) (*model.Booking, error)
	ListBookings(ctx context.Context, travelerID string, limit, offset int) ([]model.Booking, error)
	ApproveBooking(ctx context.Context, confirmationCode, approvedBy string) (*model.Booking, error)
}

const bookingLockTTL = 30 * time.Second

// BookingService reserves validated packages. Every booking passes
// through the policy validator first; packages that need sign-off land
// in pending-approval instead of confirmed.
type BookingService struct {
	bookingDAO      *dao.BookingDAO
	evaluationSvc   IEvaluationService
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

func NewBookingService(
	bookingDAO *dao.BookingDAO,
	evaluationSvc IEvaluationService,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *BookingService {
	return &BookingService{
		bookingDAO:      bookingDAO,
		evaluationSvc:   evaluationSvc,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}
}

// CreateBooking validates the package and reserves it. A per-traveler
// lock prevents double submission while a booking is in flight.
func (s *BookingService) CreateBooking(ctx context.Context, travelerID string, req model.BookingRequest) (*model.Booking, error) {
	if err := s.validationUtil.ValidateBookingRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", travel_errors.ErrInvalidBookingData, err)
	}

	lockName := fmt.Sprintf("booking:%s", travelerID)
	locked, err := db.LockResource(ctx, lockName, bookingLockTTL)
	if err != nil {
		logger.Error("Failed to acquire booking lock", zap.Error(err), zap.String("travelerID", travelerID))
		return nil, travel_errors.ErrInternalServer
	}
	if !locked {
		return nil, travel_errors.ErrBookingInProgress
	}
	defer func() {
		if err := db.UnlockResource(ctx, lockName); err != nil {
			logger.Error("Failed to release booking lock", zap.Error(err), zap.String("travelerID", travelerID))
		}
	}()

	report, err := s.evaluationSvc.ValidatePackage(ctx, travelerID, req.Package)
	if err != nil {
		return nil, err
	}

	if !report.Compliant && req.ApprovedBy == "" {
		logger.Warn("Booking rejected: package violates policy and carries no approver",
			zap.String("travelerID", travelerID),
			zap.Strings("violations", report.Violations))
		return nil, travel_errors.ErrApprovalRequired
	}

	status := "confirmed"
	if report.ApprovalTier != model.ApprovalAuto && req.ApprovedBy == "" {
		status = "pending-approval"
	}

	booking := model.Booking{
		ConfirmationCode: newConfirmationCode(),
		TravelerID:       travelerID,
		Package:          req.Package,
		Report:           *report,
		TotalCost:        report.TotalCost,
		Status:           status,
		ApprovedBy:       req.ApprovedBy,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		CreatedAt:        time.Now(),
	}

	confirmationCode, err := s.bookingDAO.CreateBooking(ctx, booking)
	if err != nil {
		logger.Error("Error creating booking", zap.Error(err), zap.String("travelerID", travelerID))
		return nil, err
	}
	booking.ConfirmationCode = confirmationCode

	if err := s.cacheService.SetBooking(ctx, booking); err != nil {
		logger.Warn("Failed to cache booking", zap.Error(err), zap.String("confirmationCode", confirmationCode))
	}

	if err := s.notificationSvc.NotifyBookingChange(ctx, status, booking); err != nil {
		logger.Warn("Failed to send booking notification", zap.Error(err), zap.String("confirmationCode", confirmationCode))
	}
	if status == "pending-approval" {
		if err := s.notificationSvc.NotifyApprover(ctx, report.ApprovalTier, travelerID, report.TotalCost); err != nil {
			logger.Warn("Failed to notify approver", zap.Error(err), zap.String("confirmationCode", confirmationCode))
		}
	}

	s.eventBus.Publish(ctx, "booking.created", booking)

	logger.Info("Booking created successfully",
		zap.String("confirmationCode", confirmationCode),
		zap.String("travelerID", travelerID),
		zap.String("status", status))
	return &booking, nil
}

// GetBooking retrieves a booking by its confirmation code
func (s *BookingService) GetBooking(ctx context.Context, confirmationCode string) (*model.Booking, error) {
	cached, err := s.cacheService.GetBooking(ctx, confirmationCode)
	if err == nil && cached != nil {
		return cached, nil
	}

	booking, err := s.bookingDAO.GetBooking(ctx, confirmationCode)
	if err != nil {
		if errors.Is(err, travel_errors.ErrBookingNotFound) {
			return nil, travel_errors.ErrBookingNotFound
		}
		logger.Error("Error retrieving booking", zap.Error(err), zap.String("confirmationCode", confirmationCode))
		return nil, travel_errors.ErrInternalServer
	}

	if err := s.cacheService.SetBooking(ctx, *booking); err != nil {
		logger.Warn("Failed to cache booking", zap.Error(err), zap.String("confirmationCode", confirmationCode))
	}

	return booking, nil
}

// ListBookings retrieves a traveler's bookings with pagination
func (s *BookingService) ListBookings(ctx context.Context, travelerID string, limit, offset int) ([]model.Booking, error) {
	bookings, err := s.bookingDAO.ListBookingsByTraveler(ctx, travelerID, limit, offset)
	if err != nil {
		logger.Error("Error listing bookings", zap.Error(err), zap.String("travelerID", travelerID))
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// ApproveBooking confirms a pending booking once an approver signs off
func (s *BookingService) ApproveBooking(ctx context.Context, confirmationCode, approvedBy string) (*model.Booking, error) {
	if approvedBy == "" {
		return nil, fmt.Errorf("%w: approver cannot be empty", travel_errors.ErrInvalidBookingData)
	}

	booking, err := s.bookingDAO.UpdateBookingStatus(ctx, confirmationCode, "confirmed", approvedBy)
	if err != nil {
		logger.Error("Error approving booking", zap.Error(err), zap.String("confirmationCode", confirmationCode))
		return nil, err
	}

	if err := s.cacheService.SetBooking(ctx, *booking); err != nil {
		logger.Warn("Failed to refresh cached booking", zap.Error(err), zap.String("confirmationCode", confirmationCode))
	}

	if err := s.notificationSvc.NotifyBookingChange(ctx, "confirmed", *booking); err != nil {
		logger.Warn("Failed to send booking notification", zap.Error(err), zap.String("confirmationCode", confirmationCode))
	}

	s.eventBus.Publish(ctx, "booking.approved", *booking)

	logger.Info("Booking approved successfully",
		zap.String("confirmationCode", confirmationCode),
		zap.String("approvedBy", approvedBy))
	return booking, nil
}

// newConfirmationCode builds a short PNR-style code from a UUID.
func newConfirmationCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "TRV-" + raw[:8]
}
