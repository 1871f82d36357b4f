package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/traveldesk/api/dao"
	travel_errors "github.com/traveldesk/api/errors"
	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
	"github.com/traveldesk/api/util"
	helper_util "github.com/traveldesk/api/util/helper"
)

type ITripService interface {
	CreateTrip(ctx context.Context, trip model.TripRecord) (*model.TripRecord, error)
	GetTrip(ctx context.Context, tripID string) (*model.TripRecord, error)
	ListTrips(ctx context.Context, travelerID string, limit, offset int) ([]model.TripRecord, error)
	SearchTrips(ctx context.Context, criteria model.TripSearchCriteria) ([]model.TripRecord, error)
	DeleteTrip(ctx context.Context, tripID, travelerID string) error
	ImportTripsCSV(ctx context.Context, travelerID string, r io.Reader) (int, error)
}

// TripService handles business logic for trip history operations
type TripService struct {
	tripDAO         *dao.TripDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

func NewTripService(
	tripDAO *dao.TripDAO,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *TripService {
	return &TripService{
		tripDAO:         tripDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}
}

// CreateTrip records a new historical trip for a traveler
func (s *TripService) CreateTrip(ctx context.Context, trip model.TripRecord) (*model.TripRecord, error) {
	if err := s.validationUtil.ValidateTripRecord(trip); err != nil {
		return nil, fmt.Errorf("%w: %v", travel_errors.ErrInvalidTripData, err)
	}

	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()

	tripID, err := s.tripDAO.CreateTrip(ctx, trip)
	if err != nil {
		logger.Error("Error creating trip record", zap.Error(err), zap.String("travelerID", trip.TravelerID))
		return nil, err
	}

	trip.ID = tripID

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "trip.created", trip.TravelerID)

	logger.Info("Trip record created successfully",
		zap.String("tripID", tripID),
		zap.String("travelerID", trip.TravelerID))
	return &trip, nil
}

// GetTrip retrieves a trip record by its ID
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*model.TripRecord, error) {
	trip, err := s.tripDAO.GetTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, travel_errors.ErrTripNotFound) {
			return nil, travel_errors.ErrTripNotFound
		}
		logger.Error("Error retrieving trip record", zap.Error(err), zap.String("tripID", tripID))
		return nil, travel_errors.ErrInternalServer
	}
	return trip, nil
}

// ListTrips retrieves a traveler's trip history with pagination
func (s *TripService) ListTrips(ctx context.Context, travelerID string, limit, offset int) ([]model.TripRecord, error) {
	trips, err := s.tripDAO.ListTripsByTraveler(ctx, travelerID, limit, offset)
	if err != nil {
		logger.Error("Error listing trip records", zap.Error(err), zap.String("travelerID", travelerID))
		return nil, fmt.Errorf("failed to list trip records: %w", err)
	}
	return trips, nil
}

// SearchTrips searches trip records based on given criteria
func (s *TripService) SearchTrips(ctx context.Context, criteria model.TripSearchCriteria) ([]model.TripRecord, error) {
	if err := s.validationUtil.ValidateSearchCriteria(criteria); err != nil {
		return nil, fmt.Errorf("%w: %v", travel_errors.ErrInvalidSearchCriteria, err)
	}

	trips, err := s.tripDAO.SearchTrips(ctx, criteria)
	if err != nil {
		logger.Error("Error searching trip records", zap.Error(err), zap.Any("criteria", criteria))
		return nil, fmt.Errorf("failed to search trip records: %w", err)
	}
	return trips, nil
}

// DeleteTrip removes a trip record from the history
func (s *TripService) DeleteTrip(ctx context.Context, tripID, travelerID string) error {
	err := s.tripDAO.DeleteTrip(ctx, tripID, travelerID)
	if err != nil {
		logger.Error("Error deleting trip record", zap.Error(err), zap.String("tripID", tripID))
		return err
	}

	s.eventBus.Publish(ctx, "trip.deleted", travelerID)

	logger.Info("Trip record deleted successfully", zap.String("tripID", tripID))
	return nil
}

// Expected CSV header for the bulk import endpoint.
var tripCSVHeader = []string{
	"Trip Code", "Origin", "Destination", "Airline", "Hotel",
	"Flight Class", "Rental Car", "Trip Date", "Total Cost",
}

// ImportTripsCSV parses trip history rows from CSV and bulk loads them
// for the traveler. The whole file is validated before anything is
// written; a single bad row rejects the import.
func (s *TripService) ImportTripsCSV(ctx context.Context, travelerID string, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read CSV header: %v", travel_errors.ErrInvalidTripData, err)
	}
	if err := checkCSVHeader(header); err != nil {
		return 0, fmt.Errorf("%w: %v", travel_errors.ErrInvalidTripData, err)
	}

	var trips []model.TripRecord
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return 0, fmt.Errorf("%w: line %d: %v", travel_errors.ErrInvalidTripData, line, err)
		}

		trip, err := parseTripRow(travelerID, record)
		if err != nil {
			return 0, fmt.Errorf("%w: line %d: %v", travel_errors.ErrInvalidTripData, line, err)
		}
		if err := s.validationUtil.ValidateTripRecord(trip); err != nil {
			return 0, fmt.Errorf("%w: line %d: %v", travel_errors.ErrInvalidTripData, line, err)
		}
		trips = append(trips, trip)
	}

	if len(trips) == 0 {
		return 0, fmt.Errorf("%w: CSV contains no trip rows", travel_errors.ErrInvalidTripData)
	}

	count, err := s.tripDAO.BulkImportTrips(ctx, trips)
	if err != nil {
		logger.Error("Error importing trip records",
			zap.Error(err),
			zap.String("travelerID", travelerID),
			zap.Int("count", len(trips)))
		return 0, err
	}

	s.eventBus.Publish(ctx, "trip.imported", travelerID)

	logger.Info("Trip records imported successfully",
		zap.String("travelerID", travelerID),
		zap.Int("count", count))
	return count, nil
}

func checkCSVHeader(header []string) error {
	if len(header) != len(tripCSVHeader) {
		return fmt.Errorf("expected %d CSV columns, got %d", len(tripCSVHeader), len(header))
	}
	for i, want := range tripCSVHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("unexpected CSV column %d: got %q, want %q", i+1, header[i], want)
		}
	}
	return nil
}

func parseTripRow(travelerID string, record []string) (model.TripRecord, error) {
	if len(record) != len(tripCSVHeader) {
		return model.TripRecord{}, fmt.Errorf("expected %d fields, got %d", len(tripCSVHeader), len(record))
	}

	tripDate, err := helper_util.ParseDate(strings.TrimSpace(record[7]))
	if err != nil {
		return model.TripRecord{}, err
	}

	totalCost, err := strconv.ParseFloat(strings.TrimSpace(record[8]), 64)
	if err != nil {
		return model.TripRecord{}, fmt.Errorf("invalid total cost %q", record[8])
	}

	return model.TripRecord{
		ID:               strings.TrimSpace(record[0]),
		TravelerID:       travelerID,
		Origin:           strings.TrimSpace(record[1]),
		Destination:      strings.TrimSpace(record[2]),
		Airline:          strings.TrimSpace(record[3]),
		HotelBrand:       strings.TrimSpace(record[4]),
		CabinClass:       strings.TrimSpace(record[5]),
		RentalCarCompany: strings.TrimSpace(record[6]),
		TripDate:         tripDate,
		TotalCost:        totalCost,
	}, nil
}
