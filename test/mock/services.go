// test/mock/services.go
package mock

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/traveldesk/api/model"
	"github.com/traveldesk/api/policy"
)

// MockEvaluationService is a mock implementation of service.IEvaluationService
type MockEvaluationService struct {
	mock.Mock
}

func (m *MockEvaluationService) GetPreferenceProfile(ctx context.Context, travelerID string) (*model.PreferenceProfile, error) {
	args := m.Called(ctx, travelerID)
	if profile := args.Get(0); profile != nil {
		return profile.(*model.PreferenceProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEvaluationService) RankVendors(ctx context.Context, travelerID string, category model.Category) ([]model.VendorCount, error) {
	args := m.Called(ctx, travelerID, category)
	if ranking := args.Get(0); ranking != nil {
		return ranking.([]model.VendorCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEvaluationService) AnnotateOffers(ctx context.Context, travelerID string, category model.Category, offers []model.Offer) ([]model.Offer, error) {
	args := m.Called(ctx, travelerID, category, offers)
	if annotated := args.Get(0); annotated != nil {
		return annotated.([]model.Offer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEvaluationService) AnnotateAll(ctx context.Context, travelerID string, offersByCategory map[model.Category][]model.Offer) (map[model.Category][]model.Offer, error) {
	args := m.Called(ctx, travelerID, offersByCategory)
	if annotated := args.Get(0); annotated != nil {
		return annotated.(map[model.Category][]model.Offer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEvaluationService) ValidatePackage(ctx context.Context, travelerID string, pkg model.TripPackage) (*model.ComplianceReport, error) {
	args := m.Called(ctx, travelerID, pkg)
	if report := args.Get(0); report != nil {
		return report.(*model.ComplianceReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEvaluationService) Rules() policy.RuleSet {
	args := m.Called()
	return args.Get(0).(policy.RuleSet)
}

// MockTripService is a mock implementation of service.ITripService
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) CreateTrip(ctx context.Context, trip model.TripRecord) (*model.TripRecord, error) {
	args := m.Called(ctx, trip)
	if created := args.Get(0); created != nil {
		return created.(*model.TripRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripService) GetTrip(ctx context.Context, tripID string) (*model.TripRecord, error) {
	args := m.Called(ctx, tripID)
	if trip := args.Get(0); trip != nil {
		return trip.(*model.TripRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripService) ListTrips(ctx context.Context, travelerID string, limit, offset int) ([]model.TripRecord, error) {
	args := m.Called(ctx, travelerID, limit, offset)
	if trips := args.Get(0); trips != nil {
		return trips.([]model.TripRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripService) SearchTrips(ctx context.Context, criteria model.TripSearchCriteria) ([]model.TripRecord, error) {
	args := m.Called(ctx, criteria)
	if trips := args.Get(0); trips != nil {
		return trips.([]model.TripRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripService) DeleteTrip(ctx context.Context, tripID, travelerID string) error {
	args := m.Called(ctx, tripID, travelerID)
	return args.Error(0)
}

func (m *MockTripService) ImportTripsCSV(ctx context.Context, travelerID string, r io.Reader) (int, error) {
	args := m.Called(ctx, travelerID, r)
	return args.Int(0), args.Error(1)
}

// MockSearchService is a mock implementation of service.ISearchService
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) SearchFlights(ctx context.Context, travelerID, origin, destination, departDate string) ([]model.Offer, error) {
	args := m.Called(ctx, travelerID, origin, destination, departDate)
	if offers := args.Get(0); offers != nil {
		return offers.([]model.Offer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSearchService) SearchHotels(ctx context.Context, travelerID, destination, checkin, checkout string) ([]model.Offer, error) {
	args := m.Called(ctx, travelerID, destination, checkin, checkout)
	if offers := args.Get(0); offers != nil {
		return offers.([]model.Offer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSearchService) SearchRentalCars(ctx context.Context, travelerID, destination, pickupDate, dropoffDate string) ([]model.Offer, error) {
	args := m.Called(ctx, travelerID, destination, pickupDate, dropoffDate)
	if offers := args.Get(0); offers != nil {
		return offers.([]model.Offer), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockBookingService is a mock implementation of service.IBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, travelerID string, req model.BookingRequest) (*model.Booking, error) {
	args := m.Called(ctx, travelerID, req)
	if booking := args.Get(0); booking != nil {
		return booking.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, confirmationCode string) (*model.Booking, error) {
	args := m.Called(ctx, confirmationCode)
	if booking := args.Get(0); booking != nil {
		return booking.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, travelerID string, limit, offset int) ([]model.Booking, error) {
	args := m.Called(ctx, travelerID, limit, offset)
	if bookings := args.Get(0); bookings != nil {
		return bookings.([]model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingService) ApproveBooking(ctx context.Context, confirmationCode, approvedBy string) (*model.Booking, error) {
	args := m.Called(ctx, confirmationCode, approvedBy)
	if booking := args.Get(0); booking != nil {
		return booking.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockResearchService is a mock implementation of service.IResearchService
type MockResearchService struct {
	mock.Mock
}

func (m *MockResearchService) GetDestinationIntel(ctx context.Context, city string) (*model.DestinationIntel, error) {
	args := m.Called(ctx, city)
	if intel := args.Get(0); intel != nil {
		return intel.(*model.DestinationIntel), args.Error(1)
	}
	return nil, args.Error(1)
}
