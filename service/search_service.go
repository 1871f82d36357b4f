package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
	"github.com/traveldesk/api/search"
)

type ISearchService interface {
	SearchFlights(ctx context.Context, travelerID, origin, destination, departDate string) ([]model.Offer, error)
	SearchHotels(ctx context.Context, travelerID, destination, checkin, checkout string) ([]model.Offer, error)
	SearchRentalCars(ctx context.Context, travelerID, destination, pickupDate, dropoffDate string) ([]model.Offer, error)
}

// SearchService produces mock inventory and decorates the results with
// the traveler's preferred-vendor markers before returning them.
type SearchService struct {
	client        *search.Client
	evaluationSvc IEvaluationService
}

func NewSearchService(client *search.Client, evaluationSvc IEvaluationService) *SearchService {
	return &SearchService{
		client:        client,
		evaluationSvc: evaluationSvc,
	}
}

func (s *SearchService) SearchFlights(ctx context.Context, travelerID, origin, destination, departDate string) ([]model.Offer, error) {
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}

	offers := s.client.Flights(origin, destination, departDate)
	annotated, err := s.evaluationSvc.AnnotateOffers(ctx, travelerID, model.CategoryFlight, offers)
	if err != nil {
		logger.Error("Failed to annotate flight offers", zap.Error(err), zap.String("travelerID", travelerID))
		return nil, err
	}

	logger.Info("Flight search completed",
		zap.String("travelerID", travelerID),
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.Int("results", len(annotated)))
	return annotated, nil
}

func (s *SearchService) SearchHotels(ctx context.Context, travelerID, destination, checkin, checkout string) ([]model.Offer, error) {
	if destination == "" {
		return nil, fmt.Errorf("destination is required")
	}

	offers := s.client.Hotels(destination, checkin, checkout)
	annotated, err := s.evaluationSvc.AnnotateOffers(ctx, travelerID, model.CategoryHotel, offers)
	if err != nil {
		logger.Error("Failed to annotate hotel offers", zap.Error(err), zap.String("travelerID", travelerID))
		return nil, err
	}

	logger.Info("Hotel search completed",
		zap.String("travelerID", travelerID),
		zap.String("destination", destination),
		zap.Int("results", len(annotated)))
	return annotated, nil
}

func (s *SearchService) SearchRentalCars(ctx context.Context, travelerID, destination, pickupDate, dropoffDate string) ([]model.Offer, error) {
	if destination == "" {
		return nil, fmt.Errorf("destination is required")
	}

	offers := s.client.RentalCars(destination, pickupDate, dropoffDate)
	annotated, err := s.evaluationSvc.AnnotateOffers(ctx, travelerID, model.CategoryCar, offers)
	if err != nil {
		logger.Error("Failed to annotate rental car offers", zap.Error(err), zap.String("travelerID", travelerID))
		return nil, err
	}

	logger.Info("Rental car search completed",
		zap.String("travelerID", travelerID),
		zap.String("destination", destination),
		zap.Int("results", len(annotated)))
	return annotated, nil
}
