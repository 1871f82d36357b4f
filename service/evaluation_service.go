package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/traveldesk/api/audit"
	"github.com/traveldesk/api/config"
	"github.com/traveldesk/api/dao"
	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
	"github.com/traveldesk/api/policy"
	"github.com/traveldesk/api/preference"
	"github.com/traveldesk/api/util"
)

type IEvaluationService interface {
	GetPreferenceProfile(ctx context.Context, travelerID string) (*model.PreferenceProfile, error)
	RankVendors(ctx context.Context, travelerID string, category model.Category) ([]model.VendorCount, error)
	AnnotateOffers(ctx context.Context, travelerID string, category model.Category, offers []model.Offer) ([]model.Offer, error)
	AnnotateAll(ctx context.Context, travelerID string, offersByCategory map[model.Category][]model.Offer) (map[model.Category][]model.Offer, error)
	ValidatePackage(ctx context.Context, travelerID string, pkg model.TripPackage) (*model.ComplianceReport, error)
	Rules() policy.RuleSet
}

// EvaluationService glues the preference ranker and the policy
// validator to trip history storage. Profiles are cached per traveler
// and rebuilt whenever the history changes.
type EvaluationService struct {
	tripDAO         *dao.TripDAO
	validator       *policy.Validator
	auditService    audit.Service
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

func NewEvaluationService(
	tripDAO *dao.TripDAO,
	validator *policy.Validator,
	auditService audit.Service,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *EvaluationService {
	service := &EvaluationService{
		tripDAO:         tripDAO,
		validator:       validator,
		auditService:    auditService,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Trip history changes invalidate the derived profile
	eventBus.Subscribe("trip.created", service.handleTripChanged)
	eventBus.Subscribe("trip.deleted", service.handleTripChanged)
	eventBus.Subscribe("trip.imported", service.handleTripChanged)

	return service
}

func (s *EvaluationService) handleTripChanged(ctx context.Context, event util.Event) error {
	travelerID, ok := event.Payload.(string)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	logger.Info("Trip history changed, invalidating cached profile", zap.String("travelerID", travelerID))
	if err := s.cacheService.DeletePreferenceProfile(ctx, travelerID); err != nil {
		logger.Warn("Failed to invalidate cached preference profile",
			zap.Error(err),
			zap.String("travelerID", travelerID))
	}
	return nil
}

// GetPreferenceProfile returns the traveler's derived profile, from
// cache when fresh, otherwise rebuilt from the full trip history.
func (s *EvaluationService) GetPreferenceProfile(ctx context.Context, travelerID string) (*model.PreferenceProfile, error) {
	cached, err := s.cacheService.GetPreferenceProfile(ctx, travelerID)
	if err == nil && cached != nil {
		return cached, nil
	}

	history, err := s.tripDAO.SearchTrips(ctx, model.TripSearchCriteria{TravelerID: travelerID})
	if err != nil {
		logger.Error("Error loading trip history", zap.Error(err), zap.String("travelerID", travelerID))
		return nil, fmt.Errorf("failed to load trip history: %w", err)
	}

	profile, err := preference.BuildProfile(travelerID, history)
	if err != nil {
		return nil, fmt.Errorf("failed to build preference profile: %w", err)
	}

	if err := s.cacheService.SetPreferenceProfile(ctx, profile); err != nil {
		logger.Warn("Failed to cache preference profile", zap.Error(err), zap.String("travelerID", travelerID))
	}

	return &profile, nil
}

// RankVendors produces the frequency ranking for one category.
func (s *EvaluationService) RankVendors(ctx context.Context, travelerID string, category model.Category) ([]model.VendorCount, error) {
	history, err := s.tripDAO.SearchTrips(ctx, model.TripSearchCriteria{TravelerID: travelerID})
	if err != nil {
		logger.Error("Error loading trip history", zap.Error(err), zap.String("travelerID", travelerID))
		return nil, fmt.Errorf("failed to load trip history: %w", err)
	}

	return preference.Rank(history, category)
}

// AnnotateOffers marks the offers whose vendor is among the traveler's
// top preferred vendors for the category.
func (s *EvaluationService) AnnotateOffers(ctx context.Context, travelerID string, category model.Category, offers []model.Offer) ([]model.Offer, error) {
	ranking, err := s.RankVendors(ctx, travelerID, category)
	if err != nil {
		return nil, err
	}

	topK := config.GetInt("preferences.topVendors")
	return preference.Annotate(offers, ranking, topK), nil
}

// AnnotateAll annotates offers across several categories concurrently,
// one ranking lookup per category against the traveler's profile.
func (s *EvaluationService) AnnotateAll(ctx context.Context, travelerID string, offersByCategory map[model.Category][]model.Offer) (map[model.Category][]model.Offer, error) {
	profile, err := s.GetPreferenceProfile(ctx, travelerID)
	if err != nil {
		return nil, err
	}

	topK := config.GetInt("preferences.topVendors")
	return preference.AnnotateAll(ctx, profile.Rankings, offersByCategory, topK)
}

// ValidatePackage runs the policy validator over a package, writes the
// verdict to the audit trail, and fans out notifications for any
// violations.
func (s *EvaluationService) ValidatePackage(ctx context.Context, travelerID string, pkg model.TripPackage) (*model.ComplianceReport, error) {
	report, err := s.validator.Validate(pkg)
	if err != nil {
		logger.Error("Package validation failed",
			zap.Error(err),
			zap.String("travelerID", travelerID),
			zap.String("destination", pkg.Destination))
		return nil, err
	}

	details, _ := json.Marshal(report)
	auditLog := audit.AuditLog{
		Timestamp:    time.Now(),
		TravelerID:   travelerID,
		Action:       "VALIDATE_PACKAGE",
		ResourceID:   pkg.Destination,
		Compliant:    report.Compliant,
		ApprovalTier: string(report.ApprovalTier),
		Details:      details,
	}
	if err := s.auditService.LogEvent(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	if !report.Compliant {
		if err := s.notificationSvc.NotifyPolicyViolations(ctx, travelerID, report.Violations); err != nil {
			logger.Warn("Failed to send violation notification", zap.Error(err), zap.String("travelerID", travelerID))
		}
	}

	s.eventBus.Publish(ctx, "package.validated", map[string]interface{}{
		"travelerID": travelerID,
		"report":     report,
	})

	logger.Info("Package validated",
		zap.String("travelerID", travelerID),
		zap.Bool("compliant", report.Compliant),
		zap.Int("violations", len(report.Violations)),
		zap.String("approvalTier", string(report.ApprovalTier)))
	return &report, nil
}

// Rules exposes the active rule table for the policy endpoints.
func (s *EvaluationService) Rules() policy.RuleSet {
	return s.validator.Rules()
}
