// service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/traveldesk/api/audit"
	"github.com/traveldesk/api/dao"
	"github.com/traveldesk/api/policy"
	"github.com/traveldesk/api/search"
	"github.com/traveldesk/api/util"
)

type Services struct {
	Evaluation IEvaluationService
	Trip       ITripService
	Search     ISearchService
	Booking    IBookingService
	Research   IResearchService
}

func InitializeServices(
	driver neo4j.Driver,
	auditService audit.Service,
	validator *policy.Validator,
	searchClient *search.Client,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	tripDAO := dao.NewTripDAO(driver, auditService)
	bookingDAO := dao.NewBookingDAO(driver, auditService)

	evaluationSvc := NewEvaluationService(tripDAO, validator, auditService, cacheService, notificationSvc, eventBus)

	services := &Services{
		Evaluation: evaluationSvc,
		Trip:       NewTripService(tripDAO, validationUtil, cacheService, notificationSvc, eventBus),
		Search:     NewSearchService(searchClient, evaluationSvc),
		Booking:    NewBookingService(bookingDAO, evaluationSvc, validationUtil, cacheService, notificationSvc, eventBus),
		Research:   NewResearchService(),
	}

	return services, nil
}
