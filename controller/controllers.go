// controller/controllers.go
package controller

import "github.com/traveldesk/api/service"

type Controllers struct {
	Preference *PreferenceController
	Policy     *PolicyController
	Trip       *TripController
	Search     *SearchController
	Booking    *BookingController
	Research   *ResearchController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Preference: NewPreferenceController(services.Evaluation),
		Policy:     NewPolicyController(services.Evaluation),
		Trip:       NewTripController(services.Trip),
		Search:     NewSearchController(services.Search),
		Booking:    NewBookingController(services.Booking),
		Research:   NewResearchController(services.Research),
	}
}
