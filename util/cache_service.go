// util/cache_service.go

package util

import (
	"context"

	"github.com/traveldesk/api/db"
	"github.com/traveldesk/api/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetPreferenceProfile(ctx context.Context, travelerID string) (*model.PreferenceProfile, error) {
	return db.GetCachedPreferenceProfile(ctx, travelerID)
}

func (c *CacheService) SetPreferenceProfile(ctx context.Context, profile model.PreferenceProfile) error {
	return db.CachePreferenceProfile(ctx, &profile)
}

func (c *CacheService) DeletePreferenceProfile(ctx context.Context, travelerID string) error {
	return db.DeleteCachedPreferenceProfile(ctx, travelerID)
}

func (c *CacheService) GetBooking(ctx context.Context, confirmationCode string) (*model.Booking, error) {
	return db.GetCachedBooking(ctx, confirmationCode)
}

func (c *CacheService) SetBooking(ctx context.Context, booking model.Booking) error {
	return db.CacheBooking(ctx, &booking)
}

func (c *CacheService) DeleteBooking(ctx context.Context, confirmationCode string) error {
	return db.DeleteCachedBooking(ctx, confirmationCode)
}
