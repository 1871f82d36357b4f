// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// CachePreferenceProfile stores a derived profile so repeat evaluations
// skip the history scan. Profiles are derived data; staleness is
// bounded by the TTL and writes to trip history invalidate eagerly.
func CachePreferenceProfile(ctx context.Context, profile *model.PreferenceProfile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal preference profile: %w", err)
	}

	key := fmt.Sprintf("preferences:%s", profile.TravelerID)
	ttl := viper.GetDuration("preferences.profileCacheTTL")
	err = RedisClient.Set(ctx, key, profileJSON, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache preference profile: %w", err)
	}

	logger.Debug("Preference profile cached", zap.String("travelerID", profile.TravelerID))
	return nil
}

func GetCachedPreferenceProfile(ctx context.Context, travelerID string) (*model.PreferenceProfile, error) {
	key := fmt.Sprintf("preferences:%s", travelerID)
	profileJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Preference profile not found in cache", zap.String("travelerID", travelerID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get preference profile from cache: %w", err)
	}

	var profile model.PreferenceProfile
	err = json.Unmarshal([]byte(profileJSON), &profile)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal preference profile: %w", err)
	}

	logger.Debug("Preference profile retrieved from cache", zap.String("travelerID", travelerID))
	return &profile, nil
}

func DeleteCachedPreferenceProfile(ctx context.Context, travelerID string) error {
	key := fmt.Sprintf("preferences:%s", travelerID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete preference profile from cache: %w", err)
	}
	logger.Debug("Preference profile deleted from cache", zap.String("travelerID", travelerID))
	return nil
}

// CacheBooking stores a booking encrypted at rest. Cached bookings
// carry traveler itineraries and must not sit in Redis as plaintext.
func CacheBooking(ctx context.Context, booking *model.Booking) error {
	bookingJSON, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	encryptedBooking, err := encrypt(bookingJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt booking: %w", err)
	}

	key := fmt.Sprintf("booking:%s", booking.ConfirmationCode)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encryptedBooking), defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache booking: %w", err)
	}

	logger.Debug("Booking cached successfully", zap.String("confirmationCode", booking.ConfirmationCode))
	return nil
}

func GetCachedBooking(ctx context.Context, confirmationCode string) (*model.Booking, error) {
	key := fmt.Sprintf("booking:%s", confirmationCode)
	encryptedBookingStr, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Booking not found in cache", zap.String("confirmationCode", confirmationCode))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get booking from cache: %w", err)
	}

	encryptedBooking, err := base64.StdEncoding.DecodeString(encryptedBookingStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode booking: %w", err)
	}

	bookingJSON, err := decrypt(encryptedBooking)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt booking: %w", err)
	}

	var booking model.Booking
	err = json.Unmarshal(bookingJSON, &booking)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}

	logger.Debug("Booking retrieved from cache", zap.String("confirmationCode", confirmationCode))
	return &booking, nil
}

func DeleteCachedBooking(ctx context.Context, confirmationCode string) error {
	key := fmt.Sprintf("booking:%s", confirmationCode)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete booking from cache: %w", err)
	}
	logger.Debug("Booking deleted from cache", zap.String("confirmationCode", confirmationCode))
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

// LockResource takes a short-lived exclusive lock, used to keep a
// traveler from double-submitting a booking.
func LockResource(ctx context.Context, resourceName string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:%s", resourceName)
	locked, err := RedisClient.SetNX(ctx, key, "locked", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	logger.Debug("Lock acquisition attempt",
		zap.String("resource", resourceName),
		zap.Bool("locked", locked))
	return locked, nil
}

func UnlockResource(ctx context.Context, resourceName string) error {
	key := fmt.Sprintf("lock:%s", resourceName)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	logger.Debug("Lock released", zap.String("resource", resourceName))
	return nil
}
