// dao/booking_dao.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/traveldesk/api/audit"
	travel_errors "github.com/traveldesk/api/errors"
	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
	helper_util "github.com/traveldesk/api/util/helper"
)

type BookingDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewBookingDAO(driver neo4j.Driver, auditService audit.Service) *BookingDAO {
	dao := &BookingDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint", zap.Error(err))
	}
	return dao
}

// EnsureUniqueConstraint ensures the unique constraint on the booking confirmation code
func (dao *BookingDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Booking confirmation code")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("Failed to close Neo4j session", zap.Error(err))
		}
	}()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_booking_code IF NOT EXISTS
        FOR (b:BOOKING) REQUIRE b.confirmationCode IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		if err != nil {
			logger.Error("Failed to create unique constraint", zap.Error(err))
			return nil, fmt.Errorf("failed to create unique constraint: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on Booking confirmation code", zap.Error(err))
		return err
	}

	logger.Info("Successfully ensured unique constraint on Booking confirmation code")
	return nil
}

// CreateBooking persists a booking node in Neo4j. The package and the
// compliance report travel as JSON string properties since Neo4j node
// props are flat.
func (dao *BookingDAO) CreateBooking(ctx context.Context, booking model.Booking) (string, error) {
	start := time.Now()
	logger.Info("Creating new booking",
		zap.String("travelerID", booking.TravelerID),
		zap.String("confirmationCode", booking.ConfirmationCode))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		checkQuery := `
        MATCH (b:BOOKING {confirmationCode: $confirmationCode})
        RETURN b.confirmationCode
        `
		checkResult, err := transaction.Run(checkQuery, map[string]interface{}{"confirmationCode": booking.ConfirmationCode})
		if err != nil {
			return nil, travel_errors.ErrDatabaseOperation
		}
		if checkResult.Next() {
			return nil, travel_errors.ErrBookingConflict
		}

		createQuery := `
            MERGE (b:BOOKING {confirmationCode: $confirmationCode})
            ON CREATE SET b += $props
            ON MATCH SET b += $props
            RETURN b.confirmationCode as confirmationCode
        `

		packageJSON, _ := json.Marshal(booking.Package)
		reportJSON, _ := json.Marshal(booking.Report)

		parameters := map[string]interface{}{
			"confirmationCode": booking.ConfirmationCode,
			"props": map[string]interface{}{
				"travelerId": booking.TravelerID,
				"package":    string(packageJSON),
				"report":     string(reportJSON),
				"totalCost":  booking.TotalCost,
				"status":     booking.Status,
				"approvedBy": booking.ApprovedBy,
				"checkIn":    booking.CheckIn,
				"checkOut":   booking.CheckOut,
				"createdAt":  time.Now().Format(time.RFC3339),
			},
		}
		createResult, err := transaction.Run(createQuery, parameters)
		if err != nil {
			return nil, travel_errors.ErrDatabaseOperation
		}
		if createResult.Next() {
			code, found := createResult.Record().Get("confirmationCode")
			if !found {
				return nil, travel_errors.ErrInternalServer
			}
			return code, nil
		}
		return nil, travel_errors.ErrInternalServer
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create booking",
			zap.Error(err),
			zap.String("travelerID", booking.TravelerID),
			zap.Duration("duration", duration))
		return "", err
	}

	confirmationCode := fmt.Sprintf("%v", result)
	logger.Info("Booking created successfully",
		zap.String("confirmationCode", confirmationCode),
		zap.Duration("duration", duration))

	auditLog := audit.AuditLog{
		Timestamp:    time.Now(),
		TravelerID:   booking.TravelerID,
		Action:       "CREATE_BOOKING",
		ResourceID:   confirmationCode,
		Compliant:    booking.Report.Compliant,
		ApprovalTier: string(booking.Report.ApprovalTier),
	}
	if err := dao.AuditService.LogEvent(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}
	return confirmationCode, nil
}

// GetBooking retrieves a booking from Neo4j by its confirmation code
func (dao *BookingDAO) GetBooking(ctx context.Context, confirmationCode string) (*model.Booking, error) {
	start := time.Now()
	logger.Info("Retrieving booking", zap.String("confirmationCode", confirmationCode))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (b:BOOKING {confirmationCode: $confirmationCode})
    RETURN b
    `
	result, err := session.Run(query, map[string]interface{}{"confirmationCode": confirmationCode})
	if err != nil {
		logger.Error("Failed to execute get booking query",
			zap.Error(err),
			zap.String("confirmationCode", confirmationCode),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to execute get booking query: %w", err)
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		booking, err := mapNodeToBooking(node)
		if err != nil {
			logger.Error("Failed to map booking node to struct",
				zap.Error(err),
				zap.String("confirmationCode", confirmationCode),
				zap.Duration("duration", time.Since(start)))
			return nil, fmt.Errorf("failed to map booking node to struct: %w", err)
		}
		logger.Info("Booking retrieved successfully",
			zap.String("confirmationCode", confirmationCode),
			zap.Duration("duration", time.Since(start)))
		return booking, nil
	}

	logger.Warn("Booking not found",
		zap.String("confirmationCode", confirmationCode),
		zap.Duration("duration", time.Since(start)))
	return nil, travel_errors.ErrBookingNotFound
}

// ListBookingsByTraveler retrieves a traveler's bookings with pagination,
// newest first.
func (dao *BookingDAO) ListBookingsByTraveler(ctx context.Context, travelerID string, limit int, offset int) ([]model.Booking, error) {
	start := time.Now()
	logger.Info("Listing bookings",
		zap.String("travelerID", travelerID),
		zap.Int("limit", limit),
		zap.Int("offset", offset))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (b:BOOKING {travelerId: $travelerId})
    RETURN b
    ORDER BY b.createdAt DESC
    SKIP $offset
    LIMIT $limit
    `
	result, err := session.Run(query, map[string]interface{}{
		"travelerId": travelerID,
		"limit":      limit,
		"offset":     offset,
	})
	if err != nil {
		logger.Error("Failed to execute list bookings query",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to execute list bookings query: %w", err)
	}

	var bookings []model.Booking
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		booking, err := mapNodeToBooking(node)
		if err != nil {
			logger.Error("Failed to map booking node to struct",
				zap.Error(err),
				zap.Duration("duration", time.Since(start)))
			return nil, fmt.Errorf("failed to map booking node to struct: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	logger.Info("Bookings listed successfully",
		zap.Int("count", len(bookings)),
		zap.Duration("duration", time.Since(start)))

	return bookings, nil
}

// UpdateBookingStatus moves a booking between pending-approval and
// confirmed once an approver signs off.
func (dao *BookingDAO) UpdateBookingStatus(ctx context.Context, confirmationCode, status, approvedBy string) (*model.Booking, error) {
	start := time.Now()
	logger.Info("Updating booking status",
		zap.String("confirmationCode", confirmationCode),
		zap.String("status", status))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	var updatedBooking *model.Booking
	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (b:BOOKING {confirmationCode: $confirmationCode})
        SET b.status = $status, b.approvedBy = $approvedBy
        RETURN b
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"confirmationCode": confirmationCode,
			"status":           status,
			"approvedBy":       approvedBy,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to execute update query: %w", err)
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			updatedBooking, _ = mapNodeToBooking(node)
			return nil, nil
		}
		return nil, travel_errors.ErrBookingNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("confirmationCode", confirmationCode),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Booking status updated successfully",
		zap.String("confirmationCode", confirmationCode),
		zap.Duration("duration", duration))

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		TravelerID: updatedBooking.TravelerID,
		Action:     "UPDATE_BOOKING_STATUS",
		ResourceID: confirmationCode,
		Compliant:  updatedBooking.Report.Compliant,
	}
	if err := dao.AuditService.LogEvent(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return updatedBooking, nil
}

// Helper function to map Neo4j Node to Booking struct
func mapNodeToBooking(node neo4j.Node) (*model.Booking, error) {
	props := node.Props
	booking := &model.Booking{}

	if code, ok := props["confirmationCode"].(string); ok {
		booking.ConfirmationCode = code
	} else {
		return nil, fmt.Errorf("failed to assert type for confirmation code: %v", props["confirmationCode"])
	}

	if travelerID, ok := props["travelerId"].(string); ok {
		booking.TravelerID = travelerID
	} else {
		return nil, fmt.Errorf("failed to assert type for traveler ID: %v", props["travelerId"])
	}

	if packageJSON, ok := props["package"].(string); ok {
		if err := json.Unmarshal([]byte(packageJSON), &booking.Package); err != nil {
			return nil, fmt.Errorf("failed to unmarshal booking package: %w", err)
		}
	}
	if reportJSON, ok := props["report"].(string); ok {
		if err := json.Unmarshal([]byte(reportJSON), &booking.Report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal compliance report: %w", err)
		}
	}

	if totalCost, ok := props["totalCost"].(float64); ok {
		booking.TotalCost = totalCost
	}
	if status, ok := props["status"].(string); ok {
		booking.Status = status
	}
	if approvedBy, ok := props["approvedBy"].(string); ok {
		booking.ApprovedBy = approvedBy
	}
	if checkIn, ok := props["checkIn"].(string); ok {
		booking.CheckIn = checkIn
	}
	if checkOut, ok := props["checkOut"].(string); ok {
		booking.CheckOut = checkOut
	}
	if createdAt, err := helper_util.ParseNullableTime(props["createdAt"]); err == nil && createdAt != nil {
		booking.CreatedAt = *createdAt
	}

	return booking, nil
}
