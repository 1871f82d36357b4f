// dao/trip_dao.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/traveldesk/api/audit"
	travel_errors "github.com/traveldesk/api/errors"
	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
	helper_util "github.com/traveldesk/api/util/helper"
)

type TripDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewTripDAO(driver neo4j.Driver, auditService audit.Service) *TripDAO {
	dao := &TripDAO{Driver: driver, AuditService: auditService}
	// Ensure unique constraint on Trip ID
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint", zap.Error(err))
	}
	return dao
}

// EnsureUniqueConstraint ensures the unique constraint on the Trip ID
func (dao *TripDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Trip ID")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("Failed to close Neo4j session", zap.Error(err))
		}
	}()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_trip_id IF NOT EXISTS
        FOR (t:TRIP) REQUIRE t.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		if err != nil {
			logger.Error("Failed to create unique constraint", zap.Error(err))
			return nil, fmt.Errorf("failed to create unique constraint: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on Trip ID", zap.Error(err))
		return err
	}

	logger.Info("Successfully ensured unique constraint on Trip ID")
	return nil
}

// CreateTrip creates a new trip record node in Neo4j
func (dao *TripDAO) CreateTrip(ctx context.Context, trip model.TripRecord) (string, error) {
	start := time.Now()
	logger.Info("Creating new trip record", zap.String("travelerID", trip.TravelerID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		checkQuery := `
        MATCH (t:TRIP {id: $id})
        RETURN t.id
        `
		checkResult, err := transaction.Run(checkQuery, map[string]interface{}{"id": trip.ID})
		if err != nil {
			return nil, travel_errors.ErrDatabaseOperation
		}
		if checkResult.Next() {
			return nil, travel_errors.ErrTripConflict
		}

		createQuery := `
            MERGE (t:TRIP {id: $id})
            ON CREATE SET t += $props
            ON MATCH SET t += $props
            RETURN t.id as id
        `

		parameters := map[string]interface{}{
			"id":    trip.ID,
			"props": tripProps(trip),
		}
		createResult, err := transaction.Run(createQuery, parameters)
		if err != nil {
			return nil, travel_errors.ErrDatabaseOperation
		}
		if createResult.Next() {
			id, found := createResult.Record().Get("id")
			if !found {
				return nil, travel_errors.ErrInternalServer
			}
			return id, nil
		}
		return nil, travel_errors.ErrInternalServer
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create trip record",
			zap.Error(err),
			zap.String("travelerID", trip.TravelerID),
			zap.Duration("duration", duration))
		return "", err
	}

	tripID := fmt.Sprintf("%v", result)
	logger.Info("Trip record created successfully",
		zap.String("tripID", tripID),
		zap.Duration("duration", duration))

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		TravelerID: trip.TravelerID,
		Action:     "CREATE_TRIP",
		ResourceID: tripID,
		Compliant:  true,
		Details:    tripChangeDetails(&trip),
	}
	if err := dao.AuditService.LogEvent(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}
	return tripID, nil
}

// BulkImportTrips creates a batch of trip records in one transaction.
// Used by the CSV import endpoint.
func (dao *TripDAO) BulkImportTrips(ctx context.Context, trips []model.TripRecord) (int, error) {
	start := time.Now()
	logger.Info("Bulk importing trip records", zap.Int("count", len(trips)))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	rows := make([]map[string]interface{}, 0, len(trips))
	for _, trip := range trips {
		if trip.ID == "" {
			trip.ID = uuid.New().String()
		}
		row := tripProps(trip)
		row["id"] = trip.ID
		rows = append(rows, row)
	}

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        UNWIND $rows AS row
        MERGE (t:TRIP {id: row.id})
        ON CREATE SET t += row
        ON MATCH SET t += row
        `
		result, err := transaction.Run(query, map[string]interface{}{"rows": rows})
		if err != nil {
			return nil, travel_errors.ErrDatabaseOperation
		}
		if _, err := result.Consume(); err != nil {
			return nil, travel_errors.ErrDatabaseOperation
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to bulk import trip records",
			zap.Error(err),
			zap.Duration("duration", duration))
		return 0, err
	}

	logger.Info("Trip records imported successfully",
		zap.Int("count", len(rows)),
		zap.Duration("duration", duration))
	return len(rows), nil
}

// GetTrip retrieves a trip record from Neo4j by its ID
func (dao *TripDAO) GetTrip(ctx context.Context, tripID string) (*model.TripRecord, error) {
	start := time.Now()
	logger.Info("Retrieving trip record", zap.String("tripID", tripID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (t:TRIP {id: $id})
    RETURN t
    `
	result, err := session.Run(query, map[string]interface{}{"id": tripID})
	if err != nil {
		logger.Error("Failed to execute get trip query",
			zap.Error(err),
			zap.String("tripID", tripID),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to execute get trip query: %w", err)
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		trip, err := mapNodeToTrip(node)
		if err != nil {
			logger.Error("Failed to map trip node to struct",
				zap.Error(err),
				zap.String("tripID", tripID),
				zap.Duration("duration", time.Since(start)))
			return nil, fmt.Errorf("failed to map trip node to struct: %w", err)
		}
		logger.Info("Trip record retrieved successfully",
			zap.String("tripID", tripID),
			zap.Duration("duration", time.Since(start)))
		return trip, nil
	}

	logger.Warn("Trip record not found",
		zap.String("tripID", tripID),
		zap.Duration("duration", time.Since(start)))
	return nil, travel_errors.ErrTripNotFound
}

// ListTripsByTraveler retrieves a traveler's trip history with pagination,
// newest first.
func (dao *TripDAO) ListTripsByTraveler(ctx context.Context, travelerID string, limit int, offset int) ([]model.TripRecord, error) {
	start := time.Now()
	logger.Info("Listing trip records",
		zap.String("travelerID", travelerID),
		zap.Int("limit", limit),
		zap.Int("offset", offset))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (t:TRIP {travelerId: $travelerId})
    RETURN t
    ORDER BY t.tripDate DESC
    SKIP $offset
    LIMIT $limit
    `
	result, err := session.Run(query, map[string]interface{}{
		"travelerId": travelerID,
		"limit":      limit,
		"offset":     offset,
	})
	if err != nil {
		logger.Error("Failed to execute list trips query",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to execute list trips query: %w", err)
	}

	var trips []model.TripRecord
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		trip, err := mapNodeToTrip(node)
		if err != nil {
			logger.Error("Failed to map trip node to struct",
				zap.Error(err),
				zap.Duration("duration", time.Since(start)))
			return nil, fmt.Errorf("failed to map trip node to struct: %w", err)
		}
		trips = append(trips, *trip)
	}

	logger.Info("Trip records listed successfully",
		zap.Int("count", len(trips)),
		zap.Duration("duration", time.Since(start)))

	return trips, nil
}

// SearchTrips searches trip records based on given criteria
func (dao *TripDAO) SearchTrips(ctx context.Context, criteria model.TripSearchCriteria) ([]model.TripRecord, error) {
	start := time.Now()
	logger.Info("Searching trip records", zap.Any("criteria", criteria))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query, params := buildTripSearchQuery(criteria)

	result, err := session.Run(query, params)
	if err != nil {
		logger.Error("Failed to execute search trips query",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to execute search trips query: %w", err)
	}

	var trips []model.TripRecord
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		trip, err := mapNodeToTrip(node)
		if err != nil {
			logger.Error("Failed to map trip node to struct",
				zap.Error(err),
				zap.Duration("duration", time.Since(start)))
			return nil, fmt.Errorf("failed to map trip node to struct: %w", err)
		}
		trips = append(trips, *trip)
	}

	logger.Info("Trip records searched successfully",
		zap.Int("count", len(trips)),
		zap.Duration("duration", time.Since(start)))

	return trips, nil
}

// DeleteTrip deletes a trip record from Neo4j
func (dao *TripDAO) DeleteTrip(ctx context.Context, tripID string, travelerID string) error {
	start := time.Now()
	logger.Info("Deleting trip record", zap.String("tripID", tripID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (t:TRIP {id: $id})
        DETACH DELETE t
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": tripID})
		if err != nil {
			return nil, fmt.Errorf("failed to execute delete query: %w", err)
		}
		summary, err := result.Consume()
		if err != nil {
			return nil, fmt.Errorf("failed to consume delete result: %w", err)
		}
		if summary.Counters().NodesDeleted() == 0 {
			return nil, travel_errors.ErrTripNotFound
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete trip record",
			zap.Error(err),
			zap.String("tripID", tripID),
			zap.Duration("duration", duration))
		return fmt.Errorf("failed to delete trip record: %w", err)
	}

	logger.Info("Trip record deleted successfully",
		zap.String("tripID", tripID),
		zap.Duration("duration", duration))

	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		TravelerID: travelerID,
		Action:     "DELETE_TRIP",
		ResourceID: tripID,
		Compliant:  true,
	}
	if err := dao.AuditService.LogEvent(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return nil
}

// buildTripSearchQuery assembles the Cypher query and parameter map for
// a trip search. Pagination mirrors ListTripsByTraveler: SKIP precedes
// LIMIT, and either may be absent.
func buildTripSearchQuery(criteria model.TripSearchCriteria) (string, map[string]interface{}) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("MATCH (t:TRIP) WHERE 1=1")

	params := make(map[string]interface{})

	if criteria.TravelerID != "" {
		queryBuilder.WriteString(" AND t.travelerId = $travelerId")
		params["travelerId"] = criteria.TravelerID
	}

	if criteria.Origin != "" {
		queryBuilder.WriteString(" AND t.origin = $origin")
		params["origin"] = criteria.Origin
	}

	if criteria.Destination != "" {
		queryBuilder.WriteString(" AND t.destination = $destination")
		params["destination"] = criteria.Destination
	}

	if criteria.Airline != "" {
		queryBuilder.WriteString(" AND t.airline = $airline")
		params["airline"] = criteria.Airline
	}

	if criteria.FromDate != nil {
		queryBuilder.WriteString(" AND t.tripDate >= $fromDate")
		params["fromDate"] = criteria.FromDate.Format(time.RFC3339)
	}

	if criteria.ToDate != nil {
		queryBuilder.WriteString(" AND t.tripDate <= $toDate")
		params["toDate"] = criteria.ToDate.Format(time.RFC3339)
	}

	queryBuilder.WriteString(" RETURN t ORDER BY t.tripDate DESC")

	if criteria.Offset > 0 {
		queryBuilder.WriteString(" SKIP $offset")
		params["offset"] = criteria.Offset
	}

	if criteria.Limit > 0 {
		queryBuilder.WriteString(" LIMIT $limit")
		params["limit"] = criteria.Limit
	}

	return queryBuilder.String(), params
}

// Helper function to build node properties from a trip record
func tripProps(trip model.TripRecord) map[string]interface{} {
	now := time.Now()
	createdAt := trip.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	return map[string]interface{}{
		"travelerId":       trip.TravelerID,
		"origin":           trip.Origin,
		"destination":      trip.Destination,
		"airline":          trip.Airline,
		"hotelBrand":       trip.HotelBrand,
		"rentalCarCompany": trip.RentalCarCompany,
		"cabinClass":       trip.CabinClass,
		"totalCost":        trip.TotalCost,
		"tripDate":         trip.TripDate.Format(time.RFC3339),
		"createdAt":        createdAt.Format(time.RFC3339),
		"updatedAt":        now.Format(time.RFC3339),
	}
}

// Helper function to create change details for audit log
func tripChangeDetails(trip *model.TripRecord) json.RawMessage {
	changes := map[string]interface{}{
		"action":      "created",
		"origin":      trip.Origin,
		"destination": trip.Destination,
	}
	changeDetails, _ := json.Marshal(changes)
	return changeDetails
}

// Helper function to map Neo4j Node to TripRecord struct
func mapNodeToTrip(node neo4j.Node) (*model.TripRecord, error) {
	props := node.Props
	trip := &model.TripRecord{}

	// ID
	if id, ok := props["id"].(string); ok {
		trip.ID = id
	} else {
		return nil, fmt.Errorf("failed to assert type for trip ID: %v", props["id"])
	}

	//TravelerID
	if travelerID, ok := props["travelerId"].(string); ok {
		trip.TravelerID = travelerID
	} else {
		return nil, fmt.Errorf("failed to assert type for traveler ID: %v", props["travelerId"])
	}

	if origin, ok := props["origin"].(string); ok {
		trip.Origin = origin
	}
	if destination, ok := props["destination"].(string); ok {
		trip.Destination = destination
	}
	if airline, ok := props["airline"].(string); ok {
		trip.Airline = airline
	}
	if hotelBrand, ok := props["hotelBrand"].(string); ok {
		trip.HotelBrand = hotelBrand
	}
	if rentalCarCompany, ok := props["rentalCarCompany"].(string); ok {
		trip.RentalCarCompany = rentalCarCompany
	}
	if cabinClass, ok := props["cabinClass"].(string); ok {
		trip.CabinClass = cabinClass
	}
	if totalCost, ok := props["totalCost"].(float64); ok {
		trip.TotalCost = totalCost
	}
	if tripDate, err := helper_util.ParseNullableTime(props["tripDate"]); err == nil && tripDate != nil {
		trip.TripDate = *tripDate
	}
	if createdAt, err := helper_util.ParseNullableTime(props["createdAt"]); err == nil && createdAt != nil {
		trip.CreatedAt = *createdAt
	}
	if updatedAt, err := helper_util.ParseNullableTime(props["updatedAt"]); err == nil && updatedAt != nil {
		trip.UpdatedAt = *updatedAt
	}

	return trip, nil
}
