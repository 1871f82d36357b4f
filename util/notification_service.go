// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/traveldesk/api/logging"
	"github.com/traveldesk/api/model"
)

type NotificationService struct {
	// A message queue client would slot in here once one exists
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyBookingChange announces booking lifecycle transitions. The
// current implementation logs; a real deployment would hand these to a
// queue or an email gateway.
func (n *NotificationService) NotifyBookingChange(ctx context.Context, changeType string, booking model.Booking) error {
	switch changeType {
	case "confirmed":
		logger.Info("NOTIFICATION: Booking confirmed",
			zap.String("confirmationCode", booking.ConfirmationCode),
			zap.String("travelerID", booking.TravelerID))
	case "pending-approval":
		logger.Info("NOTIFICATION: Booking awaiting approval",
			zap.String("confirmationCode", booking.ConfirmationCode),
			zap.String("travelerID", booking.TravelerID),
			zap.String("approvalTier", string(booking.Report.ApprovalTier)))
	case "cancelled":
		logger.Info("NOTIFICATION: Booking cancelled",
			zap.String("confirmationCode", booking.ConfirmationCode))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	// Mock email sending
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))

	return nil
}

// NotifyApprover alerts the approval chain when a package needs a
// manager or VP sign-off.
func (n *NotificationService) NotifyApprover(ctx context.Context, tier model.ApprovalTier, travelerID string, totalCost float64) error {
	logger.Info("Notifying approver",
		zap.String("approvalTier", string(tier)),
		zap.String("travelerID", travelerID),
		zap.Float64("totalCost", totalCost))
	return nil
}

// NotifyPolicyViolations tells the traveler which rules their package broke.
func (n *NotificationService) NotifyPolicyViolations(ctx context.Context, travelerID string, violations []string) error {
	logger.Info("Notifying traveler of policy violations",
		zap.String("travelerID", travelerID),
		zap.Strings("violations", violations))
	return nil
}
