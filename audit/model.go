// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// AuditLog is one immutable entry in the compliance trail. Every
// policy verdict and every booking writes one.
type AuditLog struct {
	Timestamp    time.Time       `json:"timestamp"`
	TravelerID   string          `json:"traveler_id"`
	Action       string          `json:"action"`
	ResourceID   string          `json:"resource_id"`
	Compliant    bool            `json:"compliant"`
	ApprovalTier string          `json:"approval_tier,omitempty"`
	Details      json.RawMessage `json:"details,omitempty"`
}
