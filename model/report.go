// model/report.go
package model

// ApprovalTier is the sign-off level a package requires, derived from
// its total cost.
type ApprovalTier string

const (
	ApprovalAuto    ApprovalTier = "auto"
	ApprovalManager ApprovalTier = "manager-approval"
	ApprovalVP      ApprovalTier = "vp-approval"
)

// ComplianceReport is the verdict for a validated trip package. Each
// violation names the rule and the observed vs. allowed value.
type ComplianceReport struct {
	Compliant    bool         `json:"compliant"`
	Violations   []string     `json:"violations"`
	ApprovalTier ApprovalTier `json:"approval_tier"`
	TotalCost    float64      `json:"total_cost"`
}
