// errors/evaluation_errors.go
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRuleSet means the policy rule table was never loaded or is
	// incoherent. Evaluation must abort rather than default to compliant.
	ErrEmptyRuleSet = errors.New("policy rule set is empty")
)

// MalformedOfferError reports a required attribute missing from an
// input offer. The evaluator never treats missing data as compliant.
type MalformedOfferError struct {
	Category string
	Field    string
}

func (e *MalformedOfferError) Error() string {
	return fmt.Sprintf("malformed %s offer: missing %s", e.Category, e.Field)
}

// UnknownCategoryError reports a ranking or validation request for a
// category outside {flight, hotel, car}.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown offer category: %q", e.Category)
}
