package inspection

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// CreateInput holds the parameters for opening an inspection.
type CreateInput struct {
	Number        string
	ClientName    string
	CompanyID     *uuid.UUID
	InternalOrder *string
	Invoice       *string
	Dimensions    domain.Dimensions
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.ClientName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "client_name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "client_name", Message: "max 200 characters"})
	}
	if len(strings.TrimSpace(i.Number)) > 40 {
		errs = append(errs, domain.FieldError{Field: "number", Message: "max 40 characters"})
	}
	if i.CompanyID != nil && *i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing inspections.
type ListInput struct {
	Stage  *domain.Stage
	Search string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Stage != nil && !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "must be between 1 and 6"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be positive"})
	}
	if len(i.Search) > 100 {
		errs = append(errs, domain.FieldError{Field: "q", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransitionInput names one lifecycle action on a record.
type TransitionInput struct {
	InspectionID uuid.UUID
	Action       domain.Action
	OrderNumber  string
	Reason       string
}

// Validate checks the shape of the request. Whether the move is allowed is
// decided against the stored record.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError

	if i.InspectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "inspection_id", Message: "required"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "unknown action"})
	}
	if len(i.Reason) > 1000 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}
	if len(strings.TrimSpace(i.OrderNumber)) > 60 {
		errs = append(errs, domain.FieldError{Field: "order_number", Message: "max 60 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
