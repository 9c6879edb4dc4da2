package user

import (
	"github.com/homefax/homefax-backend/internal/domain"
)

// UpdateMeInput holds merge-patch parameters for the profile update
// operation. nil means "leave unchanged". Role is accepted only from admins.
type UpdateMeInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *string
}

// Validate validates the profile update input.
func (i UpdateMeInput) Validate() error {
	var errs []domain.FieldError

	if i.FirstName != nil {
		if *i.FirstName == "" {
			errs = append(errs, domain.FieldError{Field: "first_name", Message: "cannot be empty"})
		} else if len(*i.FirstName) > 100 {
			errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
		}
	}

	if i.LastName != nil {
		if *i.LastName == "" {
			errs = append(errs, domain.FieldError{Field: "last_name", Message: "cannot be empty"})
		} else if len(*i.LastName) > 100 {
			errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
		}
	}

	if i.Phone != nil && len(*i.Phone) > 32 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	if i.Role != nil && !domain.UserRole(*i.Role).IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
