package property

import (
	"time"

	"github.com/homefax/homefax-backend/internal/domain"
)

// CreatePropertyInput holds parameters for the property creation operation.
type CreatePropertyInput struct {
	Address      string
	City         string
	State        string
	ZipCode      string
	Latitude     *float64
	Longitude    *float64
	PropertyType string
	YearBuilt    int
	SquareFeet   int
	Bedrooms     int
	Bathrooms    float64
	LotSize      *float64
}

// Validate validates the property creation input.
func (i CreatePropertyInput) Validate() error {
	var errs []domain.FieldError

	if i.Address == "" {
		errs = append(errs, domain.FieldError{Field: "address", Message: "required"})
	} else if len(i.Address) > 255 {
		errs = append(errs, domain.FieldError{Field: "address", Message: "too long"})
	}

	if i.City == "" {
		errs = append(errs, domain.FieldError{Field: "city", Message: "required"})
	}
	if i.State == "" {
		errs = append(errs, domain.FieldError{Field: "state", Message: "required"})
	}
	if i.ZipCode == "" {
		errs = append(errs, domain.FieldError{Field: "zip_code", Message: "required"})
	}
	if i.PropertyType == "" {
		errs = append(errs, domain.FieldError{Field: "property_type", Message: "required"})
	}

	if i.YearBuilt < 1600 || i.YearBuilt > time.Now().Year()+1 {
		errs = append(errs, domain.FieldError{Field: "year_built", Message: "out of range"})
	}
	if i.SquareFeet < 0 {
		errs = append(errs, domain.FieldError{Field: "square_feet", Message: "must not be negative"})
	}
	if i.Bedrooms < 0 {
		errs = append(errs, domain.FieldError{Field: "bedrooms", Message: "must not be negative"})
	}
	if i.Bathrooms < 0 {
		errs = append(errs, domain.FieldError{Field: "bathrooms", Message: "must not be negative"})
	}

	if i.Latitude != nil && (*i.Latitude < -90 || *i.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "out of range"})
	}
	if i.Longitude != nil && (*i.Longitude < -180 || *i.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePropertyInput holds merge-patch parameters for the property update
// operation. nil means "leave unchanged".
type UpdatePropertyInput struct {
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
	Latitude     *float64
	Longitude    *float64
	PropertyType *string
	YearBuilt    *int
	SquareFeet   *int
	Bedrooms     *int
	Bathrooms    *float64
	LotSize      *float64
}

// Validate validates the property update input.
func (i UpdatePropertyInput) Validate() error {
	var errs []domain.FieldError

	if i.Address != nil && *i.Address == "" {
		errs = append(errs, domain.FieldError{Field: "address", Message: "cannot be empty"})
	}
	if i.City != nil && *i.City == "" {
		errs = append(errs, domain.FieldError{Field: "city", Message: "cannot be empty"})
	}
	if i.State != nil && *i.State == "" {
		errs = append(errs, domain.FieldError{Field: "state", Message: "cannot be empty"})
	}
	if i.ZipCode != nil && *i.ZipCode == "" {
		errs = append(errs, domain.FieldError{Field: "zip_code", Message: "cannot be empty"})
	}
	if i.PropertyType != nil && *i.PropertyType == "" {
		errs = append(errs, domain.FieldError{Field: "property_type", Message: "cannot be empty"})
	}

	if i.YearBuilt != nil && (*i.YearBuilt < 1600 || *i.YearBuilt > time.Now().Year()+1) {
		errs = append(errs, domain.FieldError{Field: "year_built", Message: "out of range"})
	}
	if i.SquareFeet != nil && *i.SquareFeet < 0 {
		errs = append(errs, domain.FieldError{Field: "square_feet", Message: "must not be negative"})
	}
	if i.Bedrooms != nil && *i.Bedrooms < 0 {
		errs = append(errs, domain.FieldError{Field: "bedrooms", Message: "must not be negative"})
	}
	if i.Bathrooms != nil && *i.Bathrooms < 0 {
		errs = append(errs, domain.FieldError{Field: "bathrooms", Message: "must not be negative"})
	}
	if i.Latitude != nil && (*i.Latitude < -90 || *i.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "out of range"})
	}
	if i.Longitude != nil && (*i.Longitude < -180 || *i.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdatePropertyInput) toParams() domain.PropertyUpdateParams {
	return domain.PropertyUpdateParams{
		Address:      i.Address,
		City:         i.City,
		State:        i.State,
		ZipCode:      i.ZipCode,
		Latitude:     i.Latitude,
		Longitude:    i.Longitude,
		PropertyType: i.PropertyType,
		YearBuilt:    i.YearBuilt,
		SquareFeet:   i.SquareFeet,
		Bedrooms:     i.Bedrooms,
		Bathrooms:    i.Bathrooms,
		LotSize:      i.LotSize,
	}
}
