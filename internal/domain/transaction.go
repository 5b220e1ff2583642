package domain

import "github.com/GlebRadaev/betledger/pkg/validate"

func (t *Transaction) Normalize() {
	t.Amount = t.Amount.Round(MoneyPlaces)
}

// Validate checks the amount after rounding; the sign never carries direction.
func (t *Transaction) Validate() error {
	var errs validate.Errors
	if !t.Type.Valid() {
		errs = append(errs, validate.FieldError{Field: "type", Message: "type must be one of: deposit, withdrawal"})
	}
	if !t.Amount.IsPositive() {
		errs = append(errs, validate.FieldError{Field: "amount", Message: "amount must be greater than 0"})
	} else if t.Amount.GreaterThan(MaxMoney) {
		errs = append(errs, exceedsMax("amount"))
	}
	if t.Description == "" {
		errs = append(errs, validate.FieldError{Field: "description", Message: "description is required"})
	}
	if t.Date.IsZero() {
		errs = append(errs, validate.FieldError{Field: "date", Message: "date is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
