package experiment

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and that the date range is not inverted.
func Validate(exp *Experiment) error {
	if err := validate.Struct(exp); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	// Layout is fixed-width, so lexical order is chronological order.
	if exp.EndDate < exp.StartDate {
		return fmt.Errorf("%w: endDate %s before startDate %s", ErrInvalidInput, exp.EndDate, exp.StartDate)
	}
	return nil
}
