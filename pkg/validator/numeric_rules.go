package validator

import "fmt"

// RequiredNum validates that a numeric value is not the zero value.
func RequiredNum[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			var zero T
			return value != zero
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MinNum validates that a numeric value is at least min.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
		},
	}
}

// MaxNum validates that a numeric value is at most max.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
		},
	}
}
