package parse

import "errors"

// Outcome describes the result of parsing a single argument.
type Outcome uint8

const (
	// OutcomeSuccess means the argument was parsed and a value is present.
	OutcomeSuccess Outcome = iota
	// OutcomeNoQuotationFound means no quoted string was found under the
	// active search mode and quotation filter.
	OutcomeNoQuotationFound
	// OutcomeInvalidForm means the argument was not in the expected form, for
	// example a percentage without a percent sign or with a non-numeric value.
	OutcomeInvalidForm
	// OutcomeCannotBeNegative means a negative value was parsed while
	// negative values were not accepted.
	OutcomeCannotBeNegative
	// OutcomeCannotBeZero means zero was parsed while zero was not accepted.
	OutcomeCannotBeZero
)

var (
	// ErrNoQuotationFound is returned by Outcome.Err for OutcomeNoQuotationFound.
	ErrNoQuotationFound = errors.New("no quoted string found")
	// ErrInvalidForm is returned by Outcome.Err for OutcomeInvalidForm.
	ErrInvalidForm = errors.New("invalid form")
	// ErrCannotBeNegative is returned by Outcome.Err for OutcomeCannotBeNegative.
	ErrCannotBeNegative = errors.New("value cannot be negative")
	// ErrCannotBeZero is returned by Outcome.Err for OutcomeCannotBeZero.
	ErrCannotBeZero = errors.New("value cannot be zero")
)

// String returns a human readable name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNoQuotationFound:
		return "no quotation found"
	case OutcomeInvalidForm:
		return "invalid form"
	case OutcomeCannotBeNegative:
		return "cannot be negative"
	case OutcomeCannotBeZero:
		return "cannot be zero"
	}
	return "unknown"
}

// Err returns the error matching the outcome, or nil for OutcomeSuccess.
func (o Outcome) Err() error {
	switch o {
	case OutcomeSuccess:
		return nil
	case OutcomeNoQuotationFound:
		return ErrNoQuotationFound
	case OutcomeInvalidForm:
		return ErrInvalidForm
	case OutcomeCannotBeNegative:
		return ErrCannotBeNegative
	case OutcomeCannotBeZero:
		return ErrCannotBeZero
	}
	return errors.New("unknown outcome")
}
