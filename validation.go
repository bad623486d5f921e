package tracker

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teecush/tracker/date"
)

// Entry is a transaction as typed by a user, before validation.
type Entry struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Investment  float64 `json:"investment" validate:"gte=0"`
	Balance     float64 `json:"totalBalance" validate:"gte=0"`
	AccountType string  `json:"accountType" validate:"required"`
	Notes       string  `json:"notes"`
}

// ValidationError reports the first invalid field of an Entry.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var messages = map[string]string{
	"Date":        "Invalid date format. Please use YYYY-MM-DD",
	"Investment":  "Investment amount cannot be negative",
	"Balance":     "Total balance cannot be negative",
	"AccountType": "Account type is required",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateInput checks a user entry and returns a *ValidationError for the
// first failing field, in field order.
func ValidateInput(e Entry) error {
	e.AccountType = strings.TrimSpace(e.AccountType)
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	field := verrs[0].StructField()
	return &ValidationError{Field: field, Message: messages[field]}
}

// Transaction validates e and converts it into a Transaction in the given currency.
func (e Entry) Transaction(currency string) (Transaction, error) {
	if err := ValidateInput(e); err != nil {
		return Transaction{}, err
	}
	on, err := date.Parse(e.Date)
	if err != nil {
		return Transaction{}, &ValidationError{Field: "Date", Message: messages["Date"]}
	}
	return Transaction{
		Date:        on,
		Investment:  M(e.Investment, currency),
		Balance:     M(e.Balance, currency),
		AccountType: strings.TrimSpace(e.AccountType),
		Notes:       e.Notes,
	}, nil
}
