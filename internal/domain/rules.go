package domain

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// DateLayout é o formato das datas vindas dos formulários (YYYY-MM-DD)
const DateLayout = "2006-01-02"

var (
	errNegativeAmount    = errors.New("must not be negative")
	errNonPositiveAmount = errors.New("must be greater than zero")
)

var (
	// nonNegative valida valores monetários que podem ser zero
	nonNegative = validation.By(func(value interface{}) error {
		if d, ok := value.(decimal.Decimal); ok && d.IsNegative() {
			return errNegativeAmount
		}
		return nil
	})

	// positive valida valores monetários obrigatórios
	positive = validation.By(func(value interface{}) error {
		if d, ok := value.(decimal.Decimal); ok && !d.IsPositive() {
			return errNonPositiveAmount
		}
		return nil
	})

	dateOnly = validation.Date(DateLayout)
)
