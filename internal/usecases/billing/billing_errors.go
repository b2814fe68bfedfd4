package billing

import (
	"errors"
	"fmt"
)

// Erros específicos de cobrança
var (
	ErrInvalidPayment     = errors.New("invalid payment")
	ErrUnsupportedKind    = errors.New("kind has no payment state")
	ErrPaymentNotPositive = errors.New("payment amount must be positive")
)

// BillingError é um erro com contexto adicional para cobranças
type BillingError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntityID string // Entidade envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *BillingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BillingError) Unwrap() error {
	return e.Err
}

func NewBillingError(err error, code string, entityID string, details string) *BillingError {
	return &BillingError{
		Err:      err,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}
