package store

import (
	"errors"
	"fmt"

	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
)

// Erros específicos do store
var (
	ErrNotFound              = errors.New("entity not found")
	ErrStorageQuotaExceeded  = errors.New("storage quota exceeded")
	ErrCorruptPersistedState = errors.New("corrupt persisted state")
	ErrValidation            = errors.New("validation failed")
	ErrDuplicate             = errors.New("duplicate unique key")
	ErrBackend               = errors.New("storage backend error")
	ErrGenerateID            = errors.New("error generating identifier")
)

// StoreError é um erro com contexto adicional sobre a coleção e a entidade envolvidas
type StoreError struct {
	Err     error       // Erro base
	Code    string      // Código de erro para API
	Kind    domain.Kind // Coleção envolvida
	ID      string      // ID da entidade envolvida (quando aplicável)
	Details string      // Detalhes adicionais
	Cause   error       // Erro original do backend ou do validador
}

// Error implementa a interface error
func (e *StoreError) Error() string {
	msg := e.Err.Error()
	if e.Kind != "" {
		msg = fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	if e.ID != "" {
		msg = fmt.Sprintf("%s (id=%s)", msg, e.ID)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *StoreError) Unwrap() error {
	return e.Err
}

func newStoreError(err error, code string, kind domain.Kind, id string, details string) *StoreError {
	return &StoreError{
		Err:     err,
		Code:    code,
		Kind:    kind,
		ID:      id,
		Details: details,
	}
}

func notFound(kind domain.Kind, id string) *StoreError {
	return newStoreError(ErrNotFound, apiErrors.ErrNotFound, kind, id, "")
}

func validationFailed(kind domain.Kind, id string, cause error) *StoreError {
	storeErr := newStoreError(ErrValidation, apiErrors.ErrMissingRequiredData, kind, id, cause.Error())
	storeErr.Cause = cause
	return storeErr
}

func backendFailed(kind domain.Kind, cause error) *StoreError {
	storeErr := newStoreError(ErrBackend, apiErrors.ErrDatabaseOperation, kind, "", cause.Error())
	storeErr.Cause = cause
	return storeErr
}

// QuotaError descreve uma gravação recusada por ultrapassar o teto de armazenamento
type QuotaError struct {
	Kind           domain.Kind
	RequiredBytes  int64
	AvailableBytes int64
	LimitBytes     int64
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf(
		"%s: %s: write needs %d bytes but only %d of %d are available; remove entities or shrink images",
		e.Kind, ErrStorageQuotaExceeded, e.RequiredBytes, e.AvailableBytes, e.LimitBytes,
	)
}

func (e *QuotaError) Unwrap() error {
	return ErrStorageQuotaExceeded
}

// Code devolve o código de erro da API
func (e *QuotaError) Code() string {
	return apiErrors.ErrStorageQuotaExceeded
}

// IsNotFound verifica se o erro indica entidade inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation verifica se o erro é de validação de dados do chamador
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrDuplicate)
}

// IsQuotaExceeded verifica se a gravação foi recusada por falta de espaço
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrStorageQuotaExceeded)
}
