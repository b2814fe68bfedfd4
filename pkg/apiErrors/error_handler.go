package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled       = "AUTH_002" // Usuário desativado
	ErrUserNotFound       = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken       = "AUTH_006" // Token inválido
	ErrExpiredToken       = "AUTH_007" // Token expirado
	ErrUserAlreadyExists  = "AUTH_009" // Usuário já existe
	ErrSignUpClosed       = "AUTH_010" // Cadastro fechado após a primeira conta

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrConflict            = "VAL_004" // Chave única já utilizada (número de fatura, código de promoção)

	// Erros de recurso (3000-3999)
	ErrNotFound             = "RES_001" // Entidade não encontrada
	ErrPromotionUnavailable = "RES_002" // Promoção inativa, fora da vigência ou esgotada

	// Erros do servidor (5000-5999)
	ErrInternalServer       = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation    = "SRV_002" // Erro de operação do backend de armazenamento
	ErrStorageQuotaExceeded = "SRV_005" // Teto de armazenamento atingido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:   http.StatusUnauthorized,
	ErrUserDisabled:         http.StatusForbidden,
	ErrUserNotFound:         http.StatusNotFound,
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrExpiredToken:         http.StatusUnauthorized,
	ErrUserAlreadyExists:    http.StatusBadRequest,
	ErrSignUpClosed:         http.StatusForbidden,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrConflict:             http.StatusConflict,
	ErrNotFound:             http.StatusNotFound,
	ErrPromotionUnavailable: http.StatusUnprocessableEntity,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrDatabaseOperation:    http.StatusInternalServerError,
	ErrStorageQuotaExceeded: http.StatusInsufficientStorage,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
