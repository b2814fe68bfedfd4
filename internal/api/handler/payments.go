package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/usecases/billing"
)

// AmountRequest é o corpo dos pagamentos de projetos, agendamentos e faturas
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func RecordClientPayment(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payment domain.Payment
		if !decodeBody(w, r, &payment) {
			return
		}

		client, err := service.RecordClientPayment(pathParam(r, "id"), payment)
		if err != nil {
			handleServiceError(w, err, "Erro ao registrar pagamento do cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func RecordProjectPayment(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AmountRequest
		if !decodeBody(w, r, &req) {
			return
		}

		project, err := service.RecordProjectPayment(pathParam(r, "id"), req.Amount)
		if err != nil {
			handleServiceError(w, err, "Erro ao registrar pagamento do projeto")
			return
		}

		writeJSON(w, http.StatusOK, project)
	}
}

func RecordBookingPayment(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AmountRequest
		if !decodeBody(w, r, &req) {
			return
		}

		booking, err := service.RecordBookingPayment(pathParam(r, "id"), req.Amount)
		if err != nil {
			handleServiceError(w, err, "Erro ao registrar sinal do agendamento")
			return
		}

		writeJSON(w, http.StatusOK, booking)
	}
}

func RecordInvoicePayment(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AmountRequest
		if !decodeBody(w, r, &req) {
			return
		}

		invoice, err := service.RecordInvoicePayment(pathParam(r, "id"), req.Amount)
		if err != nil {
			handleServiceError(w, err, "Erro ao registrar pagamento da fatura")
			return
		}

		writeJSON(w, http.StatusOK, invoice)
	}
}
