package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/mua-studio-api/internal/usecases/promoting"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
)

type PromotionRequest struct {
	Code   string          `json:"code"`
	Amount decimal.Decimal `json:"amount"`
}

// QuotePromotion simula o desconto sem consumir a promoção
func QuotePromotion(service promoting.PromotionService) http.HandlerFunc {
	return promotionHandler(service.Quote, "Erro ao calcular promoção")
}

// RedeemPromotion aplica o desconto e consome um uso da promoção
func RedeemPromotion(service promoting.PromotionService) http.HandlerFunc {
	return promotionHandler(service.Redeem, "Erro ao aplicar promoção")
}

func promotionHandler(
	apply func(code string, amount decimal.Decimal, now time.Time) (*promoting.Quotation, error),
	message string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PromotionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código da promoção não informado", nil)
			return
		}

		quotation, err := apply(req.Code, req.Amount, time.Now())
		if err != nil {
			handleServiceError(w, err, message)
			return
		}

		writeJSON(w, http.StatusOK, quotation)
	}
}
