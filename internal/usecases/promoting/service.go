package promoting

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
	"github.com/vfg2006/mua-studio-api/pkg/utils"
)

var (
	ErrPromotionNotFound   = errors.New("promotion not found")
	ErrPromotionInactive   = errors.New("promotion is inactive")
	ErrPromotionNotStarted = errors.New("promotion has not started")
	ErrPromotionExpired    = errors.New("promotion has expired")
	ErrPromotionExhausted  = errors.New("promotion usage limit reached")
	ErrInvalidAmount       = errors.New("amount must not be negative")
)

// PromotionError carrega o código da API junto do motivo da recusa
type PromotionError struct {
	Err  error
	Code string
	// Promotion é o código informado pelo chamador
	Promotion string
}

func (e *PromotionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Promotion, e.Err.Error())
}

func (e *PromotionError) Unwrap() error {
	return e.Err
}

func newPromotionError(err error, code, promotion string) *PromotionError {
	return &PromotionError{Err: err, Code: code, Promotion: promotion}
}

// Quotation é o resultado da aplicação de uma promoção a um valor
type Quotation struct {
	Code      string           `json:"code"`
	Amount    decimal.Decimal  `json:"amount"`
	Discount  decimal.Decimal  `json:"discount"`
	Total     decimal.Decimal  `json:"total"`
	Promotion domain.Promotion `json:"promotion"`
}

type PromotionService interface {
	Quote(code string, amount decimal.Decimal, now time.Time) (*Quotation, error)
	Redeem(code string, amount decimal.Decimal, now time.Time) (*Quotation, error)
}

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) PromotionService {
	return &Service{store: s}
}

// Quote calcula o desconto sem consumir a promoção
func (s *Service) Quote(code string, amount decimal.Decimal, now time.Time) (*Quotation, error) {
	if amount.IsNegative() {
		return nil, newPromotionError(ErrInvalidAmount, apiErrors.ErrInvalidRequest, code)
	}

	promotion, err := s.findByCode(code)
	if err != nil {
		return nil, err
	}

	if err := checkAvailable(promotion, now); err != nil {
		return nil, err
	}

	return quote(promotion, amount), nil
}

// Redeem calcula o desconto e incrementa o contador de uso, de forma atômica
func (s *Service) Redeem(code string, amount decimal.Decimal, now time.Time) (*Quotation, error) {
	if amount.IsNegative() {
		return nil, newPromotionError(ErrInvalidAmount, apiErrors.ErrInvalidRequest, code)
	}

	promotion, err := s.findByCode(code)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.Promotions().Mutate(promotion.ID, func(p *domain.Promotion) error {
		if err := checkAvailable(*p, now); err != nil {
			return err
		}
		p.UsageCount++
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"code":  updated.Code,
		"usage": updated.UsageCount,
	}).Info("Promoção utilizada")

	return quote(updated, amount), nil
}

func (s *Service) findByCode(code string) (domain.Promotion, error) {
	normalized := domain.NormalizePromotionCode(code)

	promotions, err := s.store.Promotions().List()
	if err != nil {
		return domain.Promotion{}, err
	}

	for _, promotion := range promotions {
		if promotion.Code == normalized {
			return promotion, nil
		}
	}

	return domain.Promotion{}, newPromotionError(ErrPromotionNotFound, apiErrors.ErrNotFound, normalized)
}

func checkAvailable(promotion domain.Promotion, now time.Time) error {
	today := utils.FormatDate(now)

	switch {
	case !promotion.Active:
		return newPromotionError(ErrPromotionInactive, apiErrors.ErrPromotionUnavailable, promotion.Code)
	case today < promotion.StartDate:
		return newPromotionError(ErrPromotionNotStarted, apiErrors.ErrPromotionUnavailable, promotion.Code)
	case today > promotion.EndDate:
		return newPromotionError(ErrPromotionExpired, apiErrors.ErrPromotionUnavailable, promotion.Code)
	case promotion.Exhausted():
		return newPromotionError(ErrPromotionExhausted, apiErrors.ErrPromotionUnavailable, promotion.Code)
	}

	return nil
}

// quote aplica o desconto; o desconto nunca passa do valor informado
func quote(promotion domain.Promotion, amount decimal.Decimal) *Quotation {
	discount := promotion.Value
	if promotion.DiscountType == domain.DiscountTypePercentage {
		discount = amount.Mul(promotion.Value).Div(decimal.NewFromInt(100)).Round(2)
	}
	discount = decimal.Min(discount, amount)

	return &Quotation{
		Code:      promotion.Code,
		Amount:    amount,
		Discount:  discount,
		Total:     amount.Sub(discount),
		Promotion: promotion,
	}
}
