package domain

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

var (
	errPercentageOverflow = errors.New("percentage discount must not exceed 100")
	errInvalidWindow      = errors.New("startDate must not be after endDate")
)

type Promotion struct {
	Meta
	Code         string          `json:"code"`
	Description  string          `json:"description,omitempty"`
	DiscountType DiscountType    `json:"discountType"`
	Value        decimal.Decimal `json:"value"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	UsageCount   int             `json:"usageCount"`
	MaxUsage     int             `json:"maxUsage"`
	Active       bool            `json:"active"`
}

func (p *Promotion) Kind() Kind { return KindPromotions }

// Normalize deixa o código sem espaços e em caixa alta, para unicidade case-insensitive
func (p *Promotion) Normalize() {
	p.Code = NormalizePromotionCode(p.Code)
}

func NormalizePromotionCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (p *Promotion) UniqueKey() string { return p.Code }

func (p *Promotion) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Code, validation.Required, validation.Length(3, 32)),
		validation.Field(&p.DiscountType, validation.Required, validation.In(DiscountTypePercentage, DiscountTypeFixed)),
		validation.Field(&p.Value, positive, validation.By(p.checkPercentage)),
		validation.Field(&p.StartDate, validation.Required, dateOnly),
		validation.Field(&p.EndDate, validation.Required, dateOnly, validation.By(p.checkWindow)),
		validation.Field(&p.UsageCount, validation.Min(0)),
		validation.Field(&p.MaxUsage, validation.Min(0)),
	)
}

func (p *Promotion) checkPercentage(interface{}) error {
	if p.DiscountType == DiscountTypePercentage && p.Value.GreaterThan(decimal.NewFromInt(100)) {
		return errPercentageOverflow
	}
	return nil
}

// checkWindow compara as datas como texto: YYYY-MM-DD ordena lexicograficamente
func (p *Promotion) checkWindow(interface{}) error {
	if p.StartDate != "" && p.EndDate != "" && p.StartDate > p.EndDate {
		return errInvalidWindow
	}
	return nil
}

// Exhausted indica se o limite de uso foi atingido (MaxUsage 0 = ilimitado)
func (p *Promotion) Exhausted() bool {
	return p.MaxUsage > 0 && p.UsageCount >= p.MaxUsage
}

func (p *Promotion) Header() []string {
	return []string{"id", "code", "discountType", "value", "startDate", "endDate", "usageCount", "maxUsage", "active"}
}

func (p *Promotion) Row() []string {
	active := "no"
	if p.Active {
		active = "yes"
	}
	return []string{
		p.ID,
		p.Code,
		string(p.DiscountType),
		p.Value.String(),
		p.StartDate,
		p.EndDate,
		itoa(p.UsageCount),
		itoa(p.MaxUsage),
		active,
	}
}
