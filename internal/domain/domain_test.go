package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewStorageUsage(t *testing.T) {
	tests := []struct {
		name          string
		used          int64
		limit         int64
		expectedLevel StorageLevel
		expectedPct   float64
		available     int64
	}{
		{name: "Abaixo do aviso", used: 799, limit: 1000, expectedLevel: StorageLevelOK, expectedPct: 79.9, available: 201},
		{name: "Exatamente 80%", used: 800, limit: 1000, expectedLevel: StorageLevelWarning, expectedPct: 80, available: 200},
		{name: "Teto atingido", used: 1000, limit: 1000, expectedLevel: StorageLevelCritical, expectedPct: 100, available: 0},
		{name: "Acima do teto", used: 1500, limit: 1000, expectedLevel: StorageLevelCritical, expectedPct: 150, available: 0},
		{name: "Sem teto bloqueia", used: 0, limit: 0, expectedLevel: StorageLevelCritical, expectedPct: 100, available: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage := NewStorageUsage(tt.used, tt.limit)
			assert.Equal(t, tt.expectedLevel, usage.Level)
			assert.InDelta(t, tt.expectedPct, usage.Percentage, 0.001)
			assert.Equal(t, tt.available, usage.AvailableBytes)
		})
	}
}

func TestPromotion_Validate(t *testing.T) {
	valid := func() *Promotion {
		return &Promotion{
			Code:         "WEDDING10",
			DiscountType: DiscountTypePercentage,
			Value:        decimal.NewFromInt(10),
			StartDate:    "2024-01-01",
			EndDate:      "2024-12-31",
			Active:       true,
		}
	}

	tests := []struct {
		name    string
		mutate  func(p *Promotion)
		wantErr bool
	}{
		{name: "Promoção válida", mutate: func(p *Promotion) {}},
		{name: "Percentual acima de 100", mutate: func(p *Promotion) { p.Value = decimal.NewFromInt(120) }, wantErr: true},
		{name: "Valor fixo acima de 100", mutate: func(p *Promotion) {
			p.DiscountType = DiscountTypeFixed
			p.Value = decimal.NewFromInt(50000)
		}},
		{name: "Valor zero", mutate: func(p *Promotion) { p.Value = decimal.Zero }, wantErr: true},
		{name: "Início depois do fim", mutate: func(p *Promotion) { p.StartDate = "2025-01-01" }, wantErr: true},
		{name: "Data fora do formato", mutate: func(p *Promotion) { p.EndDate = "31/12/2024" }, wantErr: true},
		{name: "Tipo desconhecido", mutate: func(p *Promotion) { p.DiscountType = "bogo" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promotion := valid()
			tt.mutate(promotion)

			err := promotion.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPayment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payment Payment
		wantErr bool
	}{
		{name: "Transferência", payment: Payment{Date: "2024-03-01", Amount: decimal.NewFromInt(500000), Method: PaymentMethodTransfer}},
		{name: "Carteira digital", payment: Payment{Date: "2024-03-01", Amount: decimal.NewFromInt(500000), Method: PaymentMethodEWallet}},
		{name: "Sem método informado", payment: Payment{Date: "2024-03-01", Amount: decimal.NewFromInt(500000)}},
		{name: "Método desconhecido", payment: Payment{Date: "2024-03-01", Amount: decimal.NewFromInt(500000), Method: "bitcoin"}, wantErr: true},
		{name: "Valor zero", payment: Payment{Date: "2024-03-01", Amount: decimal.Zero, Method: PaymentMethodCash}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPromotion_Exhausted(t *testing.T) {
	assert.False(t, (&Promotion{UsageCount: 99, MaxUsage: 0}).Exhausted(), "0 é ilimitado")
	assert.False(t, (&Promotion{UsageCount: 2, MaxUsage: 3}).Exhausted())
	assert.True(t, (&Promotion{UsageCount: 3, MaxUsage: 3}).Exhausted())
}

func TestNormalizePromotionCode(t *testing.T) {
	assert.Equal(t, "WEDDING10", NormalizePromotionCode("  wedding10 "))
}

func TestPaymentStatus_Rank(t *testing.T) {
	assert.Less(t, PaymentStatusPending.Rank(), PaymentStatusPartial.Rank())
	assert.Less(t, PaymentStatusPartial.Rank(), PaymentStatusPaid.Rank())
	assert.Equal(t, PaymentStatusPending.Rank(), PaymentStatusOverdue.Rank())
}

func TestSumPayments(t *testing.T) {
	total := SumPayments([]Payment{
		{Amount: decimal.RequireFromString("1000000.50")},
		{Amount: decimal.RequireFromString("250000.25")},
	})
	assert.True(t, decimal.RequireFromString("1250000.75").Equal(total))
	assert.True(t, SumPayments(nil).IsZero())
}
