package domain

import (
	"github.com/vfg2006/mua-studio-api/pkg/utils"
)

const (
	// StorageWarnPercent é o percentual a partir do qual a UI deve avisar o usuário
	StorageWarnPercent = 80.0
	// StorageBlockPercent é o percentual a partir do qual novas gravações são bloqueadas
	StorageBlockPercent = 100.0
)

type StorageLevel string

const (
	StorageLevelOK       StorageLevel = "ok"
	StorageLevelWarning  StorageLevel = "warning"
	StorageLevelCritical StorageLevel = "critical"
)

// StorageUsage é a estimativa de uso do armazenamento compartilhado por todas as coleções
type StorageUsage struct {
	UsedBytes      int64          `json:"usedBytes"`
	LimitBytes     int64          `json:"limitBytes"`
	Percentage     float64        `json:"percentage"`
	AvailableBytes int64          `json:"availableBytes"`
	Level          StorageLevel   `json:"level"`
	ByKind         map[Kind]int64 `json:"byKind,omitempty"`
}

// NewStorageUsage calcula percentual, bytes disponíveis e nível a partir do uso e do teto
func NewStorageUsage(usedBytes, limitBytes int64) StorageUsage {
	usage := StorageUsage{
		UsedBytes:  usedBytes,
		LimitBytes: limitBytes,
	}

	if limitBytes > 0 {
		usage.Percentage = utils.Round(float64(usedBytes)/float64(limitBytes)*100, 2)
	} else {
		usage.Percentage = StorageBlockPercent
	}

	usage.AvailableBytes = limitBytes - usedBytes
	if usage.AvailableBytes < 0 {
		usage.AvailableBytes = 0
	}

	switch {
	case usage.ShouldBlock():
		usage.Level = StorageLevelCritical
	case usage.ShouldWarn():
		usage.Level = StorageLevelWarning
	default:
		usage.Level = StorageLevelOK
	}

	return usage
}

// ShouldWarn indica uso igual ou acima de 80% do teto. Compara em bytes para não depender do arredondamento do percentual.
func (u StorageUsage) ShouldWarn() bool {
	if u.LimitBytes <= 0 {
		return true
	}
	return float64(u.UsedBytes)*100 >= float64(u.LimitBytes)*StorageWarnPercent
}

// ShouldBlock indica uso igual ou acima do teto
func (u StorageUsage) ShouldBlock() bool {
	return u.LimitBytes <= 0 || u.UsedBytes >= u.LimitBytes
}
