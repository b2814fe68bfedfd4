package exporting

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mua-studio-api/internal/domain"
)

func TestToCSV(t *testing.T) {
	members := []*domain.TeamMember{
		{Name: "Rina", Role: "Lead MUA", Specialties: []string{"Bridal", "Hijab"}, Active: true},
		{Name: "Lala, Jr", Role: "Hairdo"},
	}
	members[0].ID = "1"
	members[1].ID = "2"

	out, err := ToCSV(members)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(members[0].Header(), ","), lines[0])
	assert.Contains(t, lines[2], `"Lala, Jr"`, "campos com vírgula são escapados")
}

func TestToCSV_Empty(t *testing.T) {
	out, err := ToCSV([]*domain.Client{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestToReport(t *testing.T) {
	pricelists := []*domain.Pricelist{
		{Title: "Bridal Premium", Category: "Wedding", Price: decimal.NewFromInt(2500000)},
		{Title: "Graduation", Category: "Graduation", Price: decimal.NewFromInt(450000), IsPublic: true},
	}

	out, err := ToReport("Pricelist", pricelists, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	report := string(out)
	assert.True(t, strings.HasPrefix(report, "Pricelist\nGerado em 2024-06-01 08:00, 2 registro(s)"))
	assert.Contains(t, report, "Bridal Premium")
	assert.Contains(t, report, "2500000")
	assert.NotContains(t, report, "\t", "colunas alinhadas com espaços")
}
