package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/pkg/utils"
)

func TestBuildSlots(t *testing.T) {
	var dump Dump
	raw := `{
		"clients": [{"id": 1717171717171, "name": "Dewi"}],
		"team": [{"id": "m-1", "name": "Rina"}],
		"settings": [{"theme": "dark"}]
	}`
	require.NoError(t, utils.JSON.Unmarshal([]byte(raw), &dump))

	slots, err := buildSlots(dump)
	require.NoError(t, err)

	assert.Len(t, slots, 2, "chave desconhecida ignorada")
	assert.JSONEq(t, `[{"id":"1717171717171","name":"Dewi"}]`, string(slots[domain.KindClients]))
	assert.JSONEq(t, `[{"id":"m-1","name":"Rina"}]`, string(slots[domain.KindTeam]))
}
