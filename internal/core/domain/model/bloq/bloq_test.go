package bloq_test

import (
	"encoding/json"
	"testing"

	"bloqnet/internal/core/domain/model/bloq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := bloq.New("Luitton Vouis Champs Elysées", "22 Rue du Grenier Saint-Lazare 75003 Paris, France")

	assert.NoError(t, b.ID.Validate())
	assert.Equal(t, "Luitton Vouis Champs Elysées", b.Title)
	assert.Equal(t, "22 Rue du Grenier Saint-Lazare 75003 Paris, France", b.Address)
	assert.True(t, b.ID.IsEqual(b.RecordID()))
}

func TestNew_GeneratesUniqueIDs(t *testing.T) {
	b1 := bloq.New("a", "b")
	b2 := bloq.New("a", "b")

	assert.False(t, b1.ID.IsEqual(b2.ID))
}

func TestBloq_JSONShape(t *testing.T) {
	b := bloq.New("Riod Eixample", "Pg. de Gràcia, 74, 08008 Barcelona, Spain")

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc, 3)
	assert.Equal(t, b.ID.String(), doc["id"])
	assert.Equal(t, b.Title, doc["title"])
	assert.Equal(t, b.Address, doc["address"])
}
