package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestDefault(t *testing.T) {
	records := Default()
	require.Len(t, records, 8)

	ids := make(map[int]bool)
	for _, r := range records {
		assert.False(t, ids[r.ID])
		ids[r.ID] = true
		assert.True(t, r.Category.IsValid())
		assert.True(t, r.Region.IsValid())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.hujson")
	content := `[
		// loja de testes
		{"id": 3, "product": "Chair", "date": "2024-01-03", "sales": 2100, "inventory": 18, "category": "Furniture", "region": "West"},
		{"product": "Novel", "date": "2024-03-01", "sales": 20.5, "inventory": 7, "category": "Books", "region": "South",},
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 3, records[0].ID)
	assert.Equal(t, domain.CategoryBooks, records[1].Category)
	assert.Equal(t, 20.5, records[1].Sales)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "inexistente.json"))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"product": "not a list"}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[{`))
	assert.Error(t, err)
}

func TestParse_EmptyList(t *testing.T) {
	records, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestResolve(t *testing.T) {
	records, err := Resolve("", true)
	require.NoError(t, err)
	assert.Len(t, records, 8)

	records, err = Resolve("", false)
	require.NoError(t, err)
	assert.Empty(t, records)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	records, err = Resolve(path, true)
	require.NoError(t, err)
	assert.Empty(t, records, "arquivo informado tem prioridade sobre o padrão")
}
