package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Data ISO", input: "2024-01-05", want: "2024-01-05"},
		{name: "Data com espaços", input: " 2024-01-05 ", want: "2024-01-05"},
		{name: "RFC3339 descarta horário", input: "2024-03-10T23:15:00Z", want: "2024-03-10"},
		{name: "Formato americano é rejeitado", input: "01/05/2024", wantErr: true},
		{name: "Data impossível", input: "2024-02-30", wantErr: true},
		{name: "Vazio", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAndParseUSDate(t *testing.T) {
	formatted, err := FormatUSDate("2024-01-08")
	require.NoError(t, err)
	assert.Equal(t, "01/08/2024", formatted)

	parsed, err := ParseUSDate("12/31/2023")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", parsed)

	parsed, err = ParseUSDate("2023-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", parsed)

	_, err = FormatUSDate("not-a-date")
	assert.Error(t, err)
}

func TestGenerateRevision(t *testing.T) {
	first, err := GenerateRevision()
	require.NoError(t, err)
	second, err := GenerateRevision()
	require.NoError(t, err)

	assert.Len(t, first, 10)
	assert.NotEqual(t, first, second)
}
