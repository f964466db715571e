package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesFilteredCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "vendas.csv")

	err := run([]string{"--region", "North,South", "--filter", "highSales", "--sort", "sales", "--direction", "desc", "--out", out}, &bytes.Buffer{})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)

	want := "product,date,sales,inventory,category,region\n" +
		"Standing Desk,01/08/2024,1800,15,Furniture,South\n" +
		"Laptop XZ-2000,01/01/2024,1500,32,Electronics,North\n" +
		"Office Desk,01/05/2024,1200,24,Furniture,North\n"
	assert.Equal(t, want, string(content))
}

func TestRun_Stdout(t *testing.T) {
	var stdout bytes.Buffer

	err := run([]string{"--seed-default=false", "--out", "-"}, &stdout)
	require.NoError(t, err)
	assert.Equal(t, "product,date,sales,inventory,category,region\n", stdout.String())
}

func TestRun_AppliedView(t *testing.T) {
	var stdout bytes.Buffer

	require.NoError(t, run([]string{"--applied", "--out", "-"}, &stdout))
	assert.Equal(t, "product,date,sales,inventory,category,region\n", stdout.String(), "sem seleção a visão aplicada fica vazia")

	stdout.Reset()
	require.NoError(t, run([]string{"--applied", "--category", "Appliances", "--out", "-"}, &stdout))
	assert.Equal(t, "product,date,sales,inventory,category,region\nCoffee Maker,01/06/2024,600,38,Appliances,East\n", stdout.String())
}

func TestRun_Summary(t *testing.T) {
	var stdout bytes.Buffer

	require.NoError(t, run([]string{"--summary"}, &stdout))
	assert.Contains(t, stdout.String(), "Total de vendas:  9300.00")
	assert.Contains(t, stdout.String(), "Mais vendido:     Ergonomic Chair")
	assert.Contains(t, stdout.String(), "Desempenho:       no-change")
}

func TestRun_InvalidFlags(t *testing.T) {
	assert.Error(t, run([]string{"--filter", "top"}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"--category", "Toys"}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"--seed-file", filepath.Join(t.TempDir(), "nada.json")}, &bytes.Buffer{}))
}
