package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContextWritesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	SetupTestLogger(&buf)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("mensagem de teste")

	assert.Contains(t, buf.String(), id)
	assert.Contains(t, buf.String(), "mensagem de teste")
}

func TestDevelopmentFieldFiltering(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	SetupTestLogger(&buf)

	L.WithFields(Fields{
		"record_id":  7,
		"user_agent": "curl",
	}).Info("filtrado")

	out := buf.String()
	assert.Contains(t, out, "record_id=7")
	assert.NotContains(t, out, "user_agent")
}

func TestProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	SetupTestLogger(&buf)

	L.WithField("user_agent", "curl").Info("completo")
	assert.Contains(t, buf.String(), "user_agent=curl")
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	require.NoError(t, Setup("debug", "text"))
	assert.Error(t, Setup("barulhento", "json"))
}
