package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/d60-Lab/comedor/config"
)

func TestInitDisabled(t *testing.T) {
	shutdown, err := Init(context.Background(), config.TracingConfig{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestProviderExportsSpans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := NewProvider(exp, config.TracingConfig{ServiceName: "comedor-test", SampleRatio: 1})

	_, span := tp.Tracer("test").Start(context.Background(), "upsert")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "upsert", spans[0].Name)

	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "comedor-test", service)
}
