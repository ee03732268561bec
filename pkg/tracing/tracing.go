package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/d60-Lab/comedor/config"
	"github.com/d60-Lab/comedor/pkg/logger"
)

// ShutdownFunc 刷新并关闭 tracer provider
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init 配置全局 tracer provider；未启用时什么也不做
func Init(ctx context.Context, cfg config.TracingConfig) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	tp := NewProvider(exp, cfg)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	logger.Info("tracing enabled", zap.String("endpoint", cfg.Endpoint), zap.Float64("sample_ratio", cfg.SampleRatio))
	return tp.Shutdown, nil
}

// NewProvider 用给定 exporter 构建 provider
func NewProvider(exp sdktrace.SpanExporter, cfg config.TracingConfig) *sdktrace.TracerProvider {
	ratio := cfg.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}
	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
}
