package shopify

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("internal/storage/shopify")
