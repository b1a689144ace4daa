package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/supplier-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/config"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/apierr"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/gen"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/metric"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/middleware"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/http/swagger"
	"github.com/tuanvumaihuynh/supplier-catalog/internal/service"
)

const shutdownTimeout = 5 * time.Second

var tracer = otel.Tracer("internal/http")

// Service serves the catalog API, the feed, the docs and the metrics.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	metrics  *metric.Metrics
	contract *openapi3.T

	productSvc service.ProductService
	feedSvc    service.FeedService
}

type CleanupFunc func(ctx context.Context) error

// New creates the HTTP service. contract is the loaded API contract served
// under /docs when swagger is enabled.
func New(
	cfg config.HTTP,
	log *slog.Logger,
	contract *openapi3.T,
	productSvc service.ProductService,
	feedSvc service.FeedService,
) *Service {
	return &Service{
		cfg:        cfg,
		logger:     log.With(slog.String("service", "http")),
		metrics:    metric.New(),
		contract:   contract,
		productSvc: productSvc,
		feedSvc:    feedSvc,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	router, err := s.Router()
	if err != nil {
		return nil, err
	}
	return s.RunWithServer(ctx, router)
}

// Router builds the complete handler: middlewares, docs, API routes and metrics.
func (s *Service) Router() (chi.Router, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		if err := swagger.Register(r, s.contract); err != nil {
			return nil, fmt.Errorf("register swagger: %w", err)
		}
	}

	s.RegisterHandlers(r)

	return r, nil
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", s.cfg.Port, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      s.cfg.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	s.logger.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger, s.metrics),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(s.cfg.AllowedOrigins),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	strictHandlers := gen.NewStrictHandlerWithOptions(
		s.newHandler(),
		[]gen.StrictMiddlewareFunc{},
		gen.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  s.handleRequestError,
			ResponseErrorHandlerFunc: s.handleResponseError,
		},
	)

	gen.HandlerWithOptions(strictHandlers, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.handleResponseError,
		Middlewares:      []gen.MiddlewareFunc{},
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

// handleRequestError answers bodies the strict handler could not decode.
func (s *Service) handleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	err = apperr.ValidationErr.WithMsg(err.Error()).WrapParent(err)
	s.writeError(w, r, err)
}

// handleResponseError answers parameter binding errors and handler errors.
func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, r, err)
}

func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	level := slog.LevelWarn
	if res.StatusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.Log(r.Context(), level, "http response error",
		slog.Int("status", res.StatusCode),
		slog.String("code", res.Code),
		slog.Any("error", err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

var _ gen.StrictServerInterface = (*handler)(nil)

type handler struct {
	*productHandler
	*feedHandler
}

func (s *Service) newHandler() *handler {
	return &handler{
		productHandler: newProductHandler(s.productSvc),
		feedHandler:    newFeedHandler(s.feedSvc),
	}
}
