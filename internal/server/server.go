package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
	"go.uber.org/zap"

	"github.com/dgnsrekt/match-relay/api"
	"github.com/dgnsrekt/match-relay/internal/api/generated"
)

const (
	// Upper bound for publish bodies.
	maxBodyBytes = 4 << 20

	streamLinksPrefix = "/stream_links/"
)

// NewRouter builds the HTTP surface: the validated REST routes, the
// WebSocket endpoint and the unvalidated operational routes.
func NewRouter(server *Server, logger *zap.Logger) (http.Handler, error) {
	// Load OpenAPI spec for validation
	swagger, err := generated.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("loading openapi spec: %w", err)
	}
	swagger.Servers = nil // Allow any host

	gzip, err := gzhttp.NewWrapper(gzhttp.MinSize(512))
	if err != nil {
		return nil, fmt.Errorf("creating gzip wrapper: %w", err)
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(watchIDSlashMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(zapLoggerMiddleware(logger))

	// Non-validated routes
	r.Get("/openapi.yaml", openapiHandler)
	if server.hub != nil {
		r.Get("/ws", server.hub.ServeWS)
	}

	// API routes with OpenAPI validation. Bodies are left to the JSON
	// decoder so publishers are not held to a Content-Type; the validator
	// covers routing and path parameters.
	r.Group(func(apiRouter chi.Router) {
		apiRouter.Use(func(next http.Handler) http.Handler { return gzip(next) })
		apiRouter.Use(server.routeAccessMiddleware)
		apiRouter.Use(maxBodyMiddleware)
		apiRouter.Use(oapimiddleware.OapiRequestValidatorWithOptions(swagger, &oapimiddleware.Options{
			ErrorHandler: detailErrorHandler,
			Options: openapi3filter.Options{
				ExcludeRequestBody: true,
			},
		}))

		strictHandler := generated.NewStrictHandlerWithOptions(server, nil, generated.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  server.requestErrorHandler,
			ResponseErrorHandlerFunc: server.responseErrorHandler,
		})
		generated.HandlerFromMux(strictHandler, apiRouter)
	})

	return r, nil
}

// watchIDSlashMiddleware lets a watch id span several path segments by
// escaping its slashes before routing, so /stream_links/a/b and
// /stream_links/a%2Fb both address the id "a/b".
func watchIDSlashMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := strings.CutPrefix(r.URL.Path, streamLinksPrefix); ok && strings.Contains(id, "/") {
			r.URL.RawPath = streamLinksPrefix + url.PathEscape(id)
		}
		next.ServeHTTP(w, r)
	})
}

func maxBodyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func zapLoggerMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("requestID", middleware.GetReqID(r.Context())),
			)
			next.ServeHTTP(w, r)
		})
	}
}

func openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(api.OpenAPISpec)
}
