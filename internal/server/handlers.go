package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/dgnsrekt/match-relay/internal/api/generated"
	"github.com/dgnsrekt/match-relay/internal/config"
	"github.com/dgnsrekt/match-relay/internal/data"
	"github.com/dgnsrekt/match-relay/internal/relay"
	"github.com/dgnsrekt/match-relay/internal/route"
	"github.com/dgnsrekt/match-relay/internal/ws"
)

const (
	detailNoMatches     = "no match data found"
	detailNoStreamLinks = "no stream links found for this match"
	detailTimeout       = "timed out waiting for data"
)

// Server implements generated.StrictServerInterface
type Server struct {
	relay   *relay.Service
	tracker *route.Tracker
	hub     *ws.Hub // nil when WebSocket is disabled
	config  *config.ServerConfig
	logger  *zap.Logger
}

// Ensure Server implements StrictServerInterface
var _ generated.StrictServerInterface = (*Server)(nil)

func NewServer(svc *relay.Service, tracker *route.Tracker, hub *ws.Hub, cfg *config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		relay:   svc,
		tracker: tracker,
		hub:     hub,
		config:  cfg,
		logger:  logger,
	}
}

// routeAccessMiddleware records the accessed path and notifies every
// subscriber before the request is validated or any wait begins.
func (s *Server) routeAccessMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		id := s.tracker.Record(path)

		s.logger.Info("route accessed",
			zap.String("path", path),
			zap.String("correlationID", id),
		)

		if s.hub != nil {
			delivered := s.hub.Broadcast(ws.RouteAccessed(id, path))
			s.logger.Debug("route notification sent",
				zap.String("correlationID", id),
				zap.Int("delivered", delivered),
			)
		}

		next.ServeHTTP(w, r)
	})
}

// GetMatches implements GET /matches
func (s *Server) GetMatches(ctx context.Context, request generated.GetMatchesRequestObject) (generated.GetMatchesResponseObject, error) {
	matches, err := s.relay.ReadMatches(ctx)
	switch {
	case errors.Is(err, relay.ErrNotFound):
		return generated.GetMatches404JSONResponse{NotFoundJSONResponse: generated.NotFoundJSONResponse{Detail: detailNoMatches}}, nil
	case errors.Is(err, relay.ErrTimeout):
		s.logger.Warn("read timed out", zap.String("path", "/matches"))
		return generated.GetMatches504JSONResponse{TimeoutJSONResponse: generated.TimeoutJSONResponse{Detail: detailTimeout}}, nil
	case err != nil:
		return nil, err
	}
	return generated.GetMatches200JSONResponse(data.MatchesPayload{Matches: matches}), nil
}

// PostMatches implements POST /matches
func (s *Server) PostMatches(ctx context.Context, request generated.PostMatchesRequestObject) (generated.PostMatchesResponseObject, error) {
	if request.Body == nil {
		return generated.PostMatches400JSONResponse{PublishStatusJSONResponse: generated.PublishStatusJSONResponse{
			Status:  "error",
			Message: "request body is required",
		}}, nil
	}

	count := s.relay.PublishMatches(request.Body.Matches)
	return generated.PostMatches200JSONResponse{PublishStatusJSONResponse: generated.PublishStatusJSONResponse{
		Status:  "success",
		Message: fmt.Sprintf("%d matches stored", count),
	}}, nil
}

// GetAdmins implements GET /admins
func (s *Server) GetAdmins(ctx context.Context, request generated.GetAdminsRequestObject) (generated.GetAdminsResponseObject, error) {
	return generated.GetAdmins200JSONResponse{Route: "/admins"}, nil
}

// rawStreamLinks writes a stored payload back byte for byte.
type rawStreamLinks data.StreamLinks

func (response rawStreamLinks) VisitGetStreamLinksResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(response)
	return err
}

// GetStreamLinks implements GET /stream_links/{watch_id}
func (s *Server) GetStreamLinks(ctx context.Context, request generated.GetStreamLinksRequestObject) (generated.GetStreamLinksResponseObject, error) {
	payload, err := s.relay.ReadStreamLinks(ctx, request.WatchId)
	switch {
	case errors.Is(err, relay.ErrNotFound):
		return generated.GetStreamLinks404JSONResponse{NotFoundJSONResponse: generated.NotFoundJSONResponse{Detail: detailNoStreamLinks}}, nil
	case errors.Is(err, relay.ErrTimeout):
		s.logger.Warn("read timed out", zap.String("watchID", request.WatchId))
		return generated.GetStreamLinks504JSONResponse{TimeoutJSONResponse: generated.TimeoutJSONResponse{Detail: detailTimeout}}, nil
	case err != nil:
		return nil, err
	}
	return rawStreamLinks(payload), nil
}

// PostStreamLinks implements POST /stream_links/{watch_id}
func (s *Server) PostStreamLinks(ctx context.Context, request generated.PostStreamLinksRequestObject) (generated.PostStreamLinksResponseObject, error) {
	if request.Body == nil {
		return generated.PostStreamLinks400JSONResponse{BadRequestJSONResponse: generated.BadRequestJSONResponse{
			Detail: "invalid request body: request body is required",
		}}, nil
	}

	s.relay.PublishStreamLinks(request.WatchId, *request.Body)
	return generated.PostStreamLinks200JSONResponse{PublishStatusJSONResponse: generated.PublishStatusJSONResponse{
		Status:  "success",
		Message: "data received and stored",
	}}, nil
}

// GetHealth implements GET /health
func (s *Server) GetHealth(ctx context.Context, request generated.GetHealthRequestObject) (generated.GetHealthResponseObject, error) {
	st := s.relay.Status()
	resp := generated.GetHealth200JSONResponse{
		Status:             "ok",
		MatchesAvailable:   st.MatchesAvailable,
		MatchCount:         st.MatchCount,
		StreamLinks:        st.StreamLinks,
		WatchIds:           s.relay.StreamLinkKeys(),
		StreamLinkWaitMode: string(st.WaitMode),
		WsEnabled:          s.config.WSEnabled,
	}
	if path := s.tracker.LastPath(); path != "" {
		resp.LastRoute = &path
	}
	if s.hub != nil {
		resp.Subscribers = s.hub.Count()
	}
	return resp, nil
}
