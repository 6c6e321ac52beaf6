package http

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/cmlabs-hris/prms-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/prms-backend-go/internal/service/realtime"
)

// ConnectionHandler drives the realtime bridge: connect, teardown, refresh
// and the mirrored data.
type ConnectionHandler interface {
	State(w http.ResponseWriter, r *http.Request)
	Connect(w http.ResponseWriter, r *http.Request)
	Disconnect(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Data(w http.ResponseWriter, r *http.Request)
}

type connectionHandlerImpl struct {
	mu       sync.Mutex
	teardown func()
}

func NewConnectionHandler() ConnectionHandler {
	return &connectionHandlerImpl{}
}

func (h *connectionHandlerImpl) State(w http.ResponseWriter, r *http.Request) {
	response.Success(w, realtime.MustProvider(r.Context()).State())
}

func (h *connectionHandlerImpl) Connect(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsOrUnauthorized(w, r)
	if !ok {
		return
	}
	p := realtime.MustProvider(r.Context())

	teardown, err := p.Connect(r.Context(), claims.Role)
	if err != nil {
		if clientGone(r) {
			slog.Debug("Connect abandoned by client", "role", claims.Role)
			return
		}
		slog.Warn("Connect failed", "role", claims.Role, "error", err)
		response.HandleError(w, err)
		return
	}

	h.mu.Lock()
	h.teardown = teardown
	h.mu.Unlock()

	response.Created(w, "Connected", p.State())
}

func (h *connectionHandlerImpl) Disconnect(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	teardown := h.teardown
	h.teardown = nil
	h.mu.Unlock()

	if teardown != nil {
		teardown()
	}
	response.SuccessWithMessage(w, "Disconnected", realtime.MustProvider(r.Context()).State())
}

func (h *connectionHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	p := realtime.MustProvider(r.Context())
	if err := p.Refresh(r.Context()); err != nil {
		if clientGone(r) {
			slog.Debug("Refresh abandoned by client")
			return
		}
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Data refreshed", p.State())
}

func (h *connectionHandlerImpl) Data(w http.ResponseWriter, r *http.Request) {
	response.Success(w, realtime.MustProvider(r.Context()).Data())
}
