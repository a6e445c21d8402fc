package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-dashboard/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
)

type StateHandler interface {
	// GetState returns the current store snapshot
	GetState(w http.ResponseWriter, r *http.Request)
}

type stateHandlerImpl struct {
	store *store.Store
}

func NewStateHandler(st *store.Store) StateHandler {
	return &stateHandlerImpl{store: st}
}

// GetState handles GET /state
func (h *stateHandlerImpl) GetState(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Snapshot())
}
