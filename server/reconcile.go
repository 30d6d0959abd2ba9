package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/harwood/mediamap/pkg/logger"
	"github.com/harwood/mediamap/pkg/manager"
	"github.com/harwood/mediamap/pkg/reconcile"
	"go.uber.org/zap"
)

type triggerScanResponse struct {
	Accepted bool `json:"accepted"`
}

type itemRequest struct {
	FolderPath string `json:"folderPath"`
}

// TriggerScan starts a reconciliation scan for an instance. Triggering while
// a scan is already running reports accepted=false and changes nothing.
func (s Server) TriggerScan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		instance := mux.Vars(r)["instance"]

		accepted, err := s.manager.StartScan(r.Context(), instance)
		if err != nil {
			if errors.Is(err, manager.ErrInstanceNotFound) {
				http.Error(w, "instance not found", http.StatusNotFound)
				return
			}

			log.Error("failed to start scan", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		status := http.StatusAccepted
		if !accepted {
			status = http.StatusOK
		}

		writeResponse(w, status, GenericResponse{Response: triggerScanResponse{Accepted: accepted}})
	}
}

// GetReconciliation returns the current reconciliation snapshot for an
// instance. Polling is side-effect free.
func (s Server) GetReconciliation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		instance := mux.Vars(r)["instance"]

		state, err := s.manager.GetReconciliationState(r.Context(), instance)
		if err != nil {
			if errors.Is(err, manager.ErrInstanceNotFound) {
				http.Error(w, "instance not found", http.StatusNotFound)
				return
			}

			log.Error("failed to get reconciliation state", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: state})
	}
}

// ConfirmItem imports one reconciliation item under its chosen candidate
func (s Server) ConfirmItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		instance := mux.Vars(r)["instance"]

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var req manager.ConfirmRequest
		if err := json.Unmarshal(b, &req); err != nil {
			log.Debug("invalid confirm request body", zap.ByteString("body", b))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		result, err := s.manager.ConfirmMatch(r.Context(), instance, req)
		if err != nil {
			switch {
			case errors.Is(err, manager.ErrInstanceNotFound):
				http.Error(w, "instance not found", http.StatusNotFound)
			case errors.Is(err, reconcile.ErrItemNotFound):
				http.Error(w, "item not found", http.StatusNotFound)
			default:
				log.Error("failed to confirm item", zap.Error(err))
				writeErrorResponse(w, http.StatusBadRequest, err)
			}
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: result})
	}
}

// SkipItem dismisses one reconciliation item for the current generation
func (s Server) SkipItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		instance := mux.Vars(r)["instance"]

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var req itemRequest
		if err := json.Unmarshal(b, &req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.manager.SkipItem(r.Context(), instance, req.FolderPath); err != nil {
			switch {
			case errors.Is(err, manager.ErrInstanceNotFound):
				http.Error(w, "instance not found", http.StatusNotFound)
			case errors.Is(err, reconcile.ErrItemNotFound):
				http.Error(w, "item not found", http.StatusNotFound)
			default:
				log.Error("failed to skip item", zap.Error(err))
				writeErrorResponse(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

// ConfirmAll imports every currently-matched item under its best match
func (s Server) ConfirmAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		instance := mux.Vars(r)["instance"]

		summary, err := s.manager.ConfirmAllMatched(r.Context(), instance)
		if err != nil {
			if errors.Is(err, manager.ErrInstanceNotFound) {
				http.Error(w, "instance not found", http.StatusNotFound)
				return
			}

			log.Error("failed to confirm matched items", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: summary})
	}
}

// SearchCatalog runs a manual catalog search so a reviewer can pick a
// candidate the automatic match missed
func (s Server) SearchCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		query := r.URL.Query().Get("query")
		if query == "" {
			http.Error(w, "query is required", http.StatusBadRequest)
			return
		}

		var year *int
		if y := r.URL.Query().Get("year"); y != "" {
			parsed, err := strconv.Atoi(y)
			if err != nil {
				http.Error(w, "invalid year", http.StatusBadRequest)
				return
			}
			year = &parsed
		}

		candidates, err := s.manager.SearchCatalog(r.Context(), query, year)
		if err != nil {
			log.Error("catalog search failed", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: candidates})
	}
}
