package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/harwood/mediamap/pkg/manager"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *error `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies for the reconciliation api to work such as
// loggers, the manager, configurations, etc.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.MediaManager
}

// New creates a new reconciliation server
func New(logger *zap.SugaredLogger, manager manager.MediaManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: &err,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(),
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Handler builds the full route table
func (s Server) Handler() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/search", s.SearchCatalog()).Methods(http.MethodGet)

	instances := v1.PathPrefix("/instances/{instance}").Subrouter()
	instances.HandleFunc("/scan", s.TriggerScan()).Methods(http.MethodPost)
	instances.HandleFunc("/reconciliation", s.GetReconciliation()).Methods(http.MethodGet)
	instances.HandleFunc("/items/confirm", s.ConfirmItem()).Methods(http.MethodPost)
	instances.HandleFunc("/items/skip", s.SkipItem()).Methods(http.MethodPost)
	instances.HandleFunc("/confirm-all", s.ConfirmAll()).Methods(http.MethodPost)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
