package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"queue.service/internal/api/handler"
	"queue.service/internal/server"
	"queue.service/pkg/metrics"
)

// Mount defines all API routes on the server router.
func Mount(srv *server.Server, queueHandler *handler.QueueHandler, gatherer prometheus.Gatherer) {
	r := srv.Router()

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/messages", queueHandler.Send).Methods(http.MethodPost)
	api.HandleFunc("/messages/receive", queueHandler.Receive).Methods(http.MethodPost)
	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	r.Handle("/metrics", metrics.Handler(gatherer)).Methods(http.MethodGet)
}
