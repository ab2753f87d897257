package httpapi

import "net/http"

// NewServer wires a Handler into an http.Server with the configured
// timeouts applied. The caller owns ListenAndServe and Shutdown.
func NewServer(cfg Config, h *Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
