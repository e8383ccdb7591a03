package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
)

type httpServer struct {
	server *http.Server

	mu       sync.Mutex
	listener net.Listener
}

func newHTTPServer(handler http.Handler, address string) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    address,
			Handler: handler,
		},
	}
}

// RunServer listens and serves until Shutdown. A shutdown is not reported
// as an error.
func (h *httpServer) RunServer() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.listener = listener
	h.mu.Unlock()

	if err = h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// addr is the bound address, or nil before the listener is open.
func (h *httpServer) addr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}
