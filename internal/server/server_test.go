package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/probe-doctor/internal/config"
	"github.com/MKhiriev/probe-doctor/internal/handler"
	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/internal/resolver"
	"github.com/MKhiriev/probe-doctor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(store.NewStorages(10), cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

// runServer starts s in the background and returns a stop func that cancels
// it and waits for RunServer to return.
func runServer(t *testing.T, s Server) func() error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	return func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(10 * time.Second):
			t.Fatal("server did not stop")
			return nil
		}
	}
}

func TestNewServer_NoAddress(t *testing.T) {
	h := newTestHandlers(t, config.Server{Address: "127.0.0.1:0"})

	s, err := NewServer(h, config.Server{}, nil, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{Address: "127.0.0.1:0"}, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.Server{Address: ln.Addr().String()}
	_, err = NewServer(newTestHandlers(t, cfg), cfg, nil, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}

func TestRunServer_ServesAndStops(t *testing.T) {
	cfg := config.Server{Address: "127.0.0.1:0"}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, nil, logger.Nop())
	require.NoError(t, err)

	stop := runServer(t, s)

	resp, err := http.Get(fmt.Sprintf("http://%s/health", s.Addr()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NoError(t, stop())

	_, err = net.DialTimeout("tcp", s.Addr(), time.Second)
	assert.Error(t, err, "listener must be closed after shutdown")
}

// TestRunServer_PublishesEndpoint verifies that the bound port is advertised
// in the workspace while serving and withdrawn afterwards.
func TestRunServer_PublishesEndpoint(t *testing.T) {
	root := t.TempDir()
	cfg := config.Server{Address: "127.0.0.1:0"}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, NewEndpointPublisher(root, nil, logger.Nop()), logger.Nop())
	require.NoError(t, err)

	_, port, err := net.SplitHostPort(s.Addr())
	require.NoError(t, err)

	stop := runServer(t, s)

	portFile := filepath.Join(root, resolver.LegacyPortFileName)
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(portFile)
		return err == nil && string(data) == port
	}, 5*time.Second, 10*time.Millisecond)

	res := resolver.NewDefault(nil, nil, 0, logger.Nop()).Resolve(root)
	assert.Equal(t, "http://localhost:"+port+"/", res.URL)

	require.NoError(t, stop())
	assert.NoFileExists(t, portFile)
	assert.NoFileExists(t, filepath.Join(root, resolver.LegacyConfigFileName))
}

func TestRunServer_PublishFailureReleasesListener(t *testing.T) {
	cfg := config.Server{Address: "127.0.0.1:0"}
	publisher := NewEndpointPublisher(filepath.Join(t.TempDir(), "missing"), nil, logger.Nop())
	s, err := NewServer(newTestHandlers(t, cfg), cfg, publisher, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())

	assert.ErrorIs(t, err, ErrPublishEndpoint)
	_, dialErr := net.DialTimeout("tcp", s.Addr(), time.Second)
	assert.Error(t, dialErr)
}
