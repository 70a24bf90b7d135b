package api_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordshop/internal/api"
	"github.com/mcoot/wordshop/internal/testutil"
)

func TestServerServeAndShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "hello")
	})
	server := api.NewServer(handler, api.DefaultServerConfig(), testutil.NopLogger())

	done := make(chan error, 1)
	go func() { done <- server.Serve(l) }()

	resp, err := http.Get("http://" + l.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "hello", string(body))
	assert.Equal(t, l.Addr().String(), server.Addr())

	require.NoError(t, server.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}

func TestServerAddrBeforeServing(t *testing.T) {
	cfg := api.DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 9000

	server := api.NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger())
	assert.Equal(t, "127.0.0.1:9000", server.Addr())
}
