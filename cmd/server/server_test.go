package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/enclose/server"
)

func TestStatusRoute(t *testing.T) {
	s := NewServer(server.DefaultConfig())
	go s.GameServer.Loop()
	defer s.GameServer.Shutdown()

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("GET", URI_STATUS, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	st := server.Status{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&st))
	assert.Equal(t, 0, st.Sessions)
	assert.Equal(t, 16, st.MaxSessions)
}

func TestStatusAfterShutdown(t *testing.T) {
	s := NewServer(server.DefaultConfig())
	s.GameServer.Shutdown()

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("GET", URI_STATUS, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPlayRouteRejectsPost(t *testing.T) {
	s := NewServer(server.DefaultConfig())
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("POST", URI_WS, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
