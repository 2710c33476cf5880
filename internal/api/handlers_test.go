package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewServer(st.SessionRepo())
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func finalized(start time.Time) *game.Session {
	s := game.NewSession()
	s.StartTime = start
	for _, p := range s.Positions {
		for i := 0; i < game.PuttsRequired; i++ {
			p.Record(game.ResultSink, start)
		}
		p.Status = game.StatusSuccess
		p.Completed = true
		p.PositionScore = 3
		p.AccuracyRate = 100
	}
	end := start.Add(15 * time.Minute)
	s.EndTime = &end
	score := s.Score()
	s.FinalScore = &score
	sum := s.BuildSummary()
	s.Summary = &sum
	return s
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestCurrentSessionLifecycle(t *testing.T) {
	s := newTestServer(t)

	// Nothing saved yet: explicit null.
	w := doJSON(t, s, http.MethodGet, "/api/session/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	session := game.NewSession()
	session.Positions[0].Record(game.ResultSink, time.Now())

	w = doJSON(t, s, http.MethodPost, "/api/session/current", session)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/session/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got game.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, session.SessionID, got.SessionID)
	require.Len(t, got.Positions, game.PositionCount)
	assert.Equal(t, 1, got.Positions[0].AttemptsUsed)
	assert.Equal(t, game.ResultSink, got.Positions[0].Putts[0].Result)

	// Clear and verify it no longer loads.
	w = doJSON(t, s, http.MethodDelete, "/api/session/current", map[string]string{"sessionId": session.SessionID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/session/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestSaveCurrentRejectsBadPayload(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/session/current", bytes.NewBufferString("not json"))
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing session ID.
	w = doJSON(t, s, http.MethodPost, "/api/session/current", map[string]any{"positions": []any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearCurrentRequiresSessionID(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodDelete, "/api/session/current", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArchiveAndFetch(t *testing.T) {
	s := newTestServer(t)
	session := finalized(time.Now().Add(-time.Hour))

	w := doJSON(t, s, http.MethodPost, "/api/session/archive", session)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/session/"+session.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got game.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotNil(t, got.FinalScore)
	assert.Equal(t, 27, *got.FinalScore)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 9, got.Summary.SuccessfulPositions)
}

func TestGetUnknownSessionReturns404(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/session/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistory(t *testing.T) {
	s := newTestServer(t)
	base := time.Now().Add(-24 * time.Hour)
	var ids []string
	for i := 0; i < 3; i++ {
		session := finalized(base.Add(time.Duration(i) * time.Hour))
		ids = append(ids, session.SessionID)
		w := doJSON(t, s, http.MethodPost, "/api/session/archive", session)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, s, http.MethodGet, "/api/session/history?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got []*game.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, ids[2], got[0].SessionID, "most recent first")
	assert.Equal(t, ids[1], got[1].SessionID)

	w = doJSON(t, s, http.MethodGet, "/api/session/history?limit=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOldest(t *testing.T) {
	s := newTestServer(t)
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 3; i++ {
		w := doJSON(t, s, http.MethodPost, "/api/session/archive", finalized(base.Add(time.Duration(i)*time.Hour)))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, s, http.MethodDelete, "/api/session/oldest/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp["deleted"])

	w = doJSON(t, s, http.MethodDelete, "/api/session/oldest/zero", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImport(t *testing.T) {
	s := newTestServer(t)
	sessions := []*game.Session{
		finalized(time.Now().Add(-3 * time.Hour)),
		finalized(time.Now().Add(-2 * time.Hour)),
	}

	w := doJSON(t, s, http.MethodPost, "/api/migrate/import", map[string]any{"sessions": sessions})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp["imported"])
	assert.EqualValues(t, 2, resp["total"])

	w = doJSON(t, s, http.MethodGet, "/api/session/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got []*game.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestRoutesDoNotCollide(t *testing.T) {
	// "current", "history" and ":sessionId" share a path segment; make
	// sure the static routes win.
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/session/history", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/session/%s", "missing"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
