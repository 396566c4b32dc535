package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
	"github.com/deepaksx/rawabi-workshop-app/internal/service"
)

type sessionStoreStub struct {
	sessions map[int64]*models.Session
	progress []models.EntityProgress
}

func (s *sessionStoreStub) List(ctx context.Context) ([]models.Session, error) {
	result := make([]models.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		result = append(result, *session)
	}
	return result, nil
}

func (s *sessionStoreStub) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	if session, ok := s.sessions[id]; ok {
		return session, nil
	}
	return nil, sql.ErrNoRows
}

func (s *sessionStoreStub) UpdateStatus(ctx context.Context, id int64, status string) (*models.Session, error) {
	if session, ok := s.sessions[id]; ok {
		session.Status = status
		return session, nil
	}
	return nil, sql.ErrNoRows
}

func (s *sessionStoreStub) Progress(ctx context.Context, sessionID int64) ([]models.EntityProgress, error) {
	return s.progress, nil
}

func (s *sessionStoreStub) ExportRows(ctx context.Context, sessionID int64) ([]models.SessionExportRow, error) {
	return nil, nil
}

func newSessionHandler(store *sessionStoreStub) *SessionHandler {
	cache := service.NewCacheService(nil, nil, time.Minute, zap.NewNop(), false)
	svc := service.NewSessionService(store, cache, time.Minute, zap.NewNop())
	return NewSessionHandler(svc)
}

func TestSessionHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSessionHandler(&sessionStoreStub{sessions: map[int64]*models.Session{
		1: {ID: 1, SessionNumber: 1, Name: "Finance Deep Dive", Status: models.SessionStatusNotStarted},
	}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/sessions/1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)

	var session models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "Finance Deep Dive", session.Name)
}

func TestSessionHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSessionHandler(&sessionStoreStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/sessions/99", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionHandlerUpdateStatusInvalid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSessionHandler(&sessionStoreStub{sessions: map[int64]*models.Session{1: {ID: 1}}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPatch, "/sessions/1/status", bytes.NewBufferString(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.UpdateStatus(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionHandlerProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSessionHandler(&sessionStoreStub{progress: []models.EntityProgress{
		{EntityID: 1, EntityCode: "FIN", EntityName: "Finance", TotalQuestions: 4, AnsweredQuestions: 1},
	}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/sessions/1/progress", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Progress(c)
	require.Equal(t, http.StatusOK, w.Code)

	var progress []models.EntityProgress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &progress))
	require.Len(t, progress, 1)
	assert.Equal(t, 25, progress[0].Percentage)
}

func TestSessionHandlerExportBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newSessionHandler(&sessionStoreStub{sessions: map[int64]*models.Session{1: {ID: 1}}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/sessions/1/export?format=xlsx", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Export(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
