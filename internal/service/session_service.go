package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/deepaksx/rawabi-workshop-app/internal/models"
	appErrors "github.com/deepaksx/rawabi-workshop-app/pkg/errors"
	"github.com/deepaksx/rawabi-workshop-app/pkg/export"
)

type sessionStore interface {
	List(ctx context.Context) ([]models.Session, error)
	GetByID(ctx context.Context, id int64) (*models.Session, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Session, error)
	Progress(ctx context.Context, sessionID int64) ([]models.EntityProgress, error)
	ExportRows(ctx context.Context, sessionID int64) ([]models.SessionExportRow, error)
}

// SessionExport bundles rendered report bytes with download metadata.
type SessionExport struct {
	Content  []byte
	Filename string
	MimeType string
}

// SessionService handles session lifecycle, progress and report export.
type SessionService struct {
	repo        sessionStore
	cache       *CacheService
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
	progressTTL time.Duration
	logger      *zap.Logger
}

// NewSessionService constructs the session service.
func NewSessionService(repo sessionStore, cache *CacheService, progressTTL time.Duration, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		repo:        repo,
		cache:       cache,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
		progressTTL: progressTTL,
		logger:      logger,
	}
}

// List returns all sessions in workshop order.
func (s *SessionService) List(ctx context.Context) ([]models.Session, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}
	if sessions == nil {
		sessions = []models.Session{}
	}
	return sessions, nil
}

// Get returns one session.
func (s *SessionService) Get(ctx context.Context, id int64) (*models.Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	return session, nil
}

// UpdateStatus moves a session through its lifecycle.
func (s *SessionService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Session, error) {
	if !models.ValidSessionStatus(status) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid session status")
	}
	session, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update session status")
	}
	return session, nil
}

// Progress returns per-entity completion for a session. An entity with zero
// questions reports zero percent. Payloads are cached when the cache is
// enabled; answer writes invalidate them.
func (s *SessionService) Progress(ctx context.Context, sessionID int64) ([]models.EntityProgress, error) {
	key := fmt.Sprintf("progress:session:%d", sessionID)
	var cached []models.EntityProgress
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	rows, err := s.repo.Progress(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute progress")
	}
	for i := range rows {
		rows[i].Percentage = completionPercentage(rows[i].AnsweredQuestions, rows[i].TotalQuestions)
	}
	if rows == nil {
		rows = []models.EntityProgress{}
	}
	_ = s.cache.Set(ctx, key, rows, s.progressTTL)
	return rows, nil
}

// Export renders the session's questionnaire with answer state as CSV or PDF.
func (s *SessionService) Export(ctx context.Context, sessionID int64, format string) (*SessionExport, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ExportRows(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load export rows")
	}

	dataset := export.Dataset{
		Headers: []string{"Entity", "Category", "#", "Question", "Status", "Respondent", "Response"},
		Rows:    make([]map[string]string, 0, len(rows)),
	}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Entity":     row.EntityCode,
			"Category":   derefOr(row.CategoryName, "Uncategorized"),
			"#":          fmt.Sprintf("%d", row.QuestionNumber),
			"Question":   row.QuestionText,
			"Status":     derefOr(row.AnswerStatus, "pending"),
			"Respondent": derefOr(row.RespondentName, ""),
			"Response":   derefOr(row.TextResponse, ""),
		})
	}

	base := fmt.Sprintf("session-%d-report", session.ID)
	switch strings.ToLower(format) {
	case "", "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		return &SessionExport{Content: content, Filename: base + ".csv", MimeType: "text/csv"}, nil
	case "pdf":
		content, err := s.pdf.Render(dataset, session.Name)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		return &SessionExport{Content: content, Filename: base + ".pdf", MimeType: "application/pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func completionPercentage(answered, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(answered) * 100 / float64(total)))
}

func derefOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
