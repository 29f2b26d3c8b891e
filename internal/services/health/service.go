package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/storage/db"
)

const pingTimeout = 2 * time.Second

// Report is the health payload served by /healthz.
type Report struct {
	OK     bool              `json:"ok"`
	Checks map[string]string `json:"checks"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB      *sql.DB
	Library *scoring.Library
	Store   string
}

// NewService constructs a new health service.
func NewService(database *sql.DB, lib *scoring.Library, store string) *Service {
	return &Service{DB: database, Library: lib, Store: store}
}

// Status runs the dependency checks. A service without a database reports
// "memory" for it and is still healthy.
func (s *Service) Status(ctx context.Context) Report {
	r := Report{OK: true, Checks: map[string]string{}}

	if s.DB == nil {
		r.Checks["database"] = "memory"
	} else if err := db.Ping(ctx, s.DB, pingTimeout); err != nil {
		r.OK = false
		r.Checks["database"] = err.Error()
	} else {
		r.Checks["database"] = "ok"
	}

	if s.Library == nil {
		r.OK = false
		r.Checks["library"] = "not loaded"
	} else if err := s.Library.Validate(); err != nil {
		r.OK = false
		r.Checks["library"] = err.Error()
	} else {
		r.Checks["library"] = fmt.Sprintf("ok (%d technical, %d soft keywords)",
			len(s.Library.TechnicalKeywords), len(s.Library.SoftKeywords))
	}

	if s.Store != "" {
		r.Checks["objectStore"] = s.Store
	}
	return r
}
