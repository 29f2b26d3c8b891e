package resumes

import (
	"time"

	"resume-scorer/internal/resume"
)

// Draft is a saved resume owned by a guest identity.
type Draft struct {
	ID        string
	OwnerID   string
	Title     string
	Data      resume.Resume
	CreatedAt time.Time
	UpdatedAt time.Time
}
