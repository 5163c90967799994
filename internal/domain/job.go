package domain

import (
	"time"

	"github.com/google/uuid"
)

// Export and publish run as background jobs with a single terminal
// outcome. A job that fails leaves no partial state; the caller just
// starts a new one.

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

type JobKind string

const (
	JobExportResume JobKind = "export_resume"
	JobDeploy       JobKind = "deploy_portfolio"
)

type ExportJob struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"sessionId"`
	Kind      JobKind   `json:"kind"`
	Status    JobStatus `json:"status"`
	// FileName is the suggested download name once completed.
	FileName string `json:"fileName,omitempty"`
	// URL is set for completed deploy jobs.
	URL       string    `json:"url,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
