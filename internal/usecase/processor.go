package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"profile-engine/internal/domain"
	"profile-engine/internal/model"
)

// PDFRenderer produces a paginated document from a realized HTML view.
// The rasterizer itself is a black box behind this contract.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Processor runs export and deploy as background jobs. Each job has a
// single terminal outcome: completed with an artifact, or failed with a
// message and no partial state, so the caller can simply start another.
// Every run is bounded by the configured timeout; a hung rasterizer
// surfaces as a failed job rather than a stuck in-progress indicator.
type Processor struct {
	renderer PDFRenderer
	html     *HTMLRenderer
	timeout  time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	jobs    map[uuid.UUID]domain.ExportJob
	results map[uuid.UUID][]byte
}

func NewProcessor(renderer PDFRenderer, html *HTMLRenderer, timeout time.Duration, log *zap.Logger) *Processor {
	return &Processor{
		renderer: renderer,
		html:     html,
		timeout:  timeout,
		log:      log.Named("processor"),
		jobs:     map[uuid.UUID]domain.ExportJob{},
		results:  map[uuid.UUID][]byte{},
	}
}

// ExportFileName derives the download name from the profile's name,
// with a literal fallback when blank.
func ExportFileName(pi model.PersonalInfo) string {
	name := pi.FullName
	if name == "" {
		name = "resume"
	}
	return name + ".pdf"
}

// StartExport renders the resume view to PDF in the background and
// returns the pending job immediately.
func (p *Processor) StartExport(sessionID string, view ResumeView) domain.ExportJob {
	job := p.newJob(sessionID, domain.JobExportResume)
	go p.runExport(job.ID, view)
	return job
}

// StartDeploy runs the publish step in the background; on success the
// job carries the public URL.
func (p *Processor) StartDeploy(sessionID string, publish func(ctx context.Context) (string, error)) domain.ExportJob {
	job := p.newJob(sessionID, domain.JobDeploy)
	go p.runDeploy(job.ID, publish)
	return job
}

// Job returns the current state of a job.
func (p *Processor) Job(id uuid.UUID) (domain.ExportJob, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	j, ok := p.jobs[id]
	return j, ok
}

// Result returns the PDF bytes of a completed export job.
func (p *Processor) Result(id uuid.UUID) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.results[id]
	return b, ok
}

func (p *Processor) newJob(sessionID string, kind domain.JobKind) domain.ExportJob {
	now := time.Now()
	job := domain.ExportJob{
		ID:        uuid.New(),
		SessionID: sessionID,
		Kind:      kind,
		Status:    domain.JobPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.mu.Lock()
	p.jobs[job.ID] = job
	p.mu.Unlock()
	return job
}

func (p *Processor) runExport(id uuid.UUID, view ResumeView) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	html, err := p.html.ResumeHTML(view)
	if err != nil {
		p.fail(id, fmt.Errorf("render html: %w", err))
		return
	}

	pdf, err := p.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		p.fail(id, fmt.Errorf("render pdf: %w", err))
		return
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		p.fail(id, fmt.Errorf("invalid PDF output (len=%d)", len(pdf)))
		return
	}

	p.mu.Lock()
	job := p.jobs[id]
	job.Status = domain.JobCompleted
	job.FileName = ExportFileName(view.PersonalInfo)
	job.UpdatedAt = time.Now()
	p.jobs[id] = job
	p.results[id] = pdf
	p.mu.Unlock()
	p.log.Info("export completed", zap.String("job", id.String()), zap.Int("bytes", len(pdf)))
}

func (p *Processor) runDeploy(id uuid.UUID, publish func(ctx context.Context) (string, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	url, err := publish(ctx)
	if err != nil {
		p.fail(id, fmt.Errorf("publish: %w", err))
		return
	}

	p.mu.Lock()
	job := p.jobs[id]
	job.Status = domain.JobCompleted
	job.URL = url
	job.UpdatedAt = time.Now()
	p.jobs[id] = job
	p.mu.Unlock()
	p.log.Info("deploy completed", zap.String("job", id.String()), zap.String("url", url))
}

func (p *Processor) fail(id uuid.UUID, err error) {
	p.mu.Lock()
	job := p.jobs[id]
	job.Status = domain.JobFailed
	job.Error = err.Error()
	job.UpdatedAt = time.Now()
	p.jobs[id] = job
	p.mu.Unlock()
	p.log.Warn("job failed", zap.String("job", id.String()), zap.Error(err))
}
