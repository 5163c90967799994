package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"profile-engine/internal/domain"
	"profile-engine/internal/model"
)

type fakePDFRenderer struct {
	err error
	out []byte
}

func (f *fakePDFRenderer) RenderHTMLToPDF(_ context.Context, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.out != nil {
		return f.out, nil
	}
	return []byte("%PDF-1.4 fake"), nil
}

func waitJob(t *testing.T, p *Processor, id uuid.UUID) domain.ExportJob {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if job, ok := p.Job(id); ok && job.Status != domain.JobPending {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("job did not finish")
	return domain.ExportJob{}
}

func testProcessor(r PDFRenderer) *Processor {
	return NewProcessor(r, NewHTMLRenderer("../../templates"), 5*time.Second, zap.NewNop())
}

func TestExportCompletes(t *testing.T) {
	p := testProcessor(&fakePDFRenderer{})

	profile := model.EmptyProfile()
	profile.PersonalInfo.FullName = "Jane Doe"
	view := BuildResumeView(profile, model.Customization{})

	job := p.StartExport("s1", view)
	assert.Equal(t, domain.JobPending, job.Status)

	done := waitJob(t, p, job.ID)
	assert.Equal(t, domain.JobCompleted, done.Status)
	assert.Equal(t, "Jane Doe.pdf", done.FileName)

	pdf, ok := p.Result(job.ID)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestExportFileNameFallback(t *testing.T) {
	assert.Equal(t, "resume.pdf", ExportFileName(model.PersonalInfo{}))
	assert.Equal(t, "Jane Doe.pdf", ExportFileName(model.PersonalInfo{FullName: "Jane Doe"}))
}

func TestExportFailureLeavesNoResult(t *testing.T) {
	p := testProcessor(&fakePDFRenderer{err: errors.New("chrome crashed")})

	job := p.StartExport("s1", BuildResumeView(model.EmptyProfile(), model.Customization{}))
	done := waitJob(t, p, job.ID)

	assert.Equal(t, domain.JobFailed, done.Status)
	assert.Contains(t, done.Error, "chrome crashed")
	_, ok := p.Result(job.ID)
	assert.False(t, ok, "failed export keeps no partial artifact")
}

func TestExportRejectsNonPDFOutput(t *testing.T) {
	p := testProcessor(&fakePDFRenderer{out: []byte("<html>not a pdf</html>")})

	job := p.StartExport("s1", BuildResumeView(model.EmptyProfile(), model.Customization{}))
	done := waitJob(t, p, job.ID)
	assert.Equal(t, domain.JobFailed, done.Status)
}

func TestDeployCarriesURL(t *testing.T) {
	p := testProcessor(&fakePDFRenderer{})

	job := p.StartDeploy("s1", func(ctx context.Context) (string, error) {
		return "http://localhost:3000/portfolio/jane-doe", nil
	})
	done := waitJob(t, p, job.ID)
	assert.Equal(t, domain.JobCompleted, done.Status)
	assert.Equal(t, "http://localhost:3000/portfolio/jane-doe", done.URL)
}

func TestDeployFailure(t *testing.T) {
	p := testProcessor(&fakePDFRenderer{})

	job := p.StartDeploy("s1", func(ctx context.Context) (string, error) {
		return "", errors.New("store unavailable")
	})
	done := waitJob(t, p, job.ID)
	assert.Equal(t, domain.JobFailed, done.Status)
	assert.Contains(t, done.Error, "store unavailable")
}

func TestUnknownJob(t *testing.T) {
	p := testProcessor(&fakePDFRenderer{})
	_, ok := p.Job(uuid.New())
	assert.False(t, ok)
}
