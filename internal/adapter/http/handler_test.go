package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"profile-engine/internal/adapter/repository"
	"profile-engine/internal/model"
	"profile-engine/internal/usecase"
)

const testTplDir = "../../../templates"

type fakePDFRenderer struct{}

func (f *fakePDFRenderer) RenderHTMLToPDF(_ context.Context, _ string) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zap.NewNop()
	store := usecase.NewStore()
	editor := usecase.NewEditor(store, log)
	html := usecase.NewHTMLRenderer(testTplDir)
	processor := usecase.NewProcessor(&fakePDFRenderer{}, html, 5*time.Second, log)
	blobs := repository.NewFileStore(t.TempDir())
	registry := repository.NewShareRegistry(blobs, "http://localhost:3000", log)
	prefs := repository.NewPrefsRepo(blobs)

	app := fiber.New()
	h := NewHandler(store, editor, processor, registry, prefs, html, testTplDir, log)
	h.Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestProfileLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/profile", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var p model.Profile
	decode(t, resp, &p)
	assert.Empty(t, p.PersonalInfo.FullName)

	resp = doJSON(t, app, "PUT", "/api/profile", `{"personalInfo":{"fullName":"Jane Doe","email":"jane@example.com"}}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &p)
	assert.Equal(t, "Jane Doe", p.PersonalInfo.FullName)

	resp = doJSON(t, app, "POST", "/api/profile/reset", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &p)
	assert.Empty(t, p.PersonalInfo.FullName)
}

func TestUpdateProfileRejectsBadShape(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, "PUT", "/api/profile", `{"personalInfo":{"fullName":42}}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEntityCRUD(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/profile/education", "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, resp, &created)
	require.NotEmpty(t, created.ID)

	resp = doJSON(t, app, "PATCH", "/api/profile/education/"+created.ID, `{"field":"degree","value":"BSc"}`)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var p model.Profile
	decode(t, doJSON(t, app, "GET", "/api/profile", ""), &p)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "BSc", p.Education[0].Degree)

	resp = doJSON(t, app, "DELETE", "/api/profile/education/"+created.ID, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// operating on a removed id is a 404, not a resurrect
	resp = doJSON(t, app, "PATCH", "/api/profile/education/"+created.ID, `{"field":"degree","value":"MSc"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/profile/hobbies", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestResponsibilityGuard(t *testing.T) {
	app := newTestApp(t)

	var created struct {
		ID string `json:"id"`
	}
	decode(t, doJSON(t, app, "POST", "/api/profile/experience", ""), &created)

	resp := doJSON(t, app, "PATCH", "/api/profile/experience/"+created.ID+"/responsibilities/0", `{"value":"Built X"}`)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// the last line cannot be removed
	resp = doJSON(t, app, "DELETE", "/api/profile/experience/"+created.ID+"/responsibilities/0", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/profile/experience/"+created.ID+"/responsibilities", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, "DELETE", "/api/profile/experience/"+created.ID+"/responsibilities/1", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestRenderResumeView(t *testing.T) {
	app := newTestApp(t)
	doJSON(t, app, "PUT", "/api/profile", `{"personalInfo":{"fullName":"Jane Doe"},"experience":[{"id":"x1","title":"Engineer","company":"Acme","duration":"2020-2022","responsibilities":["Built X"]}]}`)

	var view struct {
		Name     string   `json:"Name"`
		Sections []string `json:"Sections"`
	}
	decode(t, doJSON(t, app, "GET", "/api/render/resume", ""), &view)
	assert.Equal(t, "Jane Doe", view.Name)
	assert.Equal(t, []string{"experience"}, view.Sections)
}

func TestSessionsSeparatedByHeader(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("PUT", "/api/profile", strings.NewReader(`{"personalInfo":{"fullName":"Jane"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "alpha")
	_, err := app.Test(req, -1)
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/api/profile", nil)
	req.Header.Set("X-Session-ID", "beta")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var p model.Profile
	decode(t, resp, &p)
	assert.Empty(t, p.PersonalInfo.FullName)
}

func pollJob(t *testing.T, app *fiber.App, jobID string) map[string]interface{} {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		var job map[string]interface{}
		decode(t, doJSON(t, app, "GET", "/api/export/"+jobID, ""), &job)
		if job["status"] != "pending" {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("job did not finish")
	return nil
}

func TestExportFlow(t *testing.T) {
	app := newTestApp(t)
	doJSON(t, app, "PUT", "/api/profile", `{"personalInfo":{"fullName":"Jane Doe"}}`)

	resp := doJSON(t, app, "POST", "/api/export", "")
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	var started struct {
		JobID string `json:"jobId"`
	}
	decode(t, resp, &started)

	job := pollJob(t, app, started.JobID)
	assert.Equal(t, "completed", job["status"])
	assert.Equal(t, "Jane Doe.pdf", job["fileName"])

	resp = doJSON(t, app, "GET", "/api/export/"+started.JobID+"?download=true", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "Jane Doe.pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestPublishAndPublicPortfolio(t *testing.T) {
	app := newTestApp(t)
	doJSON(t, app, "PUT", "/api/profile", `{"personalInfo":{"fullName":"Jane Doe","email":"jane@example.com"},"skills":[{"id":"s1","category":"Languages","items":["Go"]}]}`)

	resp := doJSON(t, app, "POST", "/api/share", `{"theme":{"primaryColor":"#111111"}}`)
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	var started struct {
		JobID string `json:"jobId"`
	}
	decode(t, resp, &started)

	job := pollJob(t, app, started.JobID)
	require.Equal(t, "completed", job["status"])
	assert.Equal(t, "http://localhost:3000/portfolio/jane-doe", job["url"])

	resp = doJSON(t, app, "GET", "/portfolio/jane-doe", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Jane Doe")
	assert.Contains(t, string(body), "#111111")
}

func TestPublicPortfolioNotFound(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, "GET", "/portfolio/nobody", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Portfolio Not Found")
}

func TestThemePreference(t *testing.T) {
	app := newTestApp(t)

	var pref struct {
		Theme string `json:"theme"`
	}
	decode(t, doJSON(t, app, "GET", "/api/preferences/theme", ""), &pref)
	assert.Equal(t, "light", pref.Theme)

	resp := doJSON(t, app, "PUT", "/api/preferences/theme", `{"theme":"dark"}`)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	decode(t, doJSON(t, app, "GET", "/api/preferences/theme", ""), &pref)
	assert.Equal(t, "dark", pref.Theme)

	resp = doJSON(t, app, "PUT", "/api/preferences/theme", `{"theme":"sepia"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
