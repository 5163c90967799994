package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"profile-engine/internal/adapter/repository"
	"profile-engine/internal/domain"
	"profile-engine/internal/model"
	"profile-engine/internal/usecase"
)

type Handler struct {
	store     *usecase.Store
	editor    *usecase.Editor
	processor *usecase.Processor
	registry  *repository.ShareRegistry
	prefs     *repository.PrefsRepo
	html      *usecase.HTMLRenderer
	tplDir    string
	log       *zap.Logger
}

func NewHandler(
	store *usecase.Store,
	editor *usecase.Editor,
	processor *usecase.Processor,
	registry *repository.ShareRegistry,
	prefs *repository.PrefsRepo,
	html *usecase.HTMLRenderer,
	tplDir string,
	log *zap.Logger,
) *Handler {
	return &Handler{
		store:     store,
		editor:    editor,
		processor: processor,
		registry:  registry,
		prefs:     prefs,
		html:      html,
		tplDir:    tplDir,
		log:       log.Named("http"),
	}
}

// Register mounts every route. The public portfolio path is the only
// one expected to work without a session; everything under /api edits
// or reads the caller's own session.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/profile", h.GetProfile)
	api.Put("/profile", h.UpdateProfile)
	api.Post("/profile/reset", h.ResetProfile)

	api.Post("/profile/experience/:id/responsibilities", h.AddResponsibility)
	api.Patch("/profile/experience/:id/responsibilities/:index", h.UpdateResponsibility)
	api.Delete("/profile/experience/:id/responsibilities/:index", h.RemoveResponsibility)

	api.Post("/profile/:collection", h.AddEntity)
	api.Patch("/profile/:collection/:id", h.UpdateEntityField)
	api.Delete("/profile/:collection/:id", h.RemoveEntity)

	api.Get("/render/resume", h.RenderResume)
	api.Get("/render/portfolio", h.RenderPortfolio)

	api.Post("/export", h.StartExport)
	api.Get("/export/:id", h.ExportStatus)

	api.Post("/share", h.PublishShare)
	api.Put("/share/:id/theme", h.UpdateShareTheme)

	api.Get("/preferences/theme", h.GetThemePreference)
	api.Put("/preferences/theme", h.SetThemePreference)

	app.Get("/portfolio/:slug", h.PublicPortfolio)
}

func sessionID(c *fiber.Ctx) string {
	if sid := c.Get("X-Session-ID"); sid != "" {
		return sid
	}
	return "default"
}

// editErr maps editor errors onto HTTP statuses.
func editErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, domain.ErrLastResponsibility),
		errors.Is(err, domain.ErrUnknownCollection),
		errors.Is(err, domain.ErrUnknownField):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	return c.JSON(h.store.Profile(sessionID(c)))
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	// validate shape first; the store itself accepts anything
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidatePartial(h.tplDir, raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var partial usecase.PartialProfile
	if err := c.BodyParser(&partial); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.Update(sessionID(c), partial)
	return c.JSON(h.store.Profile(sessionID(c)))
}

func (h *Handler) ResetProfile(c *fiber.Ctx) error {
	h.store.Reset(sessionID(c))
	return c.JSON(h.store.Profile(sessionID(c)))
}

func (h *Handler) AddEntity(c *fiber.Ctx) error {
	id, err := h.editor.Add(sessionID(c), c.Params("collection"))
	if err != nil {
		return editErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

type updateFieldReq struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *Handler) UpdateEntityField(c *fiber.Ctx) error {
	var req updateFieldReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.editor.UpdateField(sessionID(c), c.Params("collection"), c.Params("id"), req.Field, req.Value); err != nil {
		return editErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveEntity(c *fiber.Ctx) error {
	if err := h.editor.Remove(sessionID(c), c.Params("collection"), c.Params("id")); err != nil {
		return editErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddResponsibility(c *fiber.Ctx) error {
	if err := h.editor.AddResponsibility(sessionID(c), c.Params("id")); err != nil {
		return editErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type valueReq struct {
	Value string `json:"value"`
}

func (h *Handler) UpdateResponsibility(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	var req valueReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.editor.UpdateResponsibility(sessionID(c), c.Params("id"), index, req.Value); err != nil {
		return editErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveResponsibility(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	if err := h.editor.RemoveResponsibility(sessionID(c), c.Params("id"), index); err != nil {
		return editErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func customizationFromQuery(c *fiber.Ctx) model.Customization {
	return model.Customization{
		PrimaryColor:   c.Query("primaryColor"),
		SecondaryColor: c.Query("secondaryColor"),
		FontSize:       c.Query("fontSize"),
		FontFamily:     c.Query("fontFamily"),
	}
}

func themeFromQuery(c *fiber.Ctx) model.Theme {
	return model.Theme{
		PrimaryColor:   c.Query("primaryColor"),
		SecondaryColor: c.Query("secondaryColor"),
		AccentColor:    c.Query("accentColor"),
	}
}

func (h *Handler) RenderResume(c *fiber.Ctx) error {
	profile := h.store.Profile(sessionID(c))
	view := usecase.BuildResumeView(profile, customizationFromQuery(c))
	if c.Query("format") == "html" {
		html, err := h.html.ResumeHTML(view)
		if err != nil {
			h.log.Error("resume render failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
		}
		c.Type("html")
		return c.SendString(html)
	}
	return c.JSON(view)
}

func (h *Handler) RenderPortfolio(c *fiber.Ctx) error {
	profile := h.store.Profile(sessionID(c))
	view := usecase.BuildPortfolioView(profile, themeFromQuery(c))
	if c.Query("format") == "html" {
		html, err := h.html.PortfolioHTML(view)
		if err != nil {
			h.log.Error("portfolio render failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
		}
		c.Type("html")
		return c.SendString(html)
	}
	return c.JSON(view)
}

type exportReq struct {
	Customization model.Customization `json:"customization"`
}

func (h *Handler) StartExport(c *fiber.Ctx) error {
	var req exportReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
	}
	sid := sessionID(c)
	view := usecase.BuildResumeView(h.store.Profile(sid), req.Customization)
	job := h.processor.StartExport(sid, view)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": job.ID.String(), "status": job.Status})
}

func (h *Handler) ExportStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job id"})
	}
	job, ok := h.processor.Job(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	if job.Status == domain.JobCompleted && job.Kind == domain.JobExportResume && c.QueryBool("download") {
		pdf, ok := h.processor.Result(id)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+job.FileName+`"`)
		c.Type("pdf")
		return c.Send(pdf)
	}
	return c.JSON(job)
}

type publishReq struct {
	Theme model.Theme `json:"theme"`
}

func (h *Handler) PublishShare(c *fiber.Ctx) error {
	var req publishReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
	}
	sid := sessionID(c)
	profile := h.store.Profile(sid)
	job := h.processor.StartDeploy(sid, func(ctx context.Context) (string, error) {
		_, url, err := h.registry.Publish(ctx, sid, profile, req.Theme)
		return url, err
	})
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": job.ID.String(), "status": job.Status})
}

func (h *Handler) UpdateShareTheme(c *fiber.Ctx) error {
	var req publishReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.registry.UpdateTheme(c.Context(), c.Params("id"), req.Theme); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		h.log.Error("theme update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) GetThemePreference(c *fiber.Ctx) error {
	pref, err := h.prefs.ThemePreference(c.Context())
	if err != nil {
		h.log.Error("read theme preference failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"theme": pref})
}

func (h *Handler) SetThemePreference(c *fiber.Ctx) error {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.prefs.SetThemePreference(c.Context(), req.Theme); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PublicPortfolio serves a published snapshot by slug to anonymous
// visitors. An unknown slug is a normal outcome and gets a distinct
// not-found page, not an error response body.
func (h *Handler) PublicPortfolio(c *fiber.Ctx) error {
	record, err := h.registry.Resolve(c.Context(), c.Params("slug"))
	if errors.Is(err, domain.ErrNotFound) {
		c.Type("html")
		return c.Status(fiber.StatusNotFound).SendString(notFoundPage)
	}
	if err != nil {
		h.log.Error("slug resolve failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("internal error")
	}

	view := usecase.BuildPortfolioView(record.ResumeData, record.Theme)
	html, err := h.html.PortfolioHTML(view)
	if err != nil {
		h.log.Error("portfolio render failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("internal error")
	}
	c.Type("html")
	return c.SendString(html)
}

const notFoundPage = `<!DOCTYPE html>
<html>
<head><title>Portfolio Not Found</title></head>
<body>
<h1>Portfolio Not Found</h1>
<p>No published portfolio exists at this address. It may have been shared with a different link.</p>
</body>
</html>`
