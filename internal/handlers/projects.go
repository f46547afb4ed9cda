package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"portfolio.dev/internal/icons"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/render"
	"portfolio.dev/internal/services"
	"portfolio.dev/internal/view"
)

// ProjectHandler handles project pages and project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	sourceGuard    *services.SourceGuard
	table          *icons.Table
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, guard *services.SourceGuard, table *icons.Table, logger *zap.Logger) *ProjectHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectHandler{
		projectService: ps,
		sourceGuard:    guard,
		table:          table,
		logger:         logger,
	}
}

// ShowProject handles GET /projects/{id}
//
// Each request drives a fresh view controller to the requested id, so the
// viewport is reset and the record is loaded exactly once. When no record
// matches, the view stays in its loading state and is served with a 404.
func (h *ProjectHandler) ShowProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	scrolled := false
	controller := view.NewController(h.projectService, view.ScrollFunc(func() { scrolled = true }))
	htmlView := render.NewHTMLView(h.table)
	controller.Subscribe(htmlView.Observe)

	status := http.StatusOK
	if err := controller.Navigate(r.Context(), id); err != nil {
		if !errors.Is(err, services.ErrProjectNotFound) {
			h.logger.Error("failed to load project", zap.String("id", id), zap.Error(err))
			respondError(w, h.logger, http.StatusInternalServerError, "Failed to load project")
			return
		}
		status = http.StatusNotFound
	}

	var title string
	if snap := htmlView.Snapshot(); snap.Project != nil {
		title = snap.Project.Title
	}

	var page templ.Component
	if isHTMXRequest(r) {
		if scrolled {
			triggerAfterSwap(w, scrollTopEvent)
		}
		page = htmlView.Component()
	} else {
		page = render.Page(render.PageTitle(title), scrolled, htmlView.Component())
	}
	templ.Handler(page, templ.WithStatus(status)).ServeHTTP(w, r)
}

// Source handles GET /projects/{id}/source, one activation of the source link.
// Public repositories are redirected to; private ones get the alert dialog.
func (h *ProjectHandler) Source(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			respondError(w, h.logger, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to load project", zap.String("id", id), zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to load project")
		return
	}
	project := models.Normalize(*found)

	dialog := &render.HTMLDialog{}
	if h.sourceGuard.Click(project, dialog) {
		http.Redirect(w, r, string(templ.URL(project.Github)), http.StatusFound)
		return
	}

	if isHTMXRequest(r) {
		templ.Handler(dialog.Component()).ServeHTTP(w, r)
		return
	}
	templ.Handler(render.Page(render.PageTitle(project.Title), false, dialog.Component())).ServeHTTP(w, r)
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list projects", zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to list projects")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			respondError(w, h.logger, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("failed to load project", zap.String("id", id), zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to load project")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}
