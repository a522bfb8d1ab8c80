package http

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rix-app/rix-backend/internal/auth"
	"github.com/rix-app/rix-backend/internal/dashboard"
	"github.com/rix-app/rix-backend/internal/projects/domain"
)

// ProjectService is the workflow surface the handlers drive.
type ProjectService interface {
	Create(ctx context.Context, ownerUID, name, description string, kind domain.Kind) (*domain.Project, error)
	List(ctx context.Context, ownerUID string) ([]domain.Project, error)
	Delete(ctx context.Context, ownerUID, projectID string) error
}

type Handler struct {
	svc  ProjectService
	dash *dashboard.Store
}

func NewHandler(svc ProjectService, dash *dashboard.Store) *Handler {
	return &Handler{svc: svc, dash: dash}
}

func (h *Handler) list(c *gin.Context) {
	ownerUID := auth.OwnerUID(c)
	items, err := h.svc.List(c.Request.Context(), ownerUID)
	if err != nil {
		c.JSON(failureResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "code": "invalid_input", "error": "invalid body"})
		return
	}

	ownerUID := auth.OwnerUID(c)
	p, err := h.svc.Create(c.Request.Context(), ownerUID, req.Name, req.Description, domain.Kind(req.Kind))
	if err != nil {
		c.JSON(failureResponse(err))
		return
	}

	h.applyDashboard(c, ownerUID, func(st *dashboard.State) { st.ApplyCreate(*p) })

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	projectID := c.Param("id")
	ownerUID := auth.OwnerUID(c)

	// The UI's confirmation dialog maps to an explicit confirm flag here;
	// unconfirmed deletes are refused.
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "code": "confirm_required", "error": "deletion requires confirm=true"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), ownerUID, projectID); err != nil {
		c.JSON(failureResponse(err))
		return
	}

	h.applyDashboard(c, ownerUID, func(st *dashboard.State) { st.ApplyDelete(projectID) })

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// applyDashboard runs one reconciliation transition against the persisted
// dashboard state. The store operations already succeeded at this point, so a
// state-store hiccup is logged rather than failing the request; the next
// dashboard fetch resynchronizes.
func (h *Handler) applyDashboard(c *gin.Context, ownerUID string, transition func(*dashboard.State)) {
	if h.dash == nil {
		return
	}

	ctx := c.Request.Context()
	st, err := h.dash.Load(ctx, ownerUID)
	if err != nil {
		log.Printf("[projects] dashboard state load failed for %s: %v", ownerUID, err)
		return
	}
	transition(st)
	if err := h.dash.Save(ctx, ownerUID, st); err != nil {
		log.Printf("[projects] dashboard state save failed for %s: %v", ownerUID, err)
	}
}
