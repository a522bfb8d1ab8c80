package dashboard

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rix-app/rix-backend/internal/auth"
	"github.com/rix-app/rix-backend/internal/projects/classify"
	"github.com/rix-app/rix-backend/internal/projects/domain"
)

// ProjectLister is the fetch surface the dashboard refreshes from.
type ProjectLister interface {
	List(ctx context.Context, ownerUID string) ([]domain.Project, error)
}

type Handler struct {
	svc   ProjectLister
	store *Store
}

func Register(rg *gin.RouterGroup, svc ProjectLister, store *Store) {
	h := &Handler{svc: svc, store: store}

	rg.GET("", h.get)
	rg.POST("/select", h.selectProject)
	rg.POST("/wizard", h.wizard)
}

// get refreshes the dashboard: fetch the owner's rows, fold the outcome into
// the persisted state, and report which view the client should render. Fetch
// failures become a view, never a 5xx, so the client always has a screen.
func (h *Handler) get(c *gin.Context) {
	ownerUID := auth.OwnerUID(c)
	ctx := c.Request.Context()

	st, err := h.store.Load(ctx, ownerUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	projects, fetchErr := h.svc.List(ctx, ownerUID)
	st.ApplyFetch(projects, fetchErr)

	if err := h.store.Save(ctx, ownerUID, st); err != nil {
		log.Printf("[dashboard] state save failed for %s: %v", ownerUID, err)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "dashboard": h.view(st)})
}

type selectReq struct {
	ID string `json:"id"`
}

func (h *Handler) selectProject(c *gin.Context) {
	var req selectReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ownerUID := auth.OwnerUID(c)
	ctx := c.Request.Context()

	st, err := h.store.Load(ctx, ownerUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if err := st.Select(req.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	if err := h.store.Save(ctx, ownerUID, st); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "dashboard": h.view(st)})
}

type wizardReq struct {
	Open bool `json:"open"`
}

func (h *Handler) wizard(c *gin.Context) {
	var req wizardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ownerUID := auth.OwnerUID(c)
	ctx := c.Request.Context()

	st, err := h.store.Load(ctx, ownerUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if req.Open {
		st.OpenWizard()
	} else {
		st.CloseWizard()
	}

	if err := h.store.Save(ctx, ownerUID, st); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "dashboard": h.view(st)})
}

type viewPayload struct {
	View         View             `json:"view"`
	Projects     []domain.Project `json:"projects"`
	SelectedID   string           `json:"selected_id,omitempty"`
	WizardOpen   bool             `json:"wizard_open"`
	ErrorMessage string           `json:"error_message,omitempty"`
	Help         string           `json:"help,omitempty"`
}

func (h *Handler) view(st *State) viewPayload {
	p := viewPayload{
		View:         st.View,
		Projects:     st.Projects,
		SelectedID:   st.SelectedID,
		WizardOpen:   st.WizardOpen,
		ErrorMessage: st.ErrorMessage,
	}
	switch st.View {
	case ViewTableMissing:
		p.Help = classify.Help(classify.TableMissing)
	case ViewAccessDenied:
		p.Help = classify.Help(classify.AccessDenied)
	}
	return p
}
