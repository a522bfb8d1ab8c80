package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rix-app/rix-backend/internal/auth"
	"github.com/rix-app/rix-backend/internal/projects/domain"
)

type stubLister struct {
	projects []domain.Project
	err      error
}

func (s *stubLister) List(ctx context.Context, ownerUID string) ([]domain.Project, error) {
	return s.projects, s.err
}

func setupDashboardRouter(t *testing.T, svc ProjectLister) (*gin.Engine, *Store) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := NewStore(client)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxOwnerUID, "user-1")
	})
	Register(r.Group("/dashboard"), svc, store)
	return r, store
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type dashResp struct {
	OK        bool        `json:"ok"`
	Dashboard viewPayload `json:"dashboard"`
}

func decodeDash(t *testing.T, rr *httptest.ResponseRecorder) dashResp {
	var resp dashResp
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestDashboardGet(t *testing.T) {
	t.Run("fetch selects the newest project", func(t *testing.T) {
		svc := &stubLister{projects: []domain.Project{
			{ID: "new", OwnerUID: "user-1", CreatedAt: time.Now()},
			{ID: "old", OwnerUID: "user-1", CreatedAt: time.Now().Add(-time.Hour)},
		}}
		r, store := setupDashboardRouter(t, svc)

		rr := do(r, http.MethodGet, "/dashboard", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeDash(t, rr)
		assert.Equal(t, ViewProject, resp.Dashboard.View)
		assert.Equal(t, "new", resp.Dashboard.SelectedID)

		st, err := store.Load(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "new", st.SelectedID)
	})

	t.Run("empty fetch opens the wizard", func(t *testing.T) {
		r, _ := setupDashboardRouter(t, &stubLister{})

		resp := decodeDash(t, do(r, http.MethodGet, "/dashboard", nil))
		assert.Equal(t, ViewWizard, resp.Dashboard.View)
		assert.True(t, resp.Dashboard.WizardOpen)
	})

	t.Run("fetch failure becomes a view not a 5xx", func(t *testing.T) {
		svc := &stubLister{err: &pq.Error{Code: "42P01", Message: `relation "projects" does not exist`}}
		r, _ := setupDashboardRouter(t, svc)

		rr := do(r, http.MethodGet, "/dashboard", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeDash(t, rr)
		assert.Equal(t, ViewTableMissing, resp.Dashboard.View)
		assert.NotEmpty(t, resp.Dashboard.Help)
	})

	t.Run("generic failure carries the message", func(t *testing.T) {
		svc := &stubLister{err: errors.New("connection refused")}
		r, _ := setupDashboardRouter(t, svc)

		resp := decodeDash(t, do(r, http.MethodGet, "/dashboard", nil))
		assert.Equal(t, ViewError, resp.Dashboard.View)
		assert.Equal(t, "connection refused", resp.Dashboard.ErrorMessage)
	})
}

func TestDashboardSelect(t *testing.T) {
	svc := &stubLister{projects: []domain.Project{
		{ID: "a", OwnerUID: "user-1", CreatedAt: time.Now()},
		{ID: "b", OwnerUID: "user-1", CreatedAt: time.Now().Add(-time.Hour)},
	}}
	r, _ := setupDashboardRouter(t, svc)

	// Prime the state with a fetch.
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/dashboard", nil).Code)

	t.Run("selects an existing project", func(t *testing.T) {
		rr := do(r, http.MethodPost, "/dashboard/select", gin.H{"id": "b"})
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeDash(t, rr)
		assert.Equal(t, "b", resp.Dashboard.SelectedID)
		assert.Equal(t, ViewProject, resp.Dashboard.View)
	})

	t.Run("unknown project is a 404", func(t *testing.T) {
		rr := do(r, http.MethodPost, "/dashboard/select", gin.H{"id": "nope"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("empty body is a 400", func(t *testing.T) {
		rr := do(r, http.MethodPost, "/dashboard/select", gin.H{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDashboardWizard(t *testing.T) {
	svc := &stubLister{projects: []domain.Project{
		{ID: "a", OwnerUID: "user-1", CreatedAt: time.Now()},
	}}
	r, _ := setupDashboardRouter(t, svc)
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/dashboard", nil).Code)

	t.Run("open drops the selection", func(t *testing.T) {
		resp := decodeDash(t, do(r, http.MethodPost, "/dashboard/wizard", gin.H{"open": true}))
		assert.Equal(t, ViewWizard, resp.Dashboard.View)
		assert.True(t, resp.Dashboard.WizardOpen)
		assert.Empty(t, resp.Dashboard.SelectedID)
	})

	t.Run("close restores the newest project", func(t *testing.T) {
		resp := decodeDash(t, do(r, http.MethodPost, "/dashboard/wizard", gin.H{"open": false}))
		assert.Equal(t, ViewProject, resp.Dashboard.View)
		assert.Equal(t, "a", resp.Dashboard.SelectedID)
	})
}
