package bootstrap

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/rix-app/rix-backend/internal/api/http"
	apimw "github.com/rix-app/rix-backend/internal/api/http/middleware"
	authmw "github.com/rix-app/rix-backend/internal/auth/middleware"
	"github.com/rix-app/rix-backend/internal/dashboard"
	projecthttp "github.com/rix-app/rix-backend/internal/projects/http"
	"github.com/rix-app/rix-backend/internal/users"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	AllowOrigins []string

	DB        *pgxpool.Pool
	Auth      *fbauth.Client
	// AuthDevMode enables the X-User-Id header fallback when Auth is nil.
	AuthDevMode bool
	Users       *users.Repo
	Projects    projecthttp.ProjectService
	Dashboard   *dashboard.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimw.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: dep.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-Id", "X-User-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(authmw.RequireUser(dep.Auth, dep.Users, dep.AuthDevMode))

	projectHandler := projecthttp.NewHandler(dep.Projects, dep.Dashboard)
	projectHandler.Register(api.Group("/projects"))

	dashboard.Register(api.Group("/dashboard"), dep.Projects, dep.Dashboard)

	return r
}
