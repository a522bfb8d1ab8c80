package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rix-app/rix-backend/internal/assets/imagegen"
	"github.com/rix-app/rix-backend/internal/projects/classify"
	"github.com/rix-app/rix-backend/internal/projects/domain"
)

type createReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"type"`
}

// failureResponse maps a workflow error onto an HTTP status and a stable
// machine-readable code. Categories that need operator setup carry a help
// text; everything else keeps the raw message for diagnosis.
func failureResponse(err error) (int, gin.H) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, gin.H{"ok": false, "code": "invalid_input", "error": err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, gin.H{"ok": false, "code": "not_found", "error": "project not found"}
	case errors.Is(err, domain.ErrNoAssets):
		return http.StatusBadGateway, gin.H{"ok": false, "code": "generation_failed", "error": err.Error()}
	}

	var statusErr *imagegen.StatusError
	if errors.As(err, &statusErr) {
		return http.StatusBadGateway, gin.H{"ok": false, "code": "generation_failed", "error": err.Error()}
	}

	switch cat := classify.Classify(err); cat {
	case classify.BucketMissing:
		return http.StatusServiceUnavailable, gin.H{
			"ok": false, "code": cat.String(), "error": err.Error(), "help": classify.Help(cat),
		}
	case classify.TableMissing:
		return http.StatusServiceUnavailable, gin.H{
			"ok": false, "code": cat.String(), "error": err.Error(), "help": classify.Help(cat),
		}
	case classify.AccessDenied:
		return http.StatusForbidden, gin.H{
			"ok": false, "code": cat.String(), "error": err.Error(), "help": classify.Help(cat),
		}
	default:
		return http.StatusInternalServerError, gin.H{"ok": false, "code": "internal", "error": err.Error()}
	}
}
