// Package storage wraps the S3-compatible object store holding generated
// project images under ownerId/projectId/<filename> paths.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrBucketMissing marks upload failures caused by the destination bucket not
// existing. It needs operator setup, not a retry, so the workflow surfaces it
// separately from generic storage failures.
var ErrBucketMissing = errors.New("storage bucket not found")

// Object is one stored entry under a prefix.
type Object struct {
	Key          string
	LastModified time.Time
}

// ObjectStore is the surface the creation/deletion workflows and the janitor
// need. Put overwrites existing keys.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PublicURL(key string) string
	List(ctx context.Context, prefix string) ([]Object, error)
	Remove(ctx context.Context, keys []string) error
}

// ObjectKey builds the deterministic storage path for one image of a project.
func ObjectKey(ownerUID, projectID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", ownerUID, projectID, filename)
}

// ProjectPrefix is the namespace holding every object a project owns.
func ProjectPrefix(ownerUID, projectID string) string {
	return ownerUID + "/" + projectID + "/"
}

// SplitKey returns the owner and project segments of a stored key, or
// ok=false for keys outside the owner/project/file layout.
func SplitKey(key string) (ownerUID, projectID string, ok bool) {
	parts := strings.SplitN(key, "/", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
