package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("user-1", "proj-1", "ui_mockup.png")
	assert.Equal(t, "user-1/proj-1/ui_mockup.png", key)
}

func TestProjectPrefix(t *testing.T) {
	assert.Equal(t, "user-1/proj-1/", ProjectPrefix("user-1", "proj-1"))
}

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key       string
		owner     string
		projectID string
		ok        bool
	}{
		{"user-1/proj-1/ui_mockup.png", "user-1", "proj-1", true},
		{"user-1/proj-1/nested/file.png", "user-1", "proj-1", true},
		{"user-1/proj-1/", "", "", false},
		{"user-1/proj-1", "", "", false},
		{"loose-file.png", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		owner, projectID, ok := SplitKey(tt.key)
		assert.Equal(t, tt.ok, ok, "key %q", tt.key)
		assert.Equal(t, tt.owner, owner, "key %q", tt.key)
		assert.Equal(t, tt.projectID, projectID, "key %q", tt.key)
	}
}
