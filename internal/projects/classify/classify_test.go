package classify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/rix-app/rix-backend/internal/storage"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{
			name: "nil error",
			err:  nil,
			want: Generic,
		},
		{
			name: "undefined table code",
			err:  &pq.Error{Code: "42P01", Message: `relation "projects" does not exist`},
			want: TableMissing,
		},
		{
			name: "wrapped undefined table code",
			err:  fmt.Errorf("list projects: %w", &pq.Error{Code: "42P01"}),
			want: TableMissing,
		},
		{
			name: "insufficient privilege code",
			err:  &pq.Error{Code: "42501", Message: "permission denied"},
			want: AccessDenied,
		},
		{
			name: "table missing by message",
			err:  errors.New(`could not find the table 'public.projects' in the schema cache`),
			want: TableMissing,
		},
		{
			name: "row level security by message",
			err:  errors.New(`new row violates row-level security policy for table "projects"`),
			want: AccessDenied,
		},
		{
			name: "bucket not found by message",
			err:  errors.New("Bucket not found"),
			want: BucketMissing,
		},
		{
			name: "wrapped store sentinel",
			err:  fmt.Errorf("upload ui_mockup.png: %w", storage.ErrBucketMissing),
			want: BucketMissing,
		},
		{
			name: "unrecognized error",
			err:  errors.New("connection refused"),
			want: Generic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "table_missing", TableMissing.String())
	assert.Equal(t, "access_denied", AccessDenied.String())
	assert.Equal(t, "bucket_missing", BucketMissing.String())
}

func TestHelp(t *testing.T) {
	assert.NotEmpty(t, Help(TableMissing))
	assert.NotEmpty(t, Help(AccessDenied))
	assert.NotEmpty(t, Help(BucketMissing))
	assert.Empty(t, Help(Generic))
}
