// Package service orchestrates the project lifecycle: asset generation,
// image upload, the single row insert, and the storage-first delete.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rix-app/rix-backend/internal/assets"
	"github.com/rix-app/rix-backend/internal/projects/domain"
	"github.com/rix-app/rix-backend/internal/storage"
)

// Fixed per-field object filenames; paths are ownerUID/projectID/<filename>.
const (
	fileUIMockup     = "ui_mockup.png"
	fileArchitecture = "architecture.png"
	fileSchematics   = "schematics.png"
)

// AssetGenerator produces the kind-specific artifact bundle. A nil bundle
// with a nil error means the generator returned no data.
type AssetGenerator interface {
	Software(ctx context.Context, description string) (*domain.SoftwareDetails, error)
	Hardware(ctx context.Context, description string) (*domain.HardwareDetails, error)
}

// ProjectStore is the row-store surface the workflow needs.
type ProjectStore interface {
	Insert(ctx context.Context, p *domain.Project) error
	ListByOwner(ctx context.Context, ownerUID string) ([]domain.Project, error)
	Delete(ctx context.Context, ownerUID, projectID string) (bool, error)
}

type ProjectService struct {
	repo  ProjectStore
	store storage.ObjectStore
	gen   AssetGenerator

	now   func() time.Time
	newID func() string
}

func New(repo ProjectStore, store storage.ObjectStore, gen AssetGenerator) *ProjectService {
	return &ProjectService{
		repo:  repo,
		store: store,
		gen:   gen,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create runs the full creation workflow: generate the bundle, upload freshly
// generated images, rewrite their in-memory references to stored URLs, then
// insert exactly one row carrying the client-assigned id. Any failure before
// the insert aborts with zero rows; objects uploaded before the failure are
// left for the janitor.
func (s *ProjectService) Create(ctx context.Context, ownerUID, name, description string, kind domain.Kind) (*domain.Project, error) {
	ownerUID = strings.TrimSpace(ownerUID)
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	switch {
	case ownerUID == "":
		return nil, fmt.Errorf("%w: owner required", domain.ErrInvalidInput)
	case name == "":
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	case description == "":
		return nil, fmt.Errorf("%w: description required", domain.ErrInvalidInput)
	case !kind.Valid():
		return nil, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidInput, kind)
	}

	resources, err := s.generate(ctx, description, kind)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		return nil, domain.ErrNoAssets
	}

	projectID := s.newID()

	if err := s.uploadImages(ctx, ownerUID, projectID, resources); err != nil {
		return nil, err
	}

	p := &domain.Project{
		ID:          projectID,
		OwnerUID:    ownerUID,
		Name:        name,
		Description: description,
		Kind:        kind,
		CreatedAt:   s.now().UTC(),
		Resources:   resources,
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (s *ProjectService) generate(ctx context.Context, description string, kind domain.Kind) (*domain.Resources, error) {
	switch kind {
	case domain.KindSoftware:
		d, err := s.gen.Software(ctx, description)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, nil
		}
		return &domain.Resources{Software: d}, nil
	default:
		d, err := s.gen.Hardware(ctx, description)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, nil
		}
		return &domain.Resources{Hardware: d}, nil
	}
}

// uploadImages pushes every freshly generated image of the bundle to object
// storage concurrently and substitutes the public URLs in place. Fields that
// already hold a stored URL are passed through without a store call.
func (s *ProjectService) uploadImages(ctx context.Context, ownerUID, projectID string, res *domain.Resources) error {
	eg, ctx := errgroup.WithContext(ctx)

	upload := func(ref *string, filename string) {
		eg.Go(func() error {
			resolved, err := s.resolveImage(ctx, *ref, storage.ObjectKey(ownerUID, projectID, filename))
			if err != nil {
				return err
			}
			*ref = resolved
			return nil
		})
	}

	switch {
	case res.Software != nil:
		if len(res.Software.UIMockups) == 0 {
			return fmt.Errorf("software bundle has no ui mockup")
		}
		upload(&res.Software.UIMockups[0], fileUIMockup)
		upload(&res.Software.ArchitectureDiagram, fileArchitecture)
	case res.Hardware != nil:
		if len(res.Hardware.Schematics) == 0 {
			return fmt.Errorf("hardware bundle has no schematic")
		}
		upload(&res.Hardware.Schematics[0], fileSchematics)
	default:
		return fmt.Errorf("resources bundle is empty")
	}

	return eg.Wait()
}

// resolveImage is a no-op pass-through for references already in stored-URL
// form; encoded payloads are decoded and uploaded with overwrite semantics.
func (s *ProjectService) resolveImage(ctx context.Context, ref, key string) (string, error) {
	if !assets.IsDataURL(ref) {
		return ref, nil
	}

	data, err := assets.DecodeDataURL(ref)
	if err != nil {
		return "", err
	}
	if err := s.store.Put(ctx, key, data, "image/png"); err != nil {
		return "", err
	}
	return s.store.PublicURL(key), nil
}

// List returns the owner's projects, newest first.
func (s *ProjectService) List(ctx context.Context, ownerUID string) ([]domain.Project, error) {
	return s.repo.ListByOwner(ctx, ownerUID)
}

// Delete removes a project's stored objects first and only then its row. A
// storage failure aborts before the row delete, so the store never points at
// missing objects; the in-memory view must not change unless this returns nil.
func (s *ProjectService) Delete(ctx context.Context, ownerUID, projectID string) error {
	prefix := storage.ProjectPrefix(ownerUID, projectID)

	objects, err := s.store.List(ctx, prefix)
	if err != nil {
		return fmt.Errorf("list project assets: %w", err)
	}

	if len(objects) > 0 {
		keys := make([]string, 0, len(objects))
		for _, o := range objects {
			keys = append(keys, o.Key)
		}
		if err := s.store.Remove(ctx, keys); err != nil {
			return fmt.Errorf("remove project assets: %w", err)
		}
	}

	ok, err := s.repo.Delete(ctx, ownerUID, projectID)
	if err != nil {
		return fmt.Errorf("delete project row: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
