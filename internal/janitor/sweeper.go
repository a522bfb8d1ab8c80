// Package janitor reclaims leaked storage objects. A creation workflow that
// fails after its uploads deliberately leaves the objects behind; the sweeper
// removes any object whose project row no longer exists once it is older
// than the grace window.
package janitor

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rix-app/rix-backend/internal/storage"
)

// ProjectIndex answers which project ids still have a row.
type ProjectIndex interface {
	ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error)
}

type Sweeper struct {
	store storage.ObjectStore
	repo  ProjectIndex
	grace time.Duration

	now func() time.Time
}

func New(store storage.ObjectStore, repo ProjectIndex, grace time.Duration) *Sweeper {
	return &Sweeper{store: store, repo: repo, grace: grace, now: time.Now}
}

// Start schedules an hourly sweep and returns the running cron so the caller
// can stop it on shutdown.
func (s *Sweeper) Start() *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := s.Sweep(ctx); err != nil {
			log.Printf("[janitor] sweep failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("[janitor] failed to schedule sweep: %v", err)
		return c
	}

	log.Println("[janitor] orphan sweep scheduled hourly")
	c.Start()
	return c
}

// Sweep lists the whole bucket, groups keys by project id and removes the
// objects of projects that no longer have a row. Objects younger than the
// grace window are skipped so an in-flight creation is never raced.
func (s *Sweeper) Sweep(ctx context.Context) error {
	objects, err := s.store.List(ctx, "")
	if err != nil {
		return err
	}

	cutoff := s.now().Add(-s.grace)

	byProject := make(map[string][]string)
	for _, obj := range objects {
		_, projectID, ok := storage.SplitKey(obj.Key)
		if !ok {
			continue
		}
		if obj.LastModified.After(cutoff) {
			continue
		}
		byProject[projectID] = append(byProject[projectID], obj.Key)
	}
	if len(byProject) == 0 {
		return nil
	}

	ids := make([]string, 0, len(byProject))
	for id := range byProject {
		ids = append(ids, id)
	}

	existing, err := s.repo.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}

	var orphaned []string
	for id, keys := range byProject {
		if !existing[id] {
			orphaned = append(orphaned, keys...)
		}
	}
	if len(orphaned) == 0 {
		return nil
	}

	if err := s.store.Remove(ctx, orphaned); err != nil {
		return err
	}
	log.Printf("[janitor] removed %d orphaned objects", len(orphaned))
	return nil
}
