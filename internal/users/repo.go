package users

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type UpsertUser struct {
	UID         string
	Email       string
	DisplayName string
}

// EnsureUser upserts the authenticated identity's profile row and returns the
// uid. Called on every authenticated request so a first sign-in needs no
// separate registration step.
func (r *Repo) EnsureUser(ctx context.Context, u UpsertUser) (string, error) {
	if u.UID == "" {
		return "", fmt.Errorf("uid required")
	}

	const q = `
insert into users (uid, email, display_name, updated_at)
values ($1, nullif($2,''), nullif($3,''), now())
on conflict (uid) do update
set
  email = coalesce(excluded.email, users.email),
  display_name = coalesce(excluded.display_name, users.display_name),
  updated_at = now()
returning uid;
`
	var uid string
	if err := r.db.QueryRow(ctx, q, u.UID, u.Email, u.DisplayName).Scan(&uid); err != nil {
		return "", err
	}
	return uid, nil
}
