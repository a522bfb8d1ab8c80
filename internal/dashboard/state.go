// Package dashboard owns the per-user project list view: which screen to
// show after a fetch, and keeping the selection consistent across create,
// delete and manual selection. All mutations go through the transition
// methods; no other component touches the list or selection directly.
package dashboard

import (
	"errors"

	"github.com/rix-app/rix-backend/internal/projects/classify"
	"github.com/rix-app/rix-backend/internal/projects/domain"
)

type View string

const (
	ViewLoading      View = "loading"
	ViewTableMissing View = "table_missing"
	ViewAccessDenied View = "access_denied"
	ViewError        View = "error"
	ViewWizard       View = "wizard"
	ViewProject      View = "project"
	// ViewEmpty exists for completeness; a successful fetch with zero rows
	// goes straight to the creation wizard, so it is never reached.
	ViewEmpty View = "empty"
)

var ErrUnknownProject = errors.New("unknown project")

// State is the reconciliation state machine.
type State struct {
	Projects     []domain.Project `json:"projects"`
	SelectedID   string           `json:"selected_id"`
	WizardOpen   bool             `json:"wizard_open"`
	View         View             `json:"view"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

func NewState() *State {
	return &State{View: ViewLoading}
}

// ApplyFetch folds one fetch outcome into the state. Failures are classified
// (table-missing beats access-denied beats generic) and clear the list but
// keep the selection, so a transient error followed by a successful retry
// restores the user's place; a successful empty fetch opens the wizard for
// the first-run experience; a successful non-empty fetch selects the newest
// row unless a selection or an open wizard already claims the screen.
func (s *State) ApplyFetch(projects []domain.Project, err error) {
	s.ErrorMessage = ""

	if err != nil {
		s.Projects = nil
		switch classify.Classify(err) {
		case classify.TableMissing:
			s.View = ViewTableMissing
		case classify.AccessDenied:
			s.View = ViewAccessDenied
		default:
			s.View = ViewError
			s.ErrorMessage = err.Error()
		}
		return
	}

	s.Projects = projects

	if len(projects) == 0 {
		s.WizardOpen = true
		s.SelectedID = ""
		s.View = ViewWizard
		return
	}

	if s.SelectedID != "" && !s.has(s.SelectedID) {
		s.SelectedID = ""
	}
	if s.SelectedID == "" && !s.WizardOpen {
		s.SelectedID = projects[0].ID
	}
	s.recomputeView()
}

// ApplyCreate prepends the newly persisted project, selects it, closes the
// wizard and clears every error flag.
func (s *State) ApplyCreate(p domain.Project) {
	s.Projects = append([]domain.Project{p}, s.Projects...)
	s.SelectedID = p.ID
	s.WizardOpen = false
	s.ErrorMessage = ""
	s.View = ViewProject
}

// ApplyDelete removes the project from the list. If it was selected, the new
// first (newest) row takes over, or the wizard reopens when nothing is left.
// Callers invoke this only after the store operations actually succeeded.
func (s *State) ApplyDelete(projectID string) {
	kept := s.Projects[:0]
	for _, p := range s.Projects {
		if p.ID != projectID {
			kept = append(kept, p)
		}
	}
	s.Projects = kept

	if s.SelectedID == projectID {
		if len(s.Projects) > 0 {
			s.SelectedID = s.Projects[0].ID
		} else {
			s.SelectedID = ""
			s.WizardOpen = true
		}
	}
	s.recomputeView()
}

// Select switches to the given project and closes the wizard. It never
// refetches.
func (s *State) Select(projectID string) error {
	if !s.has(projectID) {
		return ErrUnknownProject
	}
	s.SelectedID = projectID
	s.WizardOpen = false
	s.View = ViewProject
	return nil
}

// OpenWizard shows the creation wizard and drops the selection.
func (s *State) OpenWizard() {
	s.WizardOpen = true
	s.SelectedID = ""
	s.View = ViewWizard
}

// CloseWizard dismisses the wizard; the newest row regains the screen when
// one exists.
func (s *State) CloseWizard() {
	s.WizardOpen = false
	if s.SelectedID == "" && len(s.Projects) > 0 {
		s.SelectedID = s.Projects[0].ID
	}
	s.recomputeView()
}

func (s *State) has(projectID string) bool {
	for _, p := range s.Projects {
		if p.ID == projectID {
			return true
		}
	}
	return false
}

func (s *State) recomputeView() {
	switch {
	case s.WizardOpen:
		s.View = ViewWizard
	case s.SelectedID != "":
		s.View = ViewProject
	case len(s.Projects) == 0:
		s.View = ViewWizard
	default:
		s.View = ViewEmpty
	}
}
