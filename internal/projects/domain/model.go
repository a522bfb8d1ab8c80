package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Kind discriminates the two project variants and decides which resources
// shape and generation prompts apply.
type Kind string

const (
	KindSoftware Kind = "software"
	KindHardware Kind = "hardware"
)

func (k Kind) Valid() bool {
	return k == KindSoftware || k == KindHardware
}

// SoftwareDetails is the resources payload of a software project. Image
// fields hold a data URL right after generation and a stored public URL once
// the upload step has run.
type SoftwareDetails struct {
	PRD                 string   `json:"prd"`
	TechStack           []string `json:"techStack"`
	UIMockups           []string `json:"uiMockups"`
	ArchitectureDiagram string   `json:"architectureDiagram"`
}

// HardwareDetails is the resources payload of a hardware project.
type HardwareDetails struct {
	Blueprint     string   `json:"blueprint"`
	Schematics    []string `json:"schematics"`
	BuildGuide    string   `json:"buildGuide"`
	MaterialsList string   `json:"materialsList"`
}

// Resources wraps whichever variant matches the project's kind. Exactly one
// of the two pointers is set on a persisted project.
type Resources struct {
	Software *SoftwareDetails
	Hardware *HardwareDetails
}

func (r Resources) MarshalJSON() ([]byte, error) {
	switch {
	case r.Software != nil:
		return json.Marshal(r.Software)
	case r.Hardware != nil:
		return json.Marshal(r.Hardware)
	default:
		return []byte("null"), nil
	}
}

func (r *Resources) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		r.Software, r.Hardware = nil, nil
		return nil
	}

	// The two shapes share no required keys, so probing is unambiguous.
	var probe struct {
		PRD       *string `json:"prd"`
		Blueprint *string `json:"blueprint"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}

	switch {
	case probe.PRD != nil:
		var d SoftwareDetails
		if err := json.Unmarshal(b, &d); err != nil {
			return err
		}
		r.Software, r.Hardware = &d, nil
	case probe.Blueprint != nil:
		var d HardwareDetails
		if err := json.Unmarshal(b, &d); err != nil {
			return err
		}
		r.Software, r.Hardware = nil, &d
	default:
		return fmt.Errorf("unrecognized resources shape")
	}
	return nil
}

// Kind reports which variant is populated, or "" for neither.
func (r Resources) Kind() Kind {
	switch {
	case r.Software != nil:
		return KindSoftware
	case r.Hardware != nil:
		return KindHardware
	default:
		return ""
	}
}

// Project represents one user-created work item. The id is assigned by the
// creation workflow, never by the row store, so storage paths and the row
// always agree.
type Project struct {
	ID          string     `json:"id"`
	OwnerUID    string     `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Kind        Kind       `json:"type"`
	CreatedAt   time.Time  `json:"created_at"`
	Resources   *Resources `json:"resources"`
}
