package assets

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rix-app/rix-backend/internal/projects/domain"
)

// ImageClient renders one image for a prompt. Implemented by imagegen.Client.
type ImageClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator assembles the full artifact bundle for a project kind. Document
// text is produced synchronously; the images of one bundle are requested
// concurrently and the first failure aborts the whole batch, so callers never
// see a partially-filled bundle.
type Generator struct {
	Images ImageClient
}

func NewGenerator(images ImageClient) *Generator {
	return &Generator{Images: images}
}

func softwareMockupPrompt(description string) string {
	return fmt.Sprintf("UI mockup for a web application based on this description: %s. The style should be clean, modern, and professional. Focus on the main dashboard or landing page view.", description)
}

func softwareArchitecturePrompt(description string) string {
	return fmt.Sprintf("High-level system architecture diagram for a project with this description: %s. The diagram should illustrate the main components (e.g., frontend, backend, database, external APIs) and their interactions. Style should be a clean, professional technical diagram.", description)
}

func hardwareSchematicPrompt(description string) string {
	return fmt.Sprintf("Circuit schematic diagram for a hardware project with this description: %s.", description)
}

// Software builds the bundle for a software project: PRD, tech stack, one UI
// mockup and one architecture diagram.
func (g *Generator) Software(ctx context.Context, description string) (*domain.SoftwareDetails, error) {
	var mockup, diagram string

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		mockup, err = g.Images.Generate(ctx, softwareMockupPrompt(description))
		return err
	})
	eg.Go(func() error {
		var err error
		diagram, err = g.Images.Generate(ctx, softwareArchitecturePrompt(description))
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generate software assets: %w", err)
	}

	if mockup == "" || diagram == "" {
		return nil, nil
	}

	return &domain.SoftwareDetails{
		PRD:                 SoftwarePRD(description),
		TechStack:           TechStack(),
		UIMockups:           []string{mockup},
		ArchitectureDiagram: diagram,
	}, nil
}

// Hardware builds the bundle for a hardware project: blueprint, one
// schematic, build guide and materials list.
func (g *Generator) Hardware(ctx context.Context, description string) (*domain.HardwareDetails, error) {
	schematic, err := g.Images.Generate(ctx, hardwareSchematicPrompt(description))
	if err != nil {
		return nil, fmt.Errorf("generate hardware assets: %w", err)
	}
	if schematic == "" {
		return nil, nil
	}

	return &domain.HardwareDetails{
		Blueprint:     HardwareBlueprint(description),
		Schematics:    []string{schematic},
		BuildGuide:    HardwareBuildGuide(description),
		MaterialsList: HardwareMaterialsList(description),
	}, nil
}
