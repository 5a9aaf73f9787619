// Package application wires the planning, rendering and materialization
// stages into one generation pipeline.
package application

import (
	"path"

	"github.com/rs/zerolog"

	"github.com/modgen/modgen/internal/domain"
	"github.com/modgen/modgen/internal/domain/catalog"
	"github.com/modgen/modgen/internal/domain/layout"
)

// GenerateService orchestrates one scaffolding run:
// plan -> derive variants -> render catalog -> materialize -> report.
type GenerateService struct {
	materializer domain.Materializer
	log          zerolog.Logger
}

func NewGenerateService(materializer domain.Materializer, log zerolog.Logger) *GenerateService {
	return &GenerateService{
		materializer: materializer,
		log:          log,
	}
}

// Plan renders every artifact for rawInput under mode without touching the
// filesystem. Artifacts come back in the mode's fixed kind order.
func (s *GenerateService) Plan(rawInput string, mode domain.LayoutMode) ([]domain.GeneratedArtifact, error) {
	plan, err := layout.New(rawInput, mode)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("resource", plan.Descriptor.ResourceName).
		Int("depth", plan.Nesting.Depth).
		Str("layout", string(mode)).
		Msg("planned resource layout")

	artifacts := make([]domain.GeneratedArtifact, 0, len(mode.Kinds()))
	for _, kind := range mode.Kinds() {
		content := catalog.Render(kind, catalog.Context{
			Variants:  plan.Descriptor.Variants,
			Mode:      mode,
			InfraUp:   plan.InfraUp(kind),
			ModuleRef: plan.ModuleRef(),
		})
		artifacts = append(artifacts, domain.GeneratedArtifact{
			Kind:    kind,
			RelPath: path.Join(plan.Dirs[kind], kind.FileName(plan.Descriptor.ResourceName)),
			Content: content,
		})
	}
	return artifacts, nil
}

// Generate plans, renders and writes all artifacts for rawInput. The write
// phase is non-transactional: on a filesystem failure the partial report
// covers the files that made it to disk, and no cleanup happens.
func (s *GenerateService) Generate(rawInput string, mode domain.LayoutMode) (domain.GenerationReport, error) {
	artifacts, err := s.Plan(rawInput, mode)
	if err != nil {
		return nil, err
	}

	report, err := s.materializer.Materialize(artifacts)
	for _, entry := range report {
		s.log.Debug().Str("path", entry.RelPath).Int("bytes", entry.ByteSize).Msg("wrote artifact")
	}
	return report, err
}
