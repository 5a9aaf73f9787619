// Package catalog renders the fixed set of TypeScript boilerplate artifacts.
// Every renderer is a pure string construction: identical arguments yield
// byte-identical output, with no timestamps and no unordered iteration.
package catalog

import (
	"github.com/modgen/modgen/internal/domain"
	"github.com/modgen/modgen/internal/domain/layout"
)

// Context carries everything a renderer may substitute into its template.
type Context struct {
	Variants domain.NameVariants
	Mode     domain.LayoutMode

	// InfraUp is the up-traversal count from this artifact's directory to
	// the output root, where shared helpers live.
	InfraUp int

	// ModuleRef prefixes imports of sibling module files ("./" in the
	// colocated modes, a cross-tree path under split-route).
	ModuleRef string
}

type renderFunc func(Context) string

var renderers = map[domain.ArtifactKind]renderFunc{
	domain.KindRoute:      renderRoute,
	domain.KindController: renderController,
	domain.KindModel:      renderModel,
	domain.KindInterface:  renderInterface,
	domain.KindValidation: renderValidation,
	domain.KindService:    renderService,
}

// Render produces the file content for one artifact kind. It is a total
// function: malformed names and paths are rejected upstream by the planner.
func Render(kind domain.ArtifactKind, ctx Context) string {
	return renderers[kind](ctx)
}

// infraImport builds the import path of a shared helper module relative to
// the artifact being rendered, e.g. "../../helpers/responses/server-response".
func (ctx Context) infraImport(helper string) string {
	return layout.UpPrefix(ctx.InfraUp) + helper
}
