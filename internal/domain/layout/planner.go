// Package layout plans where generated artifacts land and how their import
// statements reach back to shared infrastructure.
package layout

import (
	"path"
	"strings"

	"github.com/modgen/modgen/internal/domain"
	"github.com/modgen/modgen/internal/domain/naming"
)

// Plan is the resolved target layout for one resource.
type Plan struct {
	Descriptor domain.ResourceDescriptor
	Nesting    domain.NestingContext
	Mode       domain.LayoutMode

	// Dirs maps each active artifact kind to its target directory,
	// slash-separated and relative to the output root.
	Dirs map[domain.ArtifactKind]string

	// RouteInfraUp and ModuleInfraUp are the parent-directory step counts
	// from the route tree and the module tree to the output root. They are
	// computed independently but both equal depth + the mode's fixed offset.
	// Getting either wrong produces generated imports that resolve to the
	// wrong directory at runtime of the generated code, silently.
	RouteInfraUp  int
	ModuleInfraUp int
}

// New splits rawInput on "/", derives the resource descriptor and computes
// the per-kind target directories and up-traversal counts for mode.
func New(rawInput string, mode domain.LayoutMode) (*Plan, error) {
	trimmed := strings.TrimSpace(rawInput)
	if trimmed == "" {
		return nil, &domain.InvalidPathError{Raw: rawInput, Reason: "empty resource path"}
	}

	parts := strings.Split(trimmed, "/")
	leaf := strings.TrimSpace(parts[len(parts)-1])
	if leaf == "" {
		return nil, &domain.InvalidPathError{Raw: rawInput, Reason: "missing resource name after final separator"}
	}

	segments := make([]string, 0, len(parts)-1)
	for _, seg := range parts[:len(parts)-1] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, &domain.InvalidPathError{Raw: rawInput, Reason: "empty path segment"}
		}
		segments = append(segments, seg)
	}

	variants, err := naming.DeriveVariants(leaf)
	if err != nil {
		return nil, err
	}

	descriptor := domain.ResourceDescriptor{
		RawInput:     rawInput,
		Segments:     segments,
		ResourceName: variants.Lower,
		Variants:     variants,
	}
	nesting := domain.NestingContext{Depth: len(segments), Segments: segments}

	moduleDir := path.Join(append(append([]string{"modules"}, segments...), variants.Lower)...)
	routeDir := moduleDir
	if mode == domain.LayoutSplitRoute {
		routeDir = path.Join(append(append([]string{"routes"}, segments...), variants.Lower)...)
	}

	dirs := make(map[domain.ArtifactKind]string, len(mode.Kinds()))
	for _, kind := range mode.Kinds() {
		if kind == domain.KindRoute {
			dirs[kind] = routeDir
		} else {
			dirs[kind] = moduleDir
		}
	}

	return &Plan{
		Descriptor:    descriptor,
		Nesting:       nesting,
		Mode:          mode,
		Dirs:          dirs,
		RouteInfraUp:  nesting.Depth + mode.InfraDepthOffset(),
		ModuleInfraUp: nesting.Depth + mode.InfraDepthOffset(),
	}, nil
}

// InfraUp returns the up-traversal count for a file of the given kind.
func (p *Plan) InfraUp(kind domain.ArtifactKind) int {
	if kind == domain.KindRoute {
		return p.RouteInfraUp
	}
	return p.ModuleInfraUp
}

// ModuleRef is the import-path prefix a route file uses to reach its sibling
// module files. Colocated modes use a plain "./"; split-route crosses from
// the routes tree into the modules tree.
func (p *Plan) ModuleRef() string {
	if p.Mode != domain.LayoutSplitRoute {
		return "./"
	}
	return UpPrefix(p.RouteInfraUp) + p.Dirs[domain.KindController] + "/"
}

// UpPrefix builds an n-step parent-directory prefix ("../../../").
func UpPrefix(n int) string {
	return strings.Repeat("../", n)
}
