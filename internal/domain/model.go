package domain

import (
	"fmt"
	"time"
)

// NameVariants holds the identifier-safe forms derived from one resource name.
// All fields are pure functions of the raw leaf segment.
type NameVariants struct {
	// Lower is the trimmed, case-folded resource name ("userprofile").
	Lower string `json:"lower"`
	// Capitalized upper-cases the first code point of Lower ("Userprofile").
	Capitalized string `json:"capitalized"`
	// Display is a human-readable form split on camelCase word boundaries
	// ("User Profile"). Used only inside generated comments and messages.
	Display string `json:"display"`
	// DisplayPlural is Display with a static "s" suffix. No grammar rules.
	DisplayPlural string `json:"display_plural"`
}

// ResourceDescriptor describes one resource to scaffold.
type ResourceDescriptor struct {
	RawInput     string       `json:"raw_input"`
	Segments     []string     `json:"segments,omitempty"`
	ResourceName string       `json:"resource_name"`
	Variants     NameVariants `json:"variants"`
}

// NestingContext captures how deep under the module root a resource sits.
// Depth always equals len(Segments).
type NestingContext struct {
	Depth    int      `json:"depth"`
	Segments []string `json:"segments,omitempty"`
}

// LayoutMode selects where generated artifacts live relative to each other.
type LayoutMode string

const (
	// LayoutSplitRoute puts routes in a routes/ tree and everything else in
	// a modules/ tree. No service layer is generated.
	LayoutSplitRoute LayoutMode = "split-route"
	// LayoutColocated puts all artifacts in one module directory, with
	// inline controller stubs instead of a service layer.
	LayoutColocated LayoutMode = "colocated"
	// LayoutColocatedService is LayoutColocated plus a service artifact the
	// controllers delegate to.
	LayoutColocatedService LayoutMode = "colocated-service"
)

// ValidLayoutModes enumerates all recognized layout modes.
var ValidLayoutModes = []LayoutMode{
	LayoutSplitRoute,
	LayoutColocated,
	LayoutColocatedService,
}

// ParseLayoutMode validates a raw layout mode string.
func ParseLayoutMode(s string) (LayoutMode, error) {
	for _, m := range ValidLayoutModes {
		if LayoutMode(s) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown layout mode %q (valid: split-route, colocated, colocated-service)", s)
}

// Kinds returns the artifact kinds this mode produces, in declaration order.
// The order is load-bearing: the generation report lists files in it.
func (m LayoutMode) Kinds() []ArtifactKind {
	if m == LayoutColocatedService {
		return []ArtifactKind{KindRoute, KindController, KindModel, KindInterface, KindValidation, KindService}
	}
	return []ArtifactKind{KindRoute, KindController, KindModel, KindInterface, KindValidation}
}

// InfraDepthOffset is the number of directory levels between a module root
// and the output root. Modules live at <root>/modules/<segments>/<name>, so a
// generated file needs depth+2 parent steps to reach shared helpers.
func (m LayoutMode) InfraDepthOffset() int { return 2 }

// ArtifactKind identifies one category of generated file.
type ArtifactKind string

const (
	KindRoute      ArtifactKind = "route"
	KindController ArtifactKind = "controller"
	KindModel      ArtifactKind = "model"
	KindInterface  ArtifactKind = "interface"
	KindValidation ArtifactKind = "validation"
	KindService    ArtifactKind = "service"
)

// FileName returns the target file name for this kind, e.g. "user.route.ts".
func (k ArtifactKind) FileName(resourceName string) string {
	return resourceName + "." + string(k) + ".ts"
}

// GeneratedArtifact is one rendered file, held in memory until materialized.
type GeneratedArtifact struct {
	Kind    ArtifactKind `json:"kind"`
	RelPath string       `json:"rel_path"` // relative to the output root
	Content string       `json:"content"`
}

// ReportEntry records one materialized file.
type ReportEntry struct {
	RelPath  string `json:"rel_path"`
	ByteSize int    `json:"byte_size"`
}

// GenerationReport lists materialized files in artifact declaration order.
type GenerationReport []ReportEntry

// GenerationRecord is one history entry, appended after a successful run.
type GenerationRecord struct {
	Timestamp  time.Time     `json:"timestamp"`
	Resource   string        `json:"resource"`
	Layout     string        `json:"layout"`
	CommitHash string        `json:"commit_hash,omitempty"`
	Files      []ReportEntry `json:"files"`
}
