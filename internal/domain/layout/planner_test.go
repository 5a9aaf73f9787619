package layout_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/modgen/modgen/internal/domain"
	"github.com/modgen/modgen/internal/domain/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nestedInput builds an input with the given nesting depth, e.g.
// depth 2 -> "seg1/seg2/user".
func nestedInput(depth int) string {
	parts := make([]string, 0, depth+1)
	for i := 0; i < depth; i++ {
		parts = append(parts, "seg"+strings.Repeat("x", i+1))
	}
	return strings.Join(append(parts, "user"), "/")
}

func TestPlan_UpTraversalCounts(t *testing.T) {
	// The count must equal depth + 2 for every mode: an off-by-one makes the
	// generated imports resolve to the wrong directory without any error.
	for _, mode := range domain.ValidLayoutModes {
		for _, depth := range []int{0, 1, 2, 5} {
			plan, err := layout.New(nestedInput(depth), mode)
			require.NoError(t, err)

			assert.Equal(t, depth, plan.Nesting.Depth, "mode %s depth %d", mode, depth)
			assert.Equal(t, depth+2, plan.RouteInfraUp, "mode %s depth %d", mode, depth)
			assert.Equal(t, depth+2, plan.ModuleInfraUp, "mode %s depth %d", mode, depth)
			for _, kind := range mode.Kinds() {
				assert.Equal(t, depth+2, plan.InfraUp(kind), "mode %s depth %d kind %s", mode, depth, kind)
			}
		}
	}
}

func TestPlan_ColocatedDirs(t *testing.T) {
	plan, err := layout.New("billing/invoices/order", domain.LayoutColocatedService)
	require.NoError(t, err)

	assert.Equal(t, []string{"billing", "invoices"}, plan.Descriptor.Segments)
	assert.Equal(t, "order", plan.Descriptor.ResourceName)
	assert.Equal(t, 2, plan.Nesting.Depth)

	for _, kind := range domain.LayoutColocatedService.Kinds() {
		assert.Equal(t, "modules/billing/invoices/order", plan.Dirs[kind], "kind %s", kind)
	}
	assert.Equal(t, "./", plan.ModuleRef())
}

func TestPlan_SplitRouteDirs(t *testing.T) {
	plan, err := layout.New("billing/invoices/order", domain.LayoutSplitRoute)
	require.NoError(t, err)

	assert.Equal(t, "routes/billing/invoices/order", plan.Dirs[domain.KindRoute])
	for _, kind := range []domain.ArtifactKind{domain.KindController, domain.KindModel, domain.KindInterface, domain.KindValidation} {
		assert.Equal(t, "modules/billing/invoices/order", plan.Dirs[kind], "kind %s", kind)
	}

	// Depth 2 -> four parent steps from the route tree back to the root,
	// then down into the module tree.
	assert.Equal(t, "../../../../modules/billing/invoices/order/", plan.ModuleRef())
}

func TestPlan_SegmentsPreserveInputCase(t *testing.T) {
	plan, err := layout.New("Billing/ORDER", domain.LayoutColocated)
	require.NoError(t, err)

	// Folder segments keep their case; only the leaf is folded.
	assert.Equal(t, []string{"Billing"}, plan.Descriptor.Segments)
	assert.Equal(t, "order", plan.Descriptor.ResourceName)
	assert.Equal(t, "modules/Billing/order", plan.Dirs[domain.KindRoute])
}

func TestPlan_LeafIsLowercased(t *testing.T) {
	plan, err := layout.New("User", domain.LayoutColocatedService)
	require.NoError(t, err)

	assert.Equal(t, "user", plan.Descriptor.ResourceName)
	assert.Equal(t, "User", plan.Descriptor.Variants.Capitalized)
	assert.Equal(t, "modules/user", plan.Dirs[domain.KindService])
}

func TestPlan_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "trailing separator", raw: "foo/"},
		{name: "only separators", raw: "///"},
		{name: "empty intermediate segment", raw: "a//b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := layout.New(tt.raw, domain.LayoutColocatedService)
			require.Error(t, err)

			var pathErr *domain.InvalidPathError
			assert.True(t, errors.As(err, &pathErr), "want InvalidPathError, got %T", err)
		})
	}
}

func TestUpPrefix(t *testing.T) {
	assert.Equal(t, "", layout.UpPrefix(0))
	assert.Equal(t, "../", layout.UpPrefix(1))
	assert.Equal(t, "../../../", layout.UpPrefix(3))
}
