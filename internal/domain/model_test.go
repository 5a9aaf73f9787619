package domain_test

import (
	"testing"

	"github.com/modgen/modgen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayoutMode(t *testing.T) {
	for _, valid := range []string{"split-route", "colocated", "colocated-service"} {
		mode, err := domain.ParseLayoutMode(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(mode))
	}

	_, err := domain.ParseLayoutMode("flat")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "flat")
}

func TestLayoutModeKinds_DeclarationOrder(t *testing.T) {
	withService := []domain.ArtifactKind{
		domain.KindRoute, domain.KindController, domain.KindModel,
		domain.KindInterface, domain.KindValidation, domain.KindService,
	}
	withoutService := withService[:5]

	assert.Equal(t, withService, domain.LayoutColocatedService.Kinds())
	assert.Equal(t, withoutService, domain.LayoutColocated.Kinds())
	assert.Equal(t, withoutService, domain.LayoutSplitRoute.Kinds())
}

func TestArtifactKindFileName(t *testing.T) {
	assert.Equal(t, "user.route.ts", domain.KindRoute.FileName("user"))
	assert.Equal(t, "user.controller.ts", domain.KindController.FileName("user"))
	assert.Equal(t, "order.interface.ts", domain.KindInterface.FileName("order"))
	assert.Equal(t, "order.validation.ts", domain.KindValidation.FileName("order"))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, domain.DefaultConfig().Validate())

	assert.Error(t, domain.Config{OutputRoot: "", Layout: "colocated"}.Validate())
	assert.Error(t, domain.Config{OutputRoot: "src", Layout: "bogus"}.Validate())
	assert.NoError(t, domain.Config{OutputRoot: "out", Layout: "split-route"}.Validate())
}
