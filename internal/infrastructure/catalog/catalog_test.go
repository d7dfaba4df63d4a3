package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"bidright/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, Validate(c))

	assert.Len(t, c.Industries, 5)
	for _, ind := range c.Industries {
		assert.Len(t, c.ProjectTypesFor(ind.ID), 4, ind.ID)
		assert.Len(t, c.MarketBandsFor(ind.ID), 5, ind.ID)
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Industries[0].Name = "changed"
	assert.Equal(t, "Web Development", Default().Industries[0].Name)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := Default()
	c.ProjectTypes = append(c.ProjectTypes, entities.ProjectType{ID: "x", IndustryID: "ghost", BaseHours: 1, BaseCost: 1})
	c.Features[0].HourMultiplier = 0
	c.PhaseTemplates[0].Phases[0].Percentage = 11

	err := Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
	assert.Contains(t, err.Error(), "positive multipliers")
	assert.Contains(t, err.Error(), "sum to 101")
}

func TestValidateRequiresAllComplexityTiers(t *testing.T) {
	c := Default()
	c.Complexities = c.Complexities[:3]

	err := Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"expert" missing`)
}

const sampleCatalog = `
industries:
  - id: photo
    name: Photography
project_types:
  - id: portrait
    industry_id: photo
    name: Portrait Session
    base_hours: 3
    base_cost: 300
features:
  - id: retouch
    industry_id: photo
    name: Retouching
    hour_multiplier: 1.5
    cost_multiplier: 1.2
complexities:
  - {id: low, name: Low, hour_multiplier: 0.8, cost_multiplier: 0.9}
  - {id: medium, name: Medium, hour_multiplier: 1, cost_multiplier: 1}
  - {id: high, name: High, hour_multiplier: 1.5, cost_multiplier: 1.3}
  - {id: expert, name: Expert, hour_multiplier: 2, cost_multiplier: 1.8}
market_rates:
  - {industry_id: photo, level: Junior, rate: 40}
locations:
  - {id: us_average, name: United States (Average), multiplier: 1}
default_phases:
  - {name: Shoot, percentage: 60}
  - {name: Edit, percentage: 40}
`

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	c, err := Load(path, zap.NewNop())
	require.NoError(t, err)

	pt, ok := c.ProjectType("photo", "portrait")
	require.True(t, ok)
	assert.Equal(t, 300.0, pt.BaseCost)
	f, ok := c.Feature("photo", "retouch")
	require.True(t, ok)
	assert.Equal(t, 1.5, f.HourMultiplier)
	assert.Equal(t, []entities.Phase{{Name: "Shoot", Percentage: 60}, {Name: "Edit", Percentage: 40}}, c.PhasesFor("photo", "portrait"))
}

func TestLoadDefaultsWhenPathEmpty(t *testing.T) {
	c, err := Load("  ", nil)
	require.NoError(t, err)
	_, ok := c.Industry("webdev")
	assert.True(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"), zap.NewNop())
	require.Error(t, err)
}
