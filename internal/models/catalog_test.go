package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogUnits(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, "박스", c.UnitFor("무"))
	assert.Equal(t, "포기", c.UnitFor("배추"))
	assert.Equal(t, "kg", c.UnitFor("간마늘"))
	assert.Equal(t, "통", c.UnitFor("간장소스"))
	// Free-text products have no unit.
	assert.Equal(t, "", c.UnitFor("고무장갑"))
}

func TestCatalogProducts(t *testing.T) {
	c := NewCatalog()
	vegetables := c.Products(CategoryVegetable)
	assert.Len(t, vegetables, 10)
	assert.Contains(t, vegetables, "무")
	assert.Empty(t, c.Products(CategoryOther))

	// Every listed product has a unit.
	for _, category := range []Category{CategoryVegetable, CategorySeasoning, CategorySauce} {
		for _, product := range c.Products(category) {
			assert.NotEmpty(t, c.UnitFor(product), "unit for %s", product)
		}
	}

	// The returned slice is a copy.
	vegetables[0] = "changed"
	assert.NotContains(t, c.Products(CategoryVegetable), "changed")
}

func TestCatalogBranches(t *testing.T) {
	c := NewCatalog()
	branches := c.Branches()
	require.Len(t, branches, 14)
	assert.Equal(t, "1번 지점", branches[0])
	assert.Equal(t, "14번 지점", branches[13])

	custom := c.WithBranches([]string{"본점", "강남점"})
	assert.Equal(t, []string{"본점", "강남점"}, custom.Branches())

	// Empty override keeps the current roster.
	custom.WithBranches(nil)
	assert.Len(t, custom.Branches(), 2)
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "야채", DisplayLabel(CategoryVegetable))
	assert.Equal(t, "잡화(기타)", DisplayLabel(CategoryOther))
}
