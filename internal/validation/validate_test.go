package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balju/internal/models"
)

func row(id string, category models.Category, product, quantity string) models.ItemRow {
	return models.ItemRow{ID: id, Category: category, Product: product, Quantity: quantity}
}

func draft(branch string, items ...models.ItemRow) *models.Draft {
	return &models.Draft{Branch: branch, Date: "2025-06-01", Items: items}
}

func TestMissingBranch(t *testing.T) {
	// Branch is checked first, regardless of item contents.
	cases := []*models.Draft{
		draft(""),
		draft("", row("a", models.CategoryVegetable, "무", "2")),
		draft("", row("a", models.CategoryVegetable, "", "")),
	}
	for _, d := range cases {
		f := Validate(d)
		require.NotNil(t, f)
		assert.Equal(t, MissingBranch, f.Code)
		assert.Empty(t, f.RowID)
	}
}

func TestEmptyOrder(t *testing.T) {
	f := Validate(draft("1번 지점"))
	require.NotNil(t, f)
	assert.Equal(t, EmptyOrder, f.Code)
}

func TestProductPassPrecedesQuantityPass(t *testing.T) {
	// Row "b" comes first and is missing its quantity, row "a" later is
	// missing its product. The product pass runs over all rows before
	// any quantity check, so row "a" wins.
	d := draft("1번 지점",
		row("b", models.CategoryVegetable, "무", ""),
		row("a", models.CategoryVegetable, "", "3"),
	)
	f := Validate(d)
	require.NotNil(t, f)
	assert.Equal(t, MissingProduct, f.Code)
	assert.Equal(t, "a", f.RowID)
}

func TestWhitespaceProductIsMissing(t *testing.T) {
	d := draft("1번 지점", row("a", models.CategorySauce, "   ", "1"))
	f := Validate(d)
	require.NotNil(t, f)
	assert.Equal(t, MissingProduct, f.Code)
	assert.Equal(t, "a", f.RowID)
}

func TestQuantityRules(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		want     Code
	}{
		{"digits pass", "120", ""},
		{"letters rejected", "12a", NonNumericQuantity},
		{"empty is missing, not non-numeric", "", MissingQuantity},
		{"whitespace is missing", "   ", MissingQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draft("1번 지점", row("a", models.CategorySeasoning, "간마늘", tt.quantity))
			f := Validate(d)
			if tt.want == "" {
				assert.Nil(t, f)
				return
			}
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.Code)
			assert.Equal(t, "a", f.RowID)
		})
	}
}

func TestOtherCategoryAllowsFreeTextQuantity(t *testing.T) {
	d := draft("1번 지점", row("a", models.CategoryOther, "고무장갑", "두 박스"))
	assert.Nil(t, Validate(d))
}

func TestFirstOffendingRowWins(t *testing.T) {
	d := draft("1번 지점",
		row("a", models.CategoryVegetable, "무", ""),
		row("b", models.CategoryVegetable, "배추", ""),
	)
	f := Validate(d)
	require.NotNil(t, f)
	assert.Equal(t, MissingQuantity, f.Code)
	assert.Equal(t, "a", f.RowID)
}

func TestValidDraft(t *testing.T) {
	d := draft("2번 지점",
		row("a", models.CategoryVegetable, "무", "2"),
		row("b", models.CategoryOther, "수세미", "잘 닦이는 걸로 3개"),
	)
	assert.Nil(t, Validate(d))
}

func TestFailureMessages(t *testing.T) {
	for _, code := range []Code{MissingBranch, EmptyOrder, MissingProduct, MissingQuantity, NonNumericQuantity} {
		f := &Failure{Code: code}
		assert.NotEmpty(t, f.Message())
		assert.NotEmpty(t, f.Error())
	}
}
