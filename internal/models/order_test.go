package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRowLifecycle(t *testing.T) {
	d := NewDraft("2025-06-01")
	require.Empty(t, d.Items)

	first := d.AddItem(CategoryVegetable)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, CategoryVegetable, first.Category)

	firstID := first.ID
	second := d.AddItem(CategoryOther)
	secondID := second.ID
	assert.NotEqual(t, firstID, secondID)

	d.SetProduct(firstID, "무", "박스")
	d.SetQuantity(firstID, "3")
	row := d.Item(firstID)
	require.NotNil(t, row)
	assert.Equal(t, "무", row.Product)
	assert.Equal(t, "박스", row.Unit)
	assert.Equal(t, "3", row.Quantity)

	d.RemoveItem(firstID)
	assert.Nil(t, d.Item(firstID))
	require.Len(t, d.Items, 1)
	assert.Equal(t, secondID, d.Items[0].ID)

	// Unknown ids are no-ops.
	d.RemoveItem("nope")
	d.SetQuantity("nope", "9")
	assert.Len(t, d.Items, 1)
}

func TestItemsInPreservesOrder(t *testing.T) {
	d := NewDraft("2025-06-01")
	a := d.AddItem(CategoryVegetable).ID
	d.AddItem(CategorySauce)
	b := d.AddItem(CategoryVegetable).ID

	rows := d.ItemsIn(CategoryVegetable)
	require.Len(t, rows, 2)
	assert.Equal(t, a, rows[0].ID)
	assert.Equal(t, b, rows[1].ID)
}

func TestNewOrderRecordFreezesItems(t *testing.T) {
	d := NewDraft("2025-06-02")
	d.Branch = "3번 지점"
	d.Note = "빨리 부탁드립니다"
	id := d.AddItem(CategoryVegetable).ID
	d.SetProduct(id, "배추", "포기")
	d.SetQuantity(id, "5")

	now := time.Date(2025, 6, 2, 14, 30, 0, 0, time.Local)
	rec := NewOrderRecord(d, now)

	assert.Equal(t, now.UnixMilli(), rec.ID)
	assert.Equal(t, now.UnixMilli(), rec.CreatedAt)
	assert.Equal(t, "2025-06-02 14:30:00", rec.SubmittedAt)
	assert.Equal(t, "3번 지점", rec.Branch)
	assert.Equal(t, "2025-06-02", rec.Date)
	require.Len(t, rec.Items, 1)

	// Later draft edits must not leak into the frozen copy.
	d.SetQuantity(id, "99")
	d.Items[0].Product = "양파"
	assert.Equal(t, "배추", rec.Items[0].Product)
	assert.Equal(t, "5", rec.Items[0].Quantity)
}

func TestCreationTime(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	rec := OrderRecord{CreatedAt: at.UnixMilli(), Date: "2020-01-01"}
	assert.True(t, rec.CreationTime().Equal(at))

	// Legacy records without createdAt derive local midnight of the
	// business date.
	legacy := OrderRecord{Date: "2025-01-02"}
	want := time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local)
	assert.True(t, legacy.CreationTime().Equal(want))

	// An unparseable date yields the zero time.
	broken := OrderRecord{Date: "not-a-date"}
	assert.True(t, broken.CreationTime().IsZero())
}

func TestGroupByCategory(t *testing.T) {
	items := []ItemRow{
		{ID: "1", Category: CategoryVegetable},
		{ID: "2", Category: CategorySauce},
		{ID: "3", Category: CategoryVegetable},
	}
	grouped := GroupByCategory(items)
	require.Len(t, grouped[CategoryVegetable], 2)
	assert.Equal(t, "1", grouped[CategoryVegetable][0].ID)
	assert.Equal(t, "3", grouped[CategoryVegetable][1].ID)
	assert.Len(t, grouped[CategorySauce], 1)
	assert.Empty(t, grouped[CategoryOther])
}
