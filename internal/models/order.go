package models

import (
	"time"

	"github.com/google/uuid"
)

// Category identifies which section of the order form a row belongs to.
// The Korean labels are also the wire values in persisted payloads.
type Category string

const (
	CategoryVegetable Category = "야채"
	CategorySeasoning Category = "양념"
	CategorySauce     Category = "소스"
	CategoryOther     Category = "기타"
)

// Categories lists the form sections in display order.
var Categories = []Category{
	CategoryVegetable,
	CategorySeasoning,
	CategorySauce,
	CategoryOther,
}

// ItemRow is one product line on an order form.
type ItemRow struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Product  string   `json:"product"`
	Unit     string   `json:"unit"`
	Quantity string   `json:"quantity"`
}

// NewItemRow creates an empty row for the given category. Product, unit
// and quantity are filled in by later edits.
func NewItemRow(category Category) ItemRow {
	return ItemRow{
		ID:       uuid.NewString(),
		Category: category,
	}
}

// Draft is the single in-progress order being edited. Exactly one draft
// exists at a time; it is the only mutable working state before submission.
type Draft struct {
	Branch string    `json:"branch"`
	Date   string    `json:"date"` // business date, zero-padded YYYY-MM-DD
	Items  []ItemRow `json:"items"`
	Note   string    `json:"note"`
}

// NewDraft returns an empty draft dated with the given business date.
func NewDraft(date string) *Draft {
	return &Draft{Date: date}
}

// AddItem appends an empty row for the category and returns a pointer to
// it. The pointer is invalidated by the next AddItem or RemoveItem.
func (d *Draft) AddItem(category Category) *ItemRow {
	d.Items = append(d.Items, NewItemRow(category))
	return &d.Items[len(d.Items)-1]
}

// RemoveItem deletes the row with the given id, preserving the order of
// the remaining rows. Unknown ids are ignored.
func (d *Draft) RemoveItem(id string) {
	for i := range d.Items {
		if d.Items[i].ID == id {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

// Item returns the row with the given id, or nil.
func (d *Draft) Item(id string) *ItemRow {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// SetProduct records a product selection on a row. The unit comes from
// the catalog lookup and is informational only.
func (d *Draft) SetProduct(id, product, unit string) {
	if row := d.Item(id); row != nil {
		row.Product = product
		row.Unit = unit
	}
}

// SetQuantity records a quantity edit on a row.
func (d *Draft) SetQuantity(id, quantity string) {
	if row := d.Item(id); row != nil {
		row.Quantity = quantity
	}
}

// ItemsIn returns the rows of one category in form order.
func (d *Draft) ItemsIn(category Category) []ItemRow {
	var rows []ItemRow
	for _, row := range d.Items {
		if row.Category == category {
			rows = append(rows, row)
		}
	}
	return rows
}

// OrderRecord is an immutable submitted order. CreatedAt is the
// authoritative ordering key; Date is a user-chosen business date that
// may differ from it and is neither unique nor monotonic.
type OrderRecord struct {
	ID          int64     `json:"id"`
	Branch      string    `json:"branch"`
	Date        string    `json:"date"`
	Items       []ItemRow `json:"items"`
	Note        string    `json:"note,omitempty"`
	SubmittedAt string    `json:"submittedAt"`
	CreatedAt   int64     `json:"createdAt"` // epoch milliseconds
}

// NewOrderRecord freezes a draft into a record at the given instant.
func NewOrderRecord(d *Draft, now time.Time) OrderRecord {
	items := make([]ItemRow, len(d.Items))
	copy(items, d.Items)
	return OrderRecord{
		ID:          now.UnixMilli(),
		Branch:      d.Branch,
		Date:        d.Date,
		Items:       items,
		Note:        d.Note,
		SubmittedAt: now.Format("2006-01-02 15:04:05"),
		CreatedAt:   now.UnixMilli(),
	}
}

// CreationTime returns the instant used for retention and chronological
// ordering. Records persisted before createdAt existed fall back to local
// midnight of the business date; an unparseable date yields the zero
// time, which retention pruning then drops.
func (o *OrderRecord) CreationTime() time.Time {
	if o.CreatedAt > 0 {
		return time.UnixMilli(o.CreatedAt)
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", o.Date+"T00:00:00", time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// GroupByCategory splits rows into per-category lists, preserving row
// order inside each category.
func GroupByCategory(items []ItemRow) map[Category][]ItemRow {
	grouped := make(map[Category][]ItemRow)
	for _, row := range items {
		grouped[row.Category] = append(grouped[row.Category], row)
	}
	return grouped
}
