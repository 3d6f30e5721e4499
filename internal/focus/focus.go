// Package focus tracks which order-form row currently holds a validation
// error so the presentation layer can highlight and scroll to exactly one
// field at a time.
package focus

import "strings"

// Controller holds at most one product-error row id and one
// quantity-error row id. Marking a new row implicitly un-highlights the
// previous one; a marker is cleared only by a corrective edit to that
// specific row's field, never by edits to other rows.
type Controller struct {
	productRow  string
	quantityRow string
	onChange    func()
}

// NewController returns an empty controller.
func NewController() *Controller {
	return &Controller{}
}

// OnChange registers a callback invoked whenever a marker changes. The
// presentation layer uses it to re-render highlights; pass nil to
// unregister.
func (c *Controller) OnChange(fn func()) {
	c.onChange = fn
}

// MarkInvalidProduct records the row whose product selection is invalid.
func (c *Controller) MarkInvalidProduct(rowID string) {
	if c.productRow != rowID {
		c.productRow = rowID
		c.notify()
	}
}

// MarkInvalidQuantity records the row whose quantity is invalid.
func (c *Controller) MarkInvalidQuantity(rowID string) {
	if c.quantityRow != rowID {
		c.quantityRow = rowID
		c.notify()
	}
}

// Clear removes both markers.
func (c *Controller) Clear() {
	if c.productRow == "" && c.quantityRow == "" {
		return
	}
	c.productRow = ""
	c.quantityRow = ""
	c.notify()
}

// ProductError returns the marked product-error row id, or "".
func (c *Controller) ProductError() string {
	return c.productRow
}

// QuantityError returns the marked quantity-error row id, or "".
func (c *Controller) QuantityError() string {
	return c.quantityRow
}

// ProductEdited reports a product edit on a row. The product marker is
// cleared only when it points at that row and the new value is non-blank.
func (c *Controller) ProductEdited(rowID, value string) {
	if c.productRow == rowID && strings.TrimSpace(value) != "" {
		c.productRow = ""
		c.notify()
	}
}

// QuantityEdited reports a quantity edit on a row, with the same clearing
// rule as ProductEdited.
func (c *Controller) QuantityEdited(rowID, value string) {
	if c.quantityRow == rowID && strings.TrimSpace(value) != "" {
		c.quantityRow = ""
		c.notify()
	}
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
