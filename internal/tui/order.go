package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"balju/internal/models"
	"balju/internal/validation"
)

// fieldKind identifies one focusable field of the order form.
type fieldKind int

const (
	fieldBranch fieldKind = iota
	fieldDate
	fieldProduct
	fieldQuantity
	fieldNote
	fieldSubmit
)

type formField struct {
	kind  fieldKind
	rowID string // set for fieldProduct and fieldQuantity
}

// fields flattens the form into focus order: branch, date, the item
// rows in category display order (product then quantity per row), note,
// submit.
func (m Model) fields() []formField {
	fields := []formField{{kind: fieldBranch}, {kind: fieldDate}}
	for _, category := range models.Categories {
		for _, row := range m.draft.ItemsIn(category) {
			fields = append(fields,
				formField{kind: fieldProduct, rowID: row.ID},
				formField{kind: fieldQuantity, rowID: row.ID},
			)
		}
	}
	return append(fields, formField{kind: fieldNote}, formField{kind: fieldSubmit})
}

func (m Model) fieldIndex(kind fieldKind, rowID string) int {
	for i, f := range m.fields() {
		if f.kind == kind && f.rowID == rowID {
			return i
		}
	}
	return m.cursor
}

func (m Model) currentField() formField {
	fields := m.fields()
	if m.cursor >= len(fields) {
		return fields[len(fields)-1]
	}
	return fields[m.cursor]
}

func (m Model) updateOrder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateOrderEditing(msg)
	}

	fields := m.fields()
	if m.cursor >= len(fields) {
		m.cursor = len(fields) - 1
	}
	cur := fields[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Back):
		m.confirm = confirmExit
		m.confirmMsg = "주문을 제출하지 않고 나가시겠습니까?"
		m.confirmYes = true

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(fields)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.AddVegetable):
		m = m.addRow(models.CategoryVegetable)
	case key.Matches(msg, m.keys.AddSeasoning):
		m = m.addRow(models.CategorySeasoning)
	case key.Matches(msg, m.keys.AddSauce):
		m = m.addRow(models.CategorySauce)
	case key.Matches(msg, m.keys.AddOther):
		m = m.addRow(models.CategoryOther)

	case key.Matches(msg, m.keys.DeleteRow):
		if cur.rowID != "" {
			m.draft.RemoveItem(cur.rowID)
			if fields := m.fields(); m.cursor >= len(fields) {
				m.cursor = len(fields) - 1
			}
		}

	case key.Matches(msg, m.keys.Left):
		m = m.cycleField(cur, -1)
	case key.Matches(msg, m.keys.Right):
		m = m.cycleField(cur, 1)

	case key.Matches(msg, m.keys.Submit):
		return m.trySubmit()

	case key.Matches(msg, m.keys.Select):
		switch cur.kind {
		case fieldBranch:
			m = m.cycleBranch(1)
		case fieldDate:
			m = m.startEditing(m.draft.Date, "YYYY-MM-DD")
		case fieldNote:
			m = m.startEditing(m.draft.Note, "그 외 요청사항이 있으면 여기에 입력해 주세요")
		case fieldProduct:
			row := m.draft.Item(cur.rowID)
			if row != nil && row.Category == models.CategoryOther {
				m = m.startEditing(row.Product, "잡화(기타) 직접입력")
			} else {
				m = m.cycleProduct(cur.rowID, 1)
			}
		case fieldQuantity:
			if row := m.draft.Item(cur.rowID); row != nil {
				m = m.startEditing(row.Quantity, "수량")
			}
		case fieldSubmit:
			return m.trySubmit()
		}
	}
	return m, nil
}

func (m Model) updateOrderEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.editing = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m.commitEdit(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startEditing(value, placeholder string) Model {
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	m.input.Focus()
	m.editing = true
	return m
}

// commitEdit writes the edited value back into the draft and reports
// the edit to the focus controller so a marker on this exact row can
// clear.
func (m Model) commitEdit() Model {
	value := m.input.Value()
	cur := m.currentField()

	switch cur.kind {
	case fieldDate:
		m.draft.Date = strings.TrimSpace(value)
	case fieldNote:
		m.draft.Note = value
	case fieldProduct:
		m.draft.SetProduct(cur.rowID, value, m.svc.Catalog().UnitFor(value))
		m.svc.Focus().ProductEdited(cur.rowID, value)
	case fieldQuantity:
		if row := m.draft.Item(cur.rowID); row != nil && row.Category != models.CategoryOther {
			value = DigitsOnly(value)
		}
		m.draft.SetQuantity(cur.rowID, value)
		m.svc.Focus().QuantityEdited(cur.rowID, value)
	}

	m.editing = false
	m.input.Blur()
	return m
}

func (m Model) addRow(category models.Category) Model {
	row := m.draft.AddItem(category)
	m.cursor = m.fieldIndex(fieldProduct, row.ID)
	return m
}

func (m Model) cycleField(cur formField, delta int) Model {
	switch cur.kind {
	case fieldBranch:
		return m.cycleBranch(delta)
	case fieldProduct:
		if row := m.draft.Item(cur.rowID); row != nil && row.Category != models.CategoryOther {
			return m.cycleProduct(cur.rowID, delta)
		}
	}
	return m
}

func (m Model) cycleBranch(delta int) Model {
	branches := m.svc.Catalog().Branches()
	if len(branches) == 0 {
		return m
	}
	idx := -1
	for i, b := range branches {
		if b == m.draft.Branch {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
		if delta < 0 {
			idx = len(branches) - 1
		}
	} else {
		idx = (idx + delta + len(branches)) % len(branches)
	}
	m.draft.Branch = branches[idx]
	return m
}

func (m Model) cycleProduct(rowID string, delta int) Model {
	row := m.draft.Item(rowID)
	if row == nil {
		return m
	}
	products := m.svc.Catalog().Products(row.Category)
	if len(products) == 0 {
		return m
	}
	idx := -1
	for i, p := range products {
		if p == row.Product {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
		if delta < 0 {
			idx = len(products) - 1
		}
	} else {
		idx = (idx + delta + len(products)) % len(products)
	}
	product := products[idx]
	m.draft.SetProduct(rowID, product, m.svc.Catalog().UnitFor(product))
	m.svc.Focus().ProductEdited(rowID, product)
	return m
}

// trySubmit gates the draft and either opens the submit confirmation or
// shows the failure, steering focus to the offending row.
func (m Model) trySubmit() (tea.Model, tea.Cmd) {
	if err := m.svc.Check(m.draft); err != nil {
		return m.withFailure(err), nil
	}
	m.errMsg = ""
	m.confirm = confirmSubmit
	m.confirmMsg = "이대로 주문하시겠습니까?"
	m.confirmYes = true
	return m, nil
}

// withFailure surfaces a validation failure: message line plus cursor
// jump to the marked row, mirroring the scroll-and-highlight recovery
// of the form.
func (m Model) withFailure(err error) Model {
	if f, ok := err.(*validation.Failure); ok {
		m.errMsg = f.Message()
	} else {
		m.errMsg = err.Error()
	}
	ctrl := m.svc.Focus()
	if id := ctrl.ProductError(); id != "" {
		m.cursor = m.fieldIndex(fieldProduct, id)
	} else if id := ctrl.QuantityError(); id != "" {
		m.cursor = m.fieldIndex(fieldQuantity, id)
	}
	return m
}

func (m Model) viewOrder() string {
	var b strings.Builder
	cur := m.currentField()
	ctrl := m.svc.Focus()

	b.WriteString(m.styles.Subtitle.Render("주문하기"))
	b.WriteString("\n\n")

	branch := m.draft.Branch
	if branch == "" {
		branch = m.styles.Faint.Render("지점 선택 (←/→)")
	}
	b.WriteString(m.formLine(cur.kind == fieldBranch, "지점      ", branch))

	date := m.draft.Date
	if m.editing && cur.kind == fieldDate {
		date = m.input.View()
	}
	b.WriteString(m.formLine(cur.kind == fieldDate, "발주일자  ", date))

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("1 야채 · 2 양념 · 3 소스 · 4 잡화(기타) 품목추가 · d 삭제"))
	b.WriteString("\n")

	for _, category := range models.Categories {
		rows := m.draft.ItemsIn(category)
		if len(rows) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Category.Render("[" + models.DisplayLabel(category) + "]"))
		b.WriteString("\n")
		for _, row := range rows {
			b.WriteString(m.itemRowLine(row, cur, ctrl.ProductError(), ctrl.QuantityError()))
		}
	}
	if len(m.draft.Items) == 0 {
		b.WriteString(m.styles.Faint.Render("위 버튼키를 눌러 품목을 추가하세요."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	note := m.draft.Note
	if m.editing && cur.kind == fieldNote {
		note = m.input.View()
	} else if note == "" {
		note = m.styles.Faint.Render("(요청사항 없음)")
	}
	b.WriteString(m.formLine(cur.kind == fieldNote, "요청사항  ", note))

	submit := "[ 제출하기 ]"
	if cur.kind == fieldSubmit {
		submit = m.styles.Selected.Render(submit)
	}
	b.WriteString("\n" + submit + "\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMessage.Render(m.errMsg))
		b.WriteString("\n")
	}

	if len(m.draft.Items) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Category.Render("주문내용 정리"))
		b.WriteString("\n")
		for _, line := range ItemLines(m.draft.Items) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("j/k 이동 · Enter 선택/편집 · C-s 제출 · Esc 뒤로가기"))
	return b.String()
}

func (m Model) formLine(selected bool, label, value string) string {
	marker := "  "
	if selected {
		marker = "▸ "
	}
	line := marker + label + value + "\n"
	if selected && !m.editing {
		return m.styles.Selected.Render(strings.TrimRight(line, "\n")) + "\n"
	}
	return line
}

// itemRowLine renders one product/quantity row, applying the error
// highlight from the focus controller to exactly the marked field.
func (m Model) itemRowLine(row models.ItemRow, cur formField, productErr, quantityErr string) string {
	product := row.Product
	if product == "" {
		product = "품명 선택"
	}
	if m.editing && cur.kind == fieldProduct && cur.rowID == row.ID {
		product = m.input.View()
	} else if productErr == row.ID {
		product = m.styles.ErrorField.Render(product)
	} else if cur.kind == fieldProduct && cur.rowID == row.ID {
		product = m.styles.Selected.Render(product)
	}

	quantity := row.Quantity
	if quantity == "" {
		quantity = "수량"
	}
	if m.editing && cur.kind == fieldQuantity && cur.rowID == row.ID {
		quantity = m.input.View()
	} else if quantityErr == row.ID {
		quantity = m.styles.ErrorField.Render(quantity)
	} else if cur.kind == fieldQuantity && cur.rowID == row.ID {
		quantity = m.styles.Selected.Render(quantity)
	}

	line := "  • " + product + "  " + quantity
	if row.Unit != "" {
		line += " " + row.Unit
	}
	return line + "\n"
}
