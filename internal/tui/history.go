package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"balju/internal/query"
)

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.rangeEdit != 0 {
		return m.updateRangeEditing(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.page = pageHome
	case msg.String() == "q":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.scroll > 0 {
			m.scroll--
		}
	case key.Matches(msg, m.keys.Down):
		m.scroll++

	case key.Matches(msg, m.keys.CycleBranch):
		m = m.cycleBranchFilter()
	case key.Matches(msg, m.keys.ToggleSort):
		m.sortDesc = !m.sortDesc
		m.scroll = 0

	case key.Matches(msg, m.keys.EditFrom):
		m.rangeEdit = 1
		m.input.SetValue(m.fromDate)
		m.input.Placeholder = "시작일 YYYY-MM-DD"
		m.input.CursorEnd()
		m.input.Focus()
	case key.Matches(msg, m.keys.EditTo):
		m.rangeEdit = 2
		m.input.SetValue(m.toDate)
		m.input.Placeholder = "종료일 YYYY-MM-DD"
		m.input.CursorEnd()
		m.input.Focus()

	case key.Matches(msg, m.keys.PresetWeek):
		m.fromDate, m.toDate = WeekRange(m.now())
		m.scroll = 0
	case key.Matches(msg, m.keys.PresetMonth):
		m.fromDate, m.toDate = MonthRange(m.now())
		m.scroll = 0
	case key.Matches(msg, m.keys.PresetLastMonth):
		m.fromDate, m.toDate = LastMonthRange(m.now())
		m.scroll = 0
	case key.Matches(msg, m.keys.ResetRange):
		m.fromDate, m.toDate = DefaultRange(m.now())
		m.scroll = 0
	}
	return m, nil
}

func (m Model) updateRangeEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.rangeEdit = 0
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		value := strings.TrimSpace(m.input.Value())
		if m.rangeEdit == 1 {
			m.fromDate = value
		} else {
			m.toDate = value
		}
		m.rangeEdit = 0
		m.input.Blur()
		m.scroll = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleBranchFilter rotates through all branches plus "all".
func (m Model) cycleBranchFilter() Model {
	branches := m.svc.Catalog().Branches()
	options := append([]string{""}, branches...)
	idx := 0
	for i, b := range options {
		if b == m.branchFilter {
			idx = i
			break
		}
	}
	m.branchFilter = options[(idx+1)%len(options)]
	m.scroll = 0
	return m
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("주문내역확인"))
	b.WriteString("\n\n")

	branch := m.branchFilter
	if branch == "" {
		branch = "전체 지점"
	}
	from := m.fromDate
	to := m.toDate
	if m.rangeEdit == 1 {
		from = m.input.View()
	}
	if m.rangeEdit == 2 {
		to = m.input.View()
	}
	sortLabel := "최신순"
	if !m.sortDesc {
		sortLabel = "오래된순"
	}
	b.WriteString(branch + " · " + from + " ~ " + to + " · " + sortLabel + "\n")
	b.WriteString(m.styles.Faint.Render("(최대 1년전까지 검색 가능합니다)"))
	b.WriteString("\n\n")

	groups := m.svc.History(m.branchFilter, m.fromDate, m.toDate, m.sortDesc)
	if len(groups) == 0 {
		b.WriteString(m.styles.Faint.Render("등록된 주문이 없습니다."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderGroups(groups))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		"b 지점 · f/t 기간 · w/m/p 프리셋 · r 초기화 · o 정렬 · j/k 스크롤 · Esc 홈"))
	return b.String()
}

// renderGroups lays out the date buckets with their branch cards,
// clipped to the window by the scroll offset.
func (m Model) renderGroups(groups []query.DateGroup) string {
	var lines []string
	for _, group := range groups {
		header := "── " + FormatMonthDay(group.Date) + " ──"
		lines = append(lines, m.styles.DateHeader.Render(header))

		supplemental := query.Supplemental(group)
		for i, order := range group.Orders {
			title := "🏢 " + order.Branch
			if supplemental[i] {
				title += " " + m.styles.Supplemental.Render("(추가발주)")
			}
			card := []string{
				title,
				m.styles.Faint.Render("발주일자: " + order.Date),
			}
			card = append(card, ItemLines(order.Items)...)
			if order.Note != "" {
				card = append(card, "요청사항: "+order.Note)
			}
			card = append(card, m.styles.Faint.Render("등록일시: "+order.SubmittedAt))
			lines = append(lines, strings.Split(m.styles.Card.Render(strings.Join(card, "\n")), "\n")...)
		}
		lines = append(lines, "")
	}

	visible := m.height - 12
	if visible < 5 {
		visible = 5
	}
	if m.scroll > len(lines)-1 {
		m.scroll = len(lines) - 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	end := m.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[m.scroll:end], "\n") + "\n"
}
