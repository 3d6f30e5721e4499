// Package tui is the terminal presentation layer. It owns no order
// state of its own: every mutation goes through the ordering service,
// and highlights follow the error-focus controller.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"balju/internal/models"
	"balju/internal/ordering"
)

type page int

const (
	pageHome page = iota
	pageOrder
	pageDone
	pageHistory
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmExit
	confirmRestore
	confirmSubmit
)

// Model is the bubbletea model for the whole application.
type Model struct {
	svc    *ordering.Service
	keys   KeyMap
	styles Styles
	now    func() time.Time

	width  int
	height int
	page   page

	menuCursor int

	// Order form.
	draft        *models.Draft
	cursor       int
	editing      bool
	input        textinput.Model
	errMsg       string
	pendingDraft *models.Draft

	// Confirmation modal.
	confirm    confirmKind
	confirmMsg string
	confirmYes bool

	// History filters.
	branchFilter string
	fromDate     string
	toDate       string
	rangeEdit    int // 0 none, 1 from, 2 to
	sortDesc     bool
	scroll       int
}

// New builds the application model around the ordering service.
func New(svc *ordering.Service) Model {
	input := textinput.New()
	input.CharLimit = 64

	m := Model{
		svc:      svc,
		keys:     DefaultKeyMap,
		styles:   DefaultStyles(),
		now:      time.Now,
		input:    input,
		sortDesc: true,
	}
	m.fromDate, m.toDate = DefaultRange(m.now())
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.confirm != confirmNone {
			return m.updateConfirm(msg)
		}
		switch m.page {
		case pageHome:
			return m.updateHome(msg)
		case pageOrder:
			return m.updateOrder(msg)
		case pageDone:
			return m.updateDone(msg)
		case pageHistory:
			return m.updateHistory(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("🧺 경북식품 주문시스템 📦"))
	b.WriteString("\n\n")

	switch m.page {
	case pageHome:
		b.WriteString(m.viewHome())
	case pageOrder:
		b.WriteString(m.viewOrder())
	case pageDone:
		b.WriteString(m.viewDone())
	case pageHistory:
		b.WriteString(m.viewHistory())
	}

	if m.confirm != confirmNone {
		b.WriteString("\n")
		b.WriteString(m.viewConfirm())
	}
	return b.String()
}

// --- Home ---

var menuEntries = []struct {
	label string
	hint  string
}{
	{"주문하기", "새 주문을 등록합니다"},
	{"주문내역확인", "모든 주문을 확인합니다"},
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(menuEntries)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.menuCursor == 0 {
			return m.enterOrderPage()
		}
		return m.enterHistoryPage()
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewHome() string {
	var b strings.Builder
	for i, entry := range menuEntries {
		label := "  " + entry.label
		if i == m.menuCursor {
			label = m.styles.Selected.Render("▸ " + entry.label)
		}
		b.WriteString(label)
		b.WriteString("  ")
		b.WriteString(m.styles.Faint.Render(entry.hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("j/k 이동 · Enter 선택 · q 종료"))
	return b.String()
}

// enterOrderPage prepares the wizard, offering to restore a saved draft
// when one exists.
func (m Model) enterOrderPage() (tea.Model, tea.Cmd) {
	if saved := m.svc.LoadDraft(); saved != nil {
		m.pendingDraft = saved
		m.confirm = confirmRestore
		m.confirmMsg = "임시저장된 내용이 있습니다. 불러올까요?"
		m.confirmYes = true
		return m, nil
	}
	m.draft = models.NewDraft(ISODate(m.now()))
	m.cursor = 0
	m.errMsg = ""
	m.page = pageOrder
	return m, nil
}

func (m Model) enterHistoryPage() (tea.Model, tea.Cmd) {
	m.page = pageHistory
	m.scroll = 0
	return m, nil
}

// --- Done ---

func (m Model) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Back):
		m.page = pageHome
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewDone() string {
	return "주문이 정상적으로 접수되었습니다.\n\n" +
		m.styles.Help.Render("Enter 홈으로 돌아가기")
}

// --- Confirmation modal ---

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.confirmYes = !m.confirmYes
	case msg.String() == "y":
		return m.resolveConfirm(true)
	case msg.String() == "n", key.Matches(msg, m.keys.Back):
		return m.resolveConfirm(false)
	case key.Matches(msg, m.keys.Select):
		return m.resolveConfirm(m.confirmYes)
	}
	return m, nil
}

func (m Model) resolveConfirm(yes bool) (tea.Model, tea.Cmd) {
	kind := m.confirm
	m.confirm = confirmNone
	m.confirmMsg = ""

	switch kind {
	case confirmExit:
		if yes {
			m.svc.SaveDraft(m.draft)
			m.page = pageHome
		}
	case confirmRestore:
		if yes {
			m.draft = m.pendingDraft
		} else {
			m.svc.DiscardDraft()
			m.draft = models.NewDraft(ISODate(m.now()))
		}
		m.pendingDraft = nil
		m.cursor = 0
		m.errMsg = ""
		m.page = pageOrder
	case confirmSubmit:
		if yes {
			if _, err := m.svc.Submit(m.draft); err == nil {
				m.draft = nil
				m.page = pageDone
			} else {
				m = m.withFailure(err)
			}
		}
	}
	return m, nil
}

func (m Model) viewConfirm() string {
	yes := m.styles.ModalChoice.Render("네")
	no := m.styles.ModalChoice.Render("아니오")
	if m.confirmYes {
		yes = m.styles.ModalActive.Render("네")
	} else {
		no = m.styles.ModalActive.Render("아니오")
	}
	body := m.confirmMsg + "\n\n" + yes + "  " + no
	return m.styles.ModalBox.Render(body)
}
