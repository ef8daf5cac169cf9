package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/presenter"
	"github.com/MKhiriev/go-pydt-client/internal/service"
	"github.com/MKhiriev/go-pydt-client/models"
)

type screen int

const (
	screenMenu screen = iota
	screenAddAccount
	screenConfirmRemove
	screenLogs
	screenAbout
)

const (
	statusTTL          = 4 * time.Second
	shownNotifications = 3
	shownLogLines      = 20
	maxLabelWidth      = 72
)

type trayModel struct {
	ctx       context.Context
	presenter *presenter.Presenter
	accounts  service.AccountService
	logs      *logger.RingBuffer
	buildInfo models.AppBuildInfo

	menu    presenter.Menu
	idx     int
	screen  screen
	token   textinput.Model
	spinner spinner.Model
	busy    bool
	status  string
	errMsg  string
	removal string
}

func newTrayModel(ctx context.Context, p *presenter.Presenter, accounts service.AccountService, logs *logger.RingBuffer, info models.AppBuildInfo) trayModel {
	ti := textinput.New()
	ti.Placeholder = "PYDT token"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 256

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return trayModel{
		ctx:       ctx,
		presenter: p,
		accounts:  accounts,
		logs:      logs,
		buildInfo: info,
		token:     ti,
		spinner:   s,
	}
}

func (m trayModel) Init() tea.Cmd {
	return func() tea.Msg { return changedMsg{} }
}

func (m trayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changedMsg:
		m.reload()
		return m, nil
	case refreshDoneMsg:
		m.busy = false
		m.reload()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		cmd := m.setStatus("Refreshed")
		return m, cmd
	case activateDoneMsg:
		m.busy = false
		m.reload()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		cmd := m.setStatus(fmt.Sprintf("Play your turn in %s and save it in %s", msg.session.GameName, msg.session.SaveDir))
		return m, cmd
	case accountAddedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenMenu
		m.token.Reset()
		m.token.Blur()
		m.busy = true
		cmd := m.setStatus("Added account " + msg.account.Name)
		return m, tea.Batch(cmd, m.cmdRefresh(), m.spinner.Tick)
	case accountRemovedMsg:
		m.busy = false
		m.screen = screenMenu
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.busy = true
		cmd := m.setStatus("Removed account " + msg.name)
		return m, tea.Batch(cmd, m.cmdRefresh(), m.spinner.Tick)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}

	if m.screen == screenAddAccount {
		var cmd tea.Cmd
		m.token, cmd = m.token.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m trayModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenAddAccount:
		switch {
		case key.Matches(msg, keys.esc):
			m.screen = screenMenu
			m.token.Reset()
			m.token.Blur()
			m.errMsg = ""
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.errMsg = ""
			return m, tea.Batch(m.cmdAddAccount(m.token.Value()), m.spinner.Tick)
		}
		var cmd tea.Cmd
		m.token, cmd = m.token.Update(msg)
		return m, cmd

	case screenConfirmRemove:
		switch {
		case key.Matches(msg, keys.yes):
			m.busy = true
			return m, m.cmdRemoveAccount(m.removal)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.screen = screenMenu
		}
		return m, nil

	case screenLogs, screenAbout:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.logs) || key.Matches(msg, keys.about) {
			m.screen = screenMenu
		}
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < m.rows()-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		game, ok := m.currentGame()
		if !ok || m.busy {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, tea.Batch(m.cmdActivate(game.GameID), m.spinner.Tick)
	case key.Matches(msg, keys.refresh):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, tea.Batch(m.cmdRefresh(), m.spinner.Tick)
	case key.Matches(msg, keys.cancel):
		if m.menu.Session == nil {
			return m, nil
		}
		m.presenter.CancelWatch()
		m.reload()
		cmd := m.setStatus("Stopped watching for saves")
		return m, cmd
	case key.Matches(msg, keys.add):
		m.screen = screenAddAccount
		m.errMsg = ""
		cmd := m.token.Focus()
		return m, cmd
	case key.Matches(msg, keys.remove):
		account, ok := m.currentAccount()
		if !ok {
			return m, nil
		}
		m.removal = account.Name
		m.screen = screenConfirmRemove
	case key.Matches(msg, keys.logs):
		m.screen = screenLogs
	case key.Matches(msg, keys.about):
		m.screen = screenAbout
	}

	return m, nil
}

func (m *trayModel) reload() {
	m.menu = m.presenter.Menu()
	if m.idx >= m.rows() {
		m.idx = m.rows() - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *trayModel) setStatus(status string) tea.Cmd {
	m.status = status
	m.errMsg = ""
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// rows counts the selectable lines: games first, then accounts.
func (m trayModel) rows() int {
	return len(m.menu.Games) + len(m.menu.Accounts)
}

func (m trayModel) currentGame() (presenter.GameEntry, bool) {
	if m.idx < 0 || m.idx >= len(m.menu.Games) {
		return presenter.GameEntry{}, false
	}
	return m.menu.Games[m.idx], true
}

func (m trayModel) currentAccount() (presenter.AccountEntry, bool) {
	i := m.idx - len(m.menu.Games)
	if i < 0 || i >= len(m.menu.Accounts) {
		return presenter.AccountEntry{}, false
	}
	return m.menu.Accounts[i], true
}

func (m trayModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	p := m.presenter
	return func() tea.Msg {
		return refreshDoneMsg{err: p.Refresh(ctx)}
	}
}

func (m trayModel) cmdActivate(gameID string) tea.Cmd {
	ctx := m.ctx
	p := m.presenter
	return func() tea.Msg {
		session, err := p.Activate(ctx, gameID)
		return activateDoneMsg{session: session, err: err}
	}
}

func (m trayModel) cmdAddAccount(token string) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts
	return func() tea.Msg {
		account, err := accounts.ValidateAndAdd(ctx, token)
		return accountAddedMsg{account: account, err: err}
	}
}

func (m trayModel) cmdRemoveAccount(name string) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts
	return func() tea.Msg {
		return accountRemovedMsg{name: name, err: accounts.Remove(ctx, name)}
	}
}

func (m trayModel) View() string {
	switch m.screen {
	case screenAddAccount:
		content := "Add account\n\n" + m.token.View() + "\n"
		if m.busy {
			content += "\n" + m.spinner.View() + " validating..."
		}
		if m.errMsg != "" {
			content += "\n" + errorStyle.Render(m.errMsg)
		}
		content += "\n\n" + helpStyle.Render("enter: add   esc: back")
		return appStyle.Render(overlayBoxStyle.Render(content))
	case screenConfirmRemove:
		content := fmt.Sprintf("Remove account %q?\n\n", m.removal) + helpStyle.Render("y yes    n no")
		return appStyle.Render(overlayBoxStyle.Render(content))
	case screenLogs:
		return appStyle.Render(renderPage("LOGS", m.logTail(), "esc: back"))
	case screenAbout:
		return appStyle.Render(renderBuildInfo(m.buildInfo))
	}

	return appStyle.Render(renderPage(m.title(), m.menuBody(), m.help()))
}

func (m trayModel) title() string {
	title := "Play Your Damn Turn  " + stateIcon(m.menu.State)
	if m.busy {
		title += "  " + m.spinner.View()
	}
	return title
}

func (m trayModel) menuBody() string {
	var b strings.Builder

	b.WriteString("Games\n")
	switch {
	case !m.menu.Ready:
		b.WriteString("    loading...\n")
	case len(m.menu.Games) == 0:
		b.WriteString("    no games available\n")
	}
	for i, g := range m.menu.Games {
		label := fitText(g.Label(), maxLabelWidth)
		switch {
		case g.Watching:
			label = watchStyle.Render(label)
		case g.MyTurn:
			label = myTurnStyle.Render(label)
		}
		b.WriteString(m.cursor(i) + label + "\n")
	}

	b.WriteString("\nAccounts\n")
	if len(m.menu.Accounts) == 0 {
		b.WriteString("    press a to add a token\n")
	}
	for i, a := range m.menu.Accounts {
		line := a.Name
		if a.Error != "" {
			line += "  " + errorStyle.Render("("+fitText(a.Error, 40)+")")
		}
		b.WriteString(m.cursor(len(m.menu.Games)+i) + line + "\n")
	}

	if s := m.menu.Session; s != nil {
		b.WriteString("\n" + watchStyle.Render(fmt.Sprintf("Watching %s for the save of %s", s.SaveDir, s.GameName)) + "\n")
	}

	notices := m.presenter.Notifications()
	if n := len(notices); n > shownNotifications {
		notices = notices[n-shownNotifications:]
	}
	if len(notices) > 0 {
		b.WriteString("\n")
	}
	for _, n := range notices {
		line := n.At.Format("15:04") + " " + n.Title + ": " + n.Message
		if n.Kind != models.NotificationInfo {
			line = errorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m trayModel) cursor(row int) string {
	if row == m.idx {
		return "  > "
	}
	return "    "
}

func (m trayModel) help() string {
	parts := []string{"enter play turn", "r refresh", "a add account", "d remove account", "l logs", "v about", "q quit"}
	if m.menu.Session != nil {
		parts = append([]string{"c stop watching"}, parts...)
	}
	return strings.Join(parts, "  ")
}

func (m trayModel) logTail() string {
	if m.logs == nil {
		return ""
	}
	lines := m.logs.Lines()
	if n := len(lines); n > shownLogLines {
		lines = lines[n-shownLogLines:]
	}
	for i := range lines {
		lines[i] = fitText(lines[i], 120)
	}
	return strings.Join(lines, "\n")
}
