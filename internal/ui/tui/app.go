package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHome screen = iota
	screenRunning
	screenResult
)

type menuItem struct {
	title string
	desc  string
	sc    scenario
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr        screen
	menu       list.Model
	activeName string

	output    string
	fragments []string
	errMsg    string
	errDetail string
	toast     string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := []list.Item{
		menuItem{"User request", "type=user action=get_user user_id=123", scenarioUser},
		menuItem{"Product request", "type=product action=get_product product_id=456", scenarioProduct},
		menuItem{"Invalid request", "type=unknown action=invalid_action", scenarioInvalid},
		menuItem{"Render page", "Album and artist (stage 1), screen and field (stage 2)", scenarioRender},
		menuItem{"Quit", "Exit webpres", scenarioQuit},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "webpres"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		menu:  l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case scenarioDoneMsg:
		m.scr = screenResult
		m.activeName = msg.name
		m.output = msg.output
		m.fragments = msg.fragments
		m.errMsg = ""
		m.errDetail = ""
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			if m.deps.Debug {
				m.errDetail = msg.err.Error()
			}
			if m.deps.Logger != nil {
				m.deps.Logger.Error("scenario.failed", "scenario", msg.name, "error", msg.err.Error())
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m = m.home()
			return m, nil

		case "enter":
			if m.scr == screenHome {
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				if it.sc == scenarioQuit {
					return m, tea.Quit
				}
				m.scr = screenRunning
				m.activeName = it.title
				return m, cmdRunScenario(m.deps, it.title, it.sc)
			}

		case "esc", "b":
			if m.scr != screenHome {
				m = m.home()
				return m, nil
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) home() model {
	m.scr = screenHome
	m.activeName = ""
	m.output = ""
	m.fragments = nil
	m.errMsg = ""
	m.errDetail = ""
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("webpres") + "\n" +
		m.theme.Subtitle.Render("Application controller and two-step view") + "\n"

	if m.toast != "" {
		header += m.theme.Error.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenRunning:
		return wrap.Render(header + "\n" + m.theme.Card.Render("Running "+m.activeName+"…"))

	case screenResult:
		var body strings.Builder
		if m.errMsg != "" {
			body.WriteString(m.theme.Error.Render("✗ " + m.errMsg))
			if m.errDetail != "" {
				body.WriteString("\n")
				body.WriteString(m.theme.Help.Render(m.errDetail))
			}
		} else {
			body.WriteString(m.output)
		}
		if len(m.fragments) > 0 {
			body.WriteString("\n\n")
			body.WriteString(m.theme.Subtitle.Render("Fragments:"))
			for i, f := range m.fragments {
				body.WriteString(fmt.Sprintf("\n  %d. %s", i+1, m.theme.Fragment.Render(f)))
			}
		}

		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.activeName),
				body.String(),
				m.theme.Help.Render("esc/b back • q home"),
			),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
