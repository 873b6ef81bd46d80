package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
	"github.com/danielgomezobraztsov/web-presentation/internal/usecase"
)

type scenario int

const (
	scenarioUser scenario = iota
	scenarioProduct
	scenarioInvalid
	scenarioRender
	scenarioQuit
)

// scenarioRequest returns the demo request a menu scenario sends.
func scenarioRequest(sc scenario) domain.RawRequest {
	switch sc {
	case scenarioUser:
		return usecase.UserDemoRequest()
	case scenarioProduct:
		return usecase.ProductDemoRequest()
	default:
		return usecase.InvalidDemoRequest()
	}
}

func cmdRunScenario(deps Deps, name string, sc scenario) tea.Cmd {
	return func() tea.Msg {
		switch sc {
		case scenarioUser, scenarioProduct, scenarioInvalid:
			if deps.Controller == nil {
				return scenarioDoneMsg{name: name, err: errors.New("Controller is nil")}
			}
			out, err := deps.Controller.HandleRequest(scenarioRequest(sc))
			return scenarioDoneMsg{name: name, output: out, err: err}

		case scenarioRender:
			if deps.Renderer == nil {
				return scenarioDoneMsg{name: name, err: errors.New("Renderer is nil")}
			}
			page := usecase.DemoPage()
			frags, err := deps.Renderer.Fragments(page)
			if err != nil {
				return scenarioDoneMsg{name: name, err: err}
			}
			out, err := deps.Renderer.Execute(page)
			return scenarioDoneMsg{name: name, output: out, fragments: frags, err: err}

		default:
			return scenarioDoneMsg{name: name, err: &domain.OpError{
				Op:   "tui.scenario",
				Kind: domain.KindInvalidRequest,
				Err:  domain.ErrInvalidRequest,
			}}
		}
	}
}
