package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/game"
	"github.com/lixenwraith/grid-snake/render"
	"github.com/lixenwraith/grid-snake/terminal"
)

// frontend is a renderer and key source pair sharing one terminal
type frontend interface {
	game.Renderer
	game.KeySource

	// ShowReport draws the final board with the end-of-game banner
	ShowReport(res game.Result) error

	// Close restores the terminal, safe to call more than once
	Close()
}

type screenFrontend struct {
	*render.ScreenRenderer
	*render.ScreenKeys
	screen tcell.Screen
	closed bool
}

func newScreenFrontend() (*screenFrontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()

	return wrapScreen(screen), nil
}

func wrapScreen(screen tcell.Screen) *screenFrontend {
	return &screenFrontend{
		ScreenRenderer: render.NewScreenRenderer(screen),
		ScreenKeys:     render.NewScreenKeys(screen),
		screen:         screen,
	}
}

func (f *screenFrontend) ShowReport(res game.Result) error {
	f.ScreenRenderer.ShowReport(res)
	return nil
}

func (f *screenFrontend) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.screen.Fini()
}

type plainFrontend struct {
	*render.PlainRenderer
	*render.PlainKeys
	term *terminal.Terminal
}

func newPlainFrontend() (*plainFrontend, error) {
	term := terminal.New()
	if err := term.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return &plainFrontend{
		PlainRenderer: render.NewPlainRenderer(term),
		PlainKeys:     render.NewPlainKeys(term),
		term:          term,
	}, nil
}

func (f *plainFrontend) ShowReport(res game.Result) error {
	if err := f.Render(res.Final); err != nil {
		return err
	}
	return render.WriteReport(f.term, res, "\r\n")
}

func (f *plainFrontend) Close() {
	f.term.Fini()
}

func newFrontend(ui string) (frontend, error) {
	switch ui {
	case uiScreen:
		return newScreenFrontend()
	case uiPlain:
		return newPlainFrontend()
	default:
		return nil, fmt.Errorf("unknown ui %q, want %s or %s", ui, uiScreen, uiPlain)
	}
}
