package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sightcast/narrator/internal/app"
	"github.com/sightcast/narrator/internal/theme"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// appEventMsg re-delivers one asynchronous app event on the program
// goroutine.
type appEventMsg struct {
	event app.Event
}

// Model implements the Bubble Tea model for the narrator demo.
type Model struct {
	app         *app.App
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI shell over the assembled narrator.
func NewModel(a *app.App, width, height int) *Model {
	m := &Model{app: a}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// App exposes the underlying assembly for tests.
func (m *Model) App() *app.App {
	return m.app
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return waitForAppEvent(m.app.Events)
}

// Update responds to Bubble Tea messages through the typed handler
// registry.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(appEventMsg{}):       m.handleAppEventMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	ev, ok := translateKey(keyMsg)
	if !ok {
		return nil
	}
	m.app.HandleKey(ev)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	return nil
}

func (m *Model) handleAppEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(appEventMsg)
	if !ok {
		return nil
	}
	m.app.Apply(eventMsg.event)
	return waitForAppEvent(m.app.Events)
}

// waitForAppEvent blocks on the app's event channel so timer callbacks
// reach the model as ordinary messages.
func waitForAppEvent(events <-chan app.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return appEventMsg{event: ev}
	}
}
