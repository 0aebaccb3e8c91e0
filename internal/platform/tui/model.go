package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/precinct-outbreak/internal/audio"
	"github.com/vovakirdan/precinct-outbreak/internal/core"
	"github.com/vovakirdan/precinct-outbreak/internal/game"
	"github.com/vovakirdan/precinct-outbreak/internal/storage"
)

// Model is the Bubble Tea model driving a survival session.
type Model struct {
	engine     *game.Engine
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	tracker    inputTracker
	startedAt  time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model wired to a fresh engine.
// A nil sink discards sound cues.
func NewModel(tun game.Tuning, store *storage.Store, cfg core.RuntimeConfig, sink audio.Sink) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	engine := game.New(tun, cfg.Seed, sink)
	engine.SetViewport(viewportPx(cfg.ScreenW, cfg.ScreenH))

	m := Model{
		engine:    engine,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewKeyMapper(),
		startedAt: time.Now(),
	}
	// Aim straight ahead until the first mouse event arrives
	m.tracker.aim = core.V(float64(cfg.ScreenW)*cellPxW/2, float64(cfg.ScreenH)*cellPxH/2)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	status := m.engine.Status()
	action := m.keys.MapKey(msg)

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionBack:
		if status.GameOver || status.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		m.engine.TogglePause()

	case ActionPause:
		m.engine.TogglePause()

	case ActionRestart:
		if status.GameOver {
			m.config.Seed = time.Now().UnixNano()
			m.engine.Reset(m.config.Seed)
			m.runSaved = false
			m.startedAt = time.Now()
		}

	case ActionReload:
		m.engine.StartReload()

	case ActionSwapWeapon:
		m.engine.SwapWeapon()

	case ActionSlot1:
		m.engine.SwitchWeapon(0)

	case ActionSlot2:
		m.engine.SwitchWeapon(1)

	case ActionGrenade:
		m.engine.ThrowGrenade(m.tracker.aim)

	default:
		m.tracker.Apply(action, time.Now())
	}

	return m, nil
}

// handleMouse processes mouse aim and fire.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Cell coordinates map to viewport pixels through the cell size
	m.tracker.aim = core.V(
		(float64(msg.X)+0.5)*cellPxW,
		(float64(msg.Y)+0.5)*cellPxH,
	)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.tracker.Apply(ActionFire, time.Now())
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.engine.SetViewport(viewportPx(msg.Width, msg.Height))
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dtMs := 1000.0 / float64(m.config.TickRate)
	in := m.tracker.Frame(time.Now())
	m.engine.Update(dtMs, in)

	// Save the run on game over (once)
	status := m.engine.Status()
	if status.GameOver && !m.runSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveRun(storage.RunRecord{
				Score:        status.Score,
				Wave:         status.Wave,
				Kills:        status.Kills,
				DoorsOpened:  m.engine.State.Stats.DoorsOpened,
				MoneySpent:   m.engine.State.Stats.MoneySpent,
				DurationSecs: int(time.Since(m.startedAt).Seconds()),
				Seed:         m.engine.Seed(),
			})
		}
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderFrame()

	dir := filepath.Join(os.Getenv("HOME"), ".outbreak", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("outbreak_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// renderFrame draws the current engine state into the screen buffer.
func (m *Model) renderFrame() {
	drawSession(m.screen, m.engine, m.tracker.aim)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderFrame()
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(tun game.Tuning, store *storage.Store, cfg core.RuntimeConfig, sink audio.Sink) error {
	model := NewModel(tun, store, cfg, sink)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse aim and fire
	)

	_, err := p.Run()
	return err
}
