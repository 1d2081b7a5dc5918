package tui

import (
	"errors"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/payment"
	"github.com/Veraticus/pix-flow/internal/qrcode"
	"github.com/Veraticus/pix-flow/internal/receipt"
	"github.com/Veraticus/pix-flow/internal/router"
	"github.com/Veraticus/pix-flow/internal/scanner"
	"github.com/Veraticus/pix-flow/internal/service"
	"github.com/Veraticus/pix-flow/internal/statement"
	"github.com/Veraticus/pix-flow/internal/tui/components"
	"github.com/Veraticus/pix-flow/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state.
type Model struct {
	theme    themes.Theme
	lastErr  error
	store    service.ProfileStore
	scanner  *scanner.Manager
	router   *router.Router
	book     *statementBook
	state    State
	config   Config
	keymap   KeyMap
	help     help.Model
	spinner  spinner.Model
	form     components.SetupFormModel
	extrato  components.StatementListModel
	width    int
	height   int
	fullHelp bool
	quitting bool
	ready    bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	mgr := scanner.NewManager(cfg.Engines,
		scanner.WithConfig(cfg.ScannerConfig),
		scanner.WithFacing(cfg.Facing),
		scanner.WithPolicy(cfg.ScannerPolicy),
	)
	mgr.OnDecode(func(r scanner.Result) tea.Cmd {
		return scanSucceeded(mgr, r)
	})

	book := &statementBook{now: cfg.Now, rng: cfg.Rand}

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = spin.Style.Foreground(cfg.Theme.Primary)

	return Model{
		theme:   cfg.Theme,
		config:  cfg,
		store:   cfg.Store,
		scanner: mgr,
		router:  router.New(mgr, book),
		book:    book,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		spinner: spin,
		form:    components.NewSetupForm(cfg.Theme),
		extrato: components.NewStatementList(cfg.Theme),
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Init loads the profile and shows the home screen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.router.NavigateTo(model.ScreenHome),
		m.loadProfile(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.scanner.Update(msg); ok {
		return m, cmd
	}
	if m.router.Update(msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.extrato.Resize(min(msg.Width-4, 72))
		return m, nil

	case profileLoadedMsg:
		return m.handleProfileLoaded(msg)

	case components.SetupSubmittedMsg:
		return m, m.saveProfile(msg.Profile)

	case profileSavedMsg:
		return m.handleProfileSaved(msg)

	case scanDecodedMsg:
		return m.handleScanDecoded(msg)

	case paymentProcessedMsg:
		return m.handlePaymentProcessed()

	case components.StatementSelectedMsg:
		return m.handleStatementSelected(msg)

	case spinner.TickMsg:
		if !m.state.Processing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input messages belong to the form.
	if m.router.ModalVisible() {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key press to the overlay or the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen
	}

	if !m.ready {
		return m, nil
	}

	if m.router.ModalVisible() {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	// The processing overlay blocks the screen underneath.
	if m.state.Processing {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case key.Matches(msg, m.keymap.Help):
		m.fullHelp = !m.fullHelp
		return m, nil
	}

	switch m.router.Current() {
	case model.ScreenHome:
		switch {
		case key.Matches(msg, m.keymap.Scan):
			cmd := m.navigate(model.ScreenScanner)
			return m, cmd
		case key.Matches(msg, m.keymap.Statement):
			cmd := m.navigate(model.ScreenExtrato)
			return m, cmd
		}

	case model.ScreenScanner:
		switch {
		case key.Matches(msg, m.keymap.Simulate):
			return m, m.simulateScan()
		case key.Matches(msg, m.keymap.Back):
			cmd := m.navigate(model.ScreenHome)
			return m, cmd
		}

	case model.ScreenPaymentDetails:
		switch {
		case key.Matches(msg, m.keymap.Confirm):
			return m.processPayment()
		case key.Matches(msg, m.keymap.Back):
			cmd := m.navigate(model.ScreenHome)
			return m, cmd
		}

	case model.ScreenReceipt:
		switch {
		case key.Matches(msg, m.keymap.Statement):
			cmd := m.navigate(model.ScreenExtrato)
			return m, cmd
		case key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.Select):
			cmd := m.navigate(model.ScreenHome)
			return m, cmd
		}

	case model.ScreenExtrato:
		if key.Matches(msg, m.keymap.Back) {
			cmd := m.navigate(model.ScreenHome)
			return m, cmd
		}
		var cmd tea.Cmd
		m.extrato, cmd = m.extrato.Update(msg)
		return m, cmd

	default:
		if key.Matches(msg, m.keymap.Back) {
			cmd := m.navigate(model.ScreenHome)
			return m, cmd
		}
	}
	return m, nil
}

// navigate switches screens and refreshes the extrato list when the
// statement was rebuilt.
func (m *Model) navigate(id model.ScreenID) tea.Cmd {
	cmd := m.router.NavigateTo(id)
	if id == model.ScreenExtrato {
		m.extrato.SetGroups(m.book.Groups())
	}
	return cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if stop := m.scanner.Stop(); stop != nil {
		return m, tea.Sequence(stop, tea.Quit)
	}
	return m, tea.Quit
}

// scanSucceeded stops the session before the payment screen is shown, so no
// stale session runs underneath it.
func scanSucceeded(s *scanner.Manager, r scanner.Result) tea.Cmd {
	stop := s.Stop()
	return tea.Batch(stop, func() tea.Msg {
		return scanDecodedMsg{result: r}
	})
}

// simulateScan feeds the demo payload through the decode path.
func (m Model) simulateScan() tea.Cmd {
	return scanSucceeded(m.scanner, scanner.Result{
		Text:      qrcode.DemoPayload,
		Format:    "QR_CODE",
		DecodedAt: m.config.Now(),
	})
}

func (m Model) handleScanDecoded(msg scanDecodedMsg) (tea.Model, tea.Cmd) {
	p := payment.FromScan(msg.result.Text, m.config.Now())
	m.state.Payment = &p
	cmd := m.navigate(model.ScreenPaymentDetails)
	return m, cmd
}

// processPayment shows the overlay and starts the processing delay. The
// delay cannot be cancelled.
func (m Model) processPayment() (tea.Model, tea.Cmd) {
	if m.state.Processing {
		return m, nil
	}
	m.state.Processing = true
	return m, tea.Batch(m.spinner.Tick, waitForPayment(m.config.ProcessingDelay))
}

func (m Model) handlePaymentProcessed() (tea.Model, tea.Cmd) {
	m.state.Processing = false
	m.generateReceipt()
	cmd := m.navigate(model.ScreenReceipt)
	return m, cmd
}

func (m Model) handleStatementSelected(msg components.StatementSelectedMsg) (tea.Model, tea.Cmd) {
	if !msg.Transaction.OpensReceipt {
		return m, nil
	}
	p := statement.PaymentFor(msg.Transaction)
	m.state.Payment = &p
	m.generateReceipt()
	cmd := m.navigate(model.ScreenReceipt)
	return m, cmd
}

func (m *Model) generateReceipt() {
	r := receipt.Generate(m.state.Payment, m.state.User, m.config.Now(), m.config.Rand)
	m.state.Receipt = &r
}

func (m Model) handleProfileLoaded(msg profileLoadedMsg) (tea.Model, tea.Cmd) {
	m.ready = true
	if msg.err == nil && msg.profile != nil {
		m.state.User = msg.profile
		return m, nil
	}

	if msg.err != nil && !errors.Is(msg.err, common.ErrNotFound) {
		common.LogError(msg.err, "Failed to load profile", nil)
		m.lastErr = msg.err
	}
	m.router.ShowModal()
	return m, m.form.Init()
}

func (m Model) handleProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		common.LogError(msg.err, "Failed to save profile", nil)
		m.form.SetAlert("Não foi possível salvar seus dados: " + common.UserMessage(msg.err))
		return m, nil
	}

	p := msg.profile
	m.state.User = &p
	m.lastErr = nil
	m.router.HideModal()
	m.form = components.NewSetupForm(m.theme)
	return m, nil
}

// State returns the application state.
func (m Model) State() State {
	return m.state
}

// Router exposes screen visibility.
func (m Model) Router() *router.Router {
	return m.router
}

// Scanner exposes the scanning session manager.
func (m Model) Scanner() *scanner.Manager {
	return m.scanner
}
