package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zorlin/sparx/internal/cluster"
	"github.com/Zorlin/sparx/internal/inventory"
	"github.com/Zorlin/sparx/internal/probe"
	"github.com/Zorlin/sparx/internal/settings"
	"github.com/Zorlin/sparx/internal/sshprep"
)

// probeResultMsg delivers one finished probe from the background workers.
// It carries its round's channel so the pump re-arms on the round it was
// draining, not on whichever round is currently live.
type probeResultMsg struct {
	ch     <-chan probe.Result
	result probe.Result
}

// probeDoneMsg signals that one round's result channel has drained.
type probeDoneMsg struct {
	ch <-chan probe.Result
}

// keyMap defines the wizard key bindings for the help footer.
type keyMap struct {
	Navigate key.Binding
	Toggle   key.Binding
	Role     key.Binding
	Delete   key.Binding
	Probe    key.Binding
	Confirm  key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Toggle, k.Role, k.Delete, k.Probe, k.Confirm, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Toggle, k.Role, k.Delete},
		{k.Probe, k.Confirm, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("↑/↓/←/→", "navigate"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "enable/disable"),
		),
		Role: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "cycle role"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove host"),
		),
		Probe: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "re-probe"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Paths tells the wizard where its three files live.
type Paths struct {
	Inventory string
	Cluster   string
	Settings  string
}

// Model is the single bubbletea model driving the whole wizard. It is the
// only owner of the store, the settings, and the focus state; probe workers
// never touch any of them and report back through probeResultMsg only.
type Model struct {
	store     *inventory.Store
	settings  *settings.Settings
	paths     Paths
	generator *cluster.Generator
	prober    *probe.Prober

	focus     Focus
	confirmed bool

	usernameInput textinput.Model
	patternInput  textinput.Model
	vipInput      textinput.Model

	// probeCh is non-nil while a probe round is in flight.
	probeCh <-chan probe.Result

	errLine string
	status  string

	help help.Model
	keys keyMap

	Width  int
	Height int
}

// NewModel loads the inventory and settings from their files and builds the
// initial wizard state. A missing inventory file starts an empty session.
func NewModel(paths Paths) (Model, error) {
	store, username, err := inventory.Load(paths.Inventory)
	if err != nil {
		return Model{}, fmt.Errorf("failed to load inventory: %w", err)
	}

	cfg := settings.Load(paths.Settings)
	// A username saved in the settings file wins; the inventory file's
	// user@ prefix only fills the gap when nothing was persisted.
	cfg.ResolveUsername(username)
	if cfg.SSHKeyPath == "" {
		if dir, err := sshprep.DefaultKeyDir(); err == nil {
			cfg.SSHKeyPath = sshprep.DetectKeyPath(dir)
		}
	}

	usernameInput := textinput.New()
	usernameInput.Prompt = ""
	usernameInput.Placeholder = "deployment user"
	usernameInput.CharLimit = 64
	usernameInput.SetValue(cfg.Username)
	usernameInput.Focus()

	patternInput := textinput.New()
	patternInput.Prompt = ""
	patternInput.Placeholder = "host, pattern like node[1-4], or IP"
	patternInput.CharLimit = 253

	vipInput := textinput.New()
	vipInput.Prompt = ""
	vipInput.Placeholder = "virtual IP for HA, e.g. 192.168.1.200/24 (optional)"
	vipInput.CharLimit = 64
	vipInput.SetValue(cfg.VirtualIP)

	return Model{
		store:         store,
		settings:      cfg,
		paths:         paths,
		generator:     cluster.NewGenerator(paths.Cluster),
		prober:        probe.New(),
		focus:         Focus{Region: RegionUsername, Row: NoRow},
		usernameInput: usernameInput,
		patternInput:  patternInput,
		vipInput:      vipInput,
		help:          help.New(),
		keys:          defaultKeyMap(),
	}, nil
}

// Confirmed reports whether the session ended on the continue button rather
// than a cancel key.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Hosts returns a snapshot of the inventory for callers inspecting the
// session after the program exits.
func (m Model) Hosts() []inventory.Host {
	return m.store.Hosts()
}

// Init starts an initial probe round for hosts loaded from a previous
// session.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.store.Len() > 0 {
		if cmd := m.startProbeAll(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// waitForProbe pumps the next probe result out of the channel as a message.
// It reschedules itself from Update until the channel closes. Each round
// keeps its own pump so a newly started round never strands results still
// queued on an earlier round's channel.
func waitForProbe(ch <-chan probe.Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return probeDoneMsg{ch: ch}
		}
		return probeResultMsg{ch: ch, result: r}
	}
}

// startProbeAll marks every host as checking and launches a probe round.
func (m *Model) startProbeAll() tea.Cmd {
	return m.startProbe(allIndices(m.store.Len()))
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// startProbe launches probes for the given store indices.
func (m *Model) startProbe(indices []int) tea.Cmd {
	if len(indices) == 0 {
		return nil
	}

	m.store.MarkChecking(indices)

	targets := make([]probe.Target, 0, len(indices))
	for _, i := range indices {
		if h, ok := m.store.Host(i); ok {
			targets = append(targets, probe.Target{Index: i, Name: h.Name})
		}
	}

	m.probeCh = m.prober.Start(targets)
	return waitForProbe(m.probeCh)
}

// Update handles all messages for the wizard.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case probeResultMsg:
		r := msg.result
		if m.store.ApplyProbe(r.Index, r.Name, r.Status, r.IPAddress) {
			// Reachability feeds the generated config's addresses.
			m.persist()
		}
		return m, waitForProbe(msg.ch)

	case probeDoneMsg:
		// An older round draining must not mark the live round finished.
		if msg.ch == m.probeCh {
			m.probeCh = nil
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

// handleKey routes one key press: global cancel keys first, then focus
// navigation, then region-specific actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "q":
		if !m.inTextInput() {
			return m, tea.Quit
		}
	}

	if nav, ok := m.navKeyFor(msg); ok {
		m.commitInputs()
		next := Move(m.focus, nav, m.store.Len())
		if next != m.focus {
			m.setFocus(next)
			return m, nil
		}
		if m.focus.Region == RegionTable {
			return m, nil
		}
		// Unhandled direction inside a text input falls through so the
		// input can move its cursor.
		return m.updateFocusedInput(msg)
	}

	switch m.focus.Region {
	case RegionTable:
		return m.handleTableKey(msg)

	case RegionPatternInput:
		if msg.String() == "enter" {
			return m.addPattern()
		}

	case RegionAddButton:
		if msg.String() == "enter" {
			return m.addPattern()
		}
		return m, nil

	case RegionContinueButton:
		if msg.String() == "enter" {
			return m.confirm()
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// navKeyFor maps a terminal key to a navigation event, or reports false for
// keys the focused widget should consume itself. Left and right stay inside
// text inputs for cursor movement; the one exception is right at the end of
// the pattern text, which hops to the add button.
func (m Model) navKeyFor(msg tea.KeyMsg) (NavKey, bool) {
	switch msg.String() {
	case "up":
		return KeyUp, true
	case "down":
		return KeyDown, true
	case "enter":
		if m.focus.Region == RegionUsername {
			return KeyEnter, true
		}
		return 0, false
	case "left":
		if !m.inTextInput() {
			return KeyLeft, true
		}
		return 0, false
	case "right":
		if m.focus.Region == RegionPatternInput && m.patternInput.Position() >= len(m.patternInput.Value()) {
			return KeyRightAtEnd, true
		}
		if !m.inTextInput() {
			return KeyRight, true
		}
		return 0, false
	case "tab":
		return KeyDown, true
	case "shift+tab":
		return KeyUp, true
	}
	return 0, false
}

// handleTableKey applies per-row actions while the table holds focus.
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row := m.focus.Row
	if row == NoRow {
		return m, nil
	}

	switch msg.String() {
	case " ":
		if err := m.store.ToggleEnabled(row); err != nil {
			m.errLine = err.Error()
			return m, nil
		}
		m.persist()

	case "r":
		if _, err := m.store.CycleRole(row); err != nil {
			m.errLine = err.Error()
			return m, nil
		}
		m.persist()

	case "d":
		if err := m.store.Remove(row); err != nil {
			m.errLine = err.Error()
			return m, nil
		}
		m.focus = ClampRow(m.focus, m.store.Len())
		if m.store.Len() == 0 {
			m.focus = Focus{Region: RegionPatternInput, Row: NoRow}
			m.patternInput.Focus()
		}
		m.persist()

	case "p":
		m.errLine = ""
		m.status = "probing hosts..."
		return m, m.startProbeAll()
	}

	return m, nil
}

// addPattern expands the pattern input and adds the hosts. On validation
// failure the input text is preserved so the user can fix it in place.
func (m Model) addPattern() (tea.Model, tea.Cmd) {
	pattern := m.patternInput.Value()
	if pattern == "" {
		return m, nil
	}

	result, err := m.store.Add(pattern)
	if err != nil {
		var dup *inventory.DuplicateError
		switch {
		case errors.As(err, &dup):
			m.errLine = err.Error()
		case errors.Is(err, inventory.ErrInvalidHost):
			m.errLine = fmt.Sprintf("invalid host or pattern %q", pattern)
		default:
			m.errLine = err.Error()
		}
		return m, nil
	}

	m.errLine = ""
	m.patternInput.SetValue("")
	if len(result.Skipped) > 0 {
		m.status = fmt.Sprintf("added %d hosts, skipped duplicates: %s",
			len(result.Added), summarizeNames(result.Skipped, maxNamedSkips))
	} else {
		m.status = fmt.Sprintf("added %d hosts", len(result.Added))
	}

	if !m.persist() {
		return m, nil
	}
	return m, m.startProbe(result.Added)
}

// maxNamedSkips caps how many skipped host names fit on the status line.
const maxNamedSkips = 3

func summarizeNames(names []string, max int) string {
	if len(names) <= max {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(names[:max], ", "), len(names)-max)
}

// confirm finishes the wizard when the inventory has at least one host.
func (m Model) confirm() (tea.Model, tea.Cmd) {
	if m.store.Len() == 0 {
		m.errLine = "add at least one host before continuing"
		return m, nil
	}
	m.commitInputs()
	if !m.persist() {
		return m, nil
	}
	m.confirmed = true
	return m, tea.Quit
}

// commitInputs copies the text inputs into the settings and persists when
// something actually changed.
func (m *Model) commitInputs() {
	changed := false
	if v := m.usernameInput.Value(); v != m.settings.Username {
		m.settings.Username = v
		changed = true
	}
	if v := m.vipInput.Value(); v != m.settings.VirtualIP {
		m.settings.VirtualIP = v
		changed = true
	}
	if changed {
		m.persist()
	}
}

// persist writes the inventory file, the settings, and the cluster config in
// one funnel. Returns false and surfaces the error when any write fails; the
// triggering operation is considered aborted.
func (m *Model) persist() bool {
	if err := m.store.SaveFile(m.paths.Inventory, m.settings.Username); err != nil {
		m.errLine = fmt.Sprintf("failed to save inventory: %v", err)
		return false
	}
	if err := m.settings.Save(m.paths.Settings); err != nil {
		m.errLine = fmt.Sprintf("failed to save settings: %v", err)
		return false
	}
	if err := m.generator.Generate(m.store.Hosts(), m.settings); err != nil {
		m.errLine = fmt.Sprintf("failed to write cluster config: %v", err)
		return false
	}
	return true
}

// inTextInput reports whether the focused region is an editable text field.
func (m Model) inTextInput() bool {
	switch m.focus.Region {
	case RegionUsername, RegionPatternInput, RegionVipInput:
		return true
	}
	return false
}

// setFocus moves focus and keeps the text input focus flags in sync.
func (m *Model) setFocus(next Focus) {
	m.focus = next

	m.usernameInput.Blur()
	m.patternInput.Blur()
	m.vipInput.Blur()

	switch next.Region {
	case RegionUsername:
		m.usernameInput.Focus()
	case RegionPatternInput:
		m.patternInput.Focus()
	case RegionVipInput:
		m.vipInput.Focus()
	}
}

// updateFocusedInput forwards a message to whichever text input has focus.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus.Region {
	case RegionUsername:
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	case RegionPatternInput:
		m.patternInput, cmd = m.patternInput.Update(msg)
	case RegionVipInput:
		m.vipInput, cmd = m.vipInput.Update(msg)
	}
	return m, cmd
}
