package tui

import (
	"fmt"
	"strings"

	"github.com/Zorlin/sparx/internal/inventory"
)

// View renders the whole wizard as one form-like screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Cluster Host Inventory"))
	b.WriteString("\n")

	b.WriteString(m.renderLabeledInput("SSH username", m.usernameInput.View(), m.focus.Region == RegionUsername))
	b.WriteString("\n\n")

	b.WriteString(m.renderTable())
	b.WriteString("\n")

	b.WriteString(m.renderLabeledInput("Add hosts", m.patternInput.View(), m.focus.Region == RegionPatternInput))
	b.WriteString("  ")
	b.WriteString(renderButton("Add", m.focus.Region == RegionAddButton))
	b.WriteString("\n\n")

	b.WriteString(m.renderLabeledInput("Virtual IP", m.vipInput.View(), m.focus.Region == RegionVipInput))
	b.WriteString("\n\n")

	b.WriteString(renderButton("Continue", m.focus.Region == RegionContinueButton))
	b.WriteString("\n")

	if m.errLine != "" {
		b.WriteString("\n")
		b.WriteString(RenderError(m.errLine))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StatusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return RenderApplicationContainer(b.String(), m.help.View(m.keys), m.Width, m.Height)
}

// renderLabeledInput renders a form field with its label, highlighting the
// label when the field has focus.
func (m Model) renderLabeledInput(label, input string, focused bool) string {
	style := LabelStyle
	if focused {
		style = FocusedLabelStyle
	}
	return style.Render(label+": ") + input
}

// renderTable renders the host rows with status, role, and address columns.
func (m Model) renderTable() string {
	hosts := m.store.Hosts()
	if len(hosts) == 0 {
		return LabelStyle.Render("  No hosts added yet") + "\n"
	}

	var b strings.Builder
	for i, h := range hosts {
		line := fmt.Sprintf("%s %-30s %-18s %s", statusSymbol(h.Status), h.Name, h.Role, h.IPAddress)

		selected := m.focus.Region == RegionTable && m.focus.Row == i
		switch {
		case selected:
			b.WriteString(SelectedRowStyle.Render("→ " + line))
		case !h.Enabled:
			b.WriteString(DisabledRowStyle.Render(line))
		default:
			b.WriteString(RowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderButton renders a focusable button.
func renderButton(label string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

// statusSymbol maps a probe status to its one-glyph table marker.
func statusSymbol(s inventory.Status) string {
	switch s {
	case inventory.StatusReachable:
		return StatusReachableStyle.Render("✓")
	case inventory.StatusUnreachable:
		return StatusUnreachableStyle.Render("✗")
	case inventory.StatusDNSFailed:
		return StatusUnreachableStyle.Render("✗")
	case inventory.StatusChecking:
		return StatusCheckingStyle.Render("⟳")
	default:
		return StatusUnknownStyle.Render("·")
	}
}
