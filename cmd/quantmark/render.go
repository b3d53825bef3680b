package main

import (
	"fmt"
	"slices"
	"strings"

	"quantmark"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// ──────────────────────────── Grid building ────────────────────────────

// cellInfo describes what a single (column, qubit) cell shows.
type cellInfo struct {
	gate        *quantmark.Gate
	isControl   bool
	isSwap      bool
	passThrough bool // a multi-qubit gate spans this row without touching it
	vertAbove   bool
	vertBelow   bool
}

// buildGrid lays the circuit out on a numQubits × depth grid. Each gate
// occupies the column of its dependency level, so gates on disjoint qubits
// share a column.
func (m Model) buildGrid() [][]cellInfo {
	depth := m.circuit.Depth()
	grid := make([][]cellInfo, m.numQubits)
	for q := range grid {
		grid[q] = make([]cellInfo, depth)
	}

	levels := m.circuit.Levels()
	for i := range m.circuit.Gates {
		g := &m.circuit.Gates[i]
		col := levels[i] - 1

		lo, hi := m.numQubits, -1
		for _, q := range append(slices.Clone(g.Targets), g.Controls...) {
			lo = min(lo, q)
			hi = max(hi, q)
		}

		for q := lo; q <= hi && q < m.numQubits; q++ {
			info := &grid[q][col]
			info.gate = g
			info.vertAbove = q > lo
			info.vertBelow = q < hi
			switch {
			case slices.Contains(g.Controls, q):
				info.isControl = true
			case slices.Contains(g.Targets, q):
				info.isSwap = g.Kind == quantmark.KindSWAP
			default:
				info.passThrough = true
			}
		}
	}
	return grid
}

// gateLabel returns the boxed display name for a gate.
func gateLabel(g *quantmark.Gate) string {
	name := string(g.Kind)
	if g.Kind == quantmark.KindPhase {
		name = "P"
	}
	return name
}

// ──────────────────────────── Cell rendering ────────────────────────────

// renderCell returns 3 lines (top, mid, bot) for a single cell.
// Each line is exactly cellW visual characters wide.
func renderCell(info cellInfo) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	wireAbove := func() string {
		if info.vertAbove {
			return vertRow
		}
		return emptyRow
	}
	wireBelow := func() string {
		if info.vertBelow {
			return vertRow
		}
		return emptyRow
	}

	switch {
	case info.gate == nil:
		top = emptyRow
		mid = strings.Repeat("─", cellW)
		bot = emptyRow

	case info.isControl:
		top = wireAbove()
		mid = strings.Repeat("─", dashL) + gateStyle.Render("●") + strings.Repeat("─", dashR)
		bot = wireBelow()

	case info.isSwap:
		top = wireAbove()
		mid = strings.Repeat("─", dashL) + gateStyle.Render("×") + strings.Repeat("─", dashR)
		bot = wireBelow()

	case info.passThrough:
		top = vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		bot = vertRow

	default:
		// Named gate box on a target wire
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(gateLabel(info.gate), gateNameW)

		top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
	}

	return
}

// ──────────────────────────── Panel rendering ────────────────────────────

// qubitMarker returns the selection marker shown before a qubit label.
func (m Model) qubitMarker(qubit int) string {
	selecting := m.focus == focusSelectTarget || m.focus == focusSelectControls
	switch {
	case selecting && qubit == m.selectQubit:
		return selectStyle.Render("▶")
	case selecting && slices.Contains(m.pendingTargets, qubit):
		return activeGateStyle.Render("◆")
	case selecting && slices.Contains(m.pendingControls, qubit):
		return activeGateStyle.Render("●")
	case qubit == m.cursorQubit && m.focus == focusCircuit:
		return cursorBoxStyle.Render("▶")
	default:
		return " "
	}
}

// renderCircuitPanel renders the circuit grid panel.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Quantum Circuit"))
	sb.WriteString("\n\n")

	grid := m.buildGrid()
	depth := m.circuit.Depth()

	// How many columns fit, newest kept visible on overflow
	availWidth := width - labelW - 4
	maxCols := max(availWidth/cellW, 1)
	startCol := 0
	if depth > maxCols {
		startCol = depth - maxCols
	}
	endCol := min(startCol+maxCols, depth)

	if startCol > 0 {
		fmt.Fprintf(&sb, "  ◀ showing levels %d–%d\n", startCol+1, endCol)
	}

	header := strings.Repeat(" ", labelW)
	for col := startCol; col < endCol; col++ {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", col+1), cellW))
	}
	sb.WriteString(header + "\n")

	for qubit := 0; qubit < m.numQubits; qubit++ {
		topLine := strings.Repeat(" ", labelW)
		label := fmt.Sprintf("q[%d]", qubit)
		midLine := m.qubitMarker(qubit) + qubitLabelStyle.Render(fmt.Sprintf("%-4s", label)) + "──"
		botLine := strings.Repeat(" ", labelW)

		for col := startCol; col < endCol; col++ {
			top, mid, bot := renderCell(grid[qubit][col])
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	// Status line
	sb.WriteString("\n")
	switch m.focus {
	case focusSelectTarget:
		fmt.Fprintf(&sb, "  %s", activeGateStyle.Render(string(m.pendingKind)))
		sb.WriteString("  Select second qubit: ")
		fmt.Fprintf(&sb, "%s", selectStyle.Render(fmt.Sprintf("q[%d]", m.selectQubit)))
		sb.WriteString(dimStyle.Render("   ↑↓ Move  Enter Confirm  Esc Cancel"))
	case focusSelectControls:
		fmt.Fprintf(&sb, "  %s", activeGateStyle.Render(string(m.pendingKind)))
		sb.WriteString("  Toggle controls: ")
		fmt.Fprintf(&sb, "%s", selectStyle.Render(fmt.Sprintf("q[%d]", m.selectQubit)))
		sb.WriteString(dimStyle.Render("   ↑↓ Move  c/Space Toggle  Enter Place  Esc Cancel"))
	default:
		fmt.Fprintf(&sb, "  Qubit %d", m.cursorQubit)
		if m.statusMsg != "" {
			fmt.Fprintf(&sb, "  │  %s", activeGateStyle.Render(m.statusMsg))
		}
	}

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderTextPanel renders the circuit text editor panel.
func (m Model) renderTextPanel(width, height int) string {
	var sb strings.Builder

	title := "Circuit Text"
	if m.focus == focusText {
		title += " [ACTIVE]"
	}
	sb.WriteString(titleStyle.Render(title))
	if m.textValid {
		sb.WriteString("  " + validStyle.Render("✓"))
	} else {
		sb.WriteString("  " + invalidStyle.Render("✗"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.editor.View())

	return textPanelStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help bar with circuit quantities.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	info := quantmark.NewCircuitInfo(m.circuit)
	fmt.Fprintf(&sb, "%s qubits %d  gates %d  depth %d  parameters %d\n",
		activeGateStyle.Render("Circuit: "),
		info.QubitCount(), info.GateCount(), info.GateDepth(), info.ParameterCount())

	sb.WriteString(activeGateStyle.Render("Navigate:"))
	sb.WriteString(" ↑↓/jk Move qubit  +/- Qubits  ")
	sb.WriteString(activeGateStyle.Render("a"))
	sb.WriteString(" Add gate  Tab Switch focus  Bksp Delete  ^R Reset  ^S Save  q/^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}

// ──────────────────────────── Overlay helpers ────────────────────────────

// overlayAt composites the overlay string on top of the background at (x, y).
// It handles ANSI escape sequences by tracking visible column positions.
func overlayAt(bg, overlay string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	ovLines := strings.Split(overlay, "\n")

	for i, ovLine := range ovLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}
		bgLines[bgIdx] = spliceLineAt(bgLines[bgIdx], ovLine, x)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLineAt replaces visible columns starting at position x in bgLine with
// the overlay content, preserving the background's ANSI escape sequences.
func spliceLineAt(bgLine, overlay string, x int) string {
	runes := []rune(bgLine)
	ovWidth := visibleLen(overlay)

	var prefix strings.Builder
	var suffix strings.Builder

	col := 0
	i := 0
	inEsc := false

	// Collect prefix: everything up to visible column x
	for i < len(runes) && col < x {
		if runes[i] == '\x1b' {
			inEsc = true
			for i < len(runes) {
				prefix.WriteRune(runes[i])
				if inEsc && runes[i] != '\x1b' && runes[i] != '[' && ((runes[i] >= 'A' && runes[i] <= 'Z') || (runes[i] >= 'a' && runes[i] <= 'z')) {
					inEsc = false
					i++
					break
				}
				i++
			}
		} else {
			prefix.WriteRune(runes[i])
			col++
			i++
		}
	}

	// Pad prefix if bg line is shorter than x
	for col < x {
		prefix.WriteRune(' ')
		col++
	}

	// Skip over ovWidth visible columns in the background
	skipped := 0
	for i < len(runes) && skipped < ovWidth {
		if runes[i] == '\x1b' {
			for i < len(runes) {
				i++
				if i > 0 && runes[i-1] != '\x1b' && runes[i-1] != '[' && ((runes[i-1] >= 'A' && runes[i-1] <= 'Z') || (runes[i-1] >= 'a' && runes[i-1] <= 'z')) {
					break
				}
			}
		} else {
			skipped++
			i++
		}
	}

	// Collect suffix: rest of the background line
	for i < len(runes) {
		suffix.WriteRune(runes[i])
		i++
	}

	return prefix.String() + overlay + suffix.String()
}

// visibleLen returns the number of visible (non-ANSI-escape) characters.
func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}
