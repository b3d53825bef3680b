package main

import (
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quantmark"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusText
	focusMenu
	focusSelectTarget
	focusSelectControls
	focusInputParam
)

// identRegex matches a symbolic parameter name.
var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Model represents the TUI application state.
type Model struct {
	circuit     *quantmark.Circuit
	numQubits   int // canvas height; never below the circuit's qubit count
	cursorQubit int
	width       int
	height      int
	editor      textarea.Model
	focus       focus
	lastText    string
	textValid   bool
	statusMsg   string // transient status message (e.g. parse or save result)
	savePath    string

	// Gate placement state
	menuIdx         int
	pendingKind     quantmark.GateKind
	pendingParam    *quantmark.Parameter
	pendingTargets  []int
	pendingControls []int
	selectQubit     int
	paramInput      string
}

func initialModel(savePath string) Model {
	ta := textarea.New()
	ta.Placeholder = "circuit:"
	ta.SetWidth(40)
	ta.SetHeight(20)
	ta.ShowLineNumbers = true
	ta.KeyMap.InsertNewline.SetEnabled(true)

	m := Model{
		circuit:   &quantmark.Circuit{},
		numQubits: 4,
		editor:    ta,
		focus:     focusCircuit,
		savePath:  savePath,
		textValid: true,
	}

	if data, err := os.ReadFile(savePath); err == nil {
		if c, perr := quantmark.ParseCircuit(string(data)); perr == nil && c != nil {
			m.circuit = c
		}
	}

	m.syncFromCircuit()
	return m
}

// syncFromCircuit refreshes the text view after the circuit changed.
func (m *Model) syncFromCircuit() {
	if n := m.circuit.QubitCount(); n > m.numQubits {
		m.numQubits = n
	}
	text := m.circuit.String()
	m.editor.SetValue(text)
	m.lastText = text
	m.textValid = true
}

// parseTextInput re-parses the editor contents. An invalid edit keeps the
// previous circuit; nothing partial is ever applied.
func (m *Model) parseTextInput() {
	text := m.editor.Value()
	if text == m.lastText {
		return
	}
	m.lastText = text

	c, err := quantmark.ParseCircuit(text)
	if err != nil {
		m.textValid = false
		m.statusMsg = fmt.Sprintf("Parse error: %v", err)
		return
	}
	m.textValid = true
	m.statusMsg = ""
	if c == nil {
		m.circuit = &quantmark.Circuit{}
	} else {
		m.circuit = c
	}
	if n := m.circuit.QubitCount(); n > m.numQubits {
		m.numQubits = n
	}
}

func (m *Model) clearPending() {
	m.pendingKind = ""
	m.pendingParam = nil
	m.pendingTargets = nil
	m.pendingControls = nil
	m.paramInput = ""
}

// placeGate materializes the pending gate and appends it to the circuit.
func (m *Model) placeGate() {
	rec := quantmark.GateRecord{
		Name:      string(m.pendingKind),
		Targets:   slices.Clone(m.pendingTargets),
		Controls:  slices.Clone(m.pendingControls),
		Parameter: m.pendingParam,
	}
	gate, err := quantmark.Materialize(rec)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Cannot place: %v", err)
	} else {
		m.circuit.Append(gate)
		m.syncFromCircuit()
	}
	m.clearPending()
	m.focus = focusCircuit
}

// afterParam decides the next placement step once the parameter is settled.
func (m *Model) afterParam() {
	if m.pendingKind == quantmark.KindSWAP {
		if free := m.freeQubit(0, 1); free >= 0 {
			m.selectQubit = free
			m.focus = focusSelectTarget
			return
		}
		m.statusMsg = "SWAP needs two qubits"
		m.clearPending()
		m.focus = focusCircuit
		return
	}
	m.startControlSelect()
}

// startControlSelect enters control selection, or places the gate right away
// when no qubit is left to control from.
func (m *Model) startControlSelect() {
	if free := m.freeQubit(0, 1); free >= 0 {
		m.selectQubit = free
		m.focus = focusSelectControls
		return
	}
	m.placeGate()
}

// freeQubit returns the first qubit from start (stepping by delta) that is
// not a pending target, or -1.
func (m *Model) freeQubit(start, delta int) int {
	for q := start; q >= 0 && q < m.numQubits; q += delta {
		if !slices.Contains(m.pendingTargets, q) {
			return q
		}
	}
	return -1
}

// moveSelect moves the selection highlight, skipping pending targets.
func (m *Model) moveSelect(delta int) {
	if next := m.freeQubit(m.selectQubit+delta, delta); next >= 0 {
		m.selectQubit = next
	}
}

// removeLastGateOn drops the most recent gate referencing the qubit.
func (m *Model) removeLastGateOn(qubit int) {
	gates := m.circuit.Gates
	for i := len(gates) - 1; i >= 0; i-- {
		if !gates[i].References(qubit) {
			continue
		}
		next := &quantmark.Circuit{}
		for j, g := range gates {
			if j != i {
				next.Append(g)
			}
		}
		m.circuit = next
		m.syncFromCircuit()
		return
	}
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		textW := max(msg.Width/3-6, 20)
		m.editor.SetWidth(textW)
		ctrlH := 6
		panelH := msg.Height - ctrlH - 4
		m.editor.SetHeight(max(panelH-6, 4))

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusCircuit:
			switch key {
			case "q":
				return m, tea.Quit
			case "tab":
				m.focus = focusText
				m.editor.Focus()
			case "ctrl+r":
				m.circuit = &quantmark.Circuit{}
				m.syncFromCircuit()
			case "ctrl+s":
				if err := os.WriteFile(m.savePath, []byte(m.circuit.String()), 0644); err != nil {
					m.statusMsg = fmt.Sprintf("Save error: %v", err)
				} else {
					m.statusMsg = fmt.Sprintf("Saved %s", m.savePath)
				}
			case "up", "k":
				if m.cursorQubit > 0 {
					m.cursorQubit--
				}
			case "down", "j":
				if m.cursorQubit < m.numQubits-1 {
					m.cursorQubit++
				}
			case "+", "=":
				m.numQubits++
			case "-":
				if m.numQubits > max(m.circuit.QubitCount(), 1) {
					m.numQubits--
					m.cursorQubit = min(m.cursorQubit, m.numQubits-1)
				}
			case "a":
				m.focus = focusMenu
				m.menuIdx = 0
			case "backspace", "delete":
				m.removeLastGateOn(m.cursorQubit)
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusCircuit
			case "up", "k":
				if m.menuIdx > 0 {
					m.menuIdx--
				}
			case "down", "j":
				if m.menuIdx < len(gateMenu)-1 {
					m.menuIdx++
				}
			case "enter":
				item := gateMenu[m.menuIdx]
				m.pendingKind = item.kind
				m.pendingTargets = []int{m.cursorQubit}
				if item.twoTargets && m.numQubits < 2 {
					m.statusMsg = "SWAP needs two qubits"
					m.clearPending()
					m.focus = focusCircuit
					break
				}
				if item.needsParam {
					m.paramInput = ""
					m.focus = focusInputParam
					break
				}
				m.afterParam()
			}

		case focusInputParam:
			switch key {
			case "esc":
				m.clearPending()
				m.focus = focusCircuit
			case "backspace":
				if len(m.paramInput) > 0 {
					m.paramInput = m.paramInput[:len(m.paramInput)-1]
				}
			case "enter":
				if v, ok := quantmark.ParseParamExpr(m.paramInput); ok {
					p := quantmark.FixedParam(v)
					m.pendingParam = &p
				} else if identRegex.MatchString(m.paramInput) {
					p := quantmark.SymbolicParam(m.paramInput)
					m.pendingParam = &p
				} else {
					m.statusMsg = "Invalid parameter: use a number, a pi expression (pi/2) or a name (theta)"
					break
				}
				m.afterParam()
			default:
				if len(key) == 1 {
					ch := key[0]
					if (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
						ch == '.' || ch == '-' || ch == '+' || ch == '*' || ch == '/' || ch == '_' {
						m.paramInput += key
					}
				}
			}

		case focusSelectTarget:
			switch key {
			case "esc":
				m.clearPending()
				m.focus = focusCircuit
			case "up", "k":
				m.moveSelect(-1)
			case "down", "j":
				m.moveSelect(1)
			case "enter":
				m.pendingTargets = append(m.pendingTargets, m.selectQubit)
				m.startControlSelect()
			}

		case focusSelectControls:
			switch key {
			case "esc":
				m.clearPending()
				m.focus = focusCircuit
			case "up", "k":
				m.moveSelect(-1)
			case "down", "j":
				m.moveSelect(1)
			case "c", " ":
				if i := slices.Index(m.pendingControls, m.selectQubit); i >= 0 {
					m.pendingControls = slices.Delete(m.pendingControls, i, i+1)
				} else {
					m.pendingControls = append(m.pendingControls, m.selectQubit)
				}
			case "enter":
				m.placeGate()
			}

		case focusText:
			switch key {
			case "tab":
				m.focus = focusCircuit
				m.editor.Blur()
			default:
				var cmd tea.Cmd
				m.editor, cmd = m.editor.Update(msg)
				cmds = append(cmds, cmd)
				m.parseTextInput()
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	textWidth := m.width / 3
	circuitWidth := m.width - textWidth - 4
	controlsHeight := 6
	circuitHeight := max(m.height-controlsHeight-2, 6)

	circuitPanel := m.renderCircuitPanel(circuitWidth, circuitHeight)
	textPanel := m.renderTextPanel(textWidth, circuitHeight)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, textPanel)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)

	// Render menu overlay when in menu mode
	if m.focus == focusMenu {
		frame = overlayAt(frame, m.renderMenu(), 2, 2)
	}

	// Render parameter input overlay
	if m.focus == focusInputParam {
		frame = overlayAt(frame, m.renderParamInput(), 2, 2)
	}

	return frame
}

// renderParamInput renders the parameter input overlay.
func (m Model) renderParamInput() string {
	return menuBorderStyle.Render(
		titleStyle.Render("Enter Parameter") + "\n\n" +
			fmt.Sprintf("Value: %s_", m.paramInput) + "\n\n" +
			dimStyle.Render("Examples: pi/2, 1.57, theta"))
}
