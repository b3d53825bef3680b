package main

import (
	"fmt"
	"strings"

	"quantmark"
)

// menuItem represents a single gate choice in the menu.
type menuItem struct {
	name       string
	kind       quantmark.GateKind
	symbol     string
	needsParam bool
	paramHint  string
	twoTargets bool
}

// gateMenu lists the supported gate kinds.
var gateMenu = []menuItem{
	{name: "Pauli-X (NOT)", kind: quantmark.KindX, symbol: "X"},
	{name: "Pauli-Y", kind: quantmark.KindY, symbol: "Y"},
	{name: "Pauli-Z", kind: quantmark.KindZ, symbol: "Z"},
	{name: "Hadamard", kind: quantmark.KindH, symbol: "H"},
	{name: "Phase Shift", kind: quantmark.KindPhase, symbol: "P", needsParam: true, paramHint: "pi/4 or phi"},
	{name: "Rotate X", kind: quantmark.KindRx, symbol: "RX", needsParam: true, paramHint: "pi/2 or theta"},
	{name: "Rotate Y", kind: quantmark.KindRy, symbol: "RY", needsParam: true, paramHint: "pi/2 or theta"},
	{name: "Rotate Z", kind: quantmark.KindRz, symbol: "RZ", needsParam: true, paramHint: "pi/2 or theta"},
	{name: "SWAP", kind: quantmark.KindSWAP, symbol: "×─×", twoTargets: true},
}

// renderMenu renders the floating gate-picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Add Gate"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 38)))
	sb.WriteString("\n")

	for i, item := range gateMenu {
		if i == m.menuIdx {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-16s", item.name)))
			sb.WriteString(gateStyle.Render(item.symbol))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-16s", item.name)))
			sb.WriteString(dimStyle.Render(item.symbol))
		}
		if item.twoTargets {
			sb.WriteString(dimStyle.Render(" →target"))
		}
		if item.needsParam {
			sb.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", item.paramHint)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ⏎ Ok  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}
