package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stellarkit/contract-sim/simulate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90")).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// renderReport formats a simulation result for the terminal.
func renderReport(source string, res simulate.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Deployment Simulation"))
	b.WriteString("  " + dimStyle.Render(source) + "\n\n")

	if res.Valid {
		b.WriteString(okStyle.Render("VALID") + "\n")
	} else {
		b.WriteString(errorStyle.Render("INVALID") + "\n")
	}

	for _, e := range res.Errors {
		line := fmt.Sprintf("  ✗ [%s] %s", e.Code, e.Message)
		if e.Field != "" {
			line += dimStyle.Render(" (" + e.Field + ")")
		}
		b.WriteString(errorStyle.Render(line) + "\n")
	}
	for _, w := range res.Warnings {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  ! [%s/%s] %s", w.Code, w.Severity, w.Message)) + "\n")
	}

	if !res.Valid {
		return b.String()
	}

	b.WriteString("\n" + labelStyle.Render("Cost") + "\n")
	b.WriteString(fmt.Sprintf("  total        %d stroops (%.7f XLM)\n",
		res.GasEstimate.TotalCostStroops, res.GasEstimate.TotalCostXLM))
	b.WriteString(fmt.Sprintf("  deployment   %d stroops\n", res.GasEstimate.DeploymentCostStroops))
	b.WriteString(fmt.Sprintf("  storage      %d stroops\n", res.GasEstimate.StorageCostStroops))
	b.WriteString(fmt.Sprintf("  size         %.2f KB, complexity %.2f\n",
		res.GasEstimate.WasmSizeKB, res.GasEstimate.ComplexityFactor))

	b.WriteString("\n" + labelStyle.Render("Performance") + "\n")
	b.WriteString(fmt.Sprintf("  est. time    %d ms\n", res.PerformanceMetrics.EstimatedExecutionTimeMS))
	b.WriteString(fmt.Sprintf("  memory       %d KB\n", res.PerformanceMetrics.MemoryEstimateKB))
	b.WriteString(fmt.Sprintf("  functions    %d\n", res.PerformanceMetrics.FunctionCount))

	if len(res.ContractFunctions) > 0 {
		b.WriteString("\n" + labelStyle.Render("Interface (best effort)") + "\n")
		for _, f := range res.ContractFunctions {
			sig := fmt.Sprintf("%s(%d)", f.Name, f.ParamCount)
			if f.ReturnType != "" {
				sig += " -> " + f.ReturnType
			}
			if f.IsView {
				sig += dimStyle.Render("  view")
			}
			b.WriteString("  " + funcStyle.Render(sig) + "\n")
		}
	}

	return b.String()
}
