package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/instance"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary
	colorGreen = lipgloss.Color("35")  // Green - success, taken items
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
	iconTaken   = "●"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success line.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+msg)
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(16)
	fmt.Fprintln(w, "  "+keyStyle.Render(key)+" "+value)
}

// =============================================================================
// Solve Report
// =============================================================================

// report is the outcome of solving one instance.
type report struct {
	inst     instance.Instance
	strategy bnb.Strategy
	res      bnb.Result
	elapsed  time.Duration
}

// printReport renders r: a heading, the item table in density order, the
// optimum and the search statistics.
func printReport(w io.Writer, r report) {
	heading := fmt.Sprintf("%s  capacity %d · %d items · %s",
		r.inst.Name, r.inst.Capacity, len(r.inst.Items), r.strategy)
	fmt.Fprintln(w, styleTitle.Render(heading))

	if len(r.inst.Items) > 0 {
		fmt.Fprintln(w, itemTable(r))
	}

	printSuccess(w, "Maximum value %s", styleNumber.Render(strconv.FormatInt(r.res.Value, 10)))
	printKeyValue(w, "Total weight", fmt.Sprintf("%d / %d", r.res.Weight, r.inst.Capacity))
	printKeyValue(w, "Selected", selectedLabels(r))
	printKeyValue(w, "Nodes explored", strconv.Itoa(r.res.Explored))
	printKeyValue(w, "Nodes pruned", strconv.Itoa(r.res.Pruned))
	printKeyValue(w, "Elapsed", styleDim.Render(r.elapsed.Round(time.Microsecond).String()))
	fmt.Fprintln(w)
}

// printQuiet renders r as a single "name<TAB>value" line.
func printQuiet(w io.Writer, r report) {
	fmt.Fprintf(w, "%s\t%d\n", r.inst.Name, r.res.Value)
}

func itemTable(r report) string {
	taken := make(map[int]bool, len(r.res.Selected))
	for _, i := range r.res.Selected {
		taken[i] = true
	}

	ranked := bnb.SortByDensity(r.inst.BnbItems())
	rows := make([][]string, 0, len(ranked))
	for _, it := range ranked {
		mark := ""
		if taken[it.Index] {
			mark = iconTaken
		}
		rows = append(rows, []string{
			strconv.Itoa(it.Index),
			r.inst.Label(it.Index),
			strconv.FormatInt(it.Weight, 10),
			strconv.FormatInt(it.Value, 10),
			strconv.FormatFloat(it.Density(), 'f', 2, 64),
			mark,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Item", "Weight", "Value", "Ratio", "Taken").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 5 {
				return styleCell.Foreground(colorGreen)
			}
			return styleCell
		}).
		String()
}

func selectedLabels(r report) string {
	if len(r.res.Selected) == 0 {
		return styleDim.Render("none")
	}
	labels := make([]string, len(r.res.Selected))
	for i, idx := range r.res.Selected {
		labels[i] = r.inst.Label(idx)
	}
	return strings.Join(labels, ", ")
}
