package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjacksim/internal/simulator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginTop(1)
)

func printReport(result *simulator.Result) {
	stats := result.Stats
	rounds := stats.Rounds

	var b strings.Builder

	b.WriteString(titleStyle.Render("Simulation Report"))
	b.WriteString("\n")

	row := func(label, format string, args ...any) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(fmt.Sprintf(format, args...)))
		b.WriteString("\n")
	}
	pct := func(n int) float64 {
		if rounds == 0 {
			return 0
		}
		return 100 * float64(n) / float64(rounds)
	}

	row("Rounds", "%d", rounds)
	row("Elapsed", "%s", result.Elapsed.Round(time.Millisecond))
	if result.Elapsed > 0 {
		row("Throughput", "%.0f rounds/s", float64(rounds)/result.Elapsed.Seconds())
	}
	row("Seed", "%d", result.Seed)

	b.WriteString(sectionStyle.Render("Outcomes"))
	b.WriteString("\n")
	row("Player wins", "%d (%.1f%%)", stats.PlayerWins, pct(stats.PlayerWins))
	row("Dealer wins", "%d (%.1f%%)", stats.DealerWins, pct(stats.DealerWins))
	row("Draws", "%d (%.1f%%)", stats.Draws, pct(stats.Draws))
	row("Blackjacks", "%d", stats.Blackjacks)
	row("Busts", "%d", stats.Busts)
	if stats.InsuranceWins+stats.InsuranceLosses > 0 {
		row("Insurance", "%d won / %d lost", stats.InsuranceWins, stats.InsuranceLosses)
	}

	b.WriteString(sectionStyle.Render("Net chips per round"))
	b.WriteString("\n")
	lo, hi := stats.ConfidenceInterval95()
	row("Mean", "%+.3f", stats.Mean())
	row("Median", "%+.1f", stats.Median())
	row("Std dev", "%.3f", stats.StdDev())
	row("95% CI", "[%+.3f, %+.3f]", lo, hi)
	row("Total", "%+.0f", stats.SumNet)

	fmt.Println(b.String())
}
