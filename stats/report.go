package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/ecofocus/internal/timeutil"
	"github.com/ayoisaiah/ecofocus/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
)

func formatMinutes(total int) string {
	hrs, mins := timeutil.MinsToHoursAndMins(total)

	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %dm", hrs, mins)
}

func formatHour(hour int) string {
	if hour < 0 {
		return "-"
	}

	return fmt.Sprintf("%02d:00", hour)
}

// getSummary retrieves the session summary.
func getSummary(s Stats) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	total := fmt.Sprintln("Total sessions:", ui.Green(s.TotalSessions))
	recorded := fmt.Sprintln("Sessions in range:", ui.Green(s.Recorded))
	logged := fmt.Sprintf("Time logged: %s\n", ui.Green(formatMinutes(s.MinutesLogged)))

	return header + total + recorded + logged
}

func getStreaks(s Stats) string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Streaks"))

	best := fmt.Sprintln("Best streak:", ui.Green(fmt.Sprintf("%d days", s.BestStreak)))
	current := fmt.Sprintln("Current streak:", ui.Green(fmt.Sprintf("%d days", s.CurrentStreak)))
	busiest := fmt.Sprintln("Busiest hour:", ui.Magenta(formatHour(s.BusiestHour)))

	return header + best + current + busiest
}

func getBarChart(hourly [hoursInADay]int) string {
	header := ui.Blue("\nHourly breakdown (sessions)")

	bars := make(pterm.Bars, 0, hoursInADay)

	for hour, n := range hourly {
		bars = append(bars, pterm.Bar{
			Value: n,
			Label: formatHour(hour),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// Render writes a human readable report. since is the start of the
// reporting window; the zero time means all recorded history.
func Render(w io.Writer, s Stats, since, now time.Time) {
	period := "all recorded history"
	if !since.IsZero() {
		period = since.Format("January 02, 2006") + " - " + now.Format("January 02, 2006")
	}

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Reporting period: %s", period)

	if s.Recorded == 0 {
		fmt.Fprintln(w, strings.TrimSpace(header+getSummary(s)+"\n"+noSessionsMsg))
		return
	}

	output := fmt.Sprint(
		header,
		getSummary(s),
		getStreaks(s),
		getBarChart(s.Hourly),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}
