package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"logofetch/pkg/fetcher"
	"logofetch/pkg/teams"
)

// Console prints download progress as plain lines, one event per line
type Console struct {
	out         io.Writer
	color       bool
	reminderDir string
	styles      styles
}

// NewConsole creates a console writing to out. Colour is only used when
// color is true and out is a terminal.
func NewConsole(out io.Writer, color bool, reminderDir string) *Console {
	return &Console{
		out:         out,
		color:       color && IsTerminal(out),
		reminderDir: reminderDir,
		styles:      newStyles(lipgloss.NewRenderer(out)),
	}
}

var _ fetcher.Printer = (*Console)(nil)

func (c *Console) paint(s lipgloss.Style, text string) string {
	if !c.color {
		return text
	}
	return s.Render(text)
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}

// PrintBanner prints the application banner and version
func (c *Console) PrintBanner(version string) {
	fmt.Fprint(c.out, c.paint(c.styles.title, Banner))
	c.println(c.paint(c.styles.dim, "  version "+version))
}

// PrintStart announces the run
func (c *Console) PrintStart(total int) {
	c.println(c.paint(c.styles.title, fmt.Sprintf("🏈 Downloading %d team logos...", total)))
	c.println("")
}

// PrintProgress is printed before each team is requested
func (c *Console) PrintProgress(entry teams.Entry) {
	c.println(fmt.Sprintf("⏳ Downloading: %s...", entry))
}

// PrintResult prints the outcome line of one team followed by a blank line
func (c *Console) PrintResult(result fetcher.DownloadResult) {
	switch {
	case result.Succeeded:
		c.println(c.paint(c.styles.success, fmt.Sprintf("✅ Downloaded: %d.png (%s) - %s",
			result.Team.ID, FormatSize(result.BytesWritten), result.Team.Name)))
	case result.StatusCode != 0:
		c.println(c.paint(c.styles.failure, fmt.Sprintf("❌ Failed: %s (Status: %d)",
			result.Team.Name, result.StatusCode)))
	default:
		msg := "unknown error"
		if result.Err != nil {
			msg = result.Err.Error()
		}
		c.println(c.paint(c.styles.failure, fmt.Sprintf("❌ Error: %s - %s", result.Team.Name, msg)))
	}
	c.println("")
}

// PrintSummary prints the tallies and the copy reminder
func (c *Console) PrintSummary(summary fetcher.Summary) {
	c.println("")
	c.println(c.paint(c.styles.title, "📊 Summary:"))
	c.println(c.paint(c.styles.success, fmt.Sprintf("✅ Succeeded: %d", summary.Succeeded)))
	c.println(c.paint(c.styles.failure, fmt.Sprintf("❌ Failed: %d", summary.Failed)))
	c.println(fmt.Sprintf("📁 Total: %d", summary.Total()))
	if summary.Succeeded > 0 {
		c.println(c.paint(c.styles.dim, fmt.Sprintf("   %s written in %s",
			FormatBytes(summary.BytesWritten()), summary.Duration.Round(10*time.Millisecond))))
	}
	if c.reminderDir != "" {
		c.println("")
		c.println(c.paint(c.styles.hint, fmt.Sprintf("💡 Copy the downloaded logos into the %q folder", c.reminderDir)))
	}
}

// PrintTeams lists the effective table and any ids that were collapsed
func (c *Console) PrintTeams(table *teams.Table, dups []teams.Duplicate) {
	entries := table.Entries()
	width := 0
	for _, e := range entries {
		if n := len(fmt.Sprint(e.ID)); n > width {
			width = n
		}
	}

	for _, e := range entries {
		id := fmt.Sprintf("%*d", width, e.ID)
		c.println(fmt.Sprintf("%s  %s", c.paint(c.styles.value, id), e.Name))
	}

	c.println("")
	c.println(c.paint(c.styles.info, fmt.Sprintf("%d teams", table.Len())))

	if len(dups) == 0 {
		return
	}

	lines := make([]string, 0, len(dups))
	for _, d := range dups {
		lines = append(lines, fmt.Sprintf("  id %d listed as %q and %q, using %q", d.ID, d.Previous, d.Current, d.Current))
	}
	c.println(c.paint(c.styles.failure, "duplicate ids:"))
	c.println(c.paint(c.styles.failure, strings.Join(lines, "\n")))
}
