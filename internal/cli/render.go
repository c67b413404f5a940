package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/okian/hoopscout/internal/adapters/mq/worker"
	"github.com/okian/hoopscout/internal/domain/percentile"
	"github.com/okian/hoopscout/internal/domain/prospect"
	"github.com/okian/hoopscout/internal/domain/report"
)

const labelWidth = 22

type row struct {
	label string
	value string
}

// renderer writes results as JSON, as a styled card on a terminal, or as
// aligned plain text otherwise.
type renderer struct {
	w      io.Writer
	json   bool
	styled bool
}

func newRenderer(w io.Writer, asJSON bool) *renderer {
	return &renderer{w: w, json: asJSON, styled: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *renderer) encode(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *renderer) card(title string, rows []row) error {
	if !r.styled {
		if _, err := fmt.Fprintln(r.w, title); err != nil {
			return err
		}
		for _, rw := range rows {
			if _, err := fmt.Fprintf(r.w, "  %-*s %s\n", labelWidth, rw.label+":", rw.value); err != nil {
				return err
			}
		}
		return nil
	}

	lr := lipgloss.NewRenderer(r.w)
	titleStyle := lr.NewStyle().Bold(true).Foreground(lipgloss.Color("208")).MarginBottom(1)
	labelStyle := lr.NewStyle().Width(labelWidth).Foreground(lipgloss.Color("245"))
	valueStyle := lr.NewStyle().Bold(true)
	box := lr.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 1)

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, titleStyle.Render(title))
	for _, rw := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(rw.label), valueStyle.Render(rw.value)))
	}
	_, err := fmt.Fprintln(r.w, box.Render(strings.Join(lines, "\n")))
	return err
}

func (r *renderer) athleticism(res percentile.Result) error {
	if r.json {
		return r.encode(res)
	}
	return r.card("Athleticism percentiles", []row{
		{"Speed", pct(res.Speed)},
		{"Agility", pct(res.Agility)},
		{"Vertical", pct(res.Vertical)},
		{"Overall", pct(res.Overall)},
	})
}

func (r *renderer) prospect(rating prospect.Rating) error {
	if r.json {
		return r.encode(rating)
	}
	return r.card("Prospect rating", []row{
		{"Age rating", fmt.Sprintf("%.1f / 10", rating.Age)},
		{"Height rating", fmt.Sprintf("%.1f / 10", rating.Height)},
		{"Wingspan rating", fmt.Sprintf("%.1f / 10", rating.Wingspan)},
		{"Wingspan differential", fmt.Sprintf("%+.1f in", rating.Differential)},
		{"Overall", fmt.Sprintf("%.1f / 100", rating.Overall)},
	})
}

func (r *renderer) report(avg report.Averages) error {
	if r.json {
		return r.encode(avg)
	}
	rows := make([]row, 0, len(report.Categories)+1)
	for _, c := range report.Categories {
		rows = append(rows, row{c.String(), avg.Category(c).String()})
	}
	rows = append(rows, row{"Overall", avg.Overall.String()})
	return r.card(avg.PlayerName, rows)
}

type batchEntry struct {
	Source   string           `json:"source"`
	Averages *report.Averages `json:"averages,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// batch prints the successful results; failures are reported by the caller.
func (r *renderer) batch(results []worker.Result) error {
	if r.json {
		entries := make([]batchEntry, 0, len(results))
		for _, res := range results {
			e := batchEntry{Source: res.Source}
			if res.Err != nil {
				e.Error = describe(res.Err)
			} else {
				avg := res.Averages
				e.Averages = &avg
			}
			entries = append(entries, e)
		}
		return r.encode(entries)
	}
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if err := r.report(res.Averages); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) text(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
