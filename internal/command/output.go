package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/yuxishi/aws-quota-checker/internal/model"
	"github.com/yuxishi/aws-quota-checker/internal/quota"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
	warningStyle = cellStyle.Foreground(lipgloss.Color("3"))
	errorStyle   = cellStyle.Foreground(lipgloss.Color("1"))
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false)
}

func writeCheckTable(w io.Writer, checks []quota.Check) {
	var rows [][]string
	for _, c := range checks {
		rows = append(rows, []string{c.Key, c.Scope.String(), c.Service, c.QuotaCode, c.Description})
	}
	t := newTable().
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.PaddingRight(2)
			}
			return cellStyle
		}).
		Headers("KEY", "SCOPE", "SERVICE", "QUOTA CODE", "DESCRIPTION").
		Rows(rows...)
	fmt.Fprintln(w, t)
}

func formatCount(v int64) string {
	if v == model.Unknown {
		return "unknown"
	}
	return humanize.Comma(v)
}

func writeResultTable(w io.Writer, results []model.Result, th model.Thresholds) {
	var (
		rows   [][]string
		levels []model.Level
	)
	for _, r := range results {
		usage := "-"
		if r.UsageFraction != nil {
			usage = fmt.Sprintf("%.1f%%", *r.UsageFraction*100)
		}
		level := r.Level(th)
		status := string(level)
		if level == model.LevelFailed {
			status = r.Error
		}
		rows = append(rows, []string{
			r.Key, r.Region, r.InstanceID,
			formatCount(r.Current), formatCount(r.Maximum), formatCount(r.AWSDefault),
			usage, status,
		})
		levels = append(levels, level)
	}

	t := newTable().
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.PaddingRight(2)
			case row < 0 || row >= len(levels):
				return cellStyle
			}
			switch levels[row] {
			case model.LevelWarning:
				return warningStyle
			case model.LevelError, model.LevelFailed:
				return errorStyle
			}
			return cellStyle
		}).
		Headers("CHECK", "REGION", "INSTANCE", "CURRENT", "MAXIMUM", "DEFAULT", "USAGE", "STATUS").
		Rows(rows...)
	fmt.Fprintln(w, t)
}
