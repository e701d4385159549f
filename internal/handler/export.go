package handler

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yuxishi/aws-quota-checker/internal/model"
)

const errNoData = "No data available. Please fetch results first."

func (h *Handler) ExportJSON(c *gin.Context) {
	report, ok := h.cache.Get(requestKey(c))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoData})
		return
	}

	out := *report
	out.FromCache = true
	filename := fmt.Sprintf("aws-quota-checks-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ExportHTML(c *gin.Context) {
	report, ok := h.cache.Get(requestKey(c))
	if !ok {
		c.String(http.StatusBadRequest, errNoData)
		return
	}

	filename := fmt.Sprintf("aws-quota-checks-%s.html", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(generateHTMLReport(report, h.opts.Thresholds)))
}

func formatLimit(v int64) string {
	if v == model.Unknown {
		return "unknown"
	}
	return fmt.Sprintf("%d", v)
}

func formatUsage(r model.Result) string {
	if r.UsageFraction == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *r.UsageFraction*100)
}

func generateHTMLReport(report *model.Report, t model.Thresholds) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>AWS Quota Check Report</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 20px; }
        h1 { color: #232f3e; }
        table { border-collapse: collapse; width: 100%; margin-top: 20px; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #232f3e; color: white; }
        tr:nth-child(even) { background-color: #f2f2f2; }
        tr.WARNING { background-color: #fff3cd; }
        tr.ERROR, tr.FAILED { background-color: #f8d7da; }
        .timestamp { color: #666; font-size: 0.9em; }
    </style>
</head>
<body>
    <h1>AWS Quota Check Report</h1>
    <p class="timestamp">Generated: ` + report.GeneratedAt.Format("2006-01-02 15:04:05") + `</p>
    <p>Total results: ` + fmt.Sprintf("%d", len(report.Results)) + `</p>
    <table>
        <thead>
            <tr>
                <th>Check</th>
                <th>Description</th>
                <th>Region</th>
                <th>Instance</th>
                <th>Current</th>
                <th>Maximum</th>
                <th>AWS Default</th>
                <th>Usage</th>
                <th>Status</th>
            </tr>
        </thead>
        <tbody>`)

	for _, r := range report.Results {
		level := r.Level(t)
		status := string(level)
		if level == model.LevelFailed {
			status += ": " + r.Error
		}
		fmt.Fprintf(&b, `
            <tr class="%s">
                <td>%s</td>
                <td>%s</td>
                <td>%s</td>
                <td>%s</td>
                <td>%d</td>
                <td>%s</td>
                <td>%s</td>
                <td>%s</td>
                <td>%s</td>
            </tr>`,
			level,
			html.EscapeString(r.Key),
			html.EscapeString(r.Description),
			html.EscapeString(r.Region),
			html.EscapeString(r.InstanceID),
			r.Current,
			formatLimit(r.Maximum),
			formatLimit(r.AWSDefault),
			formatUsage(r),
			html.EscapeString(status))
	}

	b.WriteString(`
        </tbody>
    </table>
</body>
</html>`)
	return b.String()
}
