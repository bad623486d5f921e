package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// dashboardPartials are the sections of dashboard.md.
var dashboardPartials = map[string]string{
	"dashboard_cards":    "dashboard_cards.md",
	"dashboard_chart":    "dashboard_chart.md",
	"dashboard_insights": "dashboard_insights.md",
	"dashboard_log":      "dashboard_log.md",
}

// RenderDashboard renders the full dashboard to markdown.
func RenderDashboard(d *Dashboard) string {
	return renderTemplate("dashboard", "dashboard.md", dashboardPartials, d)
}

// RenderCards renders the metrics overview table.
func RenderCards(d *Dashboard) string {
	return renderTemplate("dashboard_cards", "dashboard_cards.md", nil, d)
}

// RenderChart renders the balance chart.
func RenderChart(d *Dashboard) string {
	return renderTemplate("dashboard_chart", "dashboard_chart.md", nil, d)
}

// RenderInsights renders the insights section.
func RenderInsights(d *Dashboard) string {
	return renderTemplate("dashboard_insights", "dashboard_insights.md", nil, d)
}

// RenderLog renders the transaction log, newest first.
func RenderLog(d *Dashboard) string {
	return renderTemplate("dashboard_log", "dashboard_log.md", nil, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
