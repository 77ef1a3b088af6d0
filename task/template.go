package task

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Template builds the task identity from a text/template, e.g.
// `{{.Project | upper}}: {{.Description}}`.
type Template struct {
	tmpl *template.Template
}

type templateData struct {
	Description string
	Project     string
}

func NewTemplate(text string) (*Template, error) {
	// An anglo-centric approach to title-casing.
	caser := cases.Title(language.English)

	funcs := template.FuncMap{
		"title": caser.String,
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"trim":  strings.TrimSpace,
	}

	tmpl, err := template.New("task").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("template.Parse: %w", err)
	}

	return &Template{tmpl: tmpl}, nil
}

func (t *Template) Resolve(description, project string) (string, error) {
	var sb strings.Builder
	err := t.tmpl.Execute(&sb, templateData{
		Description: description,
		Project:     project,
	})
	if err != nil {
		return "", resolutionErrorf(description, project, "template.Execute: %w", err)
	}

	taskID := strings.TrimSpace(sb.String())
	if taskID == "" {
		return "", resolutionErrorf(description, project, "template produced an empty task name")
	}

	return taskID, nil
}
