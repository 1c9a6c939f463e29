// Package renderer turns diagnostic lists into terminal and machine-readable
// output. The engine itself never writes anywhere; presentation is a host
// concern.
package renderer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/testlint/pkg/lint"
)

// Renderer formats diagnostics for terminal output.
type Renderer struct {
	noColor bool
}

// New creates a Renderer.
func New(noColor bool) *Renderer {
	return &Renderer{noColor: noColor}
}

// diagnosticView is the flat, serializable projection of a Diagnostic.
type diagnosticView struct {
	File    string `json:"file" yaml:"file"`
	Line    uint   `json:"line" yaml:"line"`
	Col     uint   `json:"col" yaml:"col"`
	Rule    string `json:"rule" yaml:"rule"`
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

func toView(diagnostic lint.Diagnostic) diagnosticView {
	view := diagnosticView{
		File:    diagnostic.File,
		Rule:    diagnostic.RuleID,
		Kind:    string(diagnostic.Kind),
		Message: diagnostic.Message,
	}

	if pos := diagnostic.Position(); pos != nil {
		view.Line = pos.StartLine
		view.Col = pos.StartCol
	}

	return view
}

// RenderText writes one line per diagnostic in file:line:col style.
func (r *Renderer) RenderText(diagnostics []lint.Diagnostic, writer io.Writer) error {
	locate := r.sprintFunc(color.FgCyan)
	ruleID := r.sprintFunc(color.FgRed)

	for _, diagnostic := range diagnostics {
		view := toView(diagnostic)

		_, err := fmt.Fprintf(writer, "%s  %s  %s\n",
			locate(fmt.Sprintf("%s:%d:%d", view.File, view.Line, view.Col)),
			ruleID(view.Rule),
			view.Message)
		if err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}

	return nil
}

// RenderTable writes diagnostics as an aligned table.
func (r *Renderer) RenderTable(diagnostics []lint.Diagnostic, writer io.Writer) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(writer)
	tbl.AppendHeader(table.Row{"Location", "Rule", "Message"})

	for _, diagnostic := range diagnostics {
		view := toView(diagnostic)
		tbl.AppendRow(table.Row{
			fmt.Sprintf("%s:%d:%d", view.File, view.Line, view.Col),
			view.Rule,
			view.Message,
		})
	}

	if !r.noColor {
		tbl.SetStyle(table.StyleColoredDark)
	}

	tbl.Render()

	return nil
}

// RenderJSON writes diagnostics as an indented JSON array.
func RenderJSON(diagnostics []lint.Diagnostic, writer io.Writer) error {
	views := make([]diagnosticView, 0, len(diagnostics))
	for _, diagnostic := range diagnostics {
		views = append(views, toView(diagnostic))
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(views)
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}

	return nil
}

// RenderYAML writes diagnostics as a YAML document.
func RenderYAML(diagnostics []lint.Diagnostic, writer io.Writer) error {
	views := make([]diagnosticView, 0, len(diagnostics))
	for _, diagnostic := range diagnostics {
		views = append(views, toView(diagnostic))
	}

	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()

	err := encoder.Encode(views)
	if err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}

	return nil
}

// RenderSummary writes the closing one-line run summary.
func (r *Renderer) RenderSummary(fileCount, diagnosticCount int, writer io.Writer) error {
	status := r.sprintFunc(color.FgGreen)
	if diagnosticCount > 0 {
		status = r.sprintFunc(color.FgRed)
	}

	_, err := fmt.Fprintf(writer, "checked %s, %s\n",
		english.Plural(fileCount, "file", "files"),
		status(english.Plural(diagnosticCount, "problem", "problems")))
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	return nil
}

func (r *Renderer) sprintFunc(attr color.Attribute) func(...any) string {
	if r.noColor {
		return fmt.Sprint
	}

	return color.New(attr).SprintFunc()
}
