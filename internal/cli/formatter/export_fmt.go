package formatter

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/alexanderramin/swapplan/internal/contract"
	"github.com/charmbracelet/glamour"
)

// Format names a plan output format.
type Format string

const (
	FormatStyled   Format = "styled"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the accepted --format values.
var Formats = []Format{FormatStyled, FormatText, FormatMarkdown, FormatHTML}

// ParseFormat validates a --format value. Empty means styled.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatStyled, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q (valid: %s)", s, strings.Join(names, ", "))
}

// RenderPlan renders resp in the given format.
func RenderPlan(resp *contract.PlanResponse, format Format) (string, error) {
	switch format {
	case FormatStyled:
		return FormatPlan(resp), nil
	case FormatText:
		return FormatPlanText(resp), nil
	case FormatMarkdown:
		return FormatPlanMarkdown(resp), nil
	case FormatHTML:
		return FormatPlanHTML(resp)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// FormatPlanMarkdown renders the plan as a Markdown build sheet.
func FormatPlanMarkdown(resp *contract.PlanResponse) string {
	doc := BuildPlanDocument(resp)

	var b strings.Builder
	b.WriteString("# " + doc.Title + "\n\n")

	keys := make([]string, len(doc.Pills))
	values := make([]string, len(doc.Pills))
	rule := make([]string, len(doc.Pills))
	for i, p := range doc.Pills {
		keys[i] = escapeCell(p.Key)
		values[i] = escapeCell(p.Value)
		rule[i] = "---"
	}
	b.WriteString("| " + strings.Join(keys, " | ") + " |\n")
	b.WriteString("| " + strings.Join(rule, " | ") + " |\n")
	b.WriteString("| " + strings.Join(values, " | ") + " |\n")

	for _, s := range doc.Sections {
		b.WriteString("\n## " + s.Title + "\n\n")
		for _, item := range s.Items {
			if s.Kind == SectionChecklist {
				b.WriteString("- [ ] " + item + "\n")
			} else {
				b.WriteString("- " + item + "\n")
			}
		}
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderMarkdown renders Markdown for the terminal with glamour.
func RenderMarkdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

var planHTML = template.Must(template.New("plan").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #1d2021; }
h1 { margin: 0 0 .75rem; }
.pills { display: flex; flex-wrap: wrap; gap: .5rem; margin-bottom: 1rem; }
.pill { border: 1px solid #d5c4a1; border-radius: 999px; padding: .2rem .7rem; }
.pill .k { color: #928374; margin-right: .3rem; }
.section { border: 1px solid #d5c4a1; border-radius: 8px; margin: .75rem 0; break-inside: avoid; }
.head { display: flex; justify-content: space-between; padding: .5rem .8rem; font-weight: 600; }
.tag { font-size: .75rem; border-radius: 4px; padding: .1rem .4rem; text-transform: uppercase; }
.pink { background: #fbd5d5; } .purple { background: #ecd7e6; } .amber { background: #fdebc8; }
.green { background: #dcecd3; } .blue { background: #d6e5e8; }
ul { margin: 0; padding: .2rem 1.8rem .7rem; }
ul.checklist { list-style: none; padding-left: 1rem; }
@media print {
  body { margin: .5in; }
  .section { border-color: #999; }
  .tag { border: 1px solid #999; background: none; }
}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="pills">{{range .Pills}}<span class="pill"><span class="k">{{.Key}}</span>{{.Value}}</span>{{end}}</div>
{{range .Sections}}{{$check := .Checklist}}<div class="section">
<div class="head"><span>{{.Title}}</span><span class="tag {{.Tag}}">{{.Label}}</span></div>
<ul{{if $check}} class="checklist"{{end}}>{{range .Items}}<li>{{if $check}}☐ {{end}}{{.}}</li>{{end}}</ul>
</div>
{{end}}</body>
</html>
`))

type htmlSection struct {
	Title     string
	Label     string
	Tag       string
	Items     []string
	Checklist bool
}

// FormatPlanHTML renders the plan as a self-contained printable page.
// All catalog text is escaped.
func FormatPlanHTML(resp *contract.PlanResponse) (string, error) {
	doc := BuildPlanDocument(resp)

	sections := make([]htmlSection, len(doc.Sections))
	for i, s := range doc.Sections {
		sections[i] = htmlSection{
			Title:     s.Title,
			Label:     s.Label,
			Tag:       string(s.Tag),
			Items:     s.Items,
			Checklist: s.Kind == SectionChecklist,
		}
	}

	var buf bytes.Buffer
	err := planHTML.Execute(&buf, struct {
		Title    string
		Pills    []PlanPill
		Sections []htmlSection
	}{doc.Title, doc.Pills, sections})
	if err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}
