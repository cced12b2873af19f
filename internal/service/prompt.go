package service

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"ats-resume-optimizer/internal/domain"
)

//go:embed prompts/ats_analysis.tmpl
var atsAnalysisPromptRaw string

// ATSAnalysisTemplate is the instruction template sent with every request.
// Parsed once at package init and never modified afterwards.
var ATSAnalysisTemplate = template.Must(
	template.New("ats_analysis").Option("missingkey=error").Parse(atsAnalysisPromptRaw),
)

// promptData holds the two substitution points of the template. Values are
// written as literals; template syntax inside them is not interpreted.
type promptData struct {
	ResumeText     string
	JobDescription string
}

// TemplatePromptBuilder implements domain.PromptBuilder over a text/template.
type TemplatePromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder creates a builder for tmpl. A nil tmpl selects ATSAnalysisTemplate.
func NewPromptBuilder(tmpl *template.Template) *TemplatePromptBuilder {
	if tmpl == nil {
		tmpl = ATSAnalysisTemplate
	}
	return &TemplatePromptBuilder{tmpl: tmpl}
}

// Build renders the prompt. resumeText should already be normalized; the job
// description is used verbatim.
func (b *TemplatePromptBuilder) Build(resumeText, jobDescription string) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, promptData{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	}); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTemplate, err)
	}
	return buf.String(), nil
}
