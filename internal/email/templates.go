package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager keeps parsed html templates for notification mail.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, body := range builtinTemplates {
		// Built-ins are compile-time constants; a parse failure is a bug.
		if err := tm.AddTemplate(name, body); err != nil {
			panic(fmt.Sprintf("invalid builtin email template %q: %v", name, err))
		}
	}

	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

var builtinTemplates = map[string]string{
	"application_submitted": `<h2>Application Submitted</h2>
<p>Hi {{.ApplicantName}},</p>
<p>You applied for <b>{{.JobTitle}}</b>. The employer will review your application shortly.</p>`,

	"new_applicant": `<h2>New Application Received</h2>
<p>Hi {{.CompanyName}},</p>
<p>A new applicant has applied for your job <b>{{.JobTitle}}</b>.</p>`,

	"application_status": `<h2>Status Update</h2>
<p>Hi {{.ApplicantName}},<br>
Your application for <b>{{.JobTitle}}</b> is now: <b>{{.Status}}</b></p>`,
}
