package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBuiltinTemplates(t *testing.T) {
	tm := NewTemplateManager()

	out, err := tm.Render("application_submitted", TemplateData{
		"ApplicantName": "Aliya",
		"JobTitle":      "Backend Engineer",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Aliya")
	assert.Contains(t, out, "Backend Engineer")

	out, err = tm.Render("application_status", TemplateData{
		"ApplicantName": "Aliya",
		"JobTitle":      "Backend Engineer",
		"Status":        "accepted",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "accepted")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("does-not-exist", nil)
	assert.Error(t, err)
}

func TestAddTemplate(t *testing.T) {
	tm := NewTemplateManager()

	require.NoError(t, tm.AddTemplate("greeting", "Hello {{.Name}}"))

	out, err := tm.Render("greeting", TemplateData{"Name": "Aliya"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Aliya", out)
}
