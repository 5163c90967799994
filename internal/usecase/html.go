package usecase

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

// HTMLRenderer realizes view values as standalone HTML documents using
// the templates directory. The stylesheet is inlined so the realized
// document renders identically when saved, served or printed to PDF.
type HTMLRenderer struct {
	tplDir string
}

func NewHTMLRenderer(tplDir string) *HTMLRenderer {
	return &HTMLRenderer{tplDir: tplDir}
}

func (r *HTMLRenderer) ResumeHTML(v ResumeView) (string, error) {
	return r.render("resume.html", v)
}

func (r *HTMLRenderer) PortfolioHTML(v PortfolioView) (string, error) {
	return r.render("portfolio.html", v)
}

func (r *HTMLRenderer) render(name string, data interface{}) (string, error) {
	tpl, err := template.ParseFiles(filepath.Join(r.tplDir, name))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	html := buf.String()

	// Inline the local stylesheet so the saved document keeps styling.
	if b, err := os.ReadFile(filepath.Join(r.tplDir, "style.css")); err == nil {
		cssBlock := "<style>" + string(b) + "</style>"
		if strings.Contains(strings.ToLower(html), "<head>") {
			html = strings.Replace(html, "<head>", "<head>"+cssBlock, 1)
		} else {
			html = cssBlock + html
		}
	}
	return html, nil
}
