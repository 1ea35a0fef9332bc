package web

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type pageData struct {
	Title string
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error(r.Context(), "error rendering page", "page", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) indexPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "index.html", pageData{Title: "streamhub"})
}

func (s *Server) aboutPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "about.html", pageData{Title: "About — streamhub"})
}
