package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"

	"github.com/mathexam/mathexam/internal/assets"
)

var pageTemplates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"json": toJSON,
}).ParseFS(assets.Templates, "*.html"))

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type pageData struct {
	Title      string
	MiniRocket string

	// quiz page; Topic and Exam are the raw query values
	Topic  string
	Exam   string
	Mascot map[string][]string
	QRCode string

	// topics page
	Exam1Topics []string
	Exam2Topics []string
	CurrentExam string
}

type pages struct {
	deps Deps
	tmpl *template.Template
}

func newPages(deps Deps) *pages {
	return &pages{deps: deps, tmpl: pageTemplates}
}

func (p *pages) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	p.render(w, r, "start.html", pageData{Title: "Start"})
}

func (p *pages) handleExams(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "exams.html", pageData{Title: "Exams"})
}

func (p *pages) handleQuiz(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	data := pageData{
		Title:  "Quiz",
		Topic:  query.Get("topic"),
		Exam:   query.Get("exam"),
		Mascot: animationURLs(p.deps.Animations),
		QRCode: qrPath(query.Get("topic"), query.Get("exam")),
	}
	p.render(w, r, "index.html", data)
}

func (p *pages) handleTopics(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:       "Topics",
		Exam1Topics: p.deps.Bank.Exam1Topics(),
		Exam2Topics: p.deps.Bank.Exam2Topics(),
		CurrentExam: r.URL.Query().Get("exam"),
	}
	p.render(w, r, "topics.html", data)
}

func (p *pages) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if data.MiniRocket == "" {
		data.MiniRocket = MiniRocketURL
	}

	// Render fully before writing so template failures still produce a 500.
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		p.deps.Logger.Errorf("web", "render %s: %v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = buf.WriteTo(w)
}

// qrPath links the quiz page's QR image to the same topic and exam.
func qrPath(topic, exam string) string {
	values := url.Values{}
	if topic != "" {
		values.Set("topic", topic)
	}
	if exam != "" {
		values.Set("exam", exam)
	}
	if len(values) == 0 {
		return "/qr"
	}
	return "/qr?" + values.Encode()
}
