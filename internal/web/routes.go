package web

import (
	"net/http"

	"github.com/mathexam/mathexam/internal/logging"
	"github.com/mathexam/mathexam/internal/mascot"
	"github.com/mathexam/mathexam/internal/quiz"
)

// Deps are the collaborators behind the pages and the API.
type Deps struct {
	Bank quiz.QuestionBank
	// Animations maps an animation name to its frame names.
	Animations map[string][]string
	// PublicURL is the base for QR code links; see ServerConfig.PublicURL.
	PublicURL string
	Logger    logging.Logger
}

func (d Deps) withDefaults() Deps {
	out := d
	if out.Bank == nil {
		out.Bank = quiz.Default()
	}
	if out.Animations == nil {
		out.Animations = mascot.Animations()
	}
	if out.Logger == nil {
		out.Logger = logging.NoopLogger{}
	}
	return out
}

// MascotURL returns the path the generated image of a frame is served at.
func MascotURL(frameName string) string {
	return "/static/" + mascot.FileName(frameName)
}

// MiniRocketURL is the path of the small title rocket.
const MiniRocketURL = "/static/" + mascot.MiniFileName

// animationURLs resolves every animation to image paths.
func animationURLs(animations map[string][]string) map[string][]string {
	out := make(map[string][]string, len(animations))
	for name, frames := range animations {
		urls := make([]string, len(frames))
		for i, frame := range frames {
			urls[i] = MascotURL(frame)
		}
		out[name] = urls
	}
	return out
}

// RegisterAPIV1 registers the JSON API under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, deps Deps) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(deps)))
}

// RegisterStatic serves /static/ and /service-worker.js from staticDir,
// falling back to the embedded assets.
func RegisterStatic(mux *http.ServeMux, staticDir string) {
	mux.Handle("/static/", http.StripPrefix("/static", StaticHandler(staticDir)))
	mux.Handle("/"+ServiceWorkerFile, ServiceWorkerHandler(staticDir))
}

// RegisterPages registers the HTML pages and the QR code image.
func RegisterPages(mux *http.ServeMux, deps Deps) {
	deps = deps.withDefaults()
	p := newPages(deps)
	mux.HandleFunc("/", p.handleStart)
	mux.HandleFunc("/exams", p.handleExams)
	mux.HandleFunc("/quiz", p.handleQuiz)
	mux.HandleFunc("/topics", p.handleTopics)
	mux.HandleFunc("/qr", func(w http.ResponseWriter, r *http.Request) { handleQR(w, r, deps) })
}

// NewDefaultMux builds the application mux:
// - / and the page routes for the quiz UI
// - /static/* for assets and generated mascots, /service-worker.js
// - /api/v1/* for the API
func NewDefaultMux(staticDir string, deps Deps) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterPages(mux, deps)
	RegisterStatic(mux, staticDir)
	RegisterAPIV1(mux, deps)
	return mux
}
