package web

import (
	"encoding/json"
	"net/http"

	"github.com/mathexam/mathexam/internal/quiz"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type topicsResponse struct {
	Exam1 []string `json:"exam1"`
	Exam2 []string `json:"exam2"`
}

func apiV1Router(deps Deps) http.Handler {
	deps = deps.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/topics", func(w http.ResponseWriter, r *http.Request) { handleTopics(w, r, deps) })
	mux.HandleFunc("/mascot", func(w http.ResponseWriter, r *http.Request) { handleMascot(w, r, deps) })
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusNotFound, "not_found", "not found")
	})
	return mux
}

func handleTopics(w http.ResponseWriter, r *http.Request, deps Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	exam := r.URL.Query().Get("exam")
	if exam == "" {
		writeJSON(w, http.StatusOK, topicsResponse{
			Exam1: nonNil(deps.Bank.Exam1Topics()),
			Exam2: nonNil(deps.Bank.Exam2Topics()),
		})
		return
	}

	topics, ok := quiz.TopicsFor(deps.Bank, exam)
	if !ok {
		writeAPIError(w, http.StatusNotFound, "exam_not_found", "exam not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(topics))
}

func handleMascot(w http.ResponseWriter, r *http.Request, deps Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, animationURLs(deps.Animations))
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
