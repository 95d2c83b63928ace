// Package server exposes the extraction pipeline over HTTP for manual use:
// paste a transcript, get the composed tweet back. Nothing here posts to the
// platform.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"auto_analysis_tweet_publisher/composer"
	"auto_analysis_tweet_publisher/preview"
	"auto_analysis_tweet_publisher/workflow"
)

type Server struct {
	previewDir string
	maxLength  int
	logger     *log.Logger
}

func New(previewDir string, maxLength int, logger *log.Logger) *Server {
	if maxLength == 0 {
		maxLength = composer.DefaultMaxLength
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{previewDir: previewDir, maxLength: maxLength, logger: logger}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/compose", s.handleCompose)
	mux.HandleFunc("/api/health", s.handleHealth)
	return s.logMiddleware(mux)
}

// --- Handlers ---

type composeReq struct {
	Transcript   string `json:"transcript"`
	AnalysisType string `json:"analysis_type"`
	ChatURL      string `json:"chat_url"`
	WritePreview bool   `json:"write_preview"`
}

type composeResp struct {
	Tweet          string `json:"tweet"`
	CharacterCount int    `json:"character_count"`
	HasChart       bool   `json:"has_chart"`
	ChartMarkup    string `json:"chart_markup,omitempty"`
	UsedSummary    bool   `json:"used_summary"`
	PreviewPath    string `json:"preview_path,omitempty"`
}

func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req composeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := workflow.Run(ctx, req.Transcript, workflow.Options{
		AnalysisType: composer.AnalysisType(req.AnalysisType),
		ChatURL:      req.ChatURL,
		MaxLength:    s.maxLength,
		SkipImage:    true,
		SkipPublish:  true,
	}, workflow.Deps{Logger: s.logger})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := composeResp{
		Tweet:          result.Tweet,
		CharacterCount: utf8.RuneCountInString(result.Tweet),
		HasChart:       result.ChartMarkup != "",
		ChartMarkup:    result.ChartMarkup,
		UsedSummary:    result.UsedSummary,
	}

	if req.WritePreview {
		_, htmlPath, err := preview.Write(s.previewDir, preview.Preview{
			Content:      result.Tweet,
			ChatURL:      req.ChatURL,
			AnalysisType: req.AnalysisType,
		})
		if err != nil {
			s.logger.Printf("[WARN] preview write failed: %v", err)
		} else {
			resp.PreviewPath = htmlPath
		}
	}

	writeJSON(w, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
