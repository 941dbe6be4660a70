package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dgallion1/docsumm/internal/parser"
	"github.com/dgallion1/docsumm/internal/pipeline"
	"github.com/dgallion1/docsumm/internal/render"
	"github.com/dgallion1/docsumm/internal/summarize"
)

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	backendCfg, err := s.resolveBackend(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	job := pipeline.NewJob(uuid.NewString(), filename, data, backendCfg)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":     job.ID,
		"status":     pipeline.StatusPending,
		"status_url": fmt.Sprintf("/status/%s", job.ID),
		"result_url": fmt.Sprintf("/result/%s", job.ID),
	})
}

// resolveBackend builds the job's backend configuration from request
// parameters, falling back to server defaults. Missing credentials are
// rejected here, before any work is queued.
func (s *Server) resolveBackend(r *http.Request) (summarize.Config, error) {
	backend := r.FormValue("model")
	if backend == "" {
		backend = s.cfg.DefaultBackend
	}

	cfg := summarize.Config{
		Backend: summarize.Backend(backend),
		Timeout: s.cfg.SummarizeTimeout,
	}
	switch cfg.Backend {
	case summarize.BackendLocal:
		cfg.Endpoint = formOr(r, "api_url", s.cfg.OllamaURL)
		cfg.Model = s.cfg.LocalModel
	case summarize.BackendRemote:
		cfg.APIKey = formOr(r, "api_key", s.cfg.OpenAIAPIKey)
		cfg.BaseURL = s.cfg.OpenAIBaseURL
		cfg.Model = s.cfg.RemoteModel
	}

	if err := cfg.Validate(); err != nil {
		return summarize.Config{}, err
	}
	return cfg, nil
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	snap := job.Snapshot()
	resp := map[string]any{
		"status": snap.Status,
	}

	switch snap.Status {
	case pipeline.StatusPending:
		resp["progress"] = 0
		resp["status_message"] = "Job is pending."
	case pipeline.StatusFailure:
		resp["progress"] = 100
		resp["status_message"] = snap.Error
	default:
		resp["progress"] = snap.Progress.Percent()
		resp["status_message"] = snap.Progress.StatusMessage
		resp["section_total"] = snap.Progress.SectionTotal
		resp["section_current"] = snap.Progress.SectionCurrent
		resp["section_progress"] = snap.Progress.SectionProgress
		resp["chunk_total"] = snap.Progress.ChunkTotal
		resp["chunk_current"] = snap.Progress.ChunkCurrent
		if snap.Status == pipeline.StatusSuccess {
			resp["result"] = job.Result()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	snap := job.Snapshot()
	switch snap.Status {
	case pipeline.StatusFailure:
		jsonError(w, snap.Error, http.StatusInternalServerError)
		return
	case pipeline.StatusSuccess:
	default:
		jsonError(w, "job is still in progress", http.StatusAccepted)
		return
	}

	result := job.Result()
	switch r.URL.Query().Get("format") {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result.SummariesJSON)
	case "html":
		html, err := render.HTML(result.SummaryMarkdown)
		if err != nil {
			jsonError(w, "render failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, html)
	default:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"summary_markdown": result.SummaryMarkdown,
		})
	}
}

func formOr(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
