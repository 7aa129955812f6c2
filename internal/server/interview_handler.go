package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jordan/interview-ace/internal/answers"
	"github.com/jordan/interview-ace/internal/bank"
	"github.com/jordan/interview-ace/internal/extract"
	"github.com/jordan/interview-ace/internal/llm"
	"github.com/jordan/interview-ace/internal/prompt"
)

const (
	// maxUploadBytes caps resume uploads at 10MB.
	maxUploadBytes = 10 << 20

	// generationTimeout bounds a single model call.
	generationTimeout = 90 * time.Second
)

// ManualRequest is the payload for POST /submit-manual, used when the resume
// did not yield enough to pick questions automatically.
type ManualRequest struct {
	Role   string `json:"role"`
	Level  string `json:"level"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Skills string `json:"skills"`
}

// InterviewHandler serves resume processing and question generation.
type InterviewHandler struct {
	bank      *bank.Bank
	llm       llm.Client
	uploadDir string
	logger    zerolog.Logger
}

// NewInterviewHandler creates an InterviewHandler.
func NewInterviewHandler(b *bank.Bank, client llm.Client, uploadDir string, logger zerolog.Logger) *InterviewHandler {
	return &InterviewHandler{
		bank:      b,
		llm:       client,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// ProcessResume handles POST /process-resume. It saves the uploaded file,
// extracts candidate info from it, and either generates answered questions or
// asks the client to fall back to manual input when the detected role or
// level is not covered by the question bank.
func (h *InterviewHandler) ProcessResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		errorJSON(w, http.StatusBadRequest, "File too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "No resume file provided")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".doc" && ext != ".docx" {
		errorJSON(w, http.StatusBadRequest, "Only PDF, DOC and DOCX files are supported")
		return
	}

	path, err := h.saveUpload(r, file, header.Filename)
	if err != nil {
		h.logger.Error().Err(err).Msg("saving upload")
		errorJSON(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	info, err := extract.FromFile(path)
	if err != nil {
		h.logger.Error().Err(err).Str("path", path).Msg("extracting resume")
		errorJSON(w, HTTPStatus(err), "Could not read the uploaded resume")
		return
	}

	ok, roles, err := h.bankCovers(info.Role, info.Level)
	if err != nil {
		h.logger.Error().Err(err).Msg("loading question bank")
		errorJSON(w, http.StatusInternalServerError, "Question bank unavailable")
		return
	}

	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{
			"needsManualInput": true,
			"info":             info,
			"availableRoles":   roles,
		})
		return
	}

	pairs, err := h.generateAnswers(r.Context(), info.Role, info.Level)
	if err != nil {
		h.generationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"needsManualInput": false,
		"info":             info,
		"questions":        pairs,
	})
}

// SubmitManual handles POST /submit-manual with role and level chosen by the
// user directly.
func (h *InterviewHandler) SubmitManual(w http.ResponseWriter, r *http.Request) {
	var req ManualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Role = strings.TrimSpace(req.Role)
	req.Level = strings.TrimSpace(req.Level)
	req.Name = strings.TrimSpace(req.Name)
	if req.Role == "" || req.Level == "" || req.Name == "" {
		errorJSON(w, http.StatusBadRequest, "Name, role and level are required")
		return
	}

	levels, err := h.bank.Levels(req.Role)
	if err != nil {
		h.logger.Error().Err(err).Msg("loading question bank")
		errorJSON(w, http.StatusInternalServerError, "Question bank unavailable")
		return
	}
	if !containsFold(levels, req.Level) {
		errorJSON(w, http.StatusBadRequest, fmt.Sprintf("Level %q is not available for role %q", req.Level, req.Role))
		return
	}

	info := &extract.Info{
		Email:  orNotFound(req.Email),
		Name:   req.Name,
		Skills: splitSkills(req.Skills),
		Role:   req.Role,
		Level:  req.Level,
	}

	pairs, err := h.generateAnswers(r.Context(), req.Role, req.Level)
	if err != nil {
		h.generationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"info":      info,
		"questions": pairs,
	})
}

// Roles handles GET /roles.
func (h *InterviewHandler) Roles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.bank.Roles()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Question bank unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"roles": roles})
}

// Levels handles GET /levels?role=<role>.
func (h *InterviewHandler) Levels(w http.ResponseWriter, r *http.Request) {
	role := strings.TrimSpace(r.URL.Query().Get("role"))
	if role == "" {
		errorJSON(w, http.StatusBadRequest, "Query parameter role is required")
		return
	}
	levels, err := h.bank.Levels(role)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Question bank unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"levels": levels})
}

// generateAnswers selects questions for the role and level, prompts the model
// and pairs its reply with the questions.
func (h *InterviewHandler) generateAnswers(ctx context.Context, role, level string) ([]answers.Pair, error) {
	questions, err := h.bank.Questions(role, level, bank.DefaultLimit)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, &ErrNoQuestions{Role: role, Level: level}
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	reply, err := h.llm.Complete(ctx, prompt.Build(role, level, questions))
	if err != nil {
		return nil, err
	}

	return answers.Parse(reply, questions), nil
}

// generationError reports a failed generation. Client-caused errors, like a
// (role, level) with no questions, keep their message; everything else is
// logged server-side and reaches the client as a generic message so model
// transport detail never leaks.
func (h *InterviewHandler) generationError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("generating answers")
		errorJSON(w, status, "Failed to generate answers")
		return
	}
	errorJSON(w, status, err.Error())
}

// saveUpload writes the uploaded file under the upload directory, prefixed
// with the authenticated user's id to avoid collisions.
func (h *InterviewHandler) saveUpload(r *http.Request, file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	prefix := "anonymous"
	if claims := sessionFromContext(r.Context()); claims != nil {
		prefix = claims.UserID
	}

	path := filepath.Join(h.uploadDir, prefix+"_"+filepath.Base(filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return path, nil
}

// bankCovers reports whether the bank has questions for the extracted role
// and level, returning the available roles for the manual-input fallback.
func (h *InterviewHandler) bankCovers(role, level string) (bool, []string, error) {
	roles, err := h.bank.Roles()
	if err != nil {
		return false, nil, err
	}
	if !containsFold(roles, role) {
		return false, roles, nil
	}
	levels, err := h.bank.Levels(role)
	if err != nil {
		return false, nil, err
	}
	if !containsFold(levels, level) {
		return false, roles, nil
	}
	return true, roles, nil
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

// splitSkills parses the comma-separated manual skills field. Unlike the
// extractor, a blank field here means the user chose to list nothing, so the
// result is empty rather than the "Not found" singleton.
func splitSkills(raw string) []string {
	skills := []string{}
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func orNotFound(value string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return extract.NotFound
}
