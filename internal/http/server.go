package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pathwise/career-fit-engine/internal/domain"
	"github.com/pathwise/career-fit-engine/internal/matching"
)

type Server struct {
	Careers []domain.CareerProfile
	Repo    CareersRepo
	Logger  *zap.Logger
}

// CareersRepo serves the read-only catalog browse endpoints. When nil, the
// server falls back to the in-memory catalog slice.
type CareersRepo interface {
	List(params ListParams) ([]CareerSummary, int)
	Get(title string) (domain.CareerProfile, bool)
}

func NewServer(careers []domain.CareerProfile, repo CareersRepo, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{Careers: careers, Repo: repo, Logger: logger}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/match", s.handleMatch)
	mux.HandleFunc("/skills", s.handleSkills)
	mux.HandleFunc("/assess", s.handleAssess)
	mux.HandleFunc("/careers", s.handleCareersList)
	mux.HandleFunc("/careers/", s.handleCareersGetByTitle)
	return withRequestID(accessLog(s.Logger, mux))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type AssessRequest struct {
	Answers  map[string]any `json:"answers"`
	Limit    int            `json:"limit"`
	Strategy string         `json:"strategy"`
}

type MatchResponse struct {
	RequestID string               `json:"request_id"`
	Strategy  string               `json:"strategy"`
	Results   []domain.MatchResult `json:"results"`
}

type SkillsResponse struct {
	RequestID string              `json:"request_id"`
	Skills    domain.SkillsReport `json:"skills"`
}

type AssessResponse struct {
	RequestID string               `json:"request_id"`
	Strategy  string               `json:"strategy"`
	Results   []domain.MatchResult `json:"results"`
	Skills    domain.SkillsReport  `json:"skills"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	req, engine, ok := s.decodeAssessRequest(w, r)
	if !ok {
		return
	}

	profile := matching.Normalize(req.Answers)
	results := engine.Rank(profile, s.Careers, s.limitFor(r, req.Limit))

	writeJSON(w, http.StatusOK, MatchResponse{
		RequestID: requestIDFrom(r),
		Strategy:  engine.Strategy().Name(),
		Results:   results,
	})
}

func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	report := matching.AnalyzeSkills(matching.Normalize(req.Answers))
	writeJSON(w, http.StatusOK, SkillsResponse{RequestID: requestIDFrom(r), Skills: report})
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	req, engine, ok := s.decodeAssessRequest(w, r)
	if !ok {
		return
	}

	profile := matching.Normalize(req.Answers)
	results := engine.Rank(profile, s.Careers, s.limitFor(r, req.Limit))
	report := matching.AnalyzeSkills(profile)

	writeJSON(w, http.StatusOK, AssessResponse{
		RequestID: requestIDFrom(r),
		Strategy:  engine.Strategy().Name(),
		Results:   results,
		Skills:    report,
	})
}

func (s *Server) decodeAssessRequest(w http.ResponseWriter, r *http.Request) (AssessRequest, *matching.Engine, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return AssessRequest{}, nil, false
	}

	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return AssessRequest{}, nil, false
	}

	strategy, err := matching.StrategyByName(req.Strategy)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return AssessRequest{}, nil, false
	}
	return req, matching.NewEngine(strategy), true
}

func (s *Server) limitFor(r *http.Request, bodyLimit int) int {
	limit := bodyLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	return limit
}

// ---- Careers API (read-only; the catalog is immutable after load) ----

type CareerSummary struct {
	Title       string   `json:"title"`
	SalaryRange string   `json:"salary_range"`
	GrowthRate  string   `json:"growth_rate"`
	Description string   `json:"description"`
	KeySkills   []string `json:"key_skills,omitempty"`
}

type ListParams struct {
	Limit  int
	Offset int
	Search string
	Sort   string
}

type CareersListResponse struct {
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	Total  int             `json:"total"`
	Items  []CareerSummary `json:"items"`
}

func (s *Server) handleCareersList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, offset := parseLimitOffset(r, 20, 0)
	params := ListParams{
		Limit:  limit,
		Offset: offset,
		Search: r.URL.Query().Get("q"),
		Sort:   r.URL.Query().Get("sort"),
	}

	var items []CareerSummary
	var total int
	if s.Repo != nil {
		items, total = s.Repo.List(params)
	} else {
		items, total = listInMemory(s.Careers, params)
	}

	writeJSON(w, http.StatusOK, CareersListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

func (s *Server) handleCareersGetByTitle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	title := strings.TrimPrefix(r.URL.Path, "/careers/")
	if title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing_title"})
		return
	}

	if s.Repo != nil {
		if c, ok := s.Repo.Get(title); ok {
			writeJSON(w, http.StatusOK, c)
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}

	for _, c := range s.Careers {
		if c.Title == title {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
}

func listInMemory(careers []domain.CareerProfile, p ListParams) ([]CareerSummary, int) {
	filtered := make([]domain.CareerProfile, 0, len(careers))
	q := strings.ToLower(strings.TrimSpace(p.Search))
	for _, c := range careers {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Metadata.Description), q) {
			continue
		}
		filtered = append(filtered, c)
	}

	total := len(filtered)
	offset := p.Offset
	if offset > total {
		offset = total
	}
	end := offset + p.Limit
	if end > total {
		end = total
	}

	items := make([]CareerSummary, 0, end-offset)
	for _, c := range filtered[offset:end] {
		items = append(items, summarize(c))
	}
	return items, total
}

func summarize(c domain.CareerProfile) CareerSummary {
	return CareerSummary{
		Title:       c.Title,
		SalaryRange: c.Metadata.SalaryRange,
		GrowthRate:  c.Metadata.GrowthRate,
		Description: c.Metadata.Description,
		KeySkills:   c.Metadata.KeySkills,
	}
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
