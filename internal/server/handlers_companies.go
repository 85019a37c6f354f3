package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/hirenest/admin-console/internal/types"
)

// parseListQuery reads page, limit, search and status. Missing or malformed page
// and limit values fall back to their defaults; limit is capped at MaxPageSize.
func parseListQuery(r *http.Request, statuses ...string) (ListQuery, error) {
	v := r.URL.Query()
	q := ListQuery{Page: 1, Limit: types.DefaultPageSize}
	if n, err := strconv.Atoi(v.Get("page")); err == nil && n > 0 {
		q.Page = n
	}
	if n, err := strconv.Atoi(v.Get("limit")); err == nil && n > 0 {
		q.Limit = min(n, MaxPageSize)
	}
	q.Search = strings.TrimSpace(v.Get("search"))

	status := strings.ToLower(strings.TrimSpace(v.Get("status")))
	if status == "" || status == types.StatusFilterAll {
		return q, nil
	}
	for _, allowed := range statuses {
		if status == allowed {
			q.Status = status
			return q, nil
		}
	}
	return q, &ErrValidation{Field: "status", Message: "must be one of: " + strings.Join(statuses, ", ")}
}

// toggleBody requires isActive to be present.
type toggleBody struct {
	IsActive *bool `json:"isActive"`
}

func decodeToggle(w http.ResponseWriter, r *http.Request) (bool, error) {
	var body toggleBody
	if err := decodeJSON(w, r, &body); err != nil {
		return false, err
	}
	if body.IsActive == nil {
		return false, &ErrValidation{Field: "isActive", Message: "is required"}
	}
	return *body.IsActive, nil
}

func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r, types.StatusFilterActive, types.StatusFilterInactive)
	if err != nil {
		s.writeError(w, err)
		return
	}
	items, pagination := s.store.ListCompanies(q)
	s.dataResponse(w, types.CompanyPage{JobProviders: items, Pagination: pagination})
}

func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.Company(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, c)
}

func (s *Server) handleToggleCompany(w http.ResponseWriter, r *http.Request) {
	active, err := decodeToggle(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	c, err := s.store.SetCompanyActive(r.PathValue("id"), active)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, c)
}

func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateCompanyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := types.Validate(req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Empty() {
		s.writeError(w, &ErrValidation{Message: "nothing to update"})
		return
	}
	c, err := s.store.UpdateCompany(r.PathValue("id"), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, c)
}

func (s *Server) handleVerifyCompany(w http.ResponseWriter, r *http.Request) {
	var req types.VerificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := types.Validate(req); err != nil {
		s.writeError(w, err)
		return
	}
	c, err := s.store.SetCompanyVerification(r.PathValue("id"), req.VerificationStatus)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, c)
}

func (s *Server) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCompany(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.messageResponse(w, "Job provider deleted successfully")
}
