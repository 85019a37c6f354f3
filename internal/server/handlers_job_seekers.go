package server

import (
	"net/http"

	"github.com/hirenest/admin-console/internal/types"
)

func (s *Server) handleListJobSeekers(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r, types.StatusFilterActive, types.StatusFilterInactive)
	if err != nil {
		s.writeError(w, err)
		return
	}
	items, pagination := s.store.ListJobSeekers(q)
	s.dataResponse(w, types.JobSeekerPage{JobSeekers: items, Pagination: pagination})
}

func (s *Server) handleGetJobSeeker(w http.ResponseWriter, r *http.Request) {
	js, err := s.store.JobSeeker(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, js)
}

func (s *Server) handleToggleJobSeeker(w http.ResponseWriter, r *http.Request) {
	active, err := decodeToggle(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	js, err := s.store.SetJobSeekerActive(r.PathValue("id"), active)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, js)
}

func (s *Server) handleUpdateJobSeeker(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateJobSeekerRequest
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
	js, err := s.store.UpdateJobSeeker(r.PathValue("id"), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, js)
}

func (s *Server) handleDeleteJobSeeker(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteJobSeeker(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.messageResponse(w, "Job seeker deleted successfully")
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.dataResponse(w, s.store.Stats())
}
