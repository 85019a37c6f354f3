package server

import (
	"net/http"

	"github.com/hirenest/admin-console/internal/types"
)

func (s *Server) handleListJobPosts(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r, types.StatusFilterActive, types.StatusFilterClosed)
	if err != nil {
		s.writeError(w, err)
		return
	}
	items, pagination := s.store.ListJobPosts(q)
	s.dataResponse(w, types.JobPostPage{JobPosts: items, Pagination: pagination})
}

func (s *Server) handleActiveJobPosts(w http.ResponseWriter, _ *http.Request) {
	items, pagination := s.store.ActiveJobPosts()
	s.dataResponse(w, types.JobPostPage{JobPosts: items, Pagination: pagination})
}

func (s *Server) handleGetJobPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.JobPost(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, p)
}

func (s *Server) handleUpdateJobPost(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateJobPostRequest
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
	p, err := s.store.UpdateJobPost(r.PathValue("id"), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, p)
}

func (s *Server) handleDeleteJobPost(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteJobPost(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.messageResponse(w, "Job post deleted successfully")
}
