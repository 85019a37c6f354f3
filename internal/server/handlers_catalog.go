package server

import (
	"net/http"

	"github.com/hirenest/admin-console/internal/types"
)

func (s *Server) handleListPackages(w http.ResponseWriter, _ *http.Request) {
	s.dataResponse(w, s.store.Packages())
}

func (s *Server) handleGetPackage(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Package(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, p)
}

func decodeValid(w http.ResponseWriter, r *http.Request, v any) error {
	if err := decodeJSON(w, r, v); err != nil {
		return err
	}
	return types.Validate(v)
}

func (s *Server) handleCreatePackage(w http.ResponseWriter, r *http.Request) {
	var req types.PackageRequest
	if err := decodeValid(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	p, err := s.store.CreatePackage(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, p)
}

func (s *Server) handleUpdatePackage(w http.ResponseWriter, r *http.Request) {
	var req types.PackageRequest
	if err := decodeValid(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	p, err := s.store.UpdatePackage(r.PathValue("id"), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, p)
}

func (s *Server) handleDeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePackage(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.messageResponse(w, "Package deleted successfully")
}

func (s *Server) handleListFeatures(w http.ResponseWriter, _ *http.Request) {
	s.dataResponse(w, s.store.Features())
}

func (s *Server) handleCreateFeature(w http.ResponseWriter, r *http.Request) {
	var req types.FeatureRequest
	if err := decodeValid(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, s.store.CreateFeature(req))
}

func (s *Server) handleUpdateFeature(w http.ResponseWriter, r *http.Request) {
	var req types.FeatureRequest
	if err := decodeValid(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	f, err := s.store.UpdateFeature(r.PathValue("id"), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, f)
}

func (s *Server) handleDeleteFeature(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteFeature(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.messageResponse(w, "Feature deleted successfully")
}

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	s.dataResponse(w, s.store.Settings())
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req types.PlatformSettings
	if err := decodeValid(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.dataResponse(w, s.store.UpdateSettings(req))
}
