package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/veritable/veritable-go/internal/middleware"
	"github.com/veritable/veritable-go/internal/model"
	"github.com/veritable/veritable-go/internal/service"
)

// UserHandler handles the administrative user routes.
type UserHandler struct {
	service *service.UserService
	dev     bool
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, dev bool) *UserHandler {
	return &UserHandler{service: svc, dev: dev}
}

// HandleList handles GET /users requests. Password hashes are never serialized.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.PrincipalFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	users, err := h.service.List(r.Context())
	if err != nil {
		internalError(w, err, h.dev)
		return
	}
	if users == nil {
		users = []model.User{}
	}

	writeJSON(w, http.StatusOK, users)
}

// HandleDelete handles DELETE /users/{id} requests. Any valid token may delete
// any user; ownership is not checked.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.PrincipalFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid user id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		internalError(w, err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "User deleted"})
}
