package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/veritable/veritable-go/internal/middleware"
	"github.com/veritable/veritable-go/internal/model"
	"github.com/veritable/veritable-go/internal/service"
	"github.com/veritable/veritable-go/internal/storage"
)

// maxUploadBytes caps multipart request bodies; the original accepted 50MB.
const maxUploadBytes = 50 << 20

// PublicationHandler handles HTTP requests for publication CRUD.
type PublicationHandler struct {
	service *service.PublicationService
	uploads *storage.Uploads
	dev     bool
}

// NewPublicationHandler creates a new PublicationHandler.
func NewPublicationHandler(svc *service.PublicationService, uploads *storage.Uploads, dev bool) *PublicationHandler {
	return &PublicationHandler{service: svc, uploads: uploads, dev: dev}
}

// HandleList handles GET /publications requests. Public, no pagination.
func (h *PublicationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pubs, err := h.service.List(r.Context())
	if err != nil {
		internalError(w, err, h.dev)
		return
	}
	if pubs == nil {
		pubs = []model.Publication{}
	}
	writeJSON(w, http.StatusOK, pubs)
}

// HandleGet handles GET /publications/{id} requests. Public.
func (h *PublicationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := publicationID(w, r)
	if !ok {
		return
	}

	pub, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		internalError(w, err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, pub)
}

// HandleCreate handles POST /publications requests. The body is a multipart
// form with the client's French field names and an optional cover image.
func (h *PublicationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.PrincipalFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	in, ok := h.decodeForm(w, r, false)
	if !ok {
		return
	}

	pub, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, pub)
}

// HandleUpdate handles PUT /publications/{id} requests.
func (h *PublicationHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.PrincipalFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := publicationID(w, r)
	if !ok {
		return
	}

	in, ok := h.decodeForm(w, r, true)
	if !ok {
		return
	}

	pub, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pub)
}

// HandleDelete handles DELETE /publications/{id} requests. The row goes away;
// the stored cover file does not.
func (h *PublicationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.PrincipalFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := publicationID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		internalError(w, err, h.dev)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Publication deleted"})
}

// decodeForm parses the multipart body into a PublicationInput. When a file is
// uploaded it is persisted immediately and its URL set as the cover image; on
// updates an imageUrl form field may supply an external URL instead.
func (h *PublicationHandler) decodeForm(w http.ResponseWriter, r *http.Request, allowImageURL bool) (model.PublicationInput, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart form"))
		return model.PublicationInput{}, false
	}

	in := model.PublicationInput{
		Title:   r.FormValue("titre"),
		Content: r.FormValue("contenuPrincipal"),
		Excerpt: r.FormValue("extrait"),
		Type:    r.FormValue("type"),
	}
	if v := r.FormValue("estPayant"); v != "" {
		paid := v == "true"
		in.IsPaid = &paid
	}

	file, header, err := r.FormFile("coverImage")
	switch {
	case err == nil:
		defer file.Close()
		url, err := h.uploads.Save(file, header)
		if err != nil {
			internalError(w, err, h.dev)
			return model.PublicationInput{}, false
		}
		in.CoverImage = &url
	case errors.Is(err, http.ErrMissingFile):
		if allowImageURL {
			if imageURL := r.FormValue("imageUrl"); imageURL != "" {
				in.CoverImage = &imageURL
			}
		}
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid cover image upload"))
		return model.PublicationInput{}, false
	}

	return in, true
}

func (h *PublicationHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPublicationNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidTitle),
		errors.Is(err, service.ErrContentRequired),
		errors.Is(err, service.ErrInvalidType):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		internalError(w, err, h.dev)
	}
}

// publicationID parses the {id} route parameter.
func publicationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid publication id"))
		return 0, false
	}
	return id, true
}
