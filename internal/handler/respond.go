package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// internalError logs the failure and writes a 500 body. In development mode
// the error detail is returned to the caller; in production it is replaced by
// a generic message.
func internalError(w http.ResponseWriter, err error, dev bool) {
	slog.Error("internal error", "error", err)
	if dev {
		writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}
