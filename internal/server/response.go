package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/inkwell-blog/inkwell/internal/service"
)

var log = logrus.WithField("package", "server")

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) // nolint:errcheck
}

func writeOK(w http.ResponseWriter, v interface{}) {
	writeJSON(w, http.StatusOK, v)
}

func writeErrorf(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Error{Error: message})
}

// writeError renders a domain error with its stable code, anything else as
// an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	var e *service.Error
	if !errors.As(err, &e) {
		log.WithError(err).Error("internal server error")
		writeErrorf(w, http.StatusInternalServerError, "internal error")
		return
	}

	var status int
	switch e.Kind {
	case service.KindValidation:
		status = http.StatusBadRequest
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindConflict:
		status = http.StatusConflict
	case service.KindForbidden:
		status = http.StatusForbidden
	default:
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, Error{Error: e.Message, Code: e.Code})
}
