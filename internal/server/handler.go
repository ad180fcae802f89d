package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	mm "github.com/inkwell-blog/inkwell/internal/middleware"
	"github.com/inkwell-blog/inkwell/internal/service"
)

var errInvalidRequest = errors.New("invalid request")

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errInvalidRequest
	}

	return nil
}

func (s server) register(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users Users Register
	//
	// Creates a new user.
	//
	// ---
	// responses:
	//   '201':
	//     description: created user
	//   '409':
	//     description: email or username is taken
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req RegisterRequest
	if err := decode(r, &req); err != nil {
		writeErrorf(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeErrorf(w, http.StatusBadRequest, errInvalidRequest.Error())
		return
	}

	u, err := s.s.CreateUser(r.Context(), service.CreateUserParams{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Lastname: req.Lastname,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUser(u))
}

func (s server) login(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /auth/login Users Login
	//
	// Exchanges credentials for a bearer token.
	//
	// ---
	// responses:
	//   '200':
	//     description: token
	//   '403':
	//     description: incorrect credentials
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req LoginRequest
	if err := decode(r, &req); err != nil {
		writeErrorf(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := s.s.VerifyCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := mm.CreateToken(s.jwtSecret, u.ID, s.jwtTTL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeOK(w, TokenResponse{Token: token})
}

func (s server) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.s.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeOK(w, toUser(u))
}

func (s server) updateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if mm.GetUserID(r.Context()) != userID {
		writeErrorf(w, http.StatusForbidden, "forbidden")
		return
	}

	var req UpdateUserRequest
	if err := decode(r, &req); err != nil {
		writeErrorf(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := s.s.UpdateUser(r.Context(), userID, service.UpdateUserParams{
		Name:     req.Name,
		Lastname: req.Lastname,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeOK(w, toUser(u))
}

func (s server) deleteUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /users/{userID} Users DeleteUser
	//
	// Deletes the user with everything the user created or reacted to.
	//
	// ---
	// responses:
	//   '204':
	//     description: deleted

	userID := chi.URLParam(r, "userID")
	if mm.GetUserID(r.Context()) != userID {
		writeErrorf(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := s.s.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) getStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.s.GetPlatformStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeOK(w, toStats(st))
}
