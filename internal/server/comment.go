package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/inkwell-blog/inkwell/internal/entities"
	mm "github.com/inkwell-blog/inkwell/internal/middleware"
)

func (s server) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.s.ListComments(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, err)
		return
	}

	var reactions map[string]entities.ReactionWeight
	if requestedBy := r.URL.Query().Get("requestedBy"); requestedBy != "" {
		ids := make([]string, len(comments))
		for i, c := range comments {
			ids[i] = c.ID
		}

		if reactions, err = s.s.GetCommentReactions(r.Context(), requestedBy, ids...); err != nil {
			writeError(w, err)
			return
		}
	}

	out := make([]Comment, len(comments))
	for i, c := range comments {
		out[i] = toComment(c, reactions)
	}

	writeOK(w, out)
}

func (s server) getComment(w http.ResponseWriter, r *http.Request) {
	comment, err := s.s.GetComment(r.Context(), chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeOK(w, toComment(comment, nil))
}

func (s server) createComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := decode(r, &req); err != nil {
		writeErrorf(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := s.s.CreateComment(r.Context(), mm.GetUserID(r.Context()), chi.URLParam(r, "postID"), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toComment(comment, nil))
}

func (s server) editComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := decode(r, &req); err != nil {
		writeErrorf(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := s.s.EditComment(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeOK(w, toComment(comment, nil))
}

func (s server) deleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.s.DeleteComment(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) likeComment(w http.ResponseWriter, r *http.Request) {
	if err := s.s.LikeComment(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) unlikeComment(w http.ResponseWriter, r *http.Request) {
	if err := s.s.UnlikeComment(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) dislikeComment(w http.ResponseWriter, r *http.Request) {
	if err := s.s.DislikeComment(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) undislikeComment(w http.ResponseWriter, r *http.Request) {
	if err := s.s.UndislikeComment(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
