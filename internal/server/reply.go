package server

import (
	"net/http"

	"github.com/go-chi/chi"

	mm "github.com/inkwell-blog/inkwell/internal/middleware"
)

func (s server) listReplies(w http.ResponseWriter, r *http.Request) {
	replies, err := s.s.ListReplies(r.Context(), chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]Reply, len(replies))
	for i, rr := range replies {
		out[i] = toReply(rr)
	}

	writeOK(w, out)
}

func (s server) getReply(w http.ResponseWriter, r *http.Request) {
	reply, err := s.s.GetReply(r.Context(),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"), chi.URLParam(r, "replyID"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeOK(w, toReply(reply))
}

func (s server) createReply(w http.ResponseWriter, r *http.Request) {
	var req ReplyRequest
	if err := decode(r, &req); err != nil {
		writeErrorf(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := s.s.CreateReply(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"), req.Mention, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReply(reply))
}

func (s server) deleteReply(w http.ResponseWriter, r *http.Request) {
	if err := s.s.DeleteReply(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"), chi.URLParam(r, "replyID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) likeReply(w http.ResponseWriter, r *http.Request) {
	if err := s.s.LikeReply(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"), chi.URLParam(r, "replyID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) unlikeReply(w http.ResponseWriter, r *http.Request) {
	if err := s.s.UnlikeReply(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"), chi.URLParam(r, "replyID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) dislikeReply(w http.ResponseWriter, r *http.Request) {
	if err := s.s.DislikeReply(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"), chi.URLParam(r, "replyID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) undislikeReply(w http.ResponseWriter, r *http.Request) {
	if err := s.s.UndislikeReply(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "commentID"), chi.URLParam(r, "replyID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
