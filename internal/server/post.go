package server

import (
	"net/http"

	"github.com/go-chi/chi"

	mm "github.com/inkwell-blog/inkwell/internal/middleware"
	"github.com/inkwell-blog/inkwell/internal/service"
)

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts ListPosts
	//
	// Returns posts, newest first.
	//
	// ---
	// parameters:
	// - name: requestedBy
	//   in: query
	//   description: adds liked flag to every post
	//   required: false
	// responses:
	//   '200':
	//     description: posts
	//     schema:
	//       "$ref": "#/definitions/ListPostsResponse"

	posts, err := s.s.ListPosts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var likes map[string]bool
	if requestedBy := r.URL.Query().Get("requestedBy"); requestedBy != "" {
		ids := make([]string, len(posts))
		for i, p := range posts {
			ids[i] = p.ID
		}

		if likes, err = s.s.GetPostLikes(r.Context(), requestedBy, ids...); err != nil {
			writeError(w, err)
			return
		}
	}

	out := ListPostsResponse{Posts: make([]Post, len(posts))}
	for i, p := range posts {
		out.Posts[i] = toPost(p, likes)
	}

	writeOK(w, out)
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.s.GetPost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, err)
		return
	}

	var likes map[string]bool
	if requestedBy := r.URL.Query().Get("requestedBy"); requestedBy != "" {
		if likes, err = s.s.GetPostLikes(r.Context(), requestedBy, post.ID); err != nil {
			writeError(w, err)
			return
		}
	}

	writeOK(w, toPost(post, likes))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := decode(r, &req); err != nil {
		writeErrorf(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := s.s.CreatePost(r.Context(), mm.GetUserID(r.Context()), service.PostContent{
		ContentPt: req.ContentPt,
		ContentEn: req.ContentEn,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPost(post, nil))
}

func (s server) updatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := decode(r, &req); err != nil {
		writeErrorf(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := s.s.UpdatePost(r.Context(), mm.GetUserID(r.Context()), chi.URLParam(r, "postID"), service.PostContent{
		ContentPt: req.ContentPt,
		ContentEn: req.ContentEn,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeOK(w, toPost(post, nil))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.s.DeletePost(r.Context(), mm.GetUserID(r.Context()), chi.URLParam(r, "postID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) likePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{postID}/like Posts LikePost
	//
	// Adds the caller to the post's likes. Fails with 409 when the caller
	// already likes the post.
	//
	// ---
	// responses:
	//   '204':
	//     description: liked
	//   '409':
	//     description: already liked
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := s.s.LikePost(r.Context(), mm.GetUserID(r.Context()), chi.URLParam(r, "postID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) unlikePost(w http.ResponseWriter, r *http.Request) {
	if err := s.s.UnlikePost(r.Context(), mm.GetUserID(r.Context()), chi.URLParam(r, "postID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) listImages(w http.ResponseWriter, r *http.Request) {
	images, err := s.s.ListPostImages(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]Image, len(images))
	for i, img := range images {
		out[i] = toImage(img)
	}

	writeOK(w, out)
}

func (s server) uploadImage(w http.ResponseWriter, r *http.Request) {
	var req UploadImageRequest
	if err := decode(r, &req); err != nil {
		writeErrorf(w, http.StatusBadRequest, err.Error())
		return
	}

	img, err := s.s.UploadImage(r.Context(), mm.GetUserID(r.Context()), chi.URLParam(r, "postID"), req.Name, req.Data)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toImage(img))
}

func (s server) deleteImage(w http.ResponseWriter, r *http.Request) {
	if err := s.s.DeleteImage(r.Context(), mm.GetUserID(r.Context()),
		chi.URLParam(r, "postID"), chi.URLParam(r, "imageID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
