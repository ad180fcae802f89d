// Package server Inkwell
//
// The Inkwell API provides access to blog entities (posts, comments, replies, likes)
// and keeps their counters consistent.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/inkwell-blog/inkwell/internal/middleware"
	"github.com/inkwell-blog/inkwell/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 8 << 20

const statsCacheTTL = 10 * time.Minute

type server struct {
	s service.Service

	jwtSecret []byte
	jwtTTL    time.Duration
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration, jwtSecret []byte, jwtTTL time.Duration) {
	r.Use(
		mm.Logging,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		bodyLimiter(maxBodySize),
	)

	srv := server{
		s:         s,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}

	auth := mm.Auth(jwtSecret)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/users", srv.register)
		r.Post("/auth/login", srv.login)
		r.Get("/users/{userID}", srv.getUser)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Patch("/users/{userID}", srv.updateUser)
			r.Delete("/users/{userID}", srv.deleteUser)
		})

		r.Get("/posts", srv.listPosts)
		r.Get("/posts/{postID}", srv.getPost)
		r.Get("/posts/{postID}/comments", srv.listComments)
		r.Get("/posts/{postID}/comments/{commentID}", srv.getComment)
		r.Get("/posts/{postID}/comments/{commentID}/replies", srv.listReplies)
		r.Get("/posts/{postID}/comments/{commentID}/replies/{replyID}", srv.getReply)
		r.Get("/posts/{postID}/images", srv.listImages)

		r.Get("/stats", mm.Cached(statsCacheTTL, srv.getStats))

		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Post("/posts", srv.createPost)
			r.Put("/posts/{postID}", srv.updatePost)
			r.Delete("/posts/{postID}", srv.deletePost)
			r.Post("/posts/{postID}/like", srv.likePost)
			r.Delete("/posts/{postID}/like", srv.unlikePost)

			r.Post("/posts/{postID}/comments", srv.createComment)
			r.Put("/posts/{postID}/comments/{commentID}", srv.editComment)
			r.Delete("/posts/{postID}/comments/{commentID}", srv.deleteComment)
			r.Post("/posts/{postID}/comments/{commentID}/like", srv.likeComment)
			r.Delete("/posts/{postID}/comments/{commentID}/like", srv.unlikeComment)
			r.Post("/posts/{postID}/comments/{commentID}/dislike", srv.dislikeComment)
			r.Delete("/posts/{postID}/comments/{commentID}/dislike", srv.undislikeComment)

			r.Post("/posts/{postID}/comments/{commentID}/replies", srv.createReply)
			r.Delete("/posts/{postID}/comments/{commentID}/replies/{replyID}", srv.deleteReply)
			r.Post("/posts/{postID}/comments/{commentID}/replies/{replyID}/like", srv.likeReply)
			r.Delete("/posts/{postID}/comments/{commentID}/replies/{replyID}/like", srv.unlikeReply)
			r.Post("/posts/{postID}/comments/{commentID}/replies/{replyID}/dislike", srv.dislikeReply)
			r.Delete("/posts/{postID}/comments/{commentID}/replies/{replyID}/dislike", srv.undislikeReply)

			r.Post("/posts/{postID}/images", srv.uploadImage)
			r.Delete("/posts/{postID}/images/{imageID}", srv.deleteImage)
		})
	})
}

func bodyLimiter(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
