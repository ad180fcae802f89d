// seed fills the database with fixture data. Useful for local development
// and demo environments.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-blog/inkwell/internal/storage"
	"github.com/inkwell-blog/inkwell/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Postgres string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	File     string `long:"file" env:"FILE" default:"fixture.json" description:"fixture file"`
}{}

type fixture struct {
	Users []struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		Lastname string `json:"lastname"`
		Password string `json:"password"`

		Posts []struct {
			ContentPt string `json:"content_pt"`
			ContentEn string `json:"content_en"`

			Comments []string `json:"comments"`
		} `json:"posts"`
	} `json:"users"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		logrus.WithError(err).Fatal("failed to parse flags")
	}

	data, err := os.ReadFile(opts.File)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read fixture")
	}

	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		logrus.WithError(err).Fatal("failed to parse fixture")
	}

	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	ctx := context.Background()
	s := postgres.New(db)

	for _, u := range f.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Fatal("failed to hash password")
		}

		user, err := s.CreateUser(ctx, &storage.CreateUserParams{
			ID:           uuid.New().String(),
			Username:     u.Username,
			Email:        u.Email,
			Name:         u.Name,
			Lastname:     u.Lastname,
			PasswordHash: string(hash),
		})
		if err != nil {
			logrus.WithError(err).WithField("username", u.Username).Fatal("failed to create user")
		}

		for _, p := range u.Posts {
			post, err := s.CreatePost(ctx, &storage.CreatePostParams{
				ID:        uuid.New().String(),
				Author:    user.ID,
				ContentPt: p.ContentPt,
				ContentEn: p.ContentEn,
			})
			if err != nil {
				logrus.WithError(err).Fatal("failed to create post")
			}

			for _, c := range p.Comments {
				if _, err := s.CreateComment(ctx, &storage.CreateCommentParams{
					ID:      uuid.New().String(),
					PostID:  post.ID,
					Author:  user.ID,
					Content: c,
				}); err != nil {
					logrus.WithError(err).Fatal("failed to create comment")
				}

				if err := s.IncPostComments(ctx, post.ID); err != nil {
					logrus.WithError(err).Fatal("failed to inc post comments")
				}
			}
		}

		logrus.WithField("username", u.Username).Info("user seeded")
	}

	logrus.Info("done")
}
