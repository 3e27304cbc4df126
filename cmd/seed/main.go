// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/angelamos/cohort-api/internal/cohort"
	"github.com/angelamos/cohort-api/internal/comment"
	"github.com/angelamos/cohort-api/internal/config"
	"github.com/angelamos/cohort-api/internal/core"
	"github.com/angelamos/cohort-api/internal/post"
	"github.com/angelamos/cohort-api/internal/user"
)

const seedPassword = "Testpassword1!"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("seed error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	cohortRepo := cohort.NewRepository(db.DB)
	userRepo := user.NewRepository(db.DB)
	postRepo := post.NewRepository(db.DB)
	commentRepo := comment.NewRepository(db.DB)

	s := &seeder{
		cohorts:  cohortRepo,
		users:    userRepo,
		posts:    postRepo,
		comments: commentRepo,
	}

	return s.run(ctx)
}

type seeder struct {
	cohorts  cohort.Repository
	users    user.Repository
	posts    post.Repository
	comments comment.Repository
}

func (s *seeder) run(ctx context.Context) error {
	var cohortIDs []int64
	for i := 0; i < 3; i++ {
		c := &cohort.Cohort{
			Type:         cohort.TypeSoftwareDevelopment,
			CohortNumber: 1,
		}
		if err := s.cohorts.Create(ctx, c); err != nil {
			return err
		}
		slog.Info("cohort created", "id", c.ID)
		cohortIDs = append(cohortIDs, c.ID)
	}

	var userIDs []int64
	for i := 1; i <= 3; i++ {
		id, err := s.createUser(ctx, seedUser{
			email:     fmt.Sprintf("student%d@test.com", i),
			username:  fmt.Sprintf("student%dusername", i),
			firstName: fmt.Sprintf("firstName%d", i),
			lastName:  fmt.Sprintf("lastName%d", i),
			bio:       fmt.Sprintf("Student %d bio", i),
			githubURL: fmt.Sprintf("https://github.com/student%d", i),
			role:      "STUDENT",
			cohortID:  &cohortIDs[i-1],
		})
		if err != nil {
			return err
		}
		userIDs = append(userIDs, id)
	}

	for i := 1; i <= 3; i++ {
		id, err := s.createUser(ctx, seedUser{
			email:     fmt.Sprintf("teacher%d@test.com", i),
			username:  fmt.Sprintf("teacher%dusername", i),
			firstName: fmt.Sprintf("teacherFirst%d", i),
			lastName:  fmt.Sprintf("teacherLast%d", i),
			bio:       fmt.Sprintf("Teacher %d bio", i),
			githubURL: fmt.Sprintf("https://github.com/teacher%d", i),
			role:      "TEACHER",
		})
		if err != nil {
			return err
		}
		userIDs = append(userIDs, id)
	}

	labels := []string{
		"Student 1", "Student 2", "Student 3",
		"Teacher 1", "Teacher 2", "Teacher 3",
	}
	ordinals := []string{"first", "second", "third"}

	for i, authorID := range userIDs {
		for _, ordinal := range ordinals {
			content := fmt.Sprintf("%s %s post!", labels[i], ordinal)
			if err := s.createPost(ctx, authorID, userIDs, content); err != nil {
				return err
			}
		}
	}

	slog.Info("seed complete",
		"cohorts", len(cohortIDs),
		"users", len(userIDs),
		"posts", len(userIDs)*len(ordinals),
	)
	return nil
}

type seedUser struct {
	email     string
	username  string
	firstName string
	lastName  string
	bio       string
	githubURL string
	role      string
	cohortID  *int64
}

func (s *seeder) createUser(
	ctx context.Context,
	data seedUser,
) (int64, error) {
	hash, err := core.HashPassword(seedPassword)
	if err != nil {
		return 0, err
	}

	u := &user.User{
		Email:        data.email,
		PasswordHash: hash,
		Role:         data.role,
		CohortID:     data.cohortID,
		FirstName:    &data.firstName,
		LastName:     &data.lastName,
		Username:     &data.username,
		Bio:          &data.bio,
		GithubURL:    &data.githubURL,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return 0, err
	}

	slog.Info("user created", "id", u.ID, "email", u.Email, "role", u.Role)
	return u.ID, nil
}

// createPost seeds a post that starts with one like and one comment
// from another seeded user.
func (s *seeder) createPost(
	ctx context.Context,
	authorID int64,
	userIDs []int64,
	content string,
) error {
	p := &post.Post{
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return err
	}

	otherID := userIDs[0]
	if otherID == authorID {
		otherID = userIDs[1]
	}

	if _, err := s.posts.ToggleLike(ctx, p.ID, otherID); err != nil {
		return err
	}

	if _, err := s.comments.Create(ctx, &comment.Comment{
		PostID:   p.ID,
		AuthorID: otherID,
		Content:  "Great post!",
	}); err != nil {
		return err
	}

	slog.Info("post created", "id", p.ID, "author_id", authorID)
	return nil
}
