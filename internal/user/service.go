// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelamos/cohort-api/internal/auth"
	"github.com/angelamos/cohort-api/internal/core"
	"github.com/angelamos/cohort-api/internal/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new account. All field rules run before the gateway
// is touched, so a bad request reports every violation at once.
func (s *Service) Create(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	fields := validate.Fields{}

	if msg, ok := validate.Email(req.Email); !ok {
		fields.Add("email", msg)
	}
	if msg, ok := validate.Password(req.Password); !ok {
		fields.Add("password", msg)
	}
	if req.FirstName != nil && *req.FirstName != "" {
		if msg, ok := validate.Name(*req.FirstName); !ok {
			fields.Add("firstName", msg)
		}
	}
	if req.LastName != nil && *req.LastName != "" {
		if msg, ok := validate.Name(*req.LastName); !ok {
			fields.Add("lastName", msg)
		}
	}
	if req.Username != nil && *req.Username != "" {
		if msg, ok := validate.Username(*req.Username); !ok {
			fields.Add("username", msg)
		}
	}
	if req.Bio != nil && *req.Bio != "" {
		if msg, ok := validate.Bio(*req.Bio); !ok {
			fields.Add("biography", msg)
		}
	}
	if req.GithubURL != nil && *req.GithubURL != "" {
		if msg, ok := validate.GithubURL(*req.GithubURL); !ok {
			fields.Add("githubUrl", msg)
		}
	}
	if req.Mobile != nil && *req.Mobile != "" {
		if msg, ok := validate.Mobile(*req.Mobile); !ok {
			fields.Add("mobile", msg)
		}
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}

	email := strings.ToLower(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, core.NewValidationError(map[string]string{
			"email": "Email already in use",
		})
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleStudent,
		CohortID:     req.CohortID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		Bio:          req.Bio,
		GithubURL:    req.GithubURL,
		Mobile:       req.Mobile,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.NewValidationError(map[string]string{
				"email": "Email already in use",
			})
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// List applies optional name filters. A malformed filter is a client
// error, not an empty result.
func (s *Service) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, error) {
	fields := validate.Fields{}

	if params.FirstName != "" {
		if msg, ok := validate.Name(params.FirstName); !ok {
			fields.Add("firstName", msg)
		}
	}
	if params.LastName != "" {
		if msg, ok := validate.Name(params.LastName); !ok {
			fields.Add("lastName", msg)
		}
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}

	return s.repo.List(ctx, params)
}

// Update runs the reconciliation core against the target, hashes an
// admitted password, and persists the admitted set atomically.
func (s *Service) Update(
	ctx context.Context,
	actor Actor,
	targetID int64,
	req UpdateUserRequest,
) (*User, error) {
	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	set, err := ReconcileUpdate(actor, target, req)
	if err != nil {
		return nil, err
	}

	if set.Password != nil {
		hash, hashErr := core.HashPassword(*set.Password)
		if hashErr != nil {
			return nil, fmt.Errorf("hash password: %w", hashErr)
		}
		set.Password = &hash
	}

	updated, err := s.repo.ApplyUpdate(ctx, targetID, set)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.NewValidationError(map[string]string{
				"email": "Email already in use",
			})
		}
		return nil, err
	}

	return updated, nil
}

// Progress returns the fixed learner progress summary. Visible to the
// learner themselves and to any teacher.
func (s *Service) Progress(
	ctx context.Context,
	actor Actor,
	targetID int64,
) (*ProgressSummary, error) {
	if actor.ID != targetID && !actor.IsTeacher() {
		return nil, core.ForbiddenError(
			"only the learner or a teacher may view progress",
		)
	}

	if _, err := s.repo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	// Progress tracking is not wired to real curriculum data yet; the
	// summary shape is the contract.
	return &ProgressSummary{
		CompletedModules:   ProgressCount{Completed: 0, Total: 10},
		CompletedUnits:     ProgressCount{Completed: 0, Total: 40},
		CompletedExercises: ProgressCount{Completed: 0, Total: 120},
	}, nil
}

func (s *Service) GetInfoByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *Service) GetInfoByID(
	ctx context.Context,
	id int64,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *Service) IncrementTokenVersion(
	ctx context.Context,
	userID int64,
) error {
	return s.repo.IncrementTokenVersion(ctx, userID)
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID int64,
	passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		TokenVersion: u.TokenVersion,
	}
}

var _ auth.UserProvider = (*Service)(nil)
