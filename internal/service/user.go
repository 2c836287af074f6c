package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aurelle-app/aurelle/internal/auth"
	"github.com/aurelle-app/aurelle/internal/domain"
	"github.com/aurelle-app/aurelle/internal/repository/sqlc"
)

// uniqueViolation is the postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// AuthSession is what sign-up/sign-in hand back to the client.
type AuthSession struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

type UserService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
	tokens  *auth.Manager
}

func NewUserService(db *pgxpool.Pool, queries *sqlc.Queries, tokens *auth.Manager) *UserService {
	return &UserService{db: db, queries: queries, tokens: tokens}
}

func (s *UserService) Signup(ctx context.Context, name, phoneNumber, password string) (*AuthSession, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		Name:        name,
		Password:    hash,
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrPhoneNumberTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueTokens(ctx, rowToUser(row))
}

func (s *UserService) Signin(ctx context.Context, phoneNumber, password string) (*AuthSession, error) {
	row, err := s.queries.GetUserByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by phone: %w", err)
	}
	if !auth.CheckPassword(row.Password, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, rowToUser(row))
}

// Refresh rotates the refresh token and issues a new access token. The
// presented token is single-use: it is revoked whether or not the caller
// ever uses the replacement.
func (s *UserService) Refresh(ctx context.Context, userID int64, refreshToken string) (*AuthSession, error) {
	if _, err := s.queries.GetRefreshToken(ctx, sqlc.GetRefreshTokenParams{
		UserID: userID,
		Token:  refreshToken,
	}); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}

	if _, err := s.queries.DeleteRefreshToken(ctx, sqlc.DeleteRefreshTokenParams{
		UserID: userID,
		Token:  refreshToken,
	}); err != nil {
		return nil, fmt.Errorf("revoke refresh token: %w", err)
	}

	row, err := s.queries.GetUserByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return s.issueTokens(ctx, rowToUser(row))
}

func (s *UserService) Logout(ctx context.Context, userID int64, refreshToken string) error {
	rows, err := s.queries.DeleteRefreshToken(ctx, sqlc.DeleteRefreshTokenParams{
		UserID: userID,
		Token:  refreshToken,
	})
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	if rows == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row, err := s.queries.GetUserByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return rowToUser(row), nil
}

// UpdateProfile applies a partial update; nil fields are left untouched.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, name, coverImage *string) error {
	rows, err := s.queries.UpdateUserProfile(ctx, sqlc.UpdateUserProfileParams{
		ID:         userID,
		Name:       name,
		CoverImage: coverImage,
	})
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *UserService) ClearCoverImage(ctx context.Context, userID int64) error {
	rows, err := s.queries.ClearUserCoverImage(ctx, userID)
	if err != nil {
		return fmt.Errorf("clear cover image: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *UserService) issueTokens(ctx context.Context, user *domain.User) (*AuthSession, error) {
	access, err := s.tokens.CreateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	refresh := auth.NewRefreshToken()
	if _, err := s.queries.CreateRefreshToken(ctx, sqlc.CreateRefreshTokenParams{
		UserID: user.ID,
		Token:  refresh,
	}); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthSession{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
