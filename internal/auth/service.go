package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type UserStore interface {
	CreateUser(ctx context.Context, u User, passwordHash string) error
	GetUserByUsername(ctx context.Context, username string) (User, string, error) // user, hash
	GetUser(ctx context.Context, id string) (User, error)
}

// Service owns account creation and credential checks. Tokens are issued by
// the TokenService so HTTP middleware and tests can verify them independently.
type Service struct {
	users  UserStore
	tokens *TokenService
}

func NewService(users UserStore, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) SignUp(ctx context.Context, username, displayName, password string) (User, string, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	displayName = strings.TrimSpace(displayName)
	if username == "" || password == "" {
		return User{}, "", ErrInvalidCredentials
	}
	if displayName == "" {
		displayName = username
	}
	if _, _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return User{}, "", ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}
	u := User{ID: uuid.NewString(), Username: username, DisplayName: displayName, Role: "learner"}
	if err := s.users.CreateUser(ctx, u, string(hash)); err != nil {
		return User{}, "", err
	}
	tok, err := s.tokens.Issue(u.ID, u.Role, u.DisplayName)
	if err != nil {
		return User{}, "", err
	}
	return u, tok, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (User, string, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	u, hash, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return User{}, "", ErrInvalidCredentials
	}
	tok, err := s.tokens.Issue(u.ID, u.Role, u.DisplayName)
	if err != nil {
		return User{}, "", err
	}
	return u, tok, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (User, error) {
	return s.users.GetUser(ctx, id)
}

type sqlUserStore struct{ db *sql.DB }

func NewSQLUserStore(db *sql.DB) UserStore { return &sqlUserStore{db: db} }

func (s *sqlUserStore) CreateUser(ctx context.Context, u User, passwordHash string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id,username,display_name,role,password_hash,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Username, u.DisplayName, u.Role, passwordHash, time.Now().Unix())
	return err
}

func (s *sqlUserStore) GetUserByUsername(ctx context.Context, username string) (User, string, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,username,display_name,role,password_hash FROM users WHERE username=$1`, username)
	var u User
	var hash string
	if err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Role, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, "", errors.New("user not found")
		}
		return User{}, "", err
	}
	return u, hash, nil
}

func (s *sqlUserStore) GetUser(ctx context.Context, id string) (User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,username,display_name,role FROM users WHERE id=$1`, id)
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, errors.New("user not found")
		}
		return User{}, err
	}
	return u, nil
}
