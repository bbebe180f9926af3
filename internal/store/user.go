package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/freshkeep/internal/model"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
// The unique constraint on users.email is the authoritative check; the
// handler's pre-check only exists for a friendlier common path.
var ErrDuplicateEmail = errors.New("email already registered")

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(scanner interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	var premium int
	err := scanner.Scan(&u.ID, &u.Email, &u.PasswordHash, &premium, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.IsPremium = premium != 0
	return &u, nil
}

const userCols = `id, email, password_hash, is_premium, created_at`

func (s *UserStore) Create(email, passwordHash string) (*model.User, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO users (id, email, password_hash, is_premium, created_at) VALUES (?, ?, ?, 0, ?)`,
		id, email, passwordHash, time.Now().UTC(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return s.GetByID(id)
}

func (s *UserStore) GetByID(id string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByEmail(email string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// SetPremium marks the user as premium. Idempotent.
func (s *UserStore) SetPremium(id string) (*model.User, error) {
	_, err := s.db.Exec(`UPDATE users SET is_premium = 1 WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("set premium: %w", err)
	}
	return s.GetByID(id)
}
