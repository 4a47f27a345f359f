package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckEmailUniqueness(ctx context.Context, email string) error {
	var exists bool
	err := repo.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", email)
	if err != nil {
		return errors.Wrap(err, "checking email uniqueness")
	}
	if exists {
		return user.ErrEmailExists
	}
	return nil
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	res, err := repo.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password, role) VALUES (?, ?, ?, ?)",
		usr.Name, usr.Email, usr.PasswordHash, usr.Role,
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "creating user")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return user.User{}, errors.Wrap(err, "getting inserted user id")
	}
	usr.ID = int(id)
	return usr, nil
}

func (repo *userRepository) GetUserByEmailAndRole(ctx context.Context, email, role string) (user.User, error) {
	var usr user.User
	err := repo.db.GetContext(ctx, &usr,
		"SELECT id, name, email, password, role FROM users WHERE email = ? AND role = ?",
		email, role,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user by email and role")
	}
	return usr, nil
}

func (repo *userRepository) FilterUsers(ctx context.Context, filter user.QueryFilter) ([]user.User, error) {
	query := "SELECT id, name, email, role FROM users"
	args := make([]interface{}, 0, 1)
	if filter.Role != "" {
		query += " WHERE role = ?"
		args = append(args, filter.Role)
	}

	var users []user.User
	if err := repo.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, errors.Wrap(err, "filtering users")
	}
	return users, nil
}
