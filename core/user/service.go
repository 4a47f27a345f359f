package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	pkgerrors "github.com/pkg/errors"

	"github.com/onesim/simcase/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type (
	Repository interface {
		CheckEmailUniqueness(ctx context.Context, email string) error
		CreateUser(ctx context.Context, usr User) (User, error)
		GetUserByEmailAndRole(ctx context.Context, email, role string) (User, error)
		// FilterUsers applies AND operation on available QueryFilter fields.
		FilterUsers(ctx context.Context, filter QueryFilter) ([]User, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		log     core.Logger
	}
)

func NewService(repo Repository, mailSvc core.EmailService, log core.Logger) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, log: log}
}

func (svc *Service) CheckEmailUniqueness(ctx context.Context, email string) error {
	if err := svc.repo.CheckEmailUniqueness(ctx, email); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Register creates the account and sends a best-effort welcome email.
func (svc *Service) Register(ctx context.Context, nu NewUser) (User, error) {
	usr := User{
		Name:  nu.Name,
		Email: nu.Email,
		Role:  nu.Role,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, pkgerrors.Wrap(err, "hashing password")
	}

	usr, err := svc.repo.CreateUser(ctx, usr)
	if err != nil {
		return User{}, err
	}

	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "Welcome to OneSimulation",
		Body: fmt.Sprintf(
			"Hi %s,\r\n\r\nYour %s account has been created. You can now log in with your email address.\r\n",
			usr.Name, usr.Role,
		),
	})

	usr.PasswordHash = nil
	return usr, nil
}

// Authenticate performs the one-shot credential check.
// A missing (email, role) pair and a wrong password report different errors.
func (svc *Service) Authenticate(ctx context.Context, creds Credentials) (User, error) {
	usr, err := svc.repo.GetUserByEmailAndRole(ctx, creds.Email, creds.Role)
	if err != nil {
		return User{}, err
	}
	if err = usr.CheckPassword(creds.Password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	usr.PasswordHash = nil
	return usr, nil
}

func (svc *Service) QueryStudents(ctx context.Context) ([]User, error) {
	return svc.repo.FilterUsers(ctx, QueryFilter{Role: RoleStudent})
}
