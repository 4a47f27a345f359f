package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core/user"
)

type userAPI struct {
	svc      *user.Service
	validate *validator.Validate
}

func registerUserAPI(g *echo.Group, deps *ServerDeps) {
	api := userAPI{
		svc:      deps.UserSvc,
		validate: deps.Validate,
	}

	g.GET("/students", api.students)
	g.POST("/login", api.login)
	g.POST("/signup", api.signup)
}

func (api *userAPI) signup(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(ctx.Request().Context(), api.validate, api.svc); err != nil {
		return err
	}

	if _, err := api.svc.Register(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "registering user")
	}
	return ctx.JSON(http.StatusCreated, SuccessResponse{Message: "User created successfully!"})
}

func (api *userAPI) login(ctx echo.Context) error {
	var data user.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Message: "Login successful", User: usr})
}

func (api *userAPI) students(ctx echo.Context) error {
	users, err := api.svc.QueryStudents(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying students")
	}

	students := make([]StudentResponse, 0, len(users))
	for _, usr := range users {
		students = append(students, StudentResponse{ID: usr.ID, Name: usr.Name, Email: usr.Email})
	}
	return ctx.JSON(http.StatusOK, students)
}
