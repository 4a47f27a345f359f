package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core"
	"github.com/onesim/simcase/core/simcase"
)

type caseAPI struct {
	svc      *simcase.Service
	validate *validator.Validate
}

func registerCaseAPI(g *echo.Group, deps *ServerDeps) {
	api := caseAPI{
		svc:      deps.CaseSvc,
		validate: deps.Validate,
	}

	g.GET("/cases", api.query)
	g.POST("/assign-case", api.assign)
	g.GET("/student-assignments/:studentName", api.studentAssignments)
}

func (api *caseAPI) query(ctx echo.Context) error {
	cases, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying cases")
	}
	if cases == nil {
		cases = []simcase.Case{}
	}
	return ctx.JSON(http.StatusOK, cases)
}

func (api *caseAPI) assign(ctx echo.Context) error {
	var data simcase.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	event, err := api.svc.Assign(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "assigning case")
	}
	return ctx.JSON(http.StatusOK, AssignCaseResponse{Message: "Case assigned successfully!", NewActivity: event})
}

func (api *caseAPI) studentAssignments(ctx echo.Context) error {
	studentName := core.CleanString(ctx.Param("studentName"))
	if studentName == "" {
		return core.NewValidationError(errors.New("student name is required"))
	}

	asgs, err := api.svc.StudentAssignments(ctx.Request().Context(), studentName)
	if err != nil {
		return errors.Wrap(err, "querying student assignments")
	}
	return ctx.JSON(http.StatusOK, asgs)
}
