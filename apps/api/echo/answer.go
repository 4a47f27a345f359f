package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core/answer"
)

type answerAPI struct {
	svc      *answer.Service
	validate *validator.Validate
}

func registerAnswerAPI(g *echo.Group, deps *ServerDeps) {
	api := answerAPI{
		svc:      deps.AnswerSvc,
		validate: deps.Validate,
	}

	g.POST("/submit-answers", api.submit)
}

func (api *answerAPI) submit(ctx echo.Context) error {
	var data answer.Submission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Submission")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := api.svc.Submit(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "submitting answers")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Message: "Answers submitted successfully!"})
}
