package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core/report"
)

type reportAPI struct {
	svc *report.Service
}

func registerReportAPI(g *echo.Group, deps *ServerDeps) {
	api := reportAPI{svc: deps.ReportSvc}

	g.GET("/teacher-data", api.query)
}

func (api *reportAPI) query(ctx echo.Context) error {
	filter := new(report.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []report.Record{})
	}
	filter.Clean()

	records, err := api.svc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "filtering teacher records")
	}
	if records == nil {
		records = []report.Record{}
	}
	return ctx.JSON(http.StatusOK, records)
}
