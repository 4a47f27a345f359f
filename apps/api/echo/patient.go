package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core/patient"
)

type patientAPI struct {
	svc      *patient.Service
	validate *validator.Validate
}

// registerPatientAPI mounts the patient routes. POST /register is a legacy
// alias of POST /api/patients kept for old clients; both share one contract.
func registerPatientAPI(app *echo.Echo, g *echo.Group, deps *ServerDeps) {
	api := patientAPI{
		svc:      deps.PatientSvc,
		validate: deps.Validate,
	}

	g.POST("/patients", api.register)
	g.GET("/patients", api.query)
	app.POST("/register", api.registerLegacy)
}

func (api *patientAPI) create(ctx echo.Context) (patient.Patient, error) {
	var data patient.NewPatient
	if err := ctx.Bind(&data); err != nil {
		return patient.Patient{}, errors.Wrap(err, "binding to NewPatient")
	}
	if err := data.Validate(api.validate); err != nil {
		return patient.Patient{}, err
	}

	p, err := api.svc.Register(ctx.Request().Context(), data)
	if err != nil {
		return patient.Patient{}, errors.Wrap(err, "registering patient")
	}
	return p, nil
}

func (api *patientAPI) register(ctx echo.Context) error {
	p, err := api.create(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, RegisterPatientResponse{
		Message:    "Patient registered successfully!",
		InsertedID: p.ID,
	})
}

func (api *patientAPI) registerLegacy(ctx echo.Context) error {
	if _, err := api.create(ctx); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Message: "Patient registered successfully"})
}

func (api *patientAPI) query(ctx echo.Context) error {
	filter := new(patient.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []patient.Patient{})
	}
	filter.Clean()

	patients, err := api.svc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "filtering patients")
	}
	if patients == nil {
		patients = []patient.Patient{}
	}
	return ctx.JSON(http.StatusOK, patients)
}
