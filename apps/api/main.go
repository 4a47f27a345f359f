package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/onesim/simcase/apps/api/echo"
	"github.com/onesim/simcase/core"
	"github.com/onesim/simcase/core/answer"
	"github.com/onesim/simcase/core/patient"
	"github.com/onesim/simcase/core/report"
	"github.com/onesim/simcase/core/simcase"
	"github.com/onesim/simcase/core/user"
	emailsvc "github.com/onesim/simcase/services/email"
	logsvc "github.com/onesim/simcase/services/logger"
	"github.com/onesim/simcase/services/realtime"
	relaysvc "github.com/onesim/simcase/services/relay"
	"github.com/onesim/simcase/storage/database"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error("closing database", err)
		}
	}()

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	hub := realtime.NewHub(logger)
	relay := relaysvc.NewService(conf, logger)

	usrSvc := user.NewService(database.NewUserRepository(db), mailSvc, logger)
	caseSvc := simcase.NewService(database.NewCaseRepository(db), hub)
	patientSvc := patient.NewService(database.NewPatientRepository(db))
	answerSvc := answer.NewService(database.NewAnswerRepository(db))
	reportSvc := report.NewService(database.NewReportRepository(db))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			Validate:   validate,
			Translator: translator,
			UserSvc:    usrSvc,
			CaseSvc:    caseSvc,
			PatientSvc: patientSvc,
			AnswerSvc:  answerSvc,
			ReportSvc:  reportSvc,
			Hub:        hub,
			RelaySvc:   relay,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
