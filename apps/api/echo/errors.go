package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core"
	"github.com/onesim/simcase/core/simcase"
	"github.com/onesim/simcase/core/user"
	relaysvc "github.com/onesim/simcase/services/relay"
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch cause := errors.Cause(err); cause {
		case user.ErrNotFound:
			code = http.StatusNotFound
			message = "User not found."
		case user.ErrInvalidCredentials:
			code = http.StatusUnauthorized
			message = "Invalid email or password."
		case user.ErrEmailExists:
			code = http.StatusBadRequest
			message = "User already exists with this email."
		case simcase.ErrNoAssignments:
			code = http.StatusNotFound
			message = "No assignments found for this student."
		default:
			switch origErr := cause.(type) {
			case *echo.HTTPError:
				if origErr.Internal != nil {
					if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
						origErr = herr
					}
				}
				code = origErr.Code
				message = origErr.Message
			case validator.ValidationErrors:
				fldErrs := make(map[string]string, len(origErr))
				for _, vErr := range origErr {
					fldErrs[vErr.Field()] = vErr.Translate(translator)
				}
				code = http.StatusBadRequest
				message = echo.Map{"error": "Invalid payload.", "fields": fldErrs}
			case *core.ValidationError:
				code = http.StatusBadRequest
				if origErr.Fields != nil {
					fldErrs := make(map[string]string, len(origErr.Fields))
					for _, fErr := range origErr.Fields {
						fldErrs[fErr.Field] = fErr.Error
					}
					message = echo.Map{"error": "Invalid payload.", "fields": fldErrs}
				} else {
					message = origErr.Error()
				}
			case *relaysvc.Error:
				code = http.StatusInternalServerError
				m := echo.Map{"error": origErr.Msg}
				if origErr.Details != nil {
					m["details"] = origErr.Details
				}
				message = m
			default: // any other error is a server error; never leak its text
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg
				logger.Error(msg, errors.Wrap(err, msg))

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
