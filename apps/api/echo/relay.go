package echoapi

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core"
	relaysvc "github.com/onesim/simcase/services/relay"
)

type relayAPI struct {
	conf *core.Config
	svc  *relaysvc.Service
	log  core.Logger
}

func registerRelayAPI(app *echo.Echo, deps *ServerDeps) {
	api := relayAPI{
		conf: deps.Conf,
		svc:  deps.RelaySvc,
		log:  deps.Logger,
	}

	app.POST("/process", api.process)
}

// process spools the uploaded file to disk, hands it to the comparison
// service and relays that service's response verbatim. The spooled copy
// never outlives the request.
func (api *relayAPI) process(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}

	tmpPath, err := api.spool(fh)
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			api.log.Warn("removing spooled upload", err)
		}
	}()

	res, err := api.svc.Forward(ctx.Request().Context(), tmpPath, fh.Filename)
	if err != nil {
		return err
	}
	return ctx.JSONBlob(res.Status, res.Body)
}

func (api *relayAPI) spool(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", errors.Wrap(err, "opening multipart file")
	}
	defer func() { _ = src.Close() }()

	if err = os.MkdirAll(api.conf.UploadDir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating upload dir")
	}

	path := filepath.Join(api.conf.UploadDir, uuid.NewString())
	dst, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "creating spool file")
	}
	defer func() { _ = dst.Close() }()

	if _, err = io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", errors.Wrap(err, "spooling upload")
	}
	return path, nil
}
