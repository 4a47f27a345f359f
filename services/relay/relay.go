package relaysvc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/onesim/simcase/core"
)

// Error reports a failed hand-off to the comparison service. Details
// carries the service's own error payload when it sent one.
type Error struct {
	Msg     string
	Details json.RawMessage
}

func (e *Error) Error() string { return e.Msg }

// Result is the comparison service's response, relayed verbatim.
type Result struct {
	Status int
	Body   []byte
}

type Service struct {
	client *resty.Client
	url    string
	log    core.Logger
}

func NewService(conf *core.Config, log core.Logger) *Service {
	client := resty.New().
		SetTimeout(conf.Compare.Timeout).
		SetHeader("Accept", "application/json")

	return &Service{
		client: client,
		url:    conf.Compare.URL,
		log:    log,
	}
}

// Forward streams the file at path to the comparison service as the
// multipart "file" field and returns its response unchanged. The client
// timeout bounds a stalled service; ctx cancels with the caller.
func (svc *Service) Forward(ctx context.Context, path, filename string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening uploaded file")
	}
	defer func() { _ = f.Close() }()

	resp, err := svc.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, f).
		Post(svc.url)
	if err != nil {
		return nil, &Error{Msg: err.Error()}
	}

	if resp.IsError() {
		relErr := &Error{Msg: fmt.Sprintf("comparison service returned %s", resp.Status())}
		if body := resp.Body(); json.Valid(body) {
			relErr.Details = body
		}
		return nil, relErr
	}
	return &Result{Status: resp.StatusCode(), Body: resp.Body()}, nil
}
