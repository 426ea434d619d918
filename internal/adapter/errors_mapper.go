package adapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"

	"github.com/go-resty/resty/v2"
)

// classify turns a dial or request error into a Result. The full error text
// is kept as the detail.
func classify(err error) Result {
	detail := err.Error()

	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return ConnectionRefused(detail)
	case isTimeout(err):
		return Timeout(detail)
	default:
		return TransportError(detail)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// mapResponse turns a completed HTTP exchange into a Result. Only 200 counts
// as success; the body is kept verbatim.
func mapResponse(resp *resty.Response) Result {
	body := string(resp.Body())
	if resp.StatusCode() == http.StatusOK {
		return Success(resp.StatusCode(), body)
	}
	return BadStatus(resp.StatusCode(), body)
}
