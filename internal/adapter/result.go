// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
)

// Kind classifies the outcome of a probe.
type Kind int

const (
	// KindSuccess means the server answered 200.
	KindSuccess Kind = iota
	// KindTimeout means the connect or the request ran out of time.
	KindTimeout
	// KindConnectionRefused means nothing is listening on the target port.
	KindConnectionRefused
	// KindTransportError covers every other network or client failure.
	KindTransportError
	// KindBadStatus means the server answered with a status other than 200.
	KindBadStatus
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindTimeout:
		return "timeout"
	case KindConnectionRefused:
		return "connection-refused"
	case KindTransportError:
		return "transport-error"
	case KindBadStatus:
		return "bad-status"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of a single probe.
//
// StatusCode and Body are set for KindSuccess and KindBadStatus. Detail
// carries the human-readable failure reason for the other kinds.
type Result struct {
	Kind       Kind
	StatusCode int
	Body       string
	Detail     string
}

// Success builds a KindSuccess result.
func Success(status int, body string) Result {
	return Result{Kind: KindSuccess, StatusCode: status, Body: body}
}

// BadStatus builds a KindBadStatus result.
func BadStatus(status int, body string) Result {
	return Result{Kind: KindBadStatus, StatusCode: status, Body: body}
}

// Timeout builds a KindTimeout result.
func Timeout(detail string) Result {
	return Result{Kind: KindTimeout, Detail: detail}
}

// ConnectionRefused builds a KindConnectionRefused result.
func ConnectionRefused(detail string) Result {
	return Result{Kind: KindConnectionRefused, Detail: detail}
}

// TransportError builds a KindTransportError result.
func TransportError(detail string) Result {
	return Result{Kind: KindTransportError, Detail: detail}
}

// OK reports whether the probe reached the server and got a 200.
func (r Result) OK() bool {
	return r.Kind == KindSuccess
}

// Err returns nil for a successful result and an error wrapping
// [ErrProbeFailed] otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrProbeFailed, r)
}

func (r Result) String() string {
	switch r.Kind {
	case KindSuccess:
		return fmt.Sprintf("status %d, body: %s", r.StatusCode, r.Body)
	case KindBadStatus:
		body := r.Body
		if body == "" {
			body = http.StatusText(r.StatusCode)
		}
		return fmt.Sprintf("server returned status %d: %s", r.StatusCode, body)
	case KindTimeout:
		return "timeout: " + r.Detail
	case KindConnectionRefused:
		return "connection refused: " + r.Detail
	default:
		return "transport error: " + r.Detail
	}
}
