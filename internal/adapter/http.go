// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/models"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultConnectTimeout = 5 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// Options configures an HTTP prober. Zero timeouts are replaced with the
// defaults.
type Options struct {
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
}

type httpProber struct {
	client *resty.Client
	dialer *net.Dialer

	logger *logger.Logger
}

// NewHTTPProber constructs the HTTP implementation of [Prober]. The connect
// test uses a plain TCP dial bounded by opts.ConnectTimeout; the POST goes
// through a resty client bounded by opts.RequestTimeout and is never retried.
func NewHTTPProber(opts Options, log *logger.Logger) Prober {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = DefaultConnectTimeout
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetTimeout(opts.RequestTimeout).
		SetRetryCount(0)

	return &httpProber{
		client: client,
		dialer: &net.Dialer{Timeout: opts.ConnectTimeout},
		logger: log,
	}
}

// Check implements [Prober].
func (p *httpProber) Check(ctx context.Context, rawURL string, payload models.ProbePayload) Result {
	target, err := normalizeURL(rawURL)
	if err != nil {
		p.logger.Error().Err(err).Str("url", rawURL).Msg("cannot parse server url")
		return TransportError(err.Error())
	}

	address := hostPort(target)
	p.logger.Info().Str("address", address).Msg("checking that the host accepts connections")

	conn, err := p.dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		res := classify(fmt.Errorf("connect to %s: %w", address, err))
		p.logResult(res)
		return res
	}
	_ = conn.Close()
	p.logger.Info().Str("address", address).Msg("host is reachable")

	return p.Send(ctx, target.String(), payload)
}

// Send implements [Prober].
func (p *httpProber) Send(ctx context.Context, rawURL string, payload models.ProbePayload) Result {
	target, err := normalizeURL(rawURL)
	if err != nil {
		p.logger.Error().Err(err).Str("url", rawURL).Msg("cannot parse server url")
		return TransportError(err.Error())
	}

	p.logger.Info().
		Str("url", target.String()).
		Str("hypothesis", payload.HypothesisID).
		Msg("sending probe payload")

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(target.String())
	if err != nil {
		res := classify(fmt.Errorf("post %s: %w", target, err))
		p.logResult(res)
		return res
	}

	res := mapResponse(resp)
	p.logResult(res)
	return res
}

func (p *httpProber) logResult(res Result) {
	switch res.Kind {
	case KindSuccess:
		p.logger.Info().Int("status", res.StatusCode).Str("body", res.Body).Msg("server answered")
	case KindBadStatus:
		p.logger.Warn().Int("status", res.StatusCode).Str("body", res.Body).Msg("server answered with unexpected status")
	case KindTransportError:
		p.logger.Error().Str("kind", res.Kind.String()).Str("detail", res.Detail).Msg("probe failed")
	default:
		p.logger.Warn().Str("kind", res.Kind.String()).Str("detail", res.Detail).Msg("probe failed")
	}
}

// normalizeURL parses raw, assuming http:// when no scheme is given and
// localhost when no host is given.
func normalizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Hostname() == "" {
		if port := u.Port(); port != "" {
			u.Host = net.JoinHostPort("localhost", port)
		} else {
			u.Host = "localhost"
		}
	}
	return u, nil
}

// hostPort returns the dial address for u. The port defaults to 80 for http
// and 443 for https.
func hostPort(u *url.URL) string {
	port := u.Port()
	if port == "" {
		port = "443"
		if u.Scheme == "http" {
			port = "80"
		}
	}
	return net.JoinHostPort(u.Hostname(), port)
}
