package prober

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"statusping/internal/model"
)

const maxRedirects = 5

const userAgent = "statusping-prober/1.0"

type Prober interface {
	Check(ctx context.Context, monitor model.Monitor) model.CheckResult
}

type httpProber struct {
	client *http.Client
}

// Check performs one HTTP(S) probe against the monitor's URL. Probe failures
// are classified into the outcome, never returned as errors; the scheduler
// persists whatever comes back.
func (p *httpProber) Check(ctx context.Context, monitor model.Monitor) model.CheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, time.Duration(monitor.Timeout)*time.Second)
	defer cancel()

	start := time.Now()
	outcome := model.CheckResult{
		MonitorID: monitor.ID,
		CheckedAt: start.UTC(),
	}

	method := monitor.Method
	if method == "" {
		method = model.MonitorMethodGet
	}
	req, err := http.NewRequestWithContext(checkCtx, method, monitor.URL, nil)
	if err != nil {
		return failedOutcome(outcome, start, model.ErrorKindUnknown, err.Error())
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		kind, msg := classifyError(err)
		return failedOutcome(outcome, start, kind, msg)
	}
	defer resp.Body.Close()

	// Latency covers the full body, not just the response headers.
	_, _ = io.Copy(io.Discard, resp.Body)
	latency := time.Since(start).Milliseconds()

	statusCode := resp.StatusCode
	outcome.StatusCode = &statusCode
	outcome.ResponseTimeMs = &latency
	if resp.StatusCode < 400 {
		outcome.Status = model.MonitorStatusUp
	} else {
		kind := model.ErrorKindHTTPError
		msg := fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		outcome.Status = model.MonitorStatusDown
		outcome.ErrorKind = &kind
		outcome.ErrorMessage = &msg
	}
	return outcome
}

func failedOutcome(outcome model.CheckResult, start time.Time, kind string, msg string) model.CheckResult {
	latency := time.Since(start).Milliseconds()
	outcome.Status = model.MonitorStatusDown
	outcome.ResponseTimeMs = &latency
	outcome.ErrorKind = &kind
	outcome.ErrorMessage = &msg
	return outcome
}

func classifyError(err error) (string, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.ErrorKindTimeout, "request timed out"
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return model.ErrorKindDNSFailure, dnsErr.Error()
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return model.ErrorKindConnectionRefused, "connection refused"
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return model.ErrorKindTLSError, certErr.Error()
	}
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return model.ErrorKindTLSError, recordErr.Error()
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return model.ErrorKindTimeout, "request timed out"
	}
	return model.ErrorKindUnknown, err.Error()
}

func NewHTTPProber() Prober {
	return &httpProber{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}
