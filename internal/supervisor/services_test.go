// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package supervisor

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockServer implements HTTPServer for lifecycle testing.
type mockServer struct {
	listenErr    error
	shutdownErr  error
	shutdownDone chan struct{}
	closed       chan struct{}
}

func newMockServer() *mockServer {
	return &mockServer{
		shutdownDone: make(chan struct{}, 1),
		closed:       make(chan struct{}),
	}
}

func (m *mockServer) ListenAndServe() error {
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.closed
	return errors.New("http: Server closed")
}

func (m *mockServer) Shutdown(ctx context.Context) error {
	m.shutdownDone <- struct{}{}
	close(m.closed)
	return m.shutdownErr
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	srv := newMockServer()
	svc := NewHTTPServerService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	// Let the listener goroutine start, then request shutdown.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}

	select {
	case <-srv.shutdownDone:
	default:
		t.Error("Shutdown was not called")
	}
}

func TestHTTPServerServiceStartupFailure(t *testing.T) {
	srv := newMockServer()
	srv.listenErr = errors.New("bind: address already in use")
	svc := NewHTTPServerService(srv, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, srv.listenErr) {
		t.Errorf("Serve() error = %v, want wrapped listen error", err)
	}
}

func TestHTTPServerServiceDefaultTimeout(t *testing.T) {
	svc := NewHTTPServerService(newMockServer(), 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("shutdownTimeout = %v, want 10s", svc.shutdownTimeout)
	}
}

func TestHTTPServerServiceString(t *testing.T) {
	svc := NewHTTPServerService(newMockServer(), time.Second)
	if got := svc.String(); got != "http-server" {
		t.Errorf("String() = %q", got)
	}
}

type fakeRunner struct {
	err    error
	served chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context) error {
	close(f.served)
	if f.err != nil {
		return f.err
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestRunnerService(t *testing.T) {
	runner := &fakeRunner{served: make(chan struct{})}
	svc := NewRunnerService("event-forwarder", runner)

	if got := svc.String(); got != "event-forwarder" {
		t.Errorf("String() = %q", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	select {
	case <-runner.served:
	case <-time.After(time.Second):
		t.Fatal("runner was never invoked")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestRunnerServicePropagatesError(t *testing.T) {
	wantErr := errors.New("subscribe failed")
	runner := &fakeRunner{err: wantErr, served: make(chan struct{})}
	svc := NewRunnerService("event-forwarder", runner)

	if err := svc.Serve(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("Serve() error = %v, want %v", err, wantErr)
	}
}
