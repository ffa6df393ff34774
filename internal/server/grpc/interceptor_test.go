package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type recordingLogger struct {
	nopLogger
	msgs  []string
	args  [][]any
	debug []string
}

func (r *recordingLogger) Debug(_ context.Context, msg string, _ ...any) {
	r.debug = append(r.debug, msg)
}

func (r *recordingLogger) Info(_ context.Context, msg string, args ...any) {
	r.msgs = append(r.msgs, msg)
	r.args = append(r.args, args)
}

func TestAuthHeaderInterceptor_CopiesConfiguredHeader(t *testing.T) {
	s := newServer(&fakeAuth{})

	md := metadata.New(map[string]string{"authorization": "Bearer abc"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/auth.UserService/Auth"}

	var got string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got = authHeaderFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.authHeaderInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if got != "Bearer abc" {
		t.Fatalf("header not propagated: %q", got)
	}
}

func TestAuthHeaderInterceptor_MissingHeader(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/auth.UserService/Auth"}

	cases := map[string]context.Context{
		"no metadata":  context.Background(),
		"other header": metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-other", "v")),
	}
	for name, ctx := range cases {
		t.Run(name, func(t *testing.T) {
			rec := &recordingLogger{}
			s := newServer(&fakeAuth{})
			s.logger = rec
			called := false
			h := func(ctx context.Context, req interface{}) (interface{}, error) {
				called = true
				if v := authHeaderFromContext(ctx); v != "" {
					t.Fatalf("expected empty header, got %q", v)
				}
				return nil, nil
			}
			if _, err := s.authHeaderInterceptor(ctx, nil, info, h); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !called {
				t.Fatal("handler was not called")
			}
			if len(rec.debug) != 1 || rec.debug[0] != "no auth header" {
				t.Fatalf("unexpected debug lines: %v", rec.debug)
			}
		})
	}
}

func TestAuthHeaderInterceptor_CustomHeaderName(t *testing.T) {
	s := newServer(&fakeAuth{})
	s.authHeader = "x-session"

	md := metadata.Pairs("X-Session", "tok", "authorization", "ignored")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var got string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got = authHeaderFromContext(ctx)
		return nil, nil
	}
	if _, err := s.authHeaderInterceptor(ctx, nil, &grpc.UnaryServerInfo{}, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "tok" {
		t.Fatalf("want tok, got %q", got)
	}
}

func TestLoggingInterceptor_RecordsCall(t *testing.T) {
	rec := &recordingLogger{}
	s := newServer(&fakeAuth{})
	s.logger = rec

	info := &grpc.UnaryServerInfo{FullMethod: "/auth.UserService/Login"}
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.InvalidArgument, "bad")
	}

	_, err := s.loggingInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("error must pass through, got %v", err)
	}
	if len(rec.msgs) != 1 || rec.msgs[0] != "gRPC call" {
		t.Fatalf("unexpected log lines: %v", rec.msgs)
	}
	args := rec.args[0]
	if args[1] != info.FullMethod || args[5] != codes.InvalidArgument.String() {
		t.Fatalf("unexpected log args: %v", args)
	}
}

func TestLoggingInterceptor_PassesResponse(t *testing.T) {
	s := newServer(&fakeAuth{})
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "resp", nil
	}
	resp, err := s.loggingInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, h)
	if err != nil || resp != "resp" {
		t.Fatalf("got (%v, %v)", resp, err)
	}
}
