package interceptors

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	interceptor := UnaryLogging(zap.New(core))

	info := &grpc.UnaryServerInfo{FullMethod: "/proxy.v1.ClientMfaService/StartLogin"}
	handler := func(context.Context, interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "not found")
	}

	_, err := interceptor(context.Background(), nil, info, handler)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("interceptor altered the handler error: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != info.FullMethod {
		t.Errorf("method field = %v", fields["method"])
	}
	if fields["code"] != "NotFound" {
		t.Errorf("code field = %v", fields["code"])
	}
}

func TestUnaryLoggingPassesResponse(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	interceptor := UnaryLogging(zap.New(core))

	want := "response"
	handler := func(context.Context, interface{}) (interface{}, error) {
		return want, nil
	}
	resp, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/m"}, handler)
	if err != nil {
		t.Fatalf("interceptor returned error: %v", err)
	}
	if resp != want {
		t.Errorf("resp = %v, want %v", resp, want)
	}
	if errors.Is(err, context.Canceled) {
		t.Error("unexpected context error")
	}
}
