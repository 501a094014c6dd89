// Package server assembles the gRPC surface of the core: codec, service
// registration and interceptors.
package server

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	proxyv1 "github.com/bhardwajRahul/defguard/api/proxy/v1"
	"github.com/bhardwajRahul/defguard/internal/clientmfa"
	clientmfahandler "github.com/bhardwajRahul/defguard/internal/clientmfa/handler"
)

// Deps holds the service dependencies for gRPC handlers.
type Deps struct {
	// ClientMfa is the desktop-client MFA orchestrator.
	ClientMfa *clientmfa.Service
	// Log is used by handlers for request-scoped logging.
	Log *zap.Logger
}

// RegisterServices registers all gRPC services with the given server.
//
// Service → handler mapping:
//   - ClientMfaService → internal/clientmfa/handler
//   - grpc.health.v1   → stock health server (readiness probes)
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	proxyv1.RegisterClientMfaServiceServer(s, clientmfahandler.NewServer(deps.ClientMfa, deps.Log))
	healthpb.RegisterHealthServer(s, health.NewServer())
}
