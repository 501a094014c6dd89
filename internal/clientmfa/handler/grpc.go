// Package handler exposes the desktop-client MFA flow as the gRPC
// ClientMfaService.
package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	proxyv1 "github.com/bhardwajRahul/defguard/api/proxy/v1"
	"github.com/bhardwajRahul/defguard/internal/clientmfa"
	"github.com/bhardwajRahul/defguard/internal/mfa"
	"github.com/bhardwajRahul/defguard/internal/security"
)

// Server implements proxyv1.ClientMfaServiceServer.
type Server struct {
	proxyv1.UnimplementedClientMfaServiceServer
	svc *clientmfa.Service
	log *zap.Logger
}

func NewServer(svc *clientmfa.Service, log *zap.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// StartLogin begins an MFA login and returns the token for FinishLogin.
func (s *Server) StartLogin(ctx context.Context, req *proxyv1.StartLoginRequest) (*proxyv1.StartLoginResponse, error) {
	if req.PublicKey == "" {
		return nil, status.Error(codes.InvalidArgument, "pubkey is required")
	}
	if req.LocationID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "location_id is required")
	}

	token, err := s.svc.StartLogin(ctx, req.PublicKey, req.LocationID, req.Method)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &proxyv1.StartLoginResponse{Token: token}, nil
}

// FinishLogin completes an MFA login and returns the preshared key.
func (s *Server) FinishLogin(ctx context.Context, req *proxyv1.FinishLoginRequest) (*proxyv1.FinishLoginResponse, error) {
	if req.Token == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}
	if req.Code == "" {
		return nil, status.Error(codes.InvalidArgument, "code is required")
	}

	psk, err := s.svc.FinishLogin(ctx, req.Token, req.Code, ClientInfoFromContext(ctx))
	if err != nil {
		return nil, s.mapError(err)
	}
	return &proxyv1.FinishLoginResponse{PresharedKey: psk}, nil
}

// mapError translates service errors to gRPC statuses. Messages stay
// coarse so callers cannot probe which accounts or devices exist.
func (s *Server) mapError(err error) error {
	switch {
	case errors.Is(err, clientmfa.ErrLocationNotFound),
		errors.Is(err, clientmfa.ErrDeviceNotFound),
		errors.Is(err, clientmfa.ErrUserNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, mfa.ErrUnknownMethod),
		errors.Is(err, clientmfa.ErrMethodDisabled):
		return status.Error(codes.InvalidArgument, "MFA method not available")
	case errors.Is(err, security.ErrInvalidToken):
		return status.Error(codes.InvalidArgument, "invalid token")
	case errors.Is(err, clientmfa.ErrSessionNotFound):
		return status.Error(codes.InvalidArgument, "login session not found")
	case errors.Is(err, clientmfa.ErrAccessDenied):
		return status.Error(codes.Unauthenticated, "access denied")
	case errors.Is(err, clientmfa.ErrInvalidCode):
		return status.Error(codes.Unauthenticated, "invalid code")
	default:
		s.log.Error("clientmfa: request failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}
