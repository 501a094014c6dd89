package proxyv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClientMfaService_ServiceName is the full gRPC service name.
const ClientMfaService_ServiceName = "proxy.v1.ClientMfaService"

// ClientMfaServiceServer is the server API for the ClientMfaService.
type ClientMfaServiceServer interface {
	StartLogin(ctx context.Context, req *StartLoginRequest) (*StartLoginResponse, error)
	FinishLogin(ctx context.Context, req *FinishLoginRequest) (*FinishLoginResponse, error)
}

// UnimplementedClientMfaServiceServer can be embedded for forward
// compatibility.
type UnimplementedClientMfaServiceServer struct{}

func (UnimplementedClientMfaServiceServer) StartLogin(context.Context, *StartLoginRequest) (*StartLoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartLogin not implemented")
}

func (UnimplementedClientMfaServiceServer) FinishLogin(context.Context, *FinishLoginRequest) (*FinishLoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FinishLogin not implemented")
}

// RegisterClientMfaServiceServer registers the service implementation on s.
func RegisterClientMfaServiceServer(s grpc.ServiceRegistrar, srv ClientMfaServiceServer) {
	s.RegisterService(&ClientMfaService_ServiceDesc, srv)
}

func _ClientMfaService_StartLogin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartLoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientMfaServiceServer).StartLogin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ClientMfaService_ServiceName + "/StartLogin",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientMfaServiceServer).StartLogin(ctx, req.(*StartLoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClientMfaService_FinishLogin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinishLoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClientMfaServiceServer).FinishLogin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ClientMfaService_ServiceName + "/FinishLogin",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClientMfaServiceServer).FinishLogin(ctx, req.(*FinishLoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ClientMfaService_ServiceDesc is the grpc.ServiceDesc for the service.
var ClientMfaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ClientMfaService_ServiceName,
	HandlerType: (*ClientMfaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartLogin",
			Handler:    _ClientMfaService_StartLogin_Handler,
		},
		{
			MethodName: "FinishLogin",
			Handler:    _ClientMfaService_FinishLogin_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proxy/v1/client_mfa",
}
