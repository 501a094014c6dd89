package handler

import (
	"context"
	"fmt"
	"net"

	"github.com/mileusna/useragent"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	"github.com/bhardwajRahul/defguard/internal/clientmfa"
)

// ClientInfoFromContext extracts the caller's IP and a human-readable
// device description from the gRPC request metadata. Missing pieces come
// back empty; activity events tolerate that.
func ClientInfoFromContext(ctx context.Context) clientmfa.ClientInfo {
	var info clientmfa.ClientInfo
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		if host, _, err := net.SplitHostPort(p.Addr.String()); err == nil {
			info.IP = host
		} else {
			info.IP = p.Addr.String()
		}
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get("user-agent"); len(values) > 0 {
			info.Device = describeUserAgent(values[0])
		}
	}
	return info
}

// describeUserAgent renders "Name on OS" for recognizable agents and
// falls back to the raw string.
func describeUserAgent(raw string) string {
	ua := useragent.Parse(raw)
	if ua.Name == "" {
		return raw
	}
	if ua.OS == "" {
		return ua.Name
	}
	return fmt.Sprintf("%s on %s", ua.Name, ua.OS)
}
