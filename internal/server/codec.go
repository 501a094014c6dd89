package server

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec lets the ClientMfaService exchange plain JSON messages over
// gRPC. Clients select it with the "json" content subtype.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return "json" }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
