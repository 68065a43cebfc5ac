// Package debtflowv1 defines the wire contract of debtflow.v1.DebtFlowService:
// request and response messages, the service descriptor, and a client.
// Messages travel as JSON under the "json" content-subtype, so any gRPC
// client can call the service without generated stubs.
package debtflowv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content-subtype the service speaks
const CodecName = "json"

// jsonCodec encodes plain structs with encoding/json and protobuf messages
// (health checks, status details) with protojson, so a client using the
// json subtype can reach every service on the server.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
