// Package rpc holds the pieces shared by the connect services: a JSON codec
// for plain Go messages and the mapping from domain errors to connect codes.
package rpc

import (
	"encoding/json"
	"errors"

	"connectrpc.com/connect"
)

// CodecName is registered in place of connect's protobuf-only JSON codec
const CodecName = "json"

// JSONCodec marshals request and response structs with encoding/json
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return CodecName }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// HandlerOptions are applied to every handler the services register
func HandlerOptions() []connect.HandlerOption {
	return []connect.HandlerOption{connect.WithCodec(JSONCodec{})}
}

// ClientOptions configure a connect client to talk to these services
func ClientOptions() []connect.ClientOption {
	return []connect.ClientOption{connect.WithCodec(JSONCodec{})}
}

// ErrorMapping pairs a sentinel error with the connect code it becomes
type ErrorMapping struct {
	Err  error
	Code connect.Code
}

// Error converts err to a connect error using the first mapping it matches.
// Anything unmatched is reported as internal.
func Error(err error, mappings ...ErrorMapping) error {
	for _, m := range mappings {
		if errors.Is(err, m.Err) {
			return connect.NewError(m.Code, err)
		}
	}
	return connect.NewError(connect.CodeInternal, err)
}
