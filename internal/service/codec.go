package service

import "encoding/json"

// jsonCodec serializes the service's plain Go messages with encoding/json.
// It is registered under "json", replacing Connect's protobuf-JSON codec.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
