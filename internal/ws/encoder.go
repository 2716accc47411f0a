package ws

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Codec converts notifications to and from wire frames for each subprotocol.
// Binary frames are a google.protobuf.Struct, Zstd-compressed.
type Codec struct {
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
}

// NewCodec creates a Codec with Zstd compression.
func NewCodec() (*Codec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &Codec{zstdEncoder: enc, zstdDecoder: dec}, nil
}

// Encode renders n for the given subprotocol.
func (c *Codec) Encode(protocol string, n Notification) ([]byte, error) {
	if protocol != ProtocolProtobuf {
		return encodeJSON(n)
	}

	var id any
	if n.ID != "" {
		id = n.ID
	}
	st, err := structpb.NewStruct(map[string]any{
		"id":      id,
		"message": n.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("build struct: %w", err)
	}
	pbData, err := proto.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshal protobuf: %w", err)
	}
	return c.zstdEncoder.EncodeAll(pbData, nil), nil
}

// Decode parses a frame produced by Encode.
func (c *Codec) Decode(protocol string, frame []byte) (Notification, error) {
	if protocol != ProtocolProtobuf {
		return decodeJSON(frame)
	}

	pbData, err := c.zstdDecoder.DecodeAll(frame, nil)
	if err != nil {
		return Notification{}, fmt.Errorf("decompress frame: %w", err)
	}
	var st structpb.Struct
	if err := proto.Unmarshal(pbData, &st); err != nil {
		return Notification{}, fmt.Errorf("unmarshal protobuf: %w", err)
	}
	fields := st.GetFields()
	return Notification{
		ID:      fields["id"].GetStringValue(),
		Message: fields["message"].GetStringValue(),
	}, nil
}

// Close releases codec resources.
func (c *Codec) Close() {
	if c.zstdEncoder != nil {
		c.zstdEncoder.Close()
	}
	if c.zstdDecoder != nil {
		c.zstdDecoder.Close()
	}
}
