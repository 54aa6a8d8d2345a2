// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import "errors"

// WireVersion is the version marker leading every encoded message.
const WireVersion = 1

// wireHeaderSize is version + kind.
const wireHeaderSize = 2

var (
	// ErrShortBuffer reports an encoded message shorter than its header.
	ErrShortBuffer = errors.New("bridge: short buffer")
	// ErrWireVersion reports an unsupported version marker.
	ErrWireVersion = errors.New("bridge: unsupported wire version")
)

// AppendCommand appends the wire encoding of c to dst:
//
//	version(1) | kind(1) | payload(rest)
func AppendCommand(dst []byte, c Command) []byte {
	dst = append(dst, WireVersion, byte(c.Kind))
	return append(dst, c.Payload...)
}

// DecodeCommand parses a wire-encoded command.
// The returned payload aliases b.
func DecodeCommand(b []byte) (Command, error) {
	kind, payload, err := decodeHeader(b)
	if err != nil {
		return Command{}, err
	}
	k := CommandKind(kind)
	if !k.Valid() {
		return Command{}, ErrUnknownKind
	}
	return Command{Kind: k, Payload: payload}, nil
}

// AppendResponse appends the wire encoding of r to dst.
func AppendResponse(dst []byte, r Response) []byte {
	dst = append(dst, WireVersion, byte(r.Kind))
	return append(dst, r.Payload...)
}

// DecodeResponse parses a wire-encoded response.
// The returned payload aliases b.
func DecodeResponse(b []byte) (Response, error) {
	kind, payload, err := decodeHeader(b)
	if err != nil {
		return Response{}, err
	}
	k := ResponseKind(kind)
	if !k.Valid() {
		return Response{}, ErrUnknownKind
	}
	return Response{Kind: k, Payload: payload}, nil
}

func decodeHeader(b []byte) (byte, []byte, error) {
	if len(b) < wireHeaderSize {
		return 0, nil, ErrShortBuffer
	}
	if b[0] != WireVersion {
		return 0, nil, ErrWireVersion
	}
	payload := b[wireHeaderSize:]
	if len(payload) == 0 {
		payload = nil
	}
	return b[1], payload, nil
}
