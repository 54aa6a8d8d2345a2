// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

// CommandKind is the single-byte discriminant of a [Command].
type CommandKind uint8

const (
	// Exit terminates the event loop. It produces no response.
	Exit CommandKind = 0
	// ComA is answered with ResA.
	ComA CommandKind = 1
	// ComB is answered with ResB.
	ComB CommandKind = 2
)

// Valid reports whether k belongs to the command vocabulary.
func (k CommandKind) Valid() bool {
	return k <= ComB
}

func (k CommandKind) String() string {
	switch k {
	case Exit:
		return "Exit"
	case ComA:
		return "ComA"
	case ComB:
		return "ComB"
	}
	return "CommandKind(invalid)"
}

// ResponseKind is the single-byte discriminant of a [Response].
type ResponseKind uint8

const (
	// ResA answers ComA.
	ResA ResponseKind = 0
	// ResB answers ComB.
	ResB ResponseKind = 1
)

// Valid reports whether k belongs to the response vocabulary.
func (k ResponseKind) Valid() bool {
	return k <= ResB
}

func (k ResponseKind) String() string {
	switch k {
	case ResA:
		return "ResA"
	case ResB:
		return "ResB"
	}
	return "ResponseKind(invalid)"
}

// Command is one inbound message. Payload is forwarded to the [Handler]
// untouched; the default handler ignores it.
type Command struct {
	Kind    CommandKind
	Payload []byte
}

// Response is one outbound message, produced one-for-one for every
// non-Exit command.
type Response struct {
	Kind    ResponseKind
	Payload []byte
}

// Handler computes the response for a non-Exit command.
// A non-nil error terminates the event loop with that error as its cause.
// Handlers run on the loop thread and must not block.
type Handler func(Command) (Response, error)

// DefaultHandler answers ComA with ResA and ComB with ResB.
func DefaultHandler(c Command) (Response, error) {
	switch c.Kind {
	case ComA:
		return Response{Kind: ResA}, nil
	case ComB:
		return Response{Kind: ResB}, nil
	}
	return Response{}, ErrUnknownKind
}
