package relay

import (
	"encoding/json"
	"fmt"

	decode "CollabProject/tools/decode"
)

// FrameType is the `type` discriminator of a wire envelope.
type FrameType string

const (
	// client -> server (join/leave mutate room state, the rest are relayed)
	FrameJoin          FrameType = "join"
	FrameLeave         FrameType = "leave"
	FrameCursor        FrameType = "cursor"
	FrameElementAdd    FrameType = "element-add"
	FrameElementUpdate FrameType = "element-update"
	FrameElementDelete FrameType = "element-delete"
	FrameSelection     FrameType = "selection"

	// server -> client only
	FrameUsers      FrameType = "users"
	FrameUserJoined FrameType = "user-joined"
	FrameUserLeft   FrameType = "user-left"
)

// Sender identifies the originator of a relayed frame. It is attached by the
// gateway at send time; inbound values are discarded so clients cannot forge
// their own attribution.
type Sender struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Color    string `json:"color,omitempty"`
}

// Frame is one JSON envelope on the wire. Payload stays opaque except for
// join, whose payload the gateway must read to admit the connection.
type Frame struct {
	Type    FrameType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Sender  *Sender         `json:"sender,omitempty"`
}

// JoinPayload is the decoded payload of a join frame. Identity fields are
// caller-supplied and trusted as-is; verification happens upstream.
type JoinPayload struct {
	ProjectID string `json:"projectId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
}

func ParseFrameJSON(raw []byte) (*Frame, error) {
	frame := &Frame{}
	if err := json.Unmarshal(raw, frame); err != nil {
		return nil, fmt.Errorf("unmarshal frame failed: %w", err)
	}
	if frame.Type == "" {
		return nil, fmt.Errorf("frame has no type")
	}
	return frame, nil
}

func MarshalFrameJSON(f *Frame) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("nil frame")
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal frame: %w", err)
	}
	return data, nil
}

// ExtractJoinPayload decodes the join payload. Weakly-typed decoding is on so
// numeric userIds coming from JS clients land in the string fields.
func ExtractJoinPayload(f *Frame) (*JoinPayload, error) {
	if f == nil {
		return nil, fmt.Errorf("nil frame")
	}
	if len(f.Payload) == 0 {
		return nil, fmt.Errorf("join payload is empty")
	}
	var m map[string]any
	if err := json.Unmarshal(f.Payload, &m); err != nil {
		return nil, fmt.Errorf("join payload not an object: %w", err)
	}
	p, err := decode.DecodeMap[JoinPayload](m)
	if err != nil {
		return nil, err
	}
	if p.ProjectID == "" {
		return nil, fmt.Errorf("join payload missing projectId")
	}
	return p, nil
}

// ---- server-originated frame constructors ----

func BuildUsersFrame(roster []Sender) *Frame {
	if roster == nil {
		roster = []Sender{}
	}
	payload, _ := json.Marshal(map[string]any{"users": roster})
	return &Frame{Type: FrameUsers, Payload: payload}
}

func BuildUserJoinedFrame(s Sender) *Frame {
	payload, _ := json.Marshal(s)
	return &Frame{Type: FrameUserJoined, Payload: payload}
}

func BuildUserLeftFrame(s Sender) *Frame {
	payload, _ := json.Marshal(map[string]string{
		"userId":   s.UserID,
		"userName": s.UserName,
	})
	return &Frame{Type: FrameUserLeft, Payload: payload}
}
