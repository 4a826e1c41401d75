package eddystone

// FrameType is the Eddystone frame sub-type, carried in the first byte
// of the service data.
type FrameType int

const (
	Unknown FrameType = iota
	UID
	URL
	Telemetry
)

// Frame tag bytes.
const (
	tagUID byte = 0x00
	tagURL byte = 0x10
	tagTLM byte = 0x20
)

func (ft FrameType) String() string {
	switch ft {
	case UID:
		return "uid"
	case URL:
		return "url"
	case Telemetry:
		return "tlm"
	default:
		return "unknown"
	}
}

// FrameTypeOf classifies Eddystone service data by its tag byte.
// Buffers shorter than 2 bytes are Unknown.
func FrameTypeOf(data []byte) FrameType {
	if len(data) < 2 {
		return Unknown
	}

	switch data[0] {
	case tagUID:
		return UID
	case tagURL:
		return URL
	case tagTLM:
		return Telemetry
	default:
		return Unknown
	}
}
