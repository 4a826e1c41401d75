package eddystone

import "github.com/pkg/errors"

var (
	// ErrBufferTooShort is returned when a frame has fewer bytes than its layout requires.
	ErrBufferTooShort = errors.New("buffer too short")

	// ErrFrameTypeMismatch is returned when a decoder is handed a frame of another type.
	ErrFrameTypeMismatch = errors.New("frame type mismatch")

	// ErrUnknownFrameType is returned by Decode when no decoder applies to the frame.
	ErrUnknownFrameType = errors.New("unknown frame type")
)

func tooShort(ft FrameType, have, want int) error {
	return errors.Wrapf(ErrBufferTooShort, "%v frame: have %v bytes, want %v", ft, have, want)
}

func mismatch(ft FrameType, tag byte) error {
	return errors.Wrapf(ErrFrameTypeMismatch, "%v decoder: frame tag 0x%02x", ft, tag)
}
