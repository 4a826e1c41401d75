package eddystone

import (
	"sync"

	"github.com/pkg/errors"
	ble "github.com/rigado/ble-eddystone"
)

var logTags = map[string]interface{}{"pkg": "eddystone"}

// Decoder decodes Eddystone service data. It holds no per-frame state and
// is safe for concurrent use. Without OptLogger it logs through
// ble.GetLogger at the time of each message.
type Decoder struct {
	log       ble.Logger
	expandURL bool
}

// An Option is a configuration function, which configures the decoder.
type Option func(*Decoder) error

// OptLogger sets the logger used for debug output.
func OptLogger(l ble.Logger) Option {
	return func(d *Decoder) error {
		if l == nil {
			return errors.New("nil logger")
		}
		d.log = l
		return nil
	}
}

// OptExpandURL enables (default) or disables expansion of the Eddystone-URL
// suffix codes 0x00-0x0d. Disabled, every body byte is taken as a literal
// character.
func OptExpandURL(expand bool) Option {
	return func(d *Decoder) error {
		d.expandURL = expand
		return nil
	}
}

func NewDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{
		expandURL: true,
	}

	for _, o := range opts {
		if err := o(d); err != nil {
			return nil, errors.Wrap(err, "decoder option")
		}
	}

	return d, nil
}

func (d *Decoder) logger() ble.Logger {
	if d.log != nil {
		return d.log
	}
	return ble.GetLogger().ChildLogger(logTags)
}

var (
	stdOnce sync.Once
	std     *Decoder
)

func defaultDecoder() *Decoder {
	stdOnce.Do(func() {
		std, _ = NewDecoder()
	})
	return std
}

// Decode classifies data and dispatches to the matching frame decoder.
// Frames with an unrecognized tag fail with ErrUnknownFrameType.
func (d *Decoder) Decode(data, tlm []byte, rssi int) (BeaconInfo, error) {
	switch FrameTypeOf(data) {
	case UID:
		return d.ParseUID(data, tlm, rssi)
	case URL:
		return d.ParseURL(data, tlm, rssi)
	case Telemetry:
		return d.ParseTLM(data, tlm, rssi)
	}

	if len(data) == 0 {
		return BeaconInfo{}, errors.Wrap(ErrUnknownFrameType, "empty frame")
	}
	return BeaconInfo{}, errors.Wrapf(ErrUnknownFrameType, "tag 0x%02x, %v bytes", data[0], len(data))
}

// Decode decodes one frame with the default decoder.
func Decode(data, tlm []byte, rssi int) (BeaconInfo, error) {
	return defaultDecoder().Decode(data, tlm, rssi)
}

// ParseUID decodes a UID frame with the default decoder.
func ParseUID(data, tlm []byte, rssi int) (BeaconInfo, error) {
	return defaultDecoder().ParseUID(data, tlm, rssi)
}

// ParseURL decodes a URL frame with the default decoder.
func ParseURL(data, tlm []byte, rssi int) (BeaconInfo, error) {
	return defaultDecoder().ParseURL(data, tlm, rssi)
}

// ParseTLM decodes a TLM frame with the default decoder.
func ParseTLM(data, tlm []byte, rssi int) (BeaconInfo, error) {
	return defaultDecoder().ParseTLM(data, tlm, rssi)
}
