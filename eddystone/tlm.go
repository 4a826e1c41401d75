package eddystone

import (
	"encoding/binary"
	"time"
)

// Unencrypted TLM frame: tag, version, battery mV (u16), temperature (8.8
// signed fixed point), PDU count (u32), time since power-on in 0.1 s (u32).
// All fields are big-endian.
const (
	tlmMinLen  = 6
	tlmFullLen = 14
)

// ParseTLM decodes a TLM frame. tlm and rssi are unused and accepted so all
// frame decoders share one signature. The counters are decoded only when
// the frame is long enough to carry them.
func (d *Decoder) ParseTLM(data, tlm []byte, rssi int) (BeaconInfo, error) {
	if len(data) <= 1 {
		return BeaconInfo{}, tooShort(Telemetry, len(data), tlmMinLen)
	}

	if data[0] != tagTLM {
		return BeaconInfo{}, mismatch(Telemetry, data[0])
	}

	if len(data) < tlmMinLen {
		return BeaconInfo{}, tooShort(Telemetry, len(data), tlmMinLen)
	}

	bi := BeaconInfo{
		frameType:   Telemetry,
		version:     data[1],
		battery:     int(binary.BigEndian.Uint16(data[2:4])),
		temperature: float64(int8(data[4])) + float64(data[5])/256.0,
	}

	if len(data) >= tlmFullLen {
		bi.counters = true
		bi.advCount = binary.BigEndian.Uint32(data[6:10])
		bi.uptime = time.Duration(binary.BigEndian.Uint32(data[10:14])) * 100 * time.Millisecond
	} else if len(data) > tlmMinLen {
		d.logger().Debugf("tlm frame: %v bytes, counters need %v", len(data), tlmFullLen)
	}

	return bi, nil
}
