package eddystone

import (
	"github.com/pkg/errors"
	ble "github.com/rigado/ble-eddystone"
	"github.com/rigado/ble-eddystone/parser"
)

// DecodeServiceData decodes every Eddystone frame of one advertisement
// event. The first TLM frame is passed through to the UID and URL records
// of the same event. Frames with an unknown tag are skipped; any other
// decode error aborts.
func (d *Decoder) DecodeServiceData(frames [][]byte, rssi int) ([]BeaconInfo, error) {
	var tlm []byte
	for _, f := range frames {
		if FrameTypeOf(f) == Telemetry {
			tlm = f
			break
		}
	}

	out := make([]BeaconInfo, 0, len(frames))
	for i, f := range frames {
		if FrameTypeOf(f) == Unknown {
			d.logger().Debugf("frame %v: no decoder for % x", i, f)
			continue
		}

		bi, err := d.Decode(f, tlm, rssi)
		if err != nil {
			return nil, errors.Wrapf(err, "frame %v", i)
		}
		out = append(out, bi)
	}

	return out, nil
}

// DecodeAdvertisement decodes the Eddystone service data of a scanned advertisement.
func (d *Decoder) DecodeAdvertisement(a ble.Advertisement) ([]BeaconInfo, error) {
	sds, err := a.ServiceData()
	if err != nil {
		return nil, errors.Wrap(err, "service data")
	}

	rssi, err := a.RSSI()
	if err != nil {
		return nil, errors.Wrap(err, "rssi")
	}

	var frames [][]byte
	for _, sd := range sds {
		if sd.UUID.String() == ble.EddystoneServiceKey {
			frames = append(frames, sd.Data)
		}
	}

	return d.DecodeServiceData(frames, rssi)
}

// DecodeMap decodes the Eddystone service data of an advertisement map
// produced by parser.Parse.
func (d *Decoder) DecodeMap(m map[string]interface{}, rssi int) ([]BeaconInfo, error) {
	return d.DecodeServiceData(parser.ServiceData(m, ble.EddystoneServiceKey), rssi)
}

func DecodeServiceData(frames [][]byte, rssi int) ([]BeaconInfo, error) {
	return defaultDecoder().DecodeServiceData(frames, rssi)
}

func DecodeAdvertisement(a ble.Advertisement) ([]BeaconInfo, error) {
	return defaultDecoder().DecodeAdvertisement(a)
}

func DecodeMap(m map[string]interface{}, rssi int) ([]BeaconInfo, error) {
	return defaultDecoder().DecodeMap(m, rssi)
}
