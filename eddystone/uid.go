package eddystone

import "github.com/rigado/ble-eddystone/sliceops"

// UID frame: tag, tx power, 10 byte namespace, 6 byte instance, 2 RFU bytes.
const uidMinLen = 2 + idLen

// ParseUID decodes a UID frame. tlm is carried through to the result untouched.
func (d *Decoder) ParseUID(data, tlm []byte, rssi int) (BeaconInfo, error) {
	if len(data) <= 1 {
		return BeaconInfo{}, tooShort(UID, len(data), uidMinLen)
	}

	if data[0] != tagUID {
		return BeaconInfo{}, mismatch(UID, data[0])
	}

	if len(data) < uidMinLen {
		return BeaconInfo{}, tooShort(UID, len(data), uidMinLen)
	}

	if len(data) > uidMinLen+2 {
		d.logger().Debugf("uid frame: ignoring %v trailing bytes", len(data)-uidMinLen-2)
	}

	return BeaconInfo{
		frameType: UID,
		id:        newBeaconID(KindEddystone, data[2:uidMinLen]),
		txPower:   int(int8(data[1])),
		rssi:      rssi,
		tlm:       sliceops.Clone(tlm),
	}, nil
}
