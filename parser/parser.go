package parser

import (
	"fmt"

	"github.com/pkg/errors"
	ble "github.com/rigado/ble-eddystone"
	"github.com/rigado/ble-eddystone/sliceops"
)

var EmptyOrNilPdu = errors.New("nil/empty pdu")

// https://www.bluetooth.com/specifications/assigned-numbers/
const (
	adFlags       byte = 0x01
	adUUID16Inc   byte = 0x02
	adUUID16Comp  byte = 0x03
	adUUID32Inc   byte = 0x04
	adUUID32Comp  byte = 0x05
	adUUID128Inc  byte = 0x06
	adUUID128Comp byte = 0x07
	adNameShort   byte = 0x08
	adNameComp    byte = 0x09
	adTxPower     byte = 0x0a
	adSol16       byte = 0x14
	adSol128      byte = 0x15
	adSvc16       byte = 0x16
	adSol32       byte = 0x1f
	adSvc32       byte = 0x20
	adSvc128      byte = 0x21
	adMfgData     byte = 0xff
)

var keys = ble.AdvertisementMapKeys

// record describes how the payload of one AD type is stored in the map.
// uuidSz > 0 means a list of UUIDs, svcUUIDSz > 0 means service data
// prefixed by a UUID of that size, otherwise the bytes are stored as is.
type record struct {
	key       string
	minSz     int
	uuidSz    int
	svcUUIDSz int
}

var records = map[byte]record{
	adFlags:       {key: keys.Flags, minSz: 1},
	adUUID16Inc:   {key: keys.Services, minSz: 2, uuidSz: 2},
	adUUID16Comp:  {key: keys.Services, minSz: 2, uuidSz: 2},
	adUUID32Inc:   {key: keys.Services, minSz: 4, uuidSz: 4},
	adUUID32Comp:  {key: keys.Services, minSz: 4, uuidSz: 4},
	adUUID128Inc:  {key: keys.Services, minSz: 16, uuidSz: 16},
	adUUID128Comp: {key: keys.Services, minSz: 16, uuidSz: 16},
	adNameShort:   {key: keys.Name, minSz: 1},
	adNameComp:    {key: keys.Name, minSz: 1},
	adTxPower:     {key: keys.TxPower, minSz: 1},
	adSol16:       {key: keys.Solicited, minSz: 2, uuidSz: 2},
	adSol32:       {key: keys.Solicited, minSz: 4, uuidSz: 4},
	adSol128:      {key: keys.Solicited, minSz: 16, uuidSz: 16},
	adSvc16:       {key: keys.ServiceData, minSz: 2, svcUUIDSz: 2},
	adSvc32:       {key: keys.ServiceData, minSz: 4, svcUUIDSz: 4},
	adSvc128:      {key: keys.ServiceData, minSz: 16, svcUUIDSz: 16},
	adMfgData:     {key: keys.MFG, minSz: 1},
}

func splitUUIDs(size int, b []byte) ([]ble.UUID, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size")
	}

	if len(b) == 0 || len(b)%size != 0 {
		return nil, fmt.Errorf("incorrect size %v for %v byte uuids", len(b), size)
	}

	arr := make([]ble.UUID, 0, len(b)/size)
	for j := 0; j < len(b); j += size {
		arr = append(arr, ble.UUID(b[j:j+size]))
	}

	return arr, nil
}

// Parse decodes the AD structures of an advertising PDU (advertising data
// and scan response may be concatenated) into a map keyed by
// ble.AdvertisementMapKeys. Service data is stored as
// map[uuid string][]interface{} so repeated frames for one service survive.
// On error the fields decoded so far are returned with it.
func Parse(pdu []byte) (map[string]interface{}, error) {
	if len(pdu) == 0 {
		return nil, EmptyOrNilPdu
	}

	m := make(map[string]interface{})
	for i := 0; i+1 < len(pdu); {
		//length @ offset 0, type @ offset 1, data @ 2 - length
		length := int(pdu[i])
		typ := pdu[i+1]

		if length < 1 {
			return m, fmt.Errorf("invalid record length %v, idx %v", length, i)
		}

		if i+length >= len(pdu) {
			return m, fmt.Errorf("buffer overflow: want %v, have %v, idx %v", i+length, len(pdu), i)
		}

		idx := i
		data := sliceops.Clone(pdu[i+2 : i+1+length])
		i += length + 1

		rec, ok := records[typ]
		if !ok || len(data) == 0 {
			continue
		}

		if rec.minSz > len(data) {
			return m, fmt.Errorf("adv type %v: min length %v, have %v, idx %v", typ, rec.minSz, len(data), idx)
		}

		switch {
		case rec.uuidSz > 0:
			arr, err := splitUUIDs(rec.uuidSz, data)
			if err != nil {
				return m, errors.Wrapf(err, "adv type %v, idx %v", typ, idx)
			}
			v, _ := m[rec.key].([]ble.UUID)
			m[rec.key] = append(v, arr...)

		case rec.svcUUIDSz > 0:
			su := ble.UUID(data[:rec.svcUUIDSz]).String()
			msd, ok := m[rec.key].(map[string]interface{})
			if !ok {
				msd = make(map[string]interface{})
				m[rec.key] = msd
			}
			arr, _ := msd[su].([]interface{})
			msd[su] = append(arr, data[rec.svcUUIDSz:])

		default:
			appendBytes(m, rec.key, data)
		}
	}

	return m, nil
}

func appendBytes(m map[string]interface{}, key string, data []byte) {
	d, ok := m[key].([]byte)
	if !ok {
		m[key] = data
		return
	}

	if key == keys.MFG && len(data) >= 2 {
		//mfg data contains the company id again in the scan response
		//strip that out
		data = data[2:]
	}
	m[key] = append(d, data...)
}

// ServiceData returns the service data payloads stored under the uuid
// string key (for example ble.EddystoneServiceKey), in PDU order.
func ServiceData(m map[string]interface{}, key string) [][]byte {
	msd, ok := m[keys.ServiceData].(map[string]interface{})
	if !ok {
		return nil
	}

	arr, _ := msd[key].([]interface{})
	out := make([][]byte, 0, len(arr))
	for _, v := range arr {
		if b, ok := v.([]byte); ok {
			out = append(out, b)
		}
	}

	return out
}
