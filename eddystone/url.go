package eddystone

import (
	"strings"

	"github.com/rigado/ble-eddystone/sliceops"
)

// URL frame: tag, tx power, scheme code, encoded body.
const urlMinLen = 3

var urlSchemes = map[byte]string{
	0x00: "http://www.",
	0x01: "https://www.",
	0x02: "http://",
	0x03: "https://",
}

// Body codes 0x00-0x0d stand for common domain suffixes.
var urlSuffixes = []string{
	".com/",
	".org/",
	".edu/",
	".net/",
	".info/",
	".biz/",
	".gov/",
	".com",
	".org",
	".edu",
	".net",
	".info",
	".biz",
	".gov",
}

// ParseURL decodes a URL frame. Unknown scheme codes add no prefix. Body
// bytes outside the suffix table are taken as Latin-1 characters. With
// suffix expansion on (the default), body bytes 0x00-0x0d become domain
// suffixes even after an unknown scheme code; use OptExpandURL(false) for
// strictly literal output.
func (d *Decoder) ParseURL(data, tlm []byte, rssi int) (BeaconInfo, error) {
	if len(data) <= 1 {
		return BeaconInfo{}, tooShort(URL, len(data), urlMinLen)
	}

	if data[0] != tagURL {
		return BeaconInfo{}, mismatch(URL, data[0])
	}

	if len(data) < urlMinLen {
		return BeaconInfo{}, tooShort(URL, len(data), urlMinLen)
	}

	var sb strings.Builder
	if p, ok := urlSchemes[data[2]]; ok {
		sb.WriteString(p)
	} else {
		d.logger().Debugf("url frame: skipping unknown scheme code 0x%02x", data[2])
	}

	for _, c := range data[3:] {
		if d.expandURL && int(c) < len(urlSuffixes) {
			sb.WriteString(urlSuffixes[c])
			continue
		}
		sb.WriteRune(rune(c))
	}

	return BeaconInfo{
		frameType: URL,
		txPower:   int(int8(data[1])),
		rssi:      rssi,
		tlm:       sliceops.Clone(tlm),
		url:       sb.String(),
	}, nil
}
