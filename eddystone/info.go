package eddystone

import (
	"encoding/hex"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rigado/ble-eddystone/sliceops"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BeaconInfo is one decoded Eddystone frame. Which accessors are meaningful
// depends on FrameType:
//
//	UID:       BeaconID, TxPower, RSSI, TelemetryPayload
//	URL:       URL, TxPower, RSSI, TelemetryPayload
//	Telemetry: BatteryMilliVolts, TemperatureCelsius, TLMVersion,
//	           AdvertisementCount, Uptime
//
// The rest are zero.
type BeaconInfo struct {
	frameType FrameType

	id      BeaconID
	txPower int
	rssi    int
	tlm     []byte
	url     string

	version     byte
	battery     int
	temperature float64
	counters    bool
	advCount    uint32
	uptime      time.Duration
}

func (bi BeaconInfo) FrameType() FrameType {
	return bi.frameType
}

// BeaconID returns the identity carried by a UID frame; ok is false for other frames.
func (bi BeaconInfo) BeaconID() (id BeaconID, ok bool) {
	return bi.id, bi.frameType == UID
}

// TxPower is the calibrated transmit power at 0 m, in dBm.
func (bi BeaconInfo) TxPower() int {
	return bi.txPower
}

func (bi BeaconInfo) RSSI() int {
	return bi.rssi
}

// TelemetryPayload returns a copy of the TLM bytes observed alongside a UID or URL frame.
func (bi BeaconInfo) TelemetryPayload() []byte {
	return sliceops.Clone(bi.tlm)
}

func (bi BeaconInfo) URL() string {
	return bi.url
}

func (bi BeaconInfo) BatteryMilliVolts() int {
	return bi.battery
}

// TemperatureCelsius has a resolution of 1/256 °C.
func (bi BeaconInfo) TemperatureCelsius() float64 {
	return bi.temperature
}

func (bi BeaconInfo) TLMVersion() byte {
	return bi.version
}

// AdvertisementCount is the number of PDUs sent since power-on, when the TLM frame carries it.
func (bi BeaconInfo) AdvertisementCount() (uint32, bool) {
	return bi.advCount, bi.counters
}

// Uptime is the time since power-on, 0.1 s resolution, when the TLM frame carries it.
func (bi BeaconInfo) Uptime() (time.Duration, bool) {
	return bi.uptime, bi.counters
}

func (bi BeaconInfo) String() string {
	switch bi.frameType {
	case UID:
		return fmt.Sprintf("uid %v txPower %v rssi %v", bi.id, bi.txPower, bi.rssi)
	case URL:
		return fmt.Sprintf("url %v", bi.url)
	case Telemetry:
		return fmt.Sprintf("tlm temperature %.2fC battery %vmV", bi.temperature, bi.battery)
	default:
		return Unknown.String()
	}
}

type infoJSON struct {
	FrameType string    `json:"frameType"`
	ID        *BeaconID `json:"id,omitempty"`
	URL       string    `json:"url,omitempty"`
	TxPower   *int      `json:"txPower,omitempty"`
	RSSI      *int      `json:"rssi,omitempty"`
	TLM       string    `json:"tlm,omitempty"`

	Version            *int     `json:"version,omitempty"`
	BatteryMilliVolts  *int     `json:"batteryMilliVolts,omitempty"`
	TemperatureCelsius *float64 `json:"temperatureCelsius,omitempty"`
	AdvertisementCount *uint32  `json:"advCount,omitempty"`
	UptimeSeconds      *float64 `json:"uptimeSeconds,omitempty"`
}

// MarshalJSON emits the frame type and the fields of the active variant only.
func (bi BeaconInfo) MarshalJSON() ([]byte, error) {
	v := infoJSON{FrameType: bi.frameType.String()}

	switch bi.frameType {
	case UID, URL:
		if bi.frameType == UID {
			id := bi.id
			v.ID = &id
		} else {
			v.URL = bi.url
		}
		tx, rssi := bi.txPower, bi.rssi
		v.TxPower, v.RSSI = &tx, &rssi
		v.TLM = hex.EncodeToString(bi.tlm)

	case Telemetry:
		ver, batt, temp := int(bi.version), bi.battery, bi.temperature
		v.Version, v.BatteryMilliVolts, v.TemperatureCelsius = &ver, &batt, &temp
		if bi.counters {
			cnt, up := bi.advCount, bi.uptime.Seconds()
			v.AdvertisementCount, v.UptimeSeconds = &cnt, &up
		}
	}

	return json.Marshal(v)
}
