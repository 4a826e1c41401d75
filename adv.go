package ble

// Advertisement is the part of a scanned advertisement event the beacon
// decoders consume. Scanners (HCI, BlueZ, CoreBluetooth) provide it.
type Advertisement interface {
	ServiceData() ([]ServiceData, error)
	RSSI() (int, error)
}

// AdvertisementMapKeys are the keys of a decoded advertisement map.
var AdvertisementMapKeys = struct {
	Flags       string
	RSSI        string
	Name        string
	MFG         string
	Services    string
	ServiceData string
	Solicited   string
	TxPower     string
}{
	Flags:       "flags",
	RSSI:        "rssi",
	Name:        "name",
	MFG:         "mfg",
	Services:    "services",
	ServiceData: "serviceData",
	Solicited:   "solicited",
	TxPower:     "txPower",
}

// ServiceData ...
type ServiceData struct {
	UUID UUID
	Data []byte
}
