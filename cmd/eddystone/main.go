package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	ble "github.com/rigado/ble-eddystone"
	"github.com/rigado/ble-eddystone/eddystone"
	"github.com/rigado/ble-eddystone/parser"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		ble.GetLogger().Error(err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "eddystone"
	app.Usage = "decode Eddystone beacon frames"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "json", Usage: "print records as json"},
		cli.BoolFlag{Name: "raw-url", Usage: "do not expand url suffix codes"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "error, warn, info, debug or trace"},
	}
	app.Before = func(c *cli.Context) error {
		return errors.Wrap(ble.SetLogLevel(c.GlobalString("log-level")), "log level")
	}

	rssi := cli.IntFlag{Name: "rssi", Usage: "observed signal strength, dBm"}
	app.Commands = []cli.Command{
		{
			Name:           "frame",
			Usage:          "decode one Eddystone service data frame",
			ArgsUsage:      "<hex>",
			SkipArgReorder: true,
			Flags: []cli.Flag{
				rssi,
				cli.StringFlag{Name: "tlm", Usage: "hex TLM frame observed with the same advertisement"},
			},
			Action: cmdFrame,
		},
		{
			Name:           "adv",
			Usage:          "parse a raw advertising PDU and decode its Eddystone frames",
			ArgsUsage:      "<hex>",
			SkipArgReorder: true,
			Flags:          []cli.Flag{rssi},
			Action:         cmdAdv,
		},
	}

	return app
}

func cmdFrame(c *cli.Context) error {
	d, err := decoder(c)
	if err != nil {
		return err
	}

	data, err := hexArg(c)
	if err != nil {
		return err
	}

	var tlm []byte
	if s := c.String("tlm"); s != "" {
		if tlm, err = decodeHex(s); err != nil {
			return errors.Wrap(err, "tlm")
		}
	}

	bi, err := d.Decode(data, tlm, c.Int("rssi"))
	if err != nil {
		return err
	}

	return printRecords(c, []eddystone.BeaconInfo{bi})
}

func cmdAdv(c *cli.Context) error {
	d, err := decoder(c)
	if err != nil {
		return err
	}

	pdu, err := hexArg(c)
	if err != nil {
		return err
	}

	m, err := parser.Parse(pdu)
	if err != nil {
		return errors.Wrap(err, "adv parse")
	}

	out, err := d.DecodeMap(m, c.Int("rssi"))
	if err != nil {
		return err
	}

	if len(out) == 0 {
		ble.GetLogger().Warn("no eddystone frames in advertisement")
	}
	return printRecords(c, out)
}

func decoder(c *cli.Context) (*eddystone.Decoder, error) {
	return eddystone.NewDecoder(eddystone.OptExpandURL(!c.GlobalBool("raw-url")))
}

func hexArg(c *cli.Context) ([]byte, error) {
	if c.NArg() != 1 {
		return nil, errors.Errorf("want 1 hex argument, have %v", c.NArg())
	}
	return decodeHex(c.Args().First())
}

// decodeHex accepts hex with optional spaces, colons or dashes between bytes.
func decodeHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", ":", "", "-", "").Replace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decode hex %q", s)
	}
	return b, nil
}

func printRecords(c *cli.Context, rr []eddystone.BeaconInfo) error {
	asJSON := c.GlobalBool("json")
	for _, bi := range rr {
		if !asJSON {
			fmt.Fprintln(c.App.Writer, bi)
			continue
		}

		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(bi)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, string(b))
	}
	return nil
}
