/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package decode implements the "geobuf decode" subcommand, which reads a
// Geobuf file and writes it back out as GeoJSON or WKB.
package decode

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/wkb"

	"github.com/geobufio/geobuf/geomconv"
	"github.com/geobufio/geobuf/transcode"
	"github.com/geobufio/geobuf/x"
)

// Decode is the sub-command invoked when running "geobuf decode".
var Decode x.SubCommand

func init() {
	Decode.Cmd = &cobra.Command{
		Use:   "decode",
		Short: "Convert a Geobuf file back to GeoJSON or WKB",
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
	Decode.EnvPrefix = "GEOBUF_DECODE"

	flag := Decode.Cmd.Flags()
	flag.StringP("input", "i", "", "Location of the encoded input file.")
	flag.StringP("output", "o", "", "Location of the output file.")
	flag.Bool("pretty", false, "Indent the GeoJSON output.")
	flag.Bool("wkb", false, "Write WKB instead of GeoJSON. The document must hold a bare geometry.")
	x.Check(Decode.Cmd.MarkFlagRequired("input"))
	x.Check(Decode.Cmd.MarkFlagRequired("output"))
}

func run() {
	input := Decode.Conf.GetString("input")
	output := Decode.Conf.GetString("output")

	in, err := os.ReadFile(input)
	x.Checkf(err, "while reading %s", input)

	doc, err := transcode.Decode(in)
	x.Checkf(err, "while decoding %s", input)

	var out []byte
	switch {
	case Decode.Conf.GetBool("wkb"):
		if doc.Geometry == nil {
			x.Fatalf("WKB output requires a bare geometry document")
		}
		g, err := geomconv.FromGeoJSON(doc.Geometry)
		x.Check(err)
		out, err = wkb.Marshal(g, wkb.NDR)
		x.Checkf(err, "while marshaling WKB")
	case Decode.Conf.GetBool("pretty"):
		out, err = json.MarshalIndent(doc, "", "  ")
		x.Checkf(err, "while marshaling GeoJSON")
	default:
		out, err = json.Marshal(doc)
		x.Checkf(err, "while marshaling GeoJSON")
	}

	x.Checkf(os.WriteFile(output, out, 0644), "while writing %s", output)
	glog.Infof("Decoded %s (%d bytes) into %s (%d bytes)",
		input, len(in), output, len(out))
}
