/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package encode implements the "geobuf encode" subcommand, which reads a
// GeoJSON (or WKB) file and writes its binary encoding.
package encode

import (
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/wkb"

	"github.com/geobufio/geobuf/geomconv"
	"github.com/geobufio/geobuf/transcode"
	"github.com/geobufio/geobuf/x"
)

// Encode is the sub-command invoked when running "geobuf encode".
var Encode x.SubCommand

func init() {
	Encode.Cmd = &cobra.Command{
		Use:   "encode",
		Short: "Convert a GeoJSON or WKB file to Geobuf",
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
	Encode.EnvPrefix = "GEOBUF_ENCODE"

	flag := Encode.Cmd.Flags()
	flag.StringP("input", "i", "", "Location of the input file.")
	flag.StringP("output", "o", "", "Location of the encoded output file.")
	flag.IntP("precision", "p", 6, "Number of decimal digits kept per coordinate.")
	flag.IntP("dim", "d", 2, "Number of values stored per coordinate (2 or 3).")
	flag.Bool("wkb", false, "Treat the input as WKB instead of GeoJSON.")
	x.Check(Encode.Cmd.MarkFlagRequired("input"))
	x.Check(Encode.Cmd.MarkFlagRequired("output"))
}

func run() {
	input := Encode.Conf.GetString("input")
	output := Encode.Conf.GetString("output")
	precision := Encode.Conf.GetInt("precision")
	dim := Encode.Conf.GetInt("dim")

	in, err := os.ReadFile(input)
	x.Checkf(err, "while reading %s", input)

	var doc *transcode.Document
	if Encode.Conf.GetBool("wkb") {
		g, err := wkb.Unmarshal(in)
		x.Checkf(err, "while parsing WKB from %s", input)
		gg, err := geomconv.ToGeoJSON(g)
		x.Check(err)
		doc = transcode.NewGeometryDocument(gg)
	} else {
		doc, err = transcode.UnmarshalDocument(in)
		x.Checkf(err, "while parsing GeoJSON from %s", input)
	}

	if precision < 0 {
		x.Fatalf("Precision must not be negative, got %d", precision)
	}
	buf, err := transcode.Encode(doc, uint32(precision), dim)
	x.Checkf(err, "while encoding %s", input)

	x.Checkf(os.WriteFile(output, buf, 0644), "while writing %s", output)
	glog.Infof("Encoded %s (%d bytes) into %s (%d bytes)",
		input, len(in), output, len(buf))
}
