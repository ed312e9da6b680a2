/*
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/geobufio/geobuf/geobuf/cmd/decode"
	"github.com/geobufio/geobuf/geobuf/cmd/encode"
	"github.com/geobufio/geobuf/x"
)

// RootCmd is the base command invoked when geobuf is run without any
// subcommands.
var RootCmd = &cobra.Command{
	Use:   "geobuf",
	Short: "Geobuf converts GeoJSON to a compact binary encoding and back",
	Long: `
Geobuf stores GeoJSON documents as protocol buffers. Coordinates are
quantized to a configurable precision and delta-coded per axis, and
property keys are deduplicated across the document, which typically
shrinks the payload by an order of magnitude.
`,
}

var rootConf = viper.New()

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	// Default value of glog's logtostderr flag is false, which means all
	// logs land in files unless asked otherwise. Flip the default so a
	// plain invocation logs to the terminal.
	x.Check(goflag.CommandLine.Lookup("logtostderr").Value.Set("true"))
	goflag.Parse()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by values set via environment variables and flags.")
	x.Check(rootConf.BindPFlags(RootCmd.PersistentFlags()))

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	subcommands := []*x.SubCommand{&encode.Encode, &decode.Decode}
	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		x.Check(sc.Conf.BindPFlags(sc.Cmd.Flags()))
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}

	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			x.Check(x.Wrapf(sc.Conf.ReadInConfig(), "reading config"))
		}
	})
}
