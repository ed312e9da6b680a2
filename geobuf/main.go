/*
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"github.com/golang/glog"

	"github.com/geobufio/geobuf/geobuf/cmd"
)

func main() {
	defer glog.Flush()
	cmd.Execute()
}
