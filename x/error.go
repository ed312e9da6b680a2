/*
 * SPDX-License-Identifier: Apache-2.0
 */

package x

// Simple error-handling helpers for the CLI layer. Library packages return
// errors; these are only for the outermost boundary where the process can
// do nothing but report and exit.

import (
	"log"

	"github.com/pkg/errors"
)

// Check logs fatal if err != nil.
func Check(err error) {
	if err != nil {
		log.Fatalf("%+v", errors.Wrap(err, ""))
	}
}

// Checkf is Check with extra info.
func Checkf(err error, format string, args ...interface{}) {
	if err != nil {
		log.Fatalf("%+v", errors.Wrapf(err, format, args...))
	}
}

// Wrapf wraps an error with a stack trace and message, passing nil through.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Fatalf logs fatal with a stack trace.
func Fatalf(format string, args ...interface{}) {
	log.Fatalf("%+v", errors.Errorf(format, args...))
}
