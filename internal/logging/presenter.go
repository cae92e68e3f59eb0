// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
)

// PresentError renders a local failure (config, session store, flags) as a
// single line prefixed with where it happened. Credentials in the error text
// are masked; remote failures go through httperrors instead.
func PresentError(where string, err error) string {
	if err == nil {
		return ""
	}
	msg := Mask(err.Error())
	if where == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", where, msg)
}
