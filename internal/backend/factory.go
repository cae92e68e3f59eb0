// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"eventhub/cli/internal/api"
)

// New creates a backend API implementation over the given facade client.
func New(client *api.Client) API {
	return &HTTP{client: client}
}
