// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no listen address, so there is nothing to route for.
// This is treated as a fatal misconfiguration by the serve command.
var errNoHandlersAreCreated = errors.New("no handlers are created")
