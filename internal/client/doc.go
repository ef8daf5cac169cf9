// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the tray client application runtime.
//
// It wires configuration, logging, the roster store, the remote adapter,
// the services, the presenter and the terminal tray into a single process
// lifecycle, and runs the background poll job until shutdown.
package client
