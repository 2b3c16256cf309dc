// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the session-scoped sync engine
// into a single process lifecycle: login, vault work, logout, repeat.
package client
