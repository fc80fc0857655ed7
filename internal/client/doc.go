// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive terminal application runtime.
//
// It wires the terminal UI and the in-process services into a single
// process lifecycle.
package client
