// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Rankscope using Cobra.
// It wires configuration, logging and the dataset source, and delegates the
// analyses to `core`. CLI code should remain thin.
package cli
