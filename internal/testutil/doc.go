// SPDX-License-Identifier: MPL-2.0

// Package testutil holds test helpers shared across tooltree packages:
// definition tree fixtures (WriteTree), config environment overrides
// (SetConfigEnv, UnsetEnv) and home directory isolation (IsolateHome).
// Every change is undone when the test ends.
package testutil
