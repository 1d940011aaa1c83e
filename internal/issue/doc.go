// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints, and may link an issue page: a Markdown guide rendered
// with glamour when the CLI reports a known class of failure verbosely.
package issue
