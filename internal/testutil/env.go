// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"strings"
	"testing"
)

// ConfigEnvPrefix is the prefix of the environment variables that override
// tooltree config keys.
const ConfigEnvPrefix = "TOOLTREE_"

// ConfigEnvName returns the variable overriding a dotted config key:
// "ui.color_scheme" becomes "TOOLTREE_UI_COLOR_SCHEME".
func ConfigEnvName(key string) string {
	return ConfigEnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// SetConfigEnv overrides a config key through the environment until t ends.
func SetConfigEnv(t testing.TB, key, value string) {
	t.Helper()
	t.Setenv(ConfigEnvName(key), value)
}

// UnsetEnv removes key until t ends, then restores its previous value.
func UnsetEnv(t testing.TB, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
}
