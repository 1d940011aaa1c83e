// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// IsolateHome makes dir the home directory until t ends and clears
// XDG_CONFIG_HOME, so the user config directory resolves below dir. On
// Windows it sets USERPROFILE, elsewhere HOME.
func IsolateHome(t testing.TB, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", dir)
	} else {
		t.Setenv("HOME", dir)
	}
	UnsetEnv(t, "XDG_CONFIG_HOME")
}
