// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/tooltree/cmd/tooltree"

func main() {
	cmd.Execute()
}
