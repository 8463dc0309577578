// SPDX-License-Identifier: MPL-2.0

// Command vaultstock tracks a personal inventory as markdown files with
// frontmatter inside a note vault.
package main

import "vaultstock/internal/cli"

func main() {
	cli.Execute()
}
