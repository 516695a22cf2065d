// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/sl2word/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
