// Duotone - accessible light and dark palettes for data visualisation
//
// Duotone generates categorical, sequential and diverging chart palettes
// whose light and dark variants each meet a WCAG contrast level.
package main

import "github.com/jmylchreest/duotone/internal/cli"

func main() {
	cli.Execute()
}
