package main

import (
	"os"

	"github.com/osuushi/polyoverlap/internal/cli"
)

// Input on stdin should be two lines, each a polygon given as comma separated
// "x y" integer pairs, for example:
//
//	0 0,0 4,4 4,4 0
//	1 1,1 2,2 2,2 1
//
// Prints OK if the polygons overlap and NOK otherwise. Polygons must be simple
// and convex, in either winding order.
func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
