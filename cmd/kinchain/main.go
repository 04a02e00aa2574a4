// Package main is the kinchain command line tool: it loads a kinematic description and prints frames,
// collision geometries and joint space sweeps.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
