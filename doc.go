/*
Package atlasc builds a texture atlas from a set of sprite images.

Given a list of RGBA input images, it trims each sprite to its opaque
silhouette, optionally derives a simplified triangle mesh covering that
silhouette, packs every sprite into a single sheet and emits both the
packed PNG and a JSON manifest describing where each sprite (and its
mesh, if any) landed on the sheet.

The package provides a command line interface. To check the supported
flags type:

	$ atlasc --help

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/atlasc"
	)

	func main() {
		b := &atlasc.Builder{
			Inputs:    []string{"hero.png", "coin.png"},
			MaxWidth:  2048,
			MaxHeight: 2048,
		}

		if _, err := b.Build(); err != nil {
			fmt.Printf("Error building atlas: %s", err.Error())
		}
	}
*/
package atlasc
