// Command oasroot prints an OpenAPI 3.0 root document assembled from flags
// and an optional project manifest.
//
//	oasroot --manifest package.json --server https://api.example.com --license MIT
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
