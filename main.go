// Package main is the entry point for the spm-outdated CLI application.
//
// spm-outdated reports Swift Package Manager dependencies whose repositories
// publish newer versions than the ones pinned in Package.resolved.
package main

import "github.com/ajxudir/spmoutdated/cmd"

// main delegates all command parsing and execution to the cmd package.
func main() {
	cmd.Execute()
}
