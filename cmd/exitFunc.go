package cmd

import "os"

// exitFunc is os.Exit outside tests.
var exitFunc = os.Exit
