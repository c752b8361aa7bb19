// Command transit drives the native transit module from the shell: it sends payload
// files, lists metrics and runs the transport until interrupted.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newApp(openNative).rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
