package main

import (
	"log"
	"os"
)

func run() error { return nil }

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}
