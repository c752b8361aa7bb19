package worker

import (
	"errors"
	"log"
	"os"
)

func Run(fail bool) error {
	if fail {
		os.Exit(1) // want `os.Exit terminates the process`
	}
	return nil
}

func Load(path string) {
	if path == "" {
		log.Fatalf("empty path") // want `log.Fatalf terminates the process`
	}
	if path == "-" {
		log.Panicln("stdin") // want `log.Panicln terminates the process`
	}
	log.Printf("loading %s", path)
}

func Check() error {
	exit := os.Exit // referencing is not calling
	_ = exit
	return errors.New("failed")
}
