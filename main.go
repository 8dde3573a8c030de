package main

import (
	"log"
	"os"

	"git.lost.host/meutraa/drumcity/internal/config"
	"git.lost.host/meutraa/drumcity/internal/logging"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	logger, f, err := logging.Init(*config.LogFile, config.LogLevel())
	if nil != err {
		return err
	}
	defer func() {
		// The terminal is back to normal, errors go to stderr again
		log.SetOutput(os.Stderr)
		f.Close()
	}()

	p := &Program{Log: logger}
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Deinit()

	return p.Run()
}
