package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/mpenning/wordspam/controller"
	"github.com/mpenning/wordspam/creator"
	"github.com/mpenning/wordspam/logger"
	"github.com/op/go-logging"
)

const (
	defaultConfig = "./config.yml"
	defaultLevel  = "DEBUG"
)

func main() {
	config := flag.String("config", defaultConfig, "location of the wordlist config file")
	tallyEnabled := flag.Bool("enable-tally", false, "count words served per wordlist (default: false)")
	flag.Parse()

	level := os.Getenv("WORDSPAM_LOGLEVEL")
	if level == "" {
		level = defaultLevel
	}

	logLevel, err := logging.LogLevel(level)
	if err != nil {
		log.Fatal(err)
	}

	log := logger.DefaultLogger(os.Stdout, logLevel, "wordspam")
	log.Infof("log level : %s", level)

	c, err := creator.Custom(level, *config)
	if err != nil {
		log.Fatal(err)
	}

	em := c.CreateEventManager()

	if *tallyEnabled {
		em.AddHandler(c.CreateTallyHandler(), controller.SampledEvent)
	}

	wordsController, err := c.CreateController()
	if err != nil {
		log.Fatal(err)
	}

	l := c.CreateListener()
	handler := c.CreateControllerHandler(wordsController)

	log.Infof("Listening on Port %d", c.CreateConfig().Port)

	err = http.Serve(l, handler)
	if err != nil {
		log.Fatal(err)
	}
}
