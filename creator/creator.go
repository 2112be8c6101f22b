// Package creator creates dependencies upon initialization.
package creator

import (
	"io"
	"log"
	"net"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mpenning/wordspam/config"
	"github.com/mpenning/wordspam/controller"
	"github.com/mpenning/wordspam/eventmanager"
	"github.com/mpenning/wordspam/eventmanager/handlers/tally"
	I "github.com/mpenning/wordspam/interfaces"
	"github.com/mpenning/wordspam/logger"
	"github.com/mpenning/wordspam/randomizer"
	"github.com/mpenning/wordspam/words"
	"github.com/op/go-logging"
	"github.com/spf13/afero"
)

// ENDPOINT is used by the handler to define the word sampling endpoint.
const ENDPOINT = "/v1/words/:wordlist"

// Creator has a config, eventManager, logger and writer for creating dependencies.
type Creator struct {
	config       config.Config
	eventManager I.EventManager
	logger       *logging.Logger
	writer       io.Writer
	fileSystem   *afero.Afero
}

// Default returns a default Creator and an Error.
func Default() (Creator, error) {
	cfg, err := config.Default(os.Getenv)
	if err != nil {
		return Creator{}, err
	}
	return createCreator(logging.DEBUG, cfg)
}

// Custom returns a custom Creator with an Error.
func Custom(level string, configFilename string) (Creator, error) {
	l, err := getLevel(level)
	if err != nil {
		return Creator{}, err
	}

	fileSystem := &afero.Afero{Fs: afero.NewOsFs()}
	cfg, err := config.Custom(os.Getenv, configFilename, fileSystem)
	if err != nil {
		return Creator{}, err
	}
	return createCreator(l, cfg)
}

// CreateControllerHandler returns a gin.Engine that implements http.Handler.
// Sets up the controller endpoint.
func (c Creator) CreateControllerHandler(wordsController I.Controller) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithWriter(c.createWriter()))
	r.Use(gin.ErrorLogger())

	r.GET(ENDPOINT, wordsController.GetWords)

	return r
}

// CreateController returns a Controller wired with every wordlist provider.
func (c Creator) CreateController() (I.Controller, error) {
	providers, err := c.CreateWordProviders()
	if err != nil {
		return nil, err
	}

	return &controller.Controller{
		Config:       c.config,
		Providers:    providers,
		Log:          c.logger,
		EventManager: c.eventManager,
		Randomizer:   c.CreateRandomizer(),
	}, nil
}

// CreateWordProviders returns a provider per configured wordlist plus the default list.
func (c Creator) CreateWordProviders() (map[string]I.WordProvider, error) {
	sampler := randomizer.Randomizer{}

	providers := map[string]I.WordProvider{
		"default": words.NewProvider(sampler),
	}

	for name, wordlist := range c.config.Wordlists {
		provider, err := words.NewCustomProvider(wordlist.Words, sampler)
		if err != nil {
			return nil, err
		}
		providers[name] = provider
	}

	return providers, nil
}

// CreateListener creates a listener TCP and listens for all incoming requests.
func (c Creator) CreateListener() net.Listener {
	ls, err := net.ListenTCP("tcp", &net.TCPAddr{
		IP:   net.IPv4(0, 0, 0, 0),
		Port: c.config.Port,
		Zone: "",
	})
	if err != nil {
		log.Fatal(err)
	}
	return ls
}

// CreateRandomizer returns a Randomizer.
func (c Creator) CreateRandomizer() I.Randomizer {
	return randomizer.Randomizer{}
}

// CreateTallyHandler returns a handler that counts served words.
func (c Creator) CreateTallyHandler() *tally.Tally {
	return tally.NewTally(c.logger)
}

// CreateLogger returns a Logger.
func (c Creator) CreateLogger() *logging.Logger {
	return c.logger
}

// CreateConfig returns a Config.
func (c Creator) CreateConfig() config.Config {
	return c.config
}

// CreateEventManager returns an EventManager.
func (c Creator) CreateEventManager() I.EventManager {
	return c.eventManager
}

// CreateFileSystem returns a file system.
func (c Creator) CreateFileSystem() *afero.Afero {
	return c.fileSystem
}

func (c Creator) createWriter() io.Writer {
	return c.writer
}

func createCreator(l logging.Level, cfg config.Config) (Creator, error) {
	log := logger.DefaultLogger(os.Stdout, l, "wordspam")

	return Creator{
		config:       cfg,
		eventManager: eventmanager.NewEventManager(log),
		logger:       log,
		writer:       os.Stdout,
		fileSystem:   &afero.Afero{Fs: afero.NewOsFs()},
	}, nil
}

func getLevel(level string) (logging.Level, error) {
	if level == "" {
		return logging.DEBUG, nil
	}
	return logging.LogLevel(level)
}
