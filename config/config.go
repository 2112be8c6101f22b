// Package config holds all specified configuration information aggregated from across all possible inputs (wordlist yaml file and user-defined environment variables).
package config

import (
	"strconv"
	"strings"

	"github.com/cloudfoundry-incubator/candiedyaml"
	"github.com/go-errors/errors"
	"github.com/mpenning/wordspam/geterrors"
	"github.com/spf13/afero"
)

const (
	cannotParsePort     = "cannot parse $PORT"
	cannotReadYamlFile  = "cannot read wordlist yaml file"
	cannotParseYamlFile = "cannot parse wordlist yaml file"
	wordlistHasNoWords  = "wordlist must contain at least one word"
)

type Config struct {
	Username  string
	Password  string
	Wordlists map[string]Wordlist
	Port      int
}

type Wordlist struct {
	Name         string
	Words        []string `yaml:",flow"`
	Authenticate bool
}

type configYaml struct {
	Wordlists []Wordlist `yaml:",flow"`
}

// Custom returns a new Config struct with information from environment variables and the wordlist file.
func Custom(getenv func(string) string, configFilename string, fileSystem *afero.Afero) (Config, error) {
	cfg, err := Default(getenv)
	if err != nil {
		return Config{}, err
	}

	wordlists, err := getWordlistsFromFile(configFilename, fileSystem)
	if err != nil {
		return Config{}, err
	}

	cfg.Wordlists = wordlists
	return cfg, nil
}

// Default returns a new Config struct with information from environment variables only.
func Default(getenv func(string) string) (Config, error) {
	getter := geterrors.WrapFunc(getenv)

	username := getter.Get("WORDSPAM_USERNAME")
	password := getter.Get("WORDSPAM_PASSWORD")

	if err := getter.Err("missing environment variables"); err != nil {
		return Config{}, errors.New(err)
	}

	port, err := getPortFromEnv(getenv)
	if err != nil {
		return Config{}, errors.New(err)
	}

	config := Config{
		Username:  username,
		Password:  password,
		Port:      port,
		Wordlists: map[string]Wordlist{},
	}
	return config, nil
}

func getPortFromEnv(getenv func(string) string) (int, error) {
	envPort := getenv("PORT")
	if envPort == "" {
		envPort = "8080"
	}

	port, err := strconv.Atoi(envPort)
	if err != nil {
		return 0, errors.Errorf("%s: %s: %s", cannotParsePort, envPort, err)
	}

	return port, nil
}

func getWordlistsFromFile(configFilename string, fileSystem *afero.Afero) (map[string]Wordlist, error) {
	file, err := fileSystem.ReadFile(configFilename)
	if err != nil {
		return nil, errors.Errorf("%s: %s", cannotReadYamlFile, err)
	}

	parsedConfig := configYaml{}
	if err := candiedyaml.Unmarshal(file, &parsedConfig); err != nil {
		return nil, errors.Errorf("%s: %s", cannotParseYamlFile, err)
	}

	wordlists := map[string]Wordlist{}
	for _, wordlist := range parsedConfig.Wordlists {
		if len(wordlist.Words) == 0 {
			return nil, errors.Errorf("%s: %s", wordlistHasNoWords, wordlist.Name)
		}
		wordlists[strings.ToLower(wordlist.Name)] = wordlist
	}

	return wordlists, nil
}
