// Package controller is responsible for handling requests from the Server.
package controller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mpenning/wordspam/config"
	I "github.com/mpenning/wordspam/interfaces"
	S "github.com/mpenning/wordspam/structs"
	"github.com/op/go-logging"
)

const (
	wordlistNotFound     = "wordlist not found"
	cannotParseCount     = "cannot parse count"
	cannotSampleWords    = "cannot sample words"
	sampledEventError    = "an error occurred in the words.sampled event"
	basicAuthNotProvided = "basic auth header not found"
)

// SampledEvent is emitted after every successful sample.
const SampledEvent = "words.sampled"

// Controller resolves a wordlist and passes the requested count to its WordProvider.
type Controller struct {
	Config       config.Config
	Providers    map[string]I.WordProvider
	Log          *logging.Logger
	EventManager I.EventManager
	Randomizer   I.Randomizer
}

type getWordsResponse struct {
	Wordlist string   `json:"wordlist"`
	Count    int      `json:"count"`
	Words    []string `json:"words"`
}

// GetWords samples words from the wordlist named in the request path.
func (c *Controller) GetWords(g *gin.Context) {
	c.Log.Debug("Request originated from: %+v", g.Request.RemoteAddr)

	var (
		wordlistName = strings.ToLower(g.Param("wordlist"))
		requestID    = "words-" + c.Randomizer.StringRunes(10)
	)

	provider, found := c.Providers[wordlistName]
	if !found {
		logError(wordlistNotFound, 404, UnknownWordlistError{Name: wordlistName}, g, c.Log)
		return
	}

	if c.Config.Wordlists[wordlistName].Authenticate {
		username, password, found := g.Request.BasicAuth()
		if !found {
			logError(basicAuthNotProvided, 401, BasicAuthError{}, g, c.Log)
			return
		}
		if username != c.Config.Username || password != c.Config.Password {
			logError(basicAuthNotProvided, 401, BasicAuthError{}, g, c.Log)
			return
		}
	}

	words, err := c.sampleWords(provider, g.Query("count"))
	if err != nil {
		logError(cannotSampleWords, 400, err, g, c.Log)
		return
	}

	c.Log.Debugf("request %s sampled %d words from [%s]", requestID, len(words), wordlistName)

	event := S.Event{
		Type: SampledEvent,
		Data: S.SampleEventData{
			RequestID: requestID,
			Wordlist:  wordlistName,
			Count:     len(words),
			Words:     words,
		},
	}

	if err := c.EventManager.Emit(event); err != nil {
		logError(sampledEventError, 500, err, g, c.Log)
		return
	}

	g.JSON(200, getWordsResponse{
		Wordlist: wordlistName,
		Count:    len(words),
		Words:    words,
	})
}

func (c *Controller) sampleWords(provider I.WordProvider, countParam string) ([]string, error) {
	if countParam == "" {
		return provider.SampleAll(), nil
	}

	count, err := strconv.Atoi(countParam)
	if err != nil {
		return nil, CannotParseCountError{Value: countParam, Err: err}
	}

	return provider.Sample(count)
}

func logError(message string, statusCode int, err error, g *gin.Context, l *logging.Logger) {
	l.Errorf("%s: %s", message, err)
	g.Writer.WriteHeader(statusCode)
	g.Writer.WriteString(message + " - " + err.Error())
	g.Error(err)
}
