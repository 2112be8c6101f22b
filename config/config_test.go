package config_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/mpenning/wordspam/config"
	"github.com/mpenning/wordspam/mocks"
	"github.com/mpenning/wordspam/randomizer"
	"github.com/spf13/afero"
)

const (
	configPath = "./test_config.yml"
	testConfig = `---
wordlists:
- name: Rhymes
  words:
  - fish
  - dish
  - wish
  authenticate: true
- name: Yells
  words:
  - gah
  - bah
  authenticate: false
`
)

var _ = Describe("Config", func() {
	var (
		env          *mocks.Env
		fileSystem   *afero.Afero
		wordlistMap  map[string]Wordlist
		spamUsername string
		spamPassword string
	)

	BeforeEach(func() {
		spamUsername = "spamUsername-" + randomizer.StringRunes(10)
		spamPassword = "spamPassword-" + randomizer.StringRunes(10)

		env = &mocks.Env{}

		wordlistMap = map[string]Wordlist{
			"rhymes": Wordlist{
				Name:         "Rhymes",
				Words:        []string{"fish", "dish", "wish"},
				Authenticate: true,
			},
			"yells": Wordlist{
				Name:         "Yells",
				Words:        []string{"gah", "bah"},
				Authenticate: false,
			},
		}

		fileSystem = &afero.Afero{Fs: afero.NewMemMapFs()}
		Expect(fileSystem.WriteFile(configPath, []byte(testConfig), 0644)).To(Succeed())
	})

	Context("when all environment variables are present", func() {
		JustBeforeEach(func() {
			env.On("Get", "WORDSPAM_USERNAME").Return(spamUsername)
			env.On("Get", "WORDSPAM_PASSWORD").Return(spamPassword)
			env.On("Get", "PORT").Return("")
		})

		It("returns a valid Config", func() {
			config, err := Custom(env.Get, configPath, fileSystem)
			Expect(err).ToNot(HaveOccurred())

			Expect(config.Username).To(Equal(spamUsername))
			Expect(config.Password).To(Equal(spamPassword))
			Expect(config.Wordlists).To(Equal(wordlistMap))
			Expect(config.Port).To(Equal(8080))
		})

		Context("when PORT is in the environment", func() {
			BeforeEach(func() {
				env = &mocks.Env{}
				env.On("Get", "WORDSPAM_USERNAME").Return(spamUsername)
				env.On("Get", "WORDSPAM_PASSWORD").Return(spamPassword)
				env.On("Get", "PORT").Return("42")
			})

			It("uses the port from the environment", func() {
				config, err := Custom(env.Get, configPath, fileSystem)
				Expect(err).ToNot(HaveOccurred())
				Expect(config.Port).To(Equal(42))
			})
		})

		Context("when PORT cannot be parsed", func() {
			BeforeEach(func() {
				env = &mocks.Env{}
				env.On("Get", "WORDSPAM_USERNAME").Return(spamUsername)
				env.On("Get", "WORDSPAM_PASSWORD").Return(spamPassword)
				env.On("Get", "PORT").Return("horse")
			})

			It("returns an error", func() {
				_, err := Custom(env.Get, configPath, fileSystem)
				Expect(err).To(MatchError(ContainSubstring("cannot parse $PORT")))
			})
		})

		It("returns Default config without reading any file", func() {
			config, err := Default(env.Get)
			Expect(err).ToNot(HaveOccurred())
			Expect(config.Wordlists).To(BeEmpty())
			Expect(config.Port).To(Equal(8080))
		})

		Context("when the wordlist file does not exist", func() {
			It("returns an error", func() {
				_, err := Custom(env.Get, "./nope.yml", fileSystem)
				Expect(err).To(MatchError(ContainSubstring("cannot read wordlist yaml file")))
			})
		})

		Context("when the wordlist file is not valid yaml", func() {
			It("returns an error", func() {
				Expect(fileSystem.WriteFile(configPath, []byte("[:horse"), 0644)).To(Succeed())

				_, err := Custom(env.Get, configPath, fileSystem)
				Expect(err).To(MatchError(ContainSubstring("cannot parse wordlist yaml file")))
			})
		})

		Context("when a wordlist has no words", func() {
			It("returns an error naming the wordlist", func() {
				emptyList := `---
wordlists:
- name: Hollow
  words: []
`
				Expect(fileSystem.WriteFile(configPath, []byte(emptyList), 0644)).To(Succeed())

				_, err := Custom(env.Get, configPath, fileSystem)
				Expect(err).To(MatchError(ContainSubstring("wordlist must contain at least one word: Hollow")))
			})
		})
	})

	Context("when environment variables are missing", func() {
		It("returns an error listing the missing variables", func() {
			env.On("Get", "WORDSPAM_USERNAME").Return("")
			env.On("Get", "WORDSPAM_PASSWORD").Return("")
			env.On("Get", "PORT").Return("")

			_, err := Custom(env.Get, configPath, fileSystem)
			Expect(err).To(MatchError(ContainSubstring("missing environment variables: WORDSPAM_USERNAME, WORDSPAM_PASSWORD")))
		})
	})
})
