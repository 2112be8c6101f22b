package main_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path"

	"github.com/mpenning/wordspam/randomizer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var goodConfig = []byte(`---
wordlists:
  - name: rhymes
    authenticate: false
    words:
    - fish
    - dish
`)

var _ = Describe("Server", func() {

	var (
		session *gexec.Session
		err     error
	)

	BeforeEach(func() {
		Expect(os.Setenv("WORDSPAM_USERNAME", "username-"+randomizer.StringRunes(10))).To(Succeed())
		Expect(os.Setenv("WORDSPAM_PASSWORD", "password-"+randomizer.StringRunes(10))).To(Succeed())
		Expect(os.Setenv("PORT", "0")).To(Succeed())
	})

	AfterEach(func() {
		session.Terminate()
		os.Unsetenv("WORDSPAM_USERNAME")
		os.Unsetenv("WORDSPAM_PASSWORD")
		os.Unsetenv("PORT")
	})

	It("uses the default log level when a log level is not specified", func() {
		configLocation := fmt.Sprintf("%s/config.yml", path.Dir(pathToCLI))

		Expect(ioutil.WriteFile(configLocation, goodConfig, 0777)).To(Succeed())

		level := os.Getenv("WORDSPAM_LOGLEVEL")
		os.Unsetenv("WORDSPAM_LOGLEVEL")

		session, err = gexec.Start(exec.Command(pathToCLI, "-config", configLocation), GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())

		Eventually(session.Out).Should(gbytes.Say("log level"))
		Eventually(session.Out).Should(gbytes.Say("DEBUG"))

		os.Setenv("WORDSPAM_LOGLEVEL", level)
	})

	It("throws an error when log level is invalid", func() {
		level := os.Getenv("WORDSPAM_LOGLEVEL")
		err = os.Setenv("WORDSPAM_LOGLEVEL", "tanystropheus")
		Expect(err).ToNot(HaveOccurred())

		session, err = gexec.Start(exec.Command(pathToCLI), GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())

		Eventually(session.Err).Should(gbytes.Say("invalid log level"))

		os.Setenv("WORDSPAM_LOGLEVEL", level)
	})

	It("throws an error when an invalid config path is specified", func() {
		session, err = gexec.Start(exec.Command(pathToCLI, "-config", "./gorgosaurus.yml"), GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())

		Eventually(session.Err).Should(gbytes.Say("cannot read wordlist yaml file"))
	})

	It("throws an error when required environment variables are missing", func() {
		configLocation := fmt.Sprintf("%s/config.yml", path.Dir(pathToCLI))

		Expect(ioutil.WriteFile(configLocation, goodConfig, 0777)).To(Succeed())
		Expect(os.Unsetenv("WORDSPAM_USERNAME")).To(Succeed())

		session, err = gexec.Start(exec.Command(pathToCLI, "-config", configLocation), GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())

		Eventually(session.Err).Should(gbytes.Say("missing environment variables: WORDSPAM_USERNAME"))
	})
})
