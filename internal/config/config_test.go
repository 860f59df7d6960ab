package config_test

import (
	"math/big"
	"os"
	"path/filepath"
	"time"

	"crowdbridge/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	env := map[string]string{
		"API_PORT":          "8080",
		"LEDGER_RPC_URL":    "http://localhost:8545",
		"SIGNER_URL":        "http://localhost:8550",
		"CONTRACT_ADDRESS":  "0x00000000000000000000000000000000000b1d9e",
		"DB_CONNECTION_URL": "postgres://bridge@localhost/bridge",
		"REDIS_ADDR":        "localhost:6379",
		"JWT_SECRET":        "secret",
	}

	BeforeEach(func() {
		for key, value := range env {
			Expect(os.Setenv(key, value)).To(Succeed())
			DeferCleanup(os.Unsetenv, key)
		}
		Expect(os.Unsetenv("CONFIG_FILE")).To(Succeed())
	})

	It("reads the environment and keeps default tunables", func() {
		app, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Port).To(Equal("8080"))
		Expect(app.SignerURL).To(Equal("http://localhost:8550"))
		Expect(app.RedisAddr).To(Equal("localhost:6379"))
		Expect(app.Tunables).To(Equal(config.DefaultTunables()))
	})

	It("fails when a required variable is missing", func() {
		Expect(os.Unsetenv("SIGNER_URL")).To(Succeed())

		_, err := config.NewApp()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("SIGNER_URL"))
	})

	When("a config file is given", func() {
		var path string

		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "config.yaml")
			Expect(os.Setenv("CONFIG_FILE", path)).To(Succeed())
			DeferCleanup(os.Unsetenv, "CONFIG_FILE")
		})

		It("overrides only the keys it sets", func() {
			Expect(os.WriteFile(path, []byte("poll_attempts: 5\npoll_interval: 250ms\n"), 0o600)).To(Succeed())

			app, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Tunables.PollAttempts).To(Equal(5))
			Expect(app.Tunables.PollInterval).To(Equal(250 * time.Millisecond))
			Expect(app.Tunables.TxTimeoutSeconds).To(Equal(300))
		})

		It("rejects unknown keys", func() {
			Expect(os.WriteFile(path, []byte("poll_atempts: 5\n"), 0o600)).To(Succeed())

			_, err := config.NewApp()
			Expect(err).To(HaveOccurred())
		})

		It("rejects non-positive values", func() {
			Expect(os.WriteFile(path, []byte("poll_attempts: 0\n"), 0o600)).To(Succeed())

			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("poll_attempts")))
		})

		It("fails when the file is missing", func() {
			_, err := config.NewApp()
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("Tunables", func() {
	It("converts into bridge settings", func() {
		settings := config.DefaultTunables().Settings()
		Expect(settings.Fee.BaseFee).To(Equal(big.NewInt(1_000_000_000)))
		Expect(settings.TxTimeout).To(Equal(300 * time.Second))
		Expect(settings.PollInterval).To(Equal(time.Second))
		Expect(settings.MaxPollAttempts).To(Equal(20))
		Expect(settings.DefaultProjectID).To(Equal(uint32(1)))
	})

	It("gives requests time to sign and confirm", func() {
		tunables := config.DefaultTunables()
		Expect(tunables.ResponseTimeout()).To(Equal(350 * time.Second))

		tunables.TxTimeoutSeconds = 600
		tunables.PollAttempts = 30
		Expect(tunables.ResponseTimeout()).To(Equal(660 * time.Second))
		Expect(tunables.ResponseTimeout()).To(BeNumerically(">", tunables.Settings().TxTimeout))
	})
})
