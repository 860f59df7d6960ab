package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"crowdbridge/internal/core"

	"gopkg.in/yaml.v2"
)

// Tunables are the optional knobs read from CONFIG_FILE. Keys missing from
// the file keep their defaults.
type Tunables struct {
	BaseFeeWei       uint64        `yaml:"base_fee_wei"`
	TxTimeoutSeconds int           `yaml:"tx_timeout_seconds"`
	PollInterval     time.Duration `yaml:"poll_interval"`
	PollAttempts     int           `yaml:"poll_attempts"`
	DefaultProjectID uint32        `yaml:"default_project_id"`
	LedgerRPS        float64       `yaml:"ledger_rps"`
	LedgerBurst      int           `yaml:"ledger_burst"`
	ProjectionTTL    time.Duration `yaml:"projection_ttl"`
	SessionHours     int           `yaml:"session_hours"`
}

func DefaultTunables() Tunables {
	return Tunables{
		BaseFeeWei:       1_000_000_000,
		TxTimeoutSeconds: 300,
		PollInterval:     time.Second,
		PollAttempts:     20,
		DefaultProjectID: 1,
		LedgerRPS:        10,
		LedgerBurst:      20,
		ProjectionTTL:    10 * time.Minute,
		SessionHours:     24,
	}
}

func LoadTunables(path string) (Tunables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, fmt.Errorf("read config file: %w", err)
	}

	tunables := DefaultTunables()
	if err := yaml.UnmarshalStrict(raw, &tunables); err != nil {
		return Tunables{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := tunables.validate(); err != nil {
		return Tunables{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return tunables, nil
}

func (t Tunables) validate() error {
	switch {
	case t.BaseFeeWei == 0:
		return errors.New("base_fee_wei must be positive")
	case t.TxTimeoutSeconds <= 0:
		return errors.New("tx_timeout_seconds must be positive")
	case t.PollInterval <= 0:
		return errors.New("poll_interval must be positive")
	case t.PollAttempts <= 0:
		return errors.New("poll_attempts must be positive")
	case t.DefaultProjectID == 0:
		return errors.New("default_project_id starts at 1")
	case t.LedgerRPS <= 0 || t.LedgerBurst <= 0:
		return errors.New("ledger_rps and ledger_burst must be positive")
	case t.ProjectionTTL <= 0:
		return errors.New("projection_ttl must be positive")
	case t.SessionHours <= 0:
		return errors.New("session_hours must be positive")
	}
	return nil
}

// responseSlack covers simulation, the signing prompt round trip and persistence
// on top of the envelope lifetime and the polling budget.
const responseSlack = 30 * time.Second

// ResponseTimeout is how long a mutating request may take to answer: the
// user can sign until the envelope expires and confirmation is then polled.
func (t Tunables) ResponseTimeout() time.Duration {
	return time.Duration(t.TxTimeoutSeconds)*time.Second +
		time.Duration(t.PollAttempts)*t.PollInterval +
		responseSlack
}

// Settings converts the tunables into the bridge's runtime settings.
func (t Tunables) Settings() core.Settings {
	return core.Settings{
		Fee:              core.FeePolicy{BaseFee: new(big.Int).SetUint64(t.BaseFeeWei)},
		TxTimeout:        time.Duration(t.TxTimeoutSeconds) * time.Second,
		PollInterval:     t.PollInterval,
		MaxPollAttempts:  t.PollAttempts,
		DefaultProjectID: t.DefaultProjectID,
		SessionHours:     t.SessionHours,
	}
}
