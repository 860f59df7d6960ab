package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey         = "API_PORT"
	ledgerRPCEnvKey       = "LEDGER_RPC_URL"
	signerURLEnvKey       = "SIGNER_URL"
	contractAddressEnvKey = "CONTRACT_ADDRESS"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	redisAddrEnvKey       = "REDIS_ADDR"
	jwtSecretEnvKey       = "JWT_SECRET"
	configFileEnvKey      = "CONFIG_FILE"
)

type App struct {
	Port            string
	LedgerRPCURL    string
	SignerURL       string
	ContractAddress string
	DBConnectionURL string
	RedisAddr       string
	JWTSecret       string
	Tunables        Tunables
}

func NewApp() (App, error) {
	var app App

	required := []struct {
		key   string
		value *string
	}{
		{apiPortEnvKey, &app.Port},
		{ledgerRPCEnvKey, &app.LedgerRPCURL},
		{signerURLEnvKey, &app.SignerURL},
		{contractAddressEnvKey, &app.ContractAddress},
		{dbConnEnvKey, &app.DBConnectionURL},
		{redisAddrEnvKey, &app.RedisAddr},
		{jwtSecretEnvKey, &app.JWTSecret},
	}
	for _, r := range required {
		value, ok := os.LookupEnv(r.key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, r.key)
		}
		*r.value = value
	}

	app.Tunables = DefaultTunables()
	if path, ok := os.LookupEnv(configFileEnvKey); ok && path != "" {
		tunables, err := LoadTunables(path)
		if err != nil {
			return App{}, err
		}
		app.Tunables = tunables
	}

	return app, nil
}
