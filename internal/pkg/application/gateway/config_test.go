package gateway

import (
	"bytes"
	"testing"

	"github.com/diwise/adwords/pkg/adwords/soap"
	"github.com/matryer/is"
)

func TestLoadConfig(t *testing.T) {
	is, config := setupConfigTest(t)

	is.Equal(len(config.Accounts), 2) // should have two accounts
	is.True(config.PartialFailure)
}

func TestLoadAccount(t *testing.T) {
	is, config := setupConfigTest(t)
	account := config.Accounts[0]

	is.Equal(account.CustomerID, "123-456-7890")
	is.Equal(account.Name, "Kommunen")
}

func TestDefaultsAreApplied(t *testing.T) {
	is, config := setupConfigTest(t)

	is.Equal(config.Endpoint, soap.DefaultEndpoint)
	is.Equal(config.Version, "v201809")
	is.Equal(config.UserAgent, "kommunen")
}

func TestDeveloperTokenFor(t *testing.T) {
	is, config := setupConfigTest(t)

	is.Equal(config.DeveloperTokenFor(config.Accounts[0]), "shared-token")
	is.Equal(config.DeveloperTokenFor(config.Accounts[1]), "own-token")
}

func setupConfigTest(t *testing.T) (*is.I, *Config) {
	is := is.New(t)
	cfgData := bytes.NewBuffer([]byte(configFile))
	config, err := LoadConfiguration(cfgData)
	is.NoErr(err)

	return is, config
}

var configFile string = `
developerToken: shared-token
userAgent: kommunen
partialFailure: true
accounts:
  - customerId: 123-456-7890
    name: Kommunen
  - customerId: 098-765-4321
    name: Bolaget
    developerToken: own-token
`
