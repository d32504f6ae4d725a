package gateway

import (
	"io"

	"dario.cat/mergo"
	"github.com/diwise/adwords/pkg/adwords/soap"
	yaml "gopkg.in/yaml.v2"
)

type Account struct {
	CustomerID     string `yaml:"customerId"`
	Name           string `yaml:"name"`
	DeveloperToken string `yaml:"developerToken"`
}

type Config struct {
	Endpoint       string    `yaml:"endpoint"`
	ReportEndpoint string    `yaml:"reportEndpoint"`
	Version        string    `yaml:"version"`
	DeveloperToken string    `yaml:"developerToken"`
	UserAgent      string    `yaml:"userAgent"`
	PartialFailure bool      `yaml:"partialFailure"`
	StrictFields   bool      `yaml:"strictFields"`
	Verbose        bool      `yaml:"verbose"`
	Accounts       []Account `yaml:"accounts"`
}

var configDefaults = Config{
	Endpoint:  soap.DefaultEndpoint,
	Version:   soap.DefaultVersion,
	UserAgent: "diwise/adwords-gateway",
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, err
	}

	err = mergo.Merge(cfg, configDefaults)

	return cfg, err
}

// DeveloperTokenFor returns the account's own developer token, if any, or the shared one.
func (c *Config) DeveloperTokenFor(a Account) string {
	if a.DeveloperToken != "" {
		return a.DeveloperToken
	}
	return c.DeveloperToken
}
