package main

import (
	"context"
	"flag"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	configPath

	logFormat
)

func defaultFlags() FlagMap {
	return FlagMap{
		listenAddress: "",
		servicePort:   "8080",
		configPath:    "/opt/diwise/config/adwords.yaml",
		logFormat:     "json",
	}
}

// parseExternalConfig reads settings from the environment and lets command line
// flags override them.
func parseExternalConfig(ctx context.Context, flags FlagMap, args []string) (FlagMap, error) {
	flags[listenAddress] = env.GetVariableOrDefault(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = env.GetVariableOrDefault(ctx, "SERVICE_PORT", flags[servicePort])
	flags[configPath] = env.GetVariableOrDefault(ctx, "ADWORDS_CONFIG_PATH", flags[configPath])
	flags[logFormat] = env.GetVariableOrDefault(ctx, "LOG_FORMAT", flags[logFormat])

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.Func("listen", "address to listen on", apply(listenAddress))
	fs.Func("port", "port to serve the api on", apply(servicePort))
	fs.Func("config", "path to the accounts configuration file", apply(configPath))
	fs.Func("log-format", "log output format (json or text)", apply(logFormat))

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return flags, nil
}
