// Package cmd implements the command-line interface for chaotic-gateway.
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/temirov/chaotic-gateway/internal/apperrors"
	"github.com/temirov/chaotic-gateway/internal/gateway"
	"github.com/temirov/chaotic-gateway/internal/logging"
	"github.com/temirov/chaotic-gateway/internal/utils"
)

const (
	envPrefix = "chaotic"

	keyServiceSecret     = "service_secret"
	keyGatewaySecret     = "gateway_secret"
	keyGatewayPrivateKey = "gateway_private_key"
	keyLogLevel          = "log_level"
	keyPort              = "port"
	keySeedSecret        = "seed_secret"

	flagServiceSecret     = keyServiceSecret
	flagGatewaySecret     = keyGatewaySecret
	flagGatewayPrivateKey = keyGatewayPrivateKey
	flagLogLevel          = keyLogLevel
	flagPort              = keyPort
	flagSeedSecret        = keySeedSecret
	flagMetadata          = "metadata"
	flagMetadataFile      = "metadata_file"

	envServiceSecret     = "SERVICE_SECRET"
	envGatewaySecret     = "GATEWAY_SECRET"
	envGatewayPrivateKey = "GATEWAY_PRIVATE_KEY"
	envLogLevel          = "LOG_LEVEL"
	envPort              = "HTTP_PORT"
	envPortLegacy        = "PORT"
	envSeedSecret        = "SEED_SECRET"

	quoteCharacters = "\"'"
)

var config gateway.Configuration

// Execute runs the command-line interface.
func Execute() {
	rootCmd.SilenceUsage = false
	rootCmd.SilenceErrors = false
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chaotic-gateway",
	Short: "HTTP gateway that fingerprints and anchors transaction metadata",
	Long:  "Serves POST /fingerprint and POST /submit?key=SECRET, deriving chaotic fingerprints and ledger anchors.",
	Example: `chaotic-gateway --service_secret=mysecret --gateway_secret=0x00ff --log_level=debug
SERVICE_SECRET=mysecret GATEWAY_SECRET=0x00ff HTTP_PORT=3000 chaotic-gateway`,
	RunE: func(cmd *cobra.Command, args []string) error {
		populateStringConfiguration(cmd, flagServiceSecret, keyServiceSecret, &config.ServiceSecret, "", trimSpacesAndQuotes)
		populateStringConfiguration(cmd, flagGatewaySecret, keyGatewaySecret, &config.GatewaySecret, "", trimSpacesAndQuotes)
		populateStringConfiguration(cmd, flagGatewayPrivateKey, keyGatewayPrivateKey, &config.GatewayPrivateKey, "", trimSpacesAndQuotes)
		populateStringConfiguration(cmd, flagLogLevel, keyLogLevel, &config.LogLevel, logging.LevelInfo, strings.ToLower)
		populateIntConfiguration(cmd, flagPort, keyPort, &config.Port, gateway.DefaultPort)

		logger, loggerError := logging.NewLogger(config.LogLevel)
		if loggerError != nil {
			return loggerError
		}
		defer func() { _ = logger.Sync() }()
		sugar := logger.Sugar()

		if utils.IsBlank(config.ServiceSecret) {
			sugar.Error("SERVICE_SECRET is empty; refusing to start")
			return apperrors.ErrMissingServiceSecret
		}
		if utils.IsBlank(config.GatewaySecret) {
			sugar.Error("GATEWAY_SECRET is empty; refusing to start")
			return apperrors.ErrMissingGatewaySecret
		}

		sugar.Infow("starting gateway",
			"port", config.Port,
			"log_level", config.LogLevel,
			"signing_enabled", !utils.IsBlank(config.GatewayPrivateKey),
		)
		return gateway.Serve(config, sugar)
	},
}

// bindOrDie wraps viper bindings and returns a combined error if any bind fails.
func bindOrDie() error {
	bindings := []struct {
		key  string
		envs []string
	}{
		{keyServiceSecret, []string{envServiceSecret}},
		{keyGatewaySecret, []string{envGatewaySecret}},
		{keyGatewayPrivateKey, []string{envGatewayPrivateKey}},
		{keyLogLevel, []string{envLogLevel}},
		{keyPort, []string{envPort, envPortLegacy}},
		{keySeedSecret, []string{envSeedSecret, envGatewaySecret}},
	}
	var errs []string
	for _, binding := range bindings {
		arguments := append([]string{binding.key}, binding.envs...)
		if err := viper.BindEnv(arguments...); err != nil {
			errs = append(errs, binding.key+":"+err.Error())
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := bindOrDie(); err != nil {
		panic("viper env binding failed: " + err.Error())
	}

	rootCmd.Flags().StringVar(
		&config.ServiceSecret,
		flagServiceSecret,
		"",
		"shared secret for requests (env: "+envServiceSecret+")",
	)
	rootCmd.Flags().StringVar(
		&config.GatewaySecret,
		flagGatewaySecret,
		"",
		"hex seed secret mixed into submitted fingerprints (env: "+envGatewaySecret+")",
	)
	rootCmd.Flags().StringVar(
		&config.GatewayPrivateKey,
		flagGatewayPrivateKey,
		"",
		"optional hex secp256k1 key that signs anchors (env: "+envGatewayPrivateKey+")",
	)
	rootCmd.Flags().IntVar(
		&config.Port,
		flagPort,
		0,
		"TCP port to listen on (env: "+envPort+")",
	)
	rootCmd.Flags().StringVar(
		&config.LogLevel,
		flagLogLevel,
		"",
		"logging level: debug or info (env: "+envLogLevel+")",
	)

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		panic("failed to bind flags: " + err.Error())
	}

	rootCmd.AddCommand(newFingerprintCommand(), newTraceCommand())
}
