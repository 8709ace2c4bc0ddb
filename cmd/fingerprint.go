package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/chaotic-gateway/internal/apperrors"
	"github.com/temirov/chaotic-gateway/internal/fingerprint"
	"github.com/temirov/chaotic-gateway/internal/metadata"
)

const stdinFileName = "-"

var (
	errMissingMetadata    = fmt.Errorf("%w: provide --%s or --%s", apperrors.ErrInvalidInput, flagMetadata, flagMetadataFile)
	errConflictingSources = fmt.Errorf("%w: --%s and --%s are mutually exclusive", apperrors.ErrInvalidInput, flagMetadata, flagMetadataFile)
	errMissingSeedSecret  = fmt.Errorf("%w: provide --%s (env: %s)", apperrors.ErrInvalidInput, flagSeedSecret, envSeedSecret)
)

// derivationInputs carries the flag values shared by the fingerprint and trace commands.
type derivationInputs struct {
	metadataDocument string
	metadataFile     string
	seedSecret       string
}

func (inputs *derivationInputs) register(command *cobra.Command) {
	command.Flags().StringVar(&inputs.metadataDocument, flagMetadata, "", "metadata JSON document")
	command.Flags().StringVar(&inputs.metadataFile, flagMetadataFile, "", "path to a metadata JSON document, - for stdin")
	command.Flags().StringVar(&inputs.seedSecret, flagSeedSecret, "", "hex seed secret (env: "+envSeedSecret+" or "+envGatewaySecret+")")
}

// resolve returns the canonical metadata bytes and the decoded seed secret,
// falling back to the environment for the secret.
func (inputs *derivationInputs) resolve(command *cobra.Command) ([]byte, []byte, error) {
	populateStringConfiguration(command, flagSeedSecret, keySeedSecret, &inputs.seedSecret, "", trimSpacesAndQuotes)
	seedSecret, decodeError := fingerprint.DecodeSeedSecret(inputs.seedSecret)
	if decodeError != nil {
		return nil, nil, decodeError
	}
	if len(seedSecret) == 0 {
		return nil, nil, errMissingSeedSecret
	}

	var document []byte
	switch {
	case inputs.metadataDocument != "" && inputs.metadataFile != "":
		return nil, nil, errConflictingSources
	case inputs.metadataDocument != "":
		document = []byte(inputs.metadataDocument)
	case inputs.metadataFile == stdinFileName:
		stdinBytes, readError := io.ReadAll(command.InOrStdin())
		if readError != nil {
			return nil, nil, readError
		}
		document = stdinBytes
	case inputs.metadataFile != "":
		fileBytes, readError := os.ReadFile(inputs.metadataFile)
		if readError != nil {
			return nil, nil, readError
		}
		document = fileBytes
	default:
		return nil, nil, errMissingMetadata
	}

	metadataValue, parseError := metadata.Parse(document)
	if parseError != nil {
		return nil, nil, parseError
	}
	canonicalMetadata, canonicalError := metadata.Canonical(metadataValue)
	if canonicalError != nil {
		return nil, nil, canonicalError
	}
	return canonicalMetadata, seedSecret, nil
}

func newFingerprintCommand() *cobra.Command {
	var inputs derivationInputs
	command := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of a metadata document",
		Example: `chaotic-gateway fingerprint --metadata '{"txID":"tx1","amount":5}' --seed_secret 0x00
echo '{"txID":"tx1"}' | SEED_SECRET=00ff chaotic-gateway fingerprint --metadata_file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			canonicalMetadata, seedSecret, resolveError := inputs.resolve(cmd)
			if resolveError != nil {
				return resolveError
			}
			_, writeError := fmt.Fprintln(cmd.OutOrStdout(), fingerprint.Derive(canonicalMetadata, seedSecret))
			return writeError
		},
	}
	inputs.register(command)
	return command
}

func newTraceCommand() *cobra.Command {
	var inputs derivationInputs
	command := &cobra.Command{
		Use:   "trace",
		Short: "Show every intermediate value of a fingerprint derivation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			canonicalMetadata, seedSecret, resolveError := inputs.resolve(cmd)
			if resolveError != nil {
				return resolveError
			}
			trace := fingerprint.Explain(canonicalMetadata, seedSecret)
			_, writeError := io.WriteString(cmd.OutOrStdout(), renderTrace(trace))
			return writeError
		},
	}
	inputs.register(command)
	return command
}
