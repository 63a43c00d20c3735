package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"offer_landing/internal/domain/service/landing"
	"offer_landing/internal/domain/value"
)

//nolint:gochecknoglobals
var (
	dealUUID   string
	internalID string
	dealKey    string
	modeName   string
)

//nolint:gochecknoglobals
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Load a deal the way the landing page does and print what it shows",
	Example: "  offer-landing lookup --deal-uuid 7f1c2b9e-1c2d-4e5f-8a9b-0c1d2e3f4a5b\n" +
		"  offer-landing lookup --internal-id 18236541234\n" +
		"  offer-landing lookup --mode internal_id --key 18236541234",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, mode, err := lookupTarget()
		if err != nil {
			return err
		}

		result, err := getApp().Lookup(cmd.Context(), id, mode)
		if err != nil {
			return fmt.Errorf("lookup: %w", err)
		}

		view := landing.NewView(result.Snapshot.Display)

		contact := view.ContactHandle
		if !view.ContactAvailable {
			contact = "(not available)"
		}

		fmt.Fprintf(cmd.OutOrStdout(), "state:   %s\nprice:   %s\ncontact: %s\naddress: %s\n",
			result.Snapshot.State, view.PriceFormatted, contact, result.Address)

		return nil
	},
}

// lookupTarget resolves the flags into a key and the mode to query it by.
// --mode accepts a mode name or any of its query parameter names.
func lookupTarget() (string, value.LookupMode, error) {
	switch {
	case dealKey != "":
		mode, err := value.ParseLookupMode(modeName)
		if err != nil {
			return "", 0, fmt.Errorf("--mode: %w", err)
		}

		return dealKey, mode, nil
	case internalID != "":
		return internalID, value.ByInternalID, nil
	case dealUUID != "":
		return dealUUID, value.ByExternalID, nil
	default:
		return "", 0, errors.New("one of --deal-uuid, --internal-id or --key is required")
	}
}

func init() { //nolint:gochecknoinits
	lookupCmd.Flags().StringVar(&dealUUID, "deal-uuid", "", "External deal uuid")
	lookupCmd.Flags().StringVar(&internalID, "internal-id", "", "CRM deal id")
	lookupCmd.Flags().StringVar(&dealKey, "key", "", "Deal key, queried by --mode")
	lookupCmd.Flags().StringVar(&modeName, "mode", value.ByExternalID.String(), "Lookup mode for --key")
	lookupCmd.MarkFlagsMutuallyExclusive("deal-uuid", "internal-id", "key")
}
