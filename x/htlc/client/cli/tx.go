// Package cli provides the command line surface for the htlc module.
package cli

import (
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

const flagToken = "token"

// GetTxCmd returns the transaction commands for the htlc module.
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreateSwap(),
		CmdFundSwap(),
		CmdClaimSwap(),
		CmdRefundSwap(),
	)

	return cmd
}

// CmdCreateSwap builds the create-swap command.
func CmdCreateSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-swap [beneficiary] [amount] [denom] [hash-lock-hex] [deadline]",
		Short: "Create the swap, locking terms behind a hash lock and a deadline",
		Long: `Create the swap record. The amount is locked later, via fund-swap for
a native denom or via the token contract when --token is given (the denom
argument is then ignored). The deadline is a unix timestamp in seconds.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			beneficiary, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[1])
			}

			hashLock, err := hex.DecodeString(args[3])
			if err != nil {
				return err
			}

			deadline, err := cast.ToInt64E(args[4])
			if err != nil {
				return err
			}

			asset := types.NativeAsset(args[2])
			if tokenStr, _ := cmd.Flags().GetString(flagToken); tokenStr != "" {
				token, err := sdk.AccAddressFromBech32(tokenStr)
				if err != nil {
					return err
				}
				asset = types.TokenAsset(token)
			}

			msg := types.NewMsgCreateSwap(clientCtx.GetFromAddress(), beneficiary, hashLock, deadline, amount, asset)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagToken, "", "token contract address for a token-denominated swap")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFundSwap builds the fund-swap command.
func CmdFundSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund-swap [amount]",
		Short: "Deposit the native escrow for the swap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := sdk.ParseCoinsNormalized(args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgFundSwap(clientCtx.GetFromAddress(), amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimSwap builds the claim-swap command.
func CmdClaimSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-swap [preimage-hex]",
		Short: "Claim the escrow by revealing the preimage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			preimage, err := hex.DecodeString(args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgClaimSwap(clientCtx.GetFromAddress(), preimage)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRefundSwap builds the refund-swap command.
func CmdRefundSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund-swap",
		Short: "Reclaim the escrow after the deadline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgRefundSwap(clientCtx.GetFromAddress())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
