package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/interchainx/htlc/x/htlc/types"
)

// GetQueryCmd returns the query commands for the htlc module.
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQuerySwap(),
		CmdQueryIsClaimable(),
		CmdQueryIsRefundable(),
	)

	return cmd
}

// querySwapRecord reads the swap record from the module store over the abci
// store route and returns it with the height it was read at.
func querySwapRecord(clientCtx client.Context) (types.Swap, int64, error) {
	bz, height, err := clientCtx.QueryStore(types.SwapKey, types.StoreKey)
	if err != nil {
		return types.Swap{}, 0, err
	}
	if len(bz) == 0 {
		return types.Swap{}, 0, types.ErrSwapNotFound
	}

	var swap types.Swap
	if err := types.ModuleCdc.UnmarshalJSON(bz, &swap); err != nil {
		return types.Swap{}, 0, err
	}
	return swap, height, nil
}

// queryBlockTime returns the unix time of the block at the given height, so
// the timing predicates are evaluated against the same snapshot the record
// was read from.
func queryBlockTime(cmd *cobra.Command, clientCtx client.Context, height int64) (int64, error) {
	node, err := clientCtx.GetNode()
	if err != nil {
		return 0, err
	}
	block, err := node.Block(cmd.Context(), &height)
	if err != nil {
		return 0, err
	}
	return block.Block.Time.Unix(), nil
}

// CmdQuerySwap builds the swap query command.
func CmdQuerySwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Query the swap record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			swap, _, err := querySwapRecord(clientCtx)
			if err != nil {
				return err
			}

			out, err := types.ModuleCdc.MarshalJSONIndent(types.NewSwapResponse(swap), "", "  ")
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryIsClaimable builds the claimable query command.
func CmdQueryIsClaimable() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claimable",
		Short: "Query whether the swap can currently be claimed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			swap, height, err := querySwapRecord(clientCtx)
			if err != nil {
				return err
			}

			now, err := queryBlockTime(cmd, clientCtx, height)
			if err != nil {
				return err
			}

			out, err := types.ModuleCdc.MarshalJSONIndent(types.QueryBoolResponse{Result: swap.ClaimableAt(now)}, "", "  ")
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryIsRefundable builds the refundable query command.
func CmdQueryIsRefundable() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refundable",
		Short: "Query whether the swap can currently be refunded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			swap, height, err := querySwapRecord(clientCtx)
			if err != nil {
				return err
			}

			now, err := queryBlockTime(cmd, clientCtx, height)
			if err != nil {
				return err
			}

			out, err := types.ModuleCdc.MarshalJSONIndent(types.QueryBoolResponse{Result: swap.RefundableAt(now)}, "", "  ")
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
