package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

// Swap returns the external projection of the swap record.
func (k Keeper) Swap(ctx sdk.Context) (types.SwapResponse, error) {
	swap, found := k.GetSwap(ctx)
	if !found {
		return types.SwapResponse{}, types.ErrSwapNotFound
	}
	return types.NewSwapResponse(swap), nil
}

// IsClaimable reports whether the swap is open and the deadline has not
// been reached at the current block time.
func (k Keeper) IsClaimable(ctx sdk.Context) (bool, error) {
	swap, found := k.GetSwap(ctx)
	if !found {
		return false, types.ErrSwapNotFound
	}
	return swap.ClaimableAt(ctx.BlockTime().Unix()), nil
}

// IsRefundable reports whether the swap is open and the deadline has been
// reached at the current block time.
func (k Keeper) IsRefundable(ctx sdk.Context) (bool, error) {
	swap, found := k.GetSwap(ctx)
	if !found {
		return false, types.ErrSwapNotFound
	}
	return swap.RefundableAt(ctx.BlockTime().Unix()), nil
}
