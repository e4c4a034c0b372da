package htlc

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/keeper"
	"github.com/interchainx/htlc/x/htlc/types"
)

// InitGenesis seeds the module's swap slot from genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if genState.Swap != nil {
		k.SetSwap(ctx, *genState.Swap)
	}
}

// ExportGenesis exports the module's swap slot.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	swap, found := k.GetSwap(ctx)
	if !found {
		return types.DefaultGenesis()
	}
	return types.NewGenesisState(&swap)
}
