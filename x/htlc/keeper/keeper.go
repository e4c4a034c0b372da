// Package keeper implements the htlc module's state machine: the single
// swap record, its transitions, and the outbound transfer dispatch.
package keeper

import (
	"github.com/cometbft/cometbft/libs/log"
	"github.com/cosmos/cosmos-sdk/codec"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

// Keeper owns the module's single swap slot and the collaborators that move
// value on its instructions.
type Keeper struct {
	storeKey    storetypes.StoreKey
	cdc         *codec.LegacyAmino
	bankKeeper  types.BankKeeper
	tokenKeeper types.TokenKeeper
}

// NewKeeper returns the htlc keeper. The bank keeper escrows native coins
// in the module account; the token keeper relays transfer calls to external
// token contracts.
func NewKeeper(cdc *codec.LegacyAmino, storeKey storetypes.StoreKey, bankKeeper types.BankKeeper, tokenKeeper types.TokenKeeper) Keeper {
	return Keeper{
		storeKey:    storeKey,
		cdc:         cdc,
		bankKeeper:  bankKeeper,
		tokenKeeper: tokenKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// GetSwap loads the swap record, reporting whether one has been created.
func (k Keeper) GetSwap(ctx sdk.Context) (types.Swap, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.SwapKey)
	if bz == nil {
		return types.Swap{}, false
	}
	var swap types.Swap
	k.cdc.MustUnmarshalJSON(bz, &swap)
	return swap, true
}

// SetSwap persists the swap record in its single slot.
func (k Keeper) SetSwap(ctx sdk.Context, swap types.Swap) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.SwapKey, k.cdc.MustMarshalJSON(swap))
}

// HasSwap reports whether the record exists.
func (k Keeper) HasSwap(ctx sdk.Context) bool {
	return ctx.KVStore(k.storeKey).Has(types.SwapKey)
}
