package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/interchainx/htlc/x/htlc/types"
)

// CreateSwap creates the module's single swap record in the open state. No
// value moves at creation; the escrow arrives through FundSwap or a token
// contract notification. Fails if a record already exists or any creation
// invariant is violated; on failure nothing is written.
func (k Keeper) CreateSwap(ctx sdk.Context, initiator, beneficiary sdk.AccAddress, hashLock []byte, deadline int64, amount math.Int, asset types.Asset) error {
	if k.HasSwap(ctx) {
		return types.ErrSwapExists
	}

	swap := types.NewSwap(initiator, beneficiary, hashLock, deadline, amount, asset)
	if err := swap.Validate(); err != nil {
		return err
	}
	if deadline <= ctx.BlockTime().Unix() {
		return errorsmod.Wrapf(types.ErrInvalidDeadline, "deadline %d not after block time %d", deadline, ctx.BlockTime().Unix())
	}

	k.SetSwap(ctx, swap)

	k.Logger(ctx).Info("swap created",
		"initiator", initiator.String(),
		"beneficiary", beneficiary.String(),
		"amount", amount.String(),
		"deadline", deadline,
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreateSwap,
			sdk.NewAttribute(types.AttributeKeyInitiator, initiator.String()),
			sdk.NewAttribute(types.AttributeKeyBeneficiary, beneficiary.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyHashLock, fmt.Sprintf("%X", hashLock)),
			sdk.NewAttribute(types.AttributeKeyDeadline, fmt.Sprintf("%d", deadline)),
		),
	)

	return nil
}

// FundSwap deposits the native escrow. The attached coins must be exactly
// the swap amount in the swap's denom; they are locked in the module
// account. The record itself does not change: an open swap covers both
// awaiting-deposit and deposited.
func (k Keeper) FundSwap(ctx sdk.Context, initiator sdk.AccAddress, amount sdk.Coins) error {
	swap, found := k.GetSwap(ctx)
	if !found {
		return types.ErrSwapNotFound
	}
	if swap.State != types.StateOpen {
		return errorsmod.Wrapf(types.ErrSwapNotOpen, "state is %s", swap.State)
	}
	if !initiator.Equals(swap.Initiator) {
		return errorsmod.Wrap(types.ErrUnauthorized, "only the initiator can fund the swap")
	}
	if !swap.Asset.IsNative() {
		return errorsmod.Wrap(types.ErrInvalidPayment, "token swaps are funded through the token contract")
	}

	if amount.Empty() {
		return types.ErrNoPayment
	}
	expected := sdk.NewCoins(sdk.NewCoin(swap.Asset.Denom, swap.Amount))
	if !amount.IsEqual(expected) {
		return errorsmod.Wrapf(types.ErrInvalidPayment, "expected %s, got %s", expected, amount)
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, initiator, types.ModuleName, amount); err != nil {
		return err
	}

	k.Logger(ctx).Info("swap funded", "initiator", initiator.String(), "amount", amount.String())

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundSwap,
			sdk.NewAttribute(types.AttributeKeyInitiator, initiator.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}

// TokenReceive handles the notification an external token contract sends
// after moving tokens into the module's custody. The notifying contract and
// the forwarded amount must match the swap's terms. The payload is opaque
// to the state machine. No record mutation occurs.
func (k Keeper) TokenReceive(ctx sdk.Context, tokenContract, sender sdk.AccAddress, amount math.Int, payload []byte) error {
	swap, found := k.GetSwap(ctx)
	if !found {
		return types.ErrSwapNotFound
	}
	if swap.State != types.StateOpen {
		return errorsmod.Wrapf(types.ErrSwapNotOpen, "state is %s", swap.State)
	}
	if swap.Asset.IsNative() {
		return errorsmod.Wrap(types.ErrTokenMismatch, "swap locks a native asset")
	}
	if tokenContract.String() != swap.Asset.Token {
		return errorsmod.Wrapf(types.ErrTokenMismatch, "expected notification from %s, got %s", swap.Asset.Token, tokenContract)
	}
	if !amount.Equal(swap.Amount) {
		return errorsmod.Wrapf(types.ErrTokenMismatch, "expected amount %s, got %s", swap.Amount, amount)
	}

	k.Logger(ctx).Info("token funding received",
		"token", tokenContract.String(),
		"sender", sender.String(),
		"amount", amount.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokenReceive,
			sdk.NewAttribute(types.AttributeKeyToken, tokenContract.String()),
			sdk.NewAttribute(types.AttributeKeyInitiator, sender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}

// ClaimSwap releases the escrow to the beneficiary in exchange for the
// preimage. It is one of the two transitions that leave the open state and
// produces the swap's single outbound transfer directive. A dispatch
// failure aborts the call; the host reverts the state write with it.
func (k Keeper) ClaimSwap(ctx sdk.Context, claimer sdk.AccAddress, preimage []byte) error {
	swap, found := k.GetSwap(ctx)
	if !found {
		return types.ErrSwapNotFound
	}
	if swap.State != types.StateOpen {
		return errorsmod.Wrapf(types.ErrSwapNotOpen, "state is %s", swap.State)
	}
	if !claimer.Equals(swap.Beneficiary) {
		return errorsmod.Wrap(types.ErrUnauthorized, "only the beneficiary can claim")
	}
	now := ctx.BlockTime().Unix()
	if now >= swap.Deadline {
		return errorsmod.Wrapf(types.ErrDeadlinePassed, "deadline %d, block time %d", swap.Deadline, now)
	}
	if !types.VerifyPreimage(preimage, swap.HashLock) {
		return types.ErrInvalidPreimage
	}

	swap.State = types.StateClaimed
	k.SetSwap(ctx, swap)

	directive := types.NewTransferDirective(swap, swap.Beneficiary)
	if err := k.dispatchDirective(ctx, directive); err != nil {
		return err
	}

	k.Logger(ctx).Info("swap claimed",
		"beneficiary", swap.Beneficiary.String(),
		"amount", swap.Amount.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimSwap,
			sdk.NewAttribute(types.AttributeKeyBeneficiary, swap.Beneficiary.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, swap.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyPreimage, fmt.Sprintf("%X", preimage)),
		),
	)

	return nil
}

// RefundSwap returns the escrow to the initiator once the deadline has
// been reached. Symmetric to ClaimSwap.
func (k Keeper) RefundSwap(ctx sdk.Context, refunder sdk.AccAddress) error {
	swap, found := k.GetSwap(ctx)
	if !found {
		return types.ErrSwapNotFound
	}
	if swap.State != types.StateOpen {
		return errorsmod.Wrapf(types.ErrSwapNotOpen, "state is %s", swap.State)
	}
	if !refunder.Equals(swap.Initiator) {
		return errorsmod.Wrap(types.ErrUnauthorized, "only the initiator can refund")
	}
	now := ctx.BlockTime().Unix()
	if now < swap.Deadline {
		return errorsmod.Wrapf(types.ErrDeadlineNotReached, "deadline %d, block time %d", swap.Deadline, now)
	}

	swap.State = types.StateRefunded
	k.SetSwap(ctx, swap)

	directive := types.NewTransferDirective(swap, swap.Initiator)
	if err := k.dispatchDirective(ctx, directive); err != nil {
		return err
	}

	k.Logger(ctx).Info("swap refunded",
		"initiator", swap.Initiator.String(),
		"amount", swap.Amount.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRefundSwap,
			sdk.NewAttribute(types.AttributeKeyInitiator, swap.Initiator.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, swap.Amount.String()),
		),
	)

	return nil
}

// dispatchDirective hands the outbound transfer to the collaborator that
// can execute it. The directive is advisory: insufficient escrow surfaces
// here as the collaborator's own error.
func (k Keeper) dispatchDirective(ctx sdk.Context, d types.TransferDirective) error {
	switch d.Kind {
	case types.DirectiveBankSend:
		return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, d.Destination, d.Coins())
	case types.DirectiveTokenCall:
		return k.tokenKeeper.Transfer(ctx, d.Asset.TokenAddress(), d.Destination, d.Amount)
	default:
		return errorsmod.Wrapf(types.ErrInvalidAsset, "unknown directive kind %q", d.Kind)
	}
}
