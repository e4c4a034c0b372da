// Package types defines the swap record, messages, and collaborator
// interfaces for the htlc module.
package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	tmbytes "github.com/cometbft/cometbft/libs/bytes"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"sigs.k8s.io/yaml"
)

// SwapState is the lifecycle state of the swap. Transitions are monotone:
// an open swap moves to claimed or refunded exactly once; both are terminal.
type SwapState string

const (
	StateOpen     SwapState = "open"
	StateClaimed  SwapState = "claimed"
	StateRefunded SwapState = "refunded"
)

// IsTerminal reports whether no further transition is permitted.
func (s SwapState) IsTerminal() bool {
	return s == StateClaimed || s == StateRefunded
}

// Valid reports whether s is one of the known states.
func (s SwapState) Valid() bool {
	return s == StateOpen || s.IsTerminal()
}

// Asset identifies the locked value: a native coin denom, or the address of
// an external token contract that holds balances on the module's behalf.
// Exactly one of the two fields is set.
type Asset struct {
	Denom string `json:"denom,omitempty"`
	Token string `json:"token,omitempty"`
}

// NativeAsset returns an Asset locking the native coin denom.
func NativeAsset(denom string) Asset {
	return Asset{Denom: denom}
}

// TokenAsset returns an Asset locking value held by a token contract.
func TokenAsset(contract sdk.AccAddress) Asset {
	return Asset{Token: contract.String()}
}

// IsNative reports whether the asset is a native coin.
func (a Asset) IsNative() bool {
	return a.Token == ""
}

// TokenAddress returns the token contract address. Call only when the asset
// is not native.
func (a Asset) TokenAddress() sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(a.Token)
	if err != nil {
		panic(err)
	}
	return addr
}

// Validate checks that exactly one of denom and token contract is set and
// that the set one is well formed.
func (a Asset) Validate() error {
	switch {
	case a.Denom != "" && a.Token != "":
		return errorsmod.Wrap(ErrInvalidAsset, "both denom and token contract set")
	case a.Denom != "":
		if err := sdk.ValidateDenom(a.Denom); err != nil {
			return errorsmod.Wrap(ErrInvalidAsset, err.Error())
		}
	case a.Token != "":
		if _, err := sdk.AccAddressFromBech32(a.Token); err != nil {
			return errorsmod.Wrap(ErrInvalidAsset, err.Error())
		}
	default:
		return errorsmod.Wrap(ErrInvalidAsset, "neither denom nor token contract set")
	}
	return nil
}

// Swap is the single escrow record owned by the module. It is created once,
// mutated only by claim or refund, and never deleted: a terminal record
// stays in the store as a permanent audit trail.
type Swap struct {
	// Initiator is the party depositing value.
	Initiator sdk.AccAddress `json:"initiator"`

	// Beneficiary is the party authorized to claim.
	Beneficiary sdk.AccAddress `json:"beneficiary"`

	// HashLock is the SHA-256 digest of the claim preimage.
	HashLock tmbytes.HexBytes `json:"hash_lock"`

	// Deadline is the unix time (seconds) at and after which claim is
	// disallowed and refund becomes allowed.
	Deadline int64 `json:"deadline"`

	// Amount is the quantity of value locked.
	Amount math.Int `json:"amount"`

	// Asset is what the amount denominates.
	Asset Asset `json:"asset"`

	// State is the current lifecycle state.
	State SwapState `json:"state"`
}

// NewSwap returns an open swap with the given terms.
func NewSwap(initiator, beneficiary sdk.AccAddress, hashLock []byte, deadline int64, amount math.Int, asset Asset) Swap {
	return Swap{
		Initiator:   initiator,
		Beneficiary: beneficiary,
		HashLock:    hashLock,
		Deadline:    deadline,
		Amount:      amount,
		Asset:       asset,
		State:       StateOpen,
	}
}

// Validate checks the record's internal invariants. It does not compare the
// deadline against the current time; creation-time checks live in the
// keeper where block time is available.
func (s Swap) Validate() error {
	if s.Initiator.Empty() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "initiator cannot be empty")
	}
	if s.Beneficiary.Empty() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "beneficiary cannot be empty")
	}
	if len(s.HashLock) != LockSize {
		return errorsmod.Wrapf(ErrInvalidHashLock, "expected %d bytes, got %d", LockSize, len(s.HashLock))
	}
	if s.Deadline <= 0 {
		return errorsmod.Wrap(ErrInvalidDeadline, "deadline must be positive")
	}
	if s.Amount.IsNil() || !s.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if err := s.Asset.Validate(); err != nil {
		return err
	}
	if !s.State.Valid() {
		return errorsmod.Wrapf(ErrSwapNotOpen, "unknown state %q", s.State)
	}
	return nil
}

// ClaimableAt reports whether the swap can still be claimed at the given
// block time, ignoring caller identity and the preimage.
func (s Swap) ClaimableAt(now int64) bool {
	return s.State == StateOpen && now < s.Deadline
}

// RefundableAt reports whether the swap can be refunded at the given block
// time, ignoring caller identity.
func (s Swap) RefundableAt(now int64) bool {
	return s.State == StateOpen && now >= s.Deadline
}

func (s Swap) String() string {
	out, _ := yaml.Marshal(s)
	return string(out)
}

// SwapResponse is the external projection of the swap record returned by
// queries, with identities in their string representation.
type SwapResponse struct {
	Initiator   string           `json:"initiator"`
	Beneficiary string           `json:"beneficiary"`
	HashLock    tmbytes.HexBytes `json:"hash_lock"`
	Deadline    int64            `json:"deadline"`
	Amount      math.Int         `json:"amount"`
	Asset       Asset            `json:"asset"`
	State       SwapState        `json:"state"`
}

// NewSwapResponse projects a swap record for external consumption.
func NewSwapResponse(s Swap) SwapResponse {
	return SwapResponse{
		Initiator:   s.Initiator.String(),
		Beneficiary: s.Beneficiary.String(),
		HashLock:    s.HashLock,
		Deadline:    s.Deadline,
		Amount:      s.Amount,
		Asset:       s.Asset,
		State:       s.State,
	}
}
