package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/interchainx/htlc/x/htlc/types"
)

var (
	initiator   = sdk.AccAddress([]byte("initiator-----------"))
	beneficiary = sdk.AccAddress([]byte("beneficiary---------"))
	tokenAddr   = sdk.AccAddress([]byte("tokencontract-------"))
)

func validSwap() types.Swap {
	return types.NewSwap(initiator, beneficiary, types.Digest([]byte("secret")), 1700003600, math.NewInt(1000), types.NativeAsset("uatom"))
}

func TestNewSwapIsOpen(t *testing.T) {
	swap := validSwap()
	require.Equal(t, types.StateOpen, swap.State)
	require.NoError(t, swap.Validate())
}

func TestSwapValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Swap)
		wantErr error
	}{
		{
			name:   "empty initiator",
			mutate: func(s *types.Swap) { s.Initiator = nil },
		},
		{
			name:   "empty beneficiary",
			mutate: func(s *types.Swap) { s.Beneficiary = nil },
		},
		{
			name:    "empty hash lock",
			mutate:  func(s *types.Swap) { s.HashLock = nil },
			wantErr: types.ErrInvalidHashLock,
		},
		{
			name:    "oversized hash lock",
			mutate:  func(s *types.Swap) { s.HashLock = make([]byte, 33) },
			wantErr: types.ErrInvalidHashLock,
		},
		{
			name:    "non-positive deadline",
			mutate:  func(s *types.Swap) { s.Deadline = 0 },
			wantErr: types.ErrInvalidDeadline,
		},
		{
			name:    "zero amount",
			mutate:  func(s *types.Swap) { s.Amount = math.ZeroInt() },
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(s *types.Swap) { s.Amount = math.NewInt(-5) },
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:    "nil amount",
			mutate:  func(s *types.Swap) { s.Amount = math.Int{} },
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:    "empty asset",
			mutate:  func(s *types.Swap) { s.Asset = types.Asset{} },
			wantErr: types.ErrInvalidAsset,
		},
		{
			name:    "unknown state",
			mutate:  func(s *types.Swap) { s.State = "pending" },
			wantErr: types.ErrSwapNotOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			swap := validSwap()
			tt.mutate(&swap)

			err := swap.Validate()
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSwapStateTransitionsAreMonotone(t *testing.T) {
	require.False(t, types.StateOpen.IsTerminal())
	require.True(t, types.StateClaimed.IsTerminal())
	require.True(t, types.StateRefunded.IsTerminal())

	require.True(t, types.StateOpen.Valid())
	require.True(t, types.StateClaimed.Valid())
	require.True(t, types.StateRefunded.Valid())
	require.False(t, types.SwapState("pending").Valid())
}

func TestSwapWindows(t *testing.T) {
	swap := validSwap()

	require.True(t, swap.ClaimableAt(swap.Deadline-1))
	require.False(t, swap.ClaimableAt(swap.Deadline))
	require.False(t, swap.RefundableAt(swap.Deadline-1))
	require.True(t, swap.RefundableAt(swap.Deadline))

	swap.State = types.StateClaimed
	require.False(t, swap.ClaimableAt(swap.Deadline-1))
	require.False(t, swap.RefundableAt(swap.Deadline))
}

func TestAssetValidate(t *testing.T) {
	require.NoError(t, types.NativeAsset("uatom").Validate())
	require.NoError(t, types.TokenAsset(tokenAddr).Validate())

	require.Error(t, types.Asset{}.Validate())
	require.Error(t, types.Asset{Denom: "uatom", Token: tokenAddr.String()}.Validate())
	require.Error(t, types.Asset{Denom: "1bad denom!"}.Validate())
	require.Error(t, types.Asset{Token: "not-bech32"}.Validate())
}

func TestAssetKind(t *testing.T) {
	require.True(t, types.NativeAsset("uatom").IsNative())

	asset := types.TokenAsset(tokenAddr)
	require.False(t, asset.IsNative())
	require.Equal(t, tokenAddr, asset.TokenAddress())
}

func TestSwapResponseProjection(t *testing.T) {
	swap := validSwap()
	res := types.NewSwapResponse(swap)

	require.Equal(t, initiator.String(), res.Initiator)
	require.Equal(t, beneficiary.String(), res.Beneficiary)
	require.Equal(t, swap.HashLock, res.HashLock)
	require.Equal(t, swap.Deadline, res.Deadline)
	require.True(t, res.Amount.Equal(swap.Amount))
	require.Equal(t, swap.Asset, res.Asset)
	require.Equal(t, types.StateOpen, res.State)
}
