package model

import (
	"errors"
	"testing"

	"github.com/gocord/gocord/pkg/errorx"
	"github.com/stretchr/testify/require"
)

type trackedUser struct {
	User

	Seen int
}

type trackedChannel struct {
	Channel
}

func requireCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()
	var e errorx.Error
	require.True(t, errors.As(err, &e), "expected errorx error, got %v", err)
	require.Equal(t, code, e.Code)
}

func TestRegistryResolveDefault(t *testing.T) {
	r := NewRegistry()

	factory, err := r.Resolve(KindUser)
	require.NoError(t, err)
	require.IsType(t, &User{}, factory())
}

func TestRegistryResolveOverride(t *testing.T) {
	r := NewRegistry()

	err := r.Register(KindUser, func() any { return &trackedUser{} })
	require.NoError(t, err)

	factory, err := r.Resolve(KindUser)
	require.NoError(t, err)
	require.IsType(t, &trackedUser{}, factory())
}

func TestRegistryKindIsolation(t *testing.T) {
	r := NewRegistry()

	err := r.Register(KindUser, func() any { return &trackedUser{} })
	require.NoError(t, err)

	factory, err := r.Resolve(KindChannel)
	require.NoError(t, err)
	require.IsType(t, &Channel{}, factory())
}

func TestRegistryUnknownKind(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve(Kind("NOPE"))
	requireCode(t, err, errorx.UnknownModelKind)

	err = r.Register(Kind("NOPE"), func() any { return &User{} })
	requireCode(t, err, errorx.UnknownModelKind)
}

func TestRegistryContractMismatch(t *testing.T) {
	r := NewRegistry()

	err := r.Register(KindUser, func() any { return &trackedChannel{} })
	requireCode(t, err, errorx.InvalidContract)

	err = r.Register(KindUser, nil)
	requireCode(t, err, errorx.InvalidContract)

	err = r.Register(KindUser, func() any { return nil })
	requireCode(t, err, errorx.InvalidContract)
}

func TestRegistryFreezesOnResolve(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve(KindUser)
	require.NoError(t, err)

	err = r.Register(KindUser, func() any { return &trackedUser{} })
	requireCode(t, err, errorx.RegistryFrozen)
}

func TestRegistryKinds(t *testing.T) {
	r := NewRegistry()

	kinds := r.Kinds()
	require.Len(t, kinds, len(builtins()))
	require.Contains(t, kinds, KindUser)
	require.Contains(t, kinds, KindChannelPinsUpdate)

	for i := 1; i < len(kinds); i++ {
		require.Less(t, kinds[i-1], kinds[i])
	}
}

func TestDefaultRegistryShared(t *testing.T) {
	require.Same(t, Default(), Default())
}
