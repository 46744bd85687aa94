// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/meridianledger/meridian/pkg/errors"
)

func TestStatusMatching(t *testing.T) {
	err := errors.NotFound.WithFormat("no preburn queue for %s", "MRD")
	require.True(t, errors.Is(err, errors.NotFound))
	require.False(t, errors.Is(err, errors.Conflict))
	require.Equal(t, errors.NotFound, errors.Code(err))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.Overflow.With("preburn counter overflow")
	err := errors.UnknownError.WithFormat("preburn: %w", cause)
	require.True(t, errors.Is(err, errors.Overflow))
	require.Equal(t, cause, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, errors.InternalError.Wrap(nil))
}

func TestCode(t *testing.T) {
	require.Equal(t, errors.OK, errors.Code(nil))
	require.Equal(t, errors.UnknownError, errors.Code(fmt.Errorf("plain")))
	require.Equal(t, errors.EmptyQueue, errors.Code(errors.EmptyQueue.Wrap(fmt.Errorf("plain"))))
}
