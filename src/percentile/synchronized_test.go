// Copyright (c) 2020 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package percentile

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestNewSynchronizedEstimator(t *testing.T) {
	e, err := NewSynchronizedEstimator(nil)
	require.NoError(t, err)
	_, ok := e.(*synchronizedEstimator)
	require.True(t, ok)

	e, err = NewEstimator(NewOptions().SetSynchronized(true))
	require.NoError(t, err)
	_, ok = e.(*synchronizedEstimator)
	require.True(t, ok)

	_, err = NewSynchronizedEstimator(NewOptions().SetMaxBins(0))
	require.Error(t, err)
}

func TestSynchronizedEstimatorMatchesEstimator(t *testing.T) {
	synced, err := NewSynchronizedEstimator(nil)
	require.NoError(t, err)
	plain := newTestEstimator(t, nil)

	_, err = synced.Percentile(50)
	require.Equal(t, ErrEmpty, err)

	rnd := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		v := rnd.NormFloat64() * 10
		expected, expectedErr := plain.RankThenAdd(v)
		actual, actualErr := synced.RankThenAdd(v)
		require.Equal(t, expectedErr, actualErr)
		require.Equal(t, expected, actual)
	}
	require.NoError(t, synced.Add(3))
	require.NoError(t, plain.Add(3))

	for _, p := range testPercentiles {
		expected, err := plain.Percentile(p)
		require.NoError(t, err)
		actual, err := synced.Percentile(p)
		require.NoError(t, err)
		require.Equal(t, expected, actual)
	}
	expectedRank, err := plain.PercentileRank(1)
	require.NoError(t, err)
	actualRank, err := synced.PercentileRank(1)
	require.NoError(t, err)
	require.Equal(t, expectedRank, actualRank)

	require.Equal(t, plain.Count(), synced.Count())
	require.Equal(t, plain.Min(), synced.Min())
	require.Equal(t, plain.Max(), synced.Max())
	require.Equal(t, plain.BinWidth(), synced.BinWidth())
	require.True(t, cmp.Equal(plain.Bins(), synced.Bins()), cmp.Diff(plain.Bins(), synced.Bins()))
}

func TestSynchronizedEstimatorConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	const (
		numWriters      = 8
		valuesPerWriter = 2000
	)
	e, err := NewSynchronizedEstimator(NewOptions().SetMaxBins(128))
	require.NoError(t, err)
	require.NoError(t, e.Add(0))

	var g errgroup.Group
	for i := 0; i < numWriters; i++ {
		seed := int64(i)
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(seed))
			for j := 0; j < valuesPerWriter; j++ {
				v := rnd.Float64() * 1000 * float64(seed+1)
				if j%2 == 0 {
					if err := e.Add(v); err != nil {
						return err
					}
					continue
				}
				if _, err := e.RankThenAdd(v); err != nil {
					return err
				}
			}
			return nil
		})
		g.Go(func() error {
			for j := 0; j < valuesPerWriter/10; j++ {
				if _, err := e.Percentile(99); err != nil {
					return err
				}
				if _, err := e.PercentileRank(500); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var total uint64
	for _, b := range e.Bins() {
		total += b.Count
	}
	require.Equal(t, uint64(numWriters*valuesPerWriter+1), e.Count())
	require.Equal(t, e.Count(), total)
}
