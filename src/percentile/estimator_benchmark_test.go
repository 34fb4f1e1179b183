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
	"fmt"
	"math/rand"
	"sort"
	"testing"
)

func benchmarkValues(n int) []float64 {
	rnd := rand.New(rand.NewSource(42))
	values := make([]float64, n)
	for i := range values {
		values[i] = rnd.ExpFloat64() * 100
	}
	return values
}

func BenchmarkEstimatorAdd(b *testing.B) {
	values := benchmarkValues(1 << 16)
	e, err := NewEstimator(nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Add(values[i&(len(values)-1)])
	}
}

// Insertion cost must not depend on the number of values already recorded.
func BenchmarkEstimatorAddAtCount(b *testing.B) {
	values := benchmarkValues(1 << 16)
	for _, recorded := range []int{1e3, 1e5, 1e7} {
		b.Run(fmt.Sprintf("recorded=%d", recorded), func(b *testing.B) {
			e, err := NewEstimator(nil)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < recorded; i++ {
				_ = e.Add(values[i&(len(values)-1)])
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = e.Add(values[i&(len(values)-1)])
			}
		})
	}
}

func BenchmarkEstimatorPercentile(b *testing.B) {
	values := benchmarkValues(1 << 16)
	e, err := NewEstimator(nil)
	if err != nil {
		b.Fatal(err)
	}
	for _, v := range values {
		_ = e.Add(v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Percentile(99)
	}
}

// BenchmarkSortedSlicePercentile is the baseline that keeps every sample
// and sorts before each query.
func BenchmarkSortedSlicePercentile(b *testing.B) {
	values := benchmarkValues(1 << 16)
	sorted := make([]float64, len(values))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(sorted, values)
		sort.Float64s(sorted)
		_ = referencePercentile(sorted, 99)
	}
}

func BenchmarkEstimatorRankThenAdd(b *testing.B) {
	values := benchmarkValues(1 << 16)
	e, err := NewEstimator(nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.RankThenAdd(values[i&(len(values)-1)])
	}
}

func BenchmarkSynchronizedEstimatorAdd(b *testing.B) {
	values := benchmarkValues(1 << 16)
	e, err := NewSynchronizedEstimator(nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = e.Add(values[i&(len(values)-1)])
			i++
		}
	})
}
