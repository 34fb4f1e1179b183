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
	"math"
	"os"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const (
	testRandomSeed         int64 = 7823434
	testMinSuccessfulTests       = 200
)

func newPropertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(testRandomSeed)
	parameters.MinSuccessfulTests = testMinSuccessfulTests
	parameters.MinSize = 1
	parameters.MaxSize = 300
	return parameters
}

func runProperties(t *testing.T, props *gopter.Properties) {
	reporter := gopter.NewFormatedReporter(true, 160, os.Stdout)
	if !props.Run(reporter) {
		t.Errorf("failed with initial seed: %d", testRandomSeed)
	}
}

func genValues() gopter.Gen {
	return gen.SliceOf(gen.Float64Range(-1e4, 1e4)).
		SuchThat(func(values []float64) bool { return len(values) > 0 })
}

func genPrecision() gopter.Gen {
	return gen.IntRange(0, 4)
}

func propertyEstimator(precision int, values []float64) (*estimator, bool) {
	e, err := NewEstimator(NewOptions().SetPrecision(precision).SetMaxBins(512))
	if err != nil {
		return nil, false
	}
	for _, v := range values {
		if err := e.Add(v); err != nil {
			return nil, false
		}
	}
	return e.(*estimator), true
}

func TestPercentileProperties(t *testing.T) {
	props := gopter.NewProperties(newPropertyParameters())

	props.Property("extremes are the recorded min and max", prop.ForAll(
		func(values []float64, precision int) bool {
			e, ok := propertyEstimator(precision, values)
			if !ok {
				return false
			}
			sorted := append([]float64(nil), values...)
			sort.Float64s(sorted)

			p0, err := e.Percentile(0)
			if err != nil || p0 != sorted[0] {
				return false
			}
			p100, err := e.Percentile(100)
			return err == nil && p100 == sorted[len(sorted)-1]
		},
		genValues(),
		genPrecision(),
	))

	props.Property("percentile is non-decreasing in rank", prop.ForAll(
		func(values []float64, precision int) bool {
			e, ok := propertyEstimator(precision, values)
			if !ok {
				return false
			}
			prev := math.Inf(-1)
			for p := 0.0; p <= 100; p += 0.25 {
				v, err := e.Percentile(p)
				if err != nil || v < prev {
					return false
				}
				if v < e.Min() || v > e.Max() {
					return false
				}
				prev = v
			}
			return true
		},
		genValues(),
		genPrecision(),
	))

	props.Property("percentile rank is non-decreasing in value", prop.ForAll(
		func(values []float64, probes []float64, precision int) bool {
			e, ok := propertyEstimator(precision, values)
			if !ok {
				return false
			}
			probes = append(probes, values...)
			sort.Float64s(probes)
			prev := 0.0
			for _, v := range probes {
				rank, err := e.PercentileRank(v)
				if err != nil || rank < prev || rank > 100 {
					return false
				}
				prev = rank
			}
			return true
		},
		genValues(),
		gen.SliceOf(gen.Float64Range(-2e4, 2e4)),
		genPrecision(),
	))

	props.Property("rank then add ranks before inserting", prop.ForAll(
		func(values []float64, precision int) bool {
			e, ok := propertyEstimator(precision, values[:1])
			if !ok {
				return false
			}
			for _, v := range values[1:] {
				expected, err := e.PercentileRank(v)
				if err != nil {
					return false
				}
				before, err := e.RankThenAdd(v)
				if err != nil || before != expected {
					return false
				}
				after, err := e.PercentileRank(v)
				if err != nil || after < before {
					return false
				}
			}
			return e.Count() == uint64(len(values))
		},
		genValues(),
		genPrecision(),
	))

	runProperties(t, props)
}
