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

import "math"

const (
	initialCapacity = 64

	// Grid indices stay below 2^52 in magnitude so that index arithmetic
	// and the conversions to float64 are exact.
	maxGridIndex = 1 << 52
)

// layout partitions the covered range into contiguous bins of equal width.
// Bin boundaries are the multiples of the width, which is the finest width
// 10^-precision doubled once per level. A bin is identified by its grid
// index g and covers [g*width, (g+1)*width).
//
// Counts live in a ring indexed by grid index modulo its capacity. Slots of
// grid indices outside [lo, hi] are always zero, so covering another bin
// within capacity moves no data. Everything else is a copy-and-rebin pass.
type layout struct {
	baseWidth float64
	maxBins   int

	level  int
	width  float64
	lo     int64 // grid index of the first bin
	hi     int64 // grid index of the last bin
	counts []uint64
}

type growth struct {
	resized    bool
	coarsened  int
	initialize bool
}

func newLayout(precision, maxBins int) layout {
	return layout{
		baseWidth: math.Pow10(-precision),
		maxBins:   maxBins,
	}
}

func (l *layout) empty() bool {
	return l.counts == nil
}

func (l *layout) numBins() int {
	if l.empty() {
		return 0
	}
	return int(l.hi - l.lo + 1)
}

func (l *layout) representable(v float64) bool {
	return math.Abs(v/l.width) < maxGridIndex
}

// locate returns the position of the bin holding v among the covered bins.
func (l *layout) locate(v float64) (int, bool) {
	if l.empty() || !l.representable(v) {
		return 0, false
	}
	g := gridIndex(v, l.width)
	if g < l.lo || g > l.hi {
		return 0, false
	}
	return int(g - l.lo), true
}

func (l *layout) incr(i int) {
	l.counts[ringSlot(l.lo+int64(i), len(l.counts))]++
}

func (l *layout) bin(i int) Bin {
	return l.binAt(l.lo + int64(i))
}

func (l *layout) binAt(g int64) Bin {
	return Bin{
		Lower: float64(g) * l.width,
		Upper: float64(g+1) * l.width,
		Count: l.counts[ringSlot(g, len(l.counts))],
	}
}

// walk visits the covered bins in increasing order together with the
// number of observations in all bins before each one, until fn returns false.
func (l *layout) walk(fn func(i int, b Bin, before uint64) bool) {
	if l.empty() {
		return
	}
	var before uint64
	for g := l.lo; g <= l.hi; g++ {
		b := l.binAt(g)
		if !fn(int(g-l.lo), b, before) {
			return
		}
		before += b.Count
	}
}

func (l *layout) bins() []Bin {
	bins := make([]Bin, 0, l.numBins())
	l.walk(func(_ int, b Bin, _ uint64) bool {
		bins = append(bins, b)
		return true
	})
	return bins
}

// grow extends the covered range to include v. Within capacity only the
// bounds move. Past capacity the ring doubles up to maxBins, and past
// maxBins the width doubles with adjacent bin pairs merged.
func (l *layout) grow(v float64) growth {
	if l.empty() {
		l.init(v)
		return growth{initialize: true}
	}

	var res growth
	for !l.representable(v) {
		l.coarsen()
		res.coarsened++
	}
	for {
		var (
			g      = gridIndex(v, l.width)
			lo, hi = l.lo, l.hi
		)
		if g < lo {
			lo = g
		}
		if g > hi {
			hi = g
		}
		span := hi - lo + 1
		if span <= int64(len(l.counts)) {
			l.lo, l.hi = lo, hi
			return res
		}
		if span <= int64(l.maxBins) {
			l.resize(span)
			l.lo, l.hi = lo, hi
			res.resized = true
			return res
		}
		l.coarsen()
		res.coarsened++
	}
}

func (l *layout) init(v float64) {
	l.level = 0
	l.width = l.baseWidth
	for !l.representable(v) {
		l.level++
		l.width = math.Ldexp(l.baseWidth, l.level)
	}
	g := gridIndex(v, l.width)
	l.lo, l.hi = g, g

	capacity := initialCapacity
	if capacity > l.maxBins {
		capacity = l.maxBins
	}
	l.counts = make([]uint64, capacity)
}

func (l *layout) resize(span int64) {
	capacity := len(l.counts)
	for int64(capacity) < span {
		capacity *= 2
	}
	if capacity > l.maxBins {
		capacity = l.maxBins
	}
	l.rebin(capacity, 0)
}

func (l *layout) coarsen() {
	l.rebin(len(l.counts), 1)
	l.level++
	l.width = math.Ldexp(l.baseWidth, l.level)
}

// rebin copies the counts into a new ring of the given capacity, merging
// every 2^shift adjacent bins that share a grid index at the coarser level.
func (l *layout) rebin(capacity int, shift uint) {
	counts := make([]uint64, capacity)
	for g := l.lo; g <= l.hi; g++ {
		c := l.counts[ringSlot(g, len(l.counts))]
		if c == 0 {
			continue
		}
		counts[ringSlot(g>>shift, capacity)] += c
	}
	l.counts = counts
	l.lo >>= shift
	l.hi >>= shift
}

// gridIndex returns g such that g*width <= v < (g+1)*width in float64.
func gridIndex(v, width float64) int64 {
	g := int64(math.Floor(v / width))
	if float64(g)*width > v {
		g--
	} else if float64(g+1)*width <= v {
		g++
	}
	return g
}

func ringSlot(g int64, capacity int) int {
	s := g % int64(capacity)
	if s < 0 {
		s += int64(capacity)
	}
	return int(s)
}
