// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wfa

import (
	"github.com/biogo/rapi"
	"github.com/biogo/rapi/backend"
	swfa "github.com/shenwei356/wfa"
)

// Backend is a reference rapi/backend.Backend. It does not seed and
// chain; AlignCore simply wavefront-aligns the whole read against
// every contig (and its reverse complement), which only scales to the
// small test references this module ships.
type Backend struct{}

var _ backend.Backend = Backend{}

func (Backend) Name() string    { return "wfa" }
func (Backend) Version() string { return "reference" }

func (Backend) LoadReferenceIndex(path string) (rapi.BackendIndex, []rapi.Contig, error) {
	return LoadReferenceIndex(path)
}

func penalties(opts *rapi.Options) *swfa.Penalties {
	return &swfa.Penalties{
		Mismatch: uint32(opts.Mismatch),
		GapOpen:  uint32(opts.GapOpen),
		GapExt:   uint32(opts.GapExt),
	}
}

// AlignCore scans every contig twice (forward strand, then the read's
// reverse complement against the same forward strand) and keeps, for
// each contig and strand, the single placement the aligner reports when
// its score clears opts.T. Regions on the reverse strand
// are reported in the doubled coordinate space [halfSize, 2*halfSize),
// matching the convention InferOrientation assumes.
func (b Backend) AlignCore(opts *rapi.Options, ref *rapi.Reference, seq []byte) ([]backend.CandidateRegion, error) {
	idx, ok := backendIndex(ref)
	if !ok {
		return nil, rapi.Errorf(rapi.TypeError, "wfa: reference was not loaded by this backend")
	}

	rc := make([]byte, len(seq))
	copy(rc, seq)
	if err := rapi.RevComp(rc); err != nil {
		return nil, rapi.Wrap(rapi.GenericError, err, "wfa: failed to reverse complement read")
	}

	var halfSize int64
	for _, r := range idx.recs {
		halfSize += r.length
	}

	var regions []backend.CandidateRegion
	var offset int64
	var buf []byte
	for i, r := range idx.recs {
		var err error
		buf, err = idx.sequence(i, buf)
		if err != nil {
			return nil, rapi.Wrap(rapi.GenericError, err, "wfa: failed to read contig sequence")
		}

		if rg, score, ok := alignOne(opts, seq, buf); ok {
			regions = append(regions, backend.CandidateRegion{
				Score:     score,
				RefBegin:  offset + rg.begin,
				RefEnd:    offset + rg.end,
				Sub:       -1,
				Secondary: -1,
				SeedCov:   len(seq),
			})
		}
		if rg, score, ok := alignOne(opts, rc, buf); ok {
			regions = append(regions, backend.CandidateRegion{
				Score:     score,
				RefBegin:  halfSize + offset + rg.begin,
				RefEnd:    halfSize + offset + rg.end,
				Sub:       -1,
				Secondary: -1,
				SeedCov:   len(seq),
			})
		}
		offset += r.length
	}
	return regions, nil
}

type matchRange struct{ begin, end int64 }

// alignOne wavefront-aligns seq against the whole of ref and reports
// the matched target window and an approximate affine score (positive,
// higher is better) when it clears opts.T.
func alignOne(opts *rapi.Options, seq, ref []byte) (matchRange, int, bool) {
	if len(seq) == 0 || len(ref) == 0 {
		return matchRange{}, 0, false
	}
	aligner := swfa.New(penalties(opts), &swfa.Options{GlobalAlignment: false})
	defer swfa.RecycleAligner(aligner)

	res, err := aligner.Align(seq, ref)
	if err != nil {
		return matchRange{}, 0, false
	}
	score := opts.Match*int(res.AlignLen) - int(res.Score)
	if score < opts.T {
		return matchRange{}, 0, false
	}
	return matchRange{begin: int64(res.TBegin - 1), end: int64(res.TEnd)}, score, true
}

// MarkPrimarySE sorts regions by descending score, marks the best as
// primary and every other region as secondary to it, and raises the
// primary's Sub to the best competing score (a simplified
// mem_mark_primary_se with no mask-level test for distinct loci).
func (Backend) MarkPrimarySE(opts *rapi.Options, regions []backend.CandidateRegion, id uint64) {
	sortRegionsByScore(regions)
	for i := range regions {
		regions[i].Secondary = -1
		if i > 0 {
			regions[i].Secondary = 0
			if regions[0].Sub < regions[i].Score {
				regions[0].Sub = regions[i].Score
			}
		}
	}
}

func sortRegionsByScore(regions []backend.CandidateRegion) {
	for i := 1; i < len(regions); i++ {
		for j := i; j > 0 && regions[j].Score > regions[j-1].Score; j-- {
			regions[j], regions[j-1] = regions[j-1], regions[j]
		}
	}
}

// MateSW re-aligns mateSeq against the contig holding region, within
// opts.MaxIns bases on either side of it, widened to the largest High
// bound of any non-failed pes entry when that is larger. Only regions
// whose RefBegin lies in the forward-strand half of the coordinate
// space fall inside a contig; any other region yields no rescue.
func (b Backend) MateSW(opts *rapi.Options, ref *rapi.Reference, pes *rapi.PEStats, region backend.CandidateRegion, mateSeq []byte) ([]backend.CandidateRegion, error) {
	idx, ok := backendIndex(ref)
	if !ok {
		return nil, rapi.Errorf(rapi.TypeError, "wfa: reference was not loaded by this backend")
	}
	var maxWindow int64 = int64(opts.MaxIns)
	for _, s := range pes {
		if !s.Failed && s.High > maxWindow {
			maxWindow = s.High
		}
	}

	var offset int64
	var buf []byte
	for i, r := range idx.recs {
		if region.RefBegin >= offset && region.RefBegin < offset+r.length {
			lo := region.RefBegin - offset - maxWindow
			if lo < 0 {
				lo = 0
			}
			hi := region.RefEnd - offset + maxWindow
			if hi > r.length {
				hi = r.length
			}
			var err error
			buf, err = idx.sequence(i, buf)
			if err != nil {
				return nil, rapi.Wrap(rapi.GenericError, err, "wfa: failed to read contig sequence")
			}
			window := buf[lo:hi]
			if rg, score, ok := alignOne(opts, mateSeq, window); ok {
				return []backend.CandidateRegion{{
					Score:     score,
					RefBegin:  offset + lo + rg.begin,
					RefEnd:    offset + lo + rg.end,
					Sub:       -1,
					Secondary: -1,
					SeedCov:   len(mateSeq),
				}}, nil
			}
			return nil, nil
		}
		offset += r.length
	}
	return nil, nil
}

// Pair picks the highest-scoring consistent pairing between regionsA
// and regionsB whose orientation and distance are not flagged Failed
// in pes, a simplified mem_pair.
func (Backend) Pair(opts *rapi.Options, ref *rapi.Reference, pes *rapi.PEStats, regionsA, regionsB []backend.CandidateRegion, id uint64) (backend.PairResult, error) {
	idx, ok := backendIndex(ref)
	if !ok {
		return backend.PairResult{}, rapi.Errorf(rapi.TypeError, "wfa: reference was not loaded by this backend")
	}
	var halfSize int64
	for _, r := range idx.recs {
		halfSize += r.length
	}

	best := -1
	bestI, bestJ := 0, 0
	secondBest := -1
	nSub := 0
	for i, a := range regionsA {
		for j, b := range regionsB {
			d, dist := orientationOf(halfSize, a.RefBegin, b.RefBegin)
			stat := pes[d]
			if stat.Failed || dist < stat.Low || dist > stat.High {
				continue
			}
			score := a.Score + b.Score
			if score > best {
				secondBest = best
				best = score
				bestI, bestJ = i, j
			} else if score > secondBest {
				secondBest = score
				nSub++
			}
		}
	}
	if best < 0 {
		return backend.PairResult{}, nil
	}
	if secondBest < 0 {
		secondBest = 0
	}
	return backend.PairResult{O: best, Subo: secondBest, NSub: nSub, Z: [2]int{bestI, bestJ}}, nil
}

// Reg2Aln re-aligns seq against the contig window region identifies to
// recover a CIGAR and MD string, the lazy "convert candidate into a
// concrete placement" step every engine defers to pass 2.
func (b Backend) Reg2Aln(opts *rapi.Options, ref *rapi.Reference, seq []byte, region *backend.CandidateRegion) (backend.ConcreteAln, error) {
	if region == nil {
		return backend.ConcreteAln{RID: -1, Sub: -1}, nil
	}
	idx, ok := backendIndex(ref)
	if !ok {
		return backend.ConcreteAln{}, rapi.Errorf(rapi.TypeError, "wfa: reference was not loaded by this backend")
	}

	var halfSize int64
	for _, r := range idx.recs {
		halfSize += r.length
	}
	isRev := region.RefBegin >= halfSize
	begin, end := region.RefBegin, region.RefEnd
	if isRev {
		begin -= halfSize
		end -= halfSize
	}

	var offset int64
	for i, r := range idx.recs {
		if begin >= offset && begin < offset+r.length {
			buf, err := idx.sequence(i, nil)
			if err != nil {
				return backend.ConcreteAln{}, rapi.Wrap(rapi.GenericError, err, "wfa: failed to read contig sequence")
			}
			window := buf[begin-offset : end-offset]

			q := seq
			if isRev {
				q = make([]byte, len(seq))
				copy(q, seq)
				if err := rapi.RevComp(q); err != nil {
					return backend.ConcreteAln{}, rapi.Wrap(rapi.GenericError, err, "wfa: failed to reverse complement read")
				}
			}
			aligner := swfa.New(penalties(opts), &swfa.Options{GlobalAlignment: false})
			defer swfa.RecycleAligner(aligner)
			res, err := aligner.Align(q, window)
			if err != nil {
				return backend.ConcreteAln{}, rapi.Wrap(rapi.GenericError, err, "wfa: alignment failed during reg2aln")
			}
			cigar, md, nm := cigarAndMD(res, q, window)
			score := opts.Match*int(res.AlignLen) - int(res.Score)
			return backend.ConcreteAln{
				RID:   i,
				Pos:   begin - offset + int64(res.TBegin-1),
				IsRev: isRev,
				Cigar: cigar,
				MD:    md,
				NM:    nm,
				Score: score,
				Sub:   region.Sub,
			}, nil
		}
		offset += r.length
	}
	return backend.ConcreteAln{}, rapi.Errorf(rapi.GenericError, "wfa: region outside any contig")
}

// ApproxMapQSE estimates single-end mapQ from the gap between a
// region's score and its recorded sub-optimal score, mem_approx_mapq_se
// without the identity/length correction term.
func (Backend) ApproxMapQSE(opts *rapi.Options, region backend.CandidateRegion) int {
	if region.Secondary >= 0 {
		return 0
	}
	diff := region.Score - region.Sub
	if diff < 0 {
		diff = 0
	}
	q := int(6.02*float64(diff)/float64(opts.Match) + 0.499)
	if q > 60 {
		q = 60
	}
	return q
}

func (Backend) PEStat(opts *rapi.Options, refHalfSize int64, regions [][]backend.CandidateRegion) rapi.PEStats {
	var pes rapi.PEStats
	var sums [4]float64
	var sqSums [4]float64
	var counts [4]int

	for i := 0; i+1 < len(regions); i += 2 {
		a, b := regions[i], regions[i+1]
		if len(a) == 0 || len(b) == 0 {
			continue
		}
		d, dist := orientationOf(refHalfSize, a[0].RefBegin, b[0].RefBegin)
		x := float64(dist)
		sums[d] += x
		sqSums[d] += x * x
		counts[d]++
	}
	for d := 0; d < 4; d++ {
		if counts[d] < 8 {
			pes[d].Failed = true
			continue
		}
		n := float64(counts[d])
		mean := sums[d] / n
		variance := sqSums[d]/n - mean*mean
		if variance < 0 {
			variance = 0
		}
		std := sqrtApprox(variance)
		pes[d].Average = mean
		pes[d].StdDev = std
		lo := mean - 4*std
		if lo < 0 {
			lo = 0
		}
		pes[d].Low = int64(lo)
		pes[d].High = int64(mean + 4*std)
	}
	return pes
}

func sqrtApprox(x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := x
	for i := 0; i < 20; i++ {
		z -= (z*z - x) / (2 * z)
	}
	return z
}

func (Backend) MapQCoefA() float64 { return 1.0 }

func orientationOf(halfSize int64, b1, b2 int64) (rapi.Orientation, int64) {
	r1 := b1 >= halfSize
	r2 := b2 >= halfSize
	var p2 int64
	if r1 == r2 {
		p2 = b2
	} else {
		p2 = (halfSize << 1) - 1 - b2
	}
	var dist int64
	if p2 > b1 {
		dist = p2 - b1
	} else {
		dist = b1 - p2
	}
	var sameStrand, forward int
	if r1 != r2 {
		sameStrand = 1
	}
	if p2 > b1 {
		forward = 0
	} else {
		forward = 3
	}
	return rapi.Orientation(sameStrand ^ forward), dist
}

func backendIndex(ref *rapi.Reference) (*Index, bool) {
	idx, ok := ref.Handle().(*Index)
	return idx, ok
}

// cigarAndMD derives a SAM CIGAR and MD string from a processed WFA
// alignment result, folding the library's 'X' mismatch op into 'M'
// (rapi has no distinct mismatch op, matching SAM's default ops).
func cigarAndMD(res *swfa.AlignmentResult, q, t []byte) (rapi.Cigar, string, int) {
	cigarStr := res.CIGAR()
	cigar, nm := parseWFACigar(cigarStr)

	var md []byte
	var run int
	qi, ti := res.QBegin-1, res.TBegin-1
	for _, op := range cigar {
		switch op.Op {
		case rapi.CigarMatch:
			for k := 0; k < int(op.Len); k++ {
				if q[qi] == t[ti] {
					run++
				} else {
					md = appendMDRun(md, run)
					run = 0
					md = append(md, t[ti])
				}
				qi++
				ti++
			}
		case rapi.CigarInsertion:
			qi += int(op.Len)
		case rapi.CigarDeletion:
			md = appendMDRun(md, run)
			run = 0
			md = append(md, '^')
			md = append(md, t[ti:ti+int(op.Len)]...)
			ti += int(op.Len)
		}
	}
	md = appendMDRun(md, run)
	return cigar, string(md), nm
}

func appendMDRun(md []byte, run int) []byte {
	return append(md, []byte(itoa(run))...)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func parseWFACigar(s string) (rapi.Cigar, int) {
	var cigar rapi.Cigar
	var nm int
	var n int
	for _, c := range s {
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			continue
		}
		var opType rapi.CigarOpType
		switch c {
		case 'M':
			opType = rapi.CigarMatch
		case 'X':
			opType = rapi.CigarMatch
			nm += n
		case 'I':
			opType = rapi.CigarInsertion
			nm += n
		case 'D':
			opType = rapi.CigarDeletion
			nm += n
		default:
			opType = rapi.CigarMatch
		}
		op, err := rapi.NewCigarOp(opType, n)
		if err == nil {
			cigar = append(cigar, op)
		}
		n = 0
	}
	return cigar, nm
}
