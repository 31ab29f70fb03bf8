// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/biogo/rapi"
	"github.com/biogo/rapi/backend"
)

// pairEndID packs a fragment index and an end index (0 or 1) into the
// deterministic tie-break identity MarkPrimarySE and Pair expect, the
// same id<<1|end scheme the original uses.
func pairEndID(fragID uint64, end int) uint64 {
	return fragID<<1 | uint64(end)
}

// rescue runs mate-SW for both ends of a fragment, appending any
// regions it discovers to the opposite end's region slice. This is the
// Go shape of the rescue loop at the top of _bwa_mem_pe.
func rescue(opts *rapi.Options, ref *rapi.Reference, pes *rapi.PEStats, seqs [2][]byte, regions *[2][]backend.CandidateRegion, be backend.Backend) error {
	if opts.NoRescue {
		return nil
	}
	for i := 0; i < 2; i++ {
		a := regions[i]
		if len(a) == 0 {
			continue
		}
		best := a[0].Score
		j := 0
		for _, r := range a {
			if j >= opts.MaxMateSW {
				break
			}
			if r.Score < best-opts.PenUnpaired {
				break
			}
			found, err := be.MateSW(opts, ref, pes, r, seqs[1-i])
			if err != nil {
				return rapi.Wrap(rapi.GenericError, err, "engine: mate-SW rescue failed")
			}
			regions[1-i] = append(regions[1-i], found...)
			j++
		}
	}
	return nil
}

// isMulti reports whether a has a second-best non-secondary region that
// still clears opts.T, i.e. the end is ambiguous even after rescue.
func isMulti(opts *rapi.Options, a []backend.CandidateRegion) bool {
	for j := 1; j < len(a); j++ {
		if a[j].Secondary < 0 && a[j].Score >= opts.T {
			return true
		}
	}
	return false
}

// fragmentResult is the pair of per-end alignment lists the finalizer
// produces for one fragment, primary alignment first in each list.
type fragmentResult struct {
	ends [2][]*rapi.Alignment
}

// FinalizePair runs the extend-and-pair pass for one paired-end
// fragment: rescue, primary marking, pairing, mapQ computation, and
// conversion of the winning regions into rapi.Alignment records. When
// opts.OutputAll is set and the fragment is finished by the unpaired
// path, each end's remaining regions are converted too; a fragment
// finished by the paired path carries only one alignment per end
// whatever opts.OutputAll says. It is the Go shape of _bwa_mem_pe.
func FinalizePair(opts *rapi.Options, ref *rapi.Reference, pes *rapi.PEStats, fragID uint64, seqs [2][]byte, regions [2][]backend.CandidateRegion, be backend.Backend) (*fragmentResult, error) {
	if err := rescue(opts, ref, pes, seqs, &regions, be); err != nil {
		return nil, err
	}

	be.MarkPrimarySE(opts, regions[0], pairEndID(fragID, 0))
	be.MarkPrimarySE(opts, regions[1], pairEndID(fragID, 1))

	res := &fragmentResult{}

	if !opts.NoPairing && len(regions[0]) > 0 && len(regions[1]) > 0 {
		pr, err := be.Pair(opts, ref, pes, regions[0], regions[1], fragID)
		if err != nil {
			return nil, rapi.Wrap(rapi.GenericError, err, "engine: pairing failed")
		}
		if pr.O > 0 && !isMulti(opts, regions[0]) && !isMulti(opts, regions[1]) {
			return finishPaired(opts, ref, seqs, regions, pr, res, be)
		}
	}

	return finishUnpaired(opts, ref, pes, seqs, regions, res, be)
}

func finishPaired(opts *rapi.Options, ref *rapi.Reference, seqs [2][]byte, regions [2][]backend.CandidateRegion, pr backend.PairResult, res *fragmentResult, be backend.Backend) (*fragmentResult, error) {
	a := be.MapQCoefA()

	scoreUn := regions[0][0].Score + regions[1][0].Score - opts.PenUnpaired
	subo := pr.Subo
	if scoreUn > subo {
		subo = scoreUn
	}
	qPE := pairedMapQ(pr.O, subo, pr.NSub, a)

	extraFlag := rapi.Flags(0)
	qSE := [2]int{}
	c := [2]backend.CandidateRegion{regions[0][pr.Z[0]], regions[1][pr.Z[1]]}

	if pr.O > scoreUn {
		for i := 0; i < 2; i++ {
			if c[i].Secondary >= 0 {
				c[i].Sub = regions[i][c[i].Secondary].Score
				c[i].Secondary = -2
			}
			qSE[i] = be.ApproxMapQSE(opts, c[i])
		}
		for i := 0; i < 2; i++ {
			if qSE[i] < qPE {
				if qPE < qSE[i]+40 {
					qSE[i] = qPE
				} else {
					qSE[i] = qSE[i] + 40
				}
			}
		}
		extraFlag |= rapi.ProperPair
		for i := 0; i < 2; i++ {
			capq := rawMapQ(c[i].Score-c[i].CSub, a)
			if qSE[i] > capq {
				qSE[i] = capq
			}
		}
	} else {
		pr.Z[0], pr.Z[1] = 0, 0
		c[0], c[1] = regions[0][0], regions[1][0]
		qSE[0] = be.ApproxMapQSE(opts, c[0])
		qSE[1] = be.ApproxMapQSE(opts, c[1])
	}

	for i := 0; i < 2; i++ {
		concrete, err := be.Reg2Aln(opts, ref, seqs[i], &c[i])
		if err != nil {
			return nil, rapi.Wrap(rapi.GenericError, err, "engine: reg2aln failed")
		}
		concrete.MapQ = uint8(clamp(qSE[i], 0, 60))
		aln, err := concreteAlnToAlignment(ref, true, concrete)
		if err != nil {
			return nil, err
		}
		aln.PropPaired = extraFlag&rapi.ProperPair != 0
		res.ends[i] = []*rapi.Alignment{aln}
	}
	return res, nil
}

func finishUnpaired(opts *rapi.Options, ref *rapi.Reference, pes *rapi.PEStats, seqs [2][]byte, regions [2][]backend.CandidateRegion, res *fragmentResult, be backend.Backend) (*fragmentResult, error) {
	var primary [2]*backend.CandidateRegion
	for i := 0; i < 2; i++ {
		if len(regions[i]) > 0 && regions[i][0].Score >= opts.T {
			primary[i] = &regions[i][0]
		}
	}

	properPair := false
	if !opts.NoPairing && primary[0] != nil && primary[1] != nil {
		d, dist := InferOrientation(refHalfSize(ref), primary[0].RefBegin, primary[1].RefBegin)
		stat := pes[d]
		if !stat.Failed && dist >= stat.Low && dist <= stat.High {
			properPair = true
		}
	}

	for i := 0; i < 2; i++ {
		concrete, err := be.Reg2Aln(opts, ref, seqs[i], primary[i])
		if err != nil {
			return nil, rapi.Wrap(rapi.GenericError, err, "engine: reg2aln failed")
		}
		if primary[i] != nil {
			concrete.MapQ = uint8(clamp(be.ApproxMapQSE(opts, *primary[i]), 0, 60))
		}
		aln, err := concreteAlnToAlignment(ref, true, concrete)
		if err != nil {
			return nil, err
		}
		aln.PropPaired = properPair
		res.ends[i] = []*rapi.Alignment{aln}

		if opts.OutputAll {
			for j := 1; j < len(regions[i]); j++ {
				r := regions[i][j]
				secConcrete, err := be.Reg2Aln(opts, ref, seqs[i], &r)
				if err != nil {
					return nil, rapi.Wrap(rapi.GenericError, err, "engine: reg2aln failed for secondary hit")
				}
				secConcrete.MapQ = uint8(clamp(be.ApproxMapQSE(opts, r), 0, 60))
				sec, err := concreteAlnToAlignment(ref, true, secConcrete)
				if err != nil {
					return nil, err
				}
				// r.IsPrimary reflects the backend's own MarkPrimarySE
				// classification: a region it considers an independent
				// (non-dominated) hit renders supplementary at index>0
				// (§4.F/§4.G) rather than secondary.
				sec.Secondary = !r.IsPrimary()
				res.ends[i] = append(res.ends[i], sec)
			}
		}
	}
	return res, nil
}
