// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package check

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/fast-version/pkg/defaults"
	fverrors "github.com/NVIDIA/fast-version/pkg/errors"
	"github.com/NVIDIA/fast-version/pkg/header"
	"github.com/NVIDIA/fast-version/pkg/requirement"
	"github.com/NVIDIA/fast-version/pkg/version"
)

const ctxCheckEvery = 1024

// SelfCheckOptions configures SelfCheck. Zero values select
// defaults.SelfCheckSamples, a random seed and all domains.
type SelfCheckOptions struct {
	Samples int
	Seed    uint64
	Domains []version.Domain
}

// DomainReport is the self-check outcome for one domain.
type DomainReport struct {
	Domain             version.Domain `json:"domain" yaml:"domain"`
	Samples            int            `json:"samples" yaml:"samples"`
	ValidSamples       int            `json:"validSamples" yaml:"validSamples"`
	Requirements       int            `json:"requirements" yaml:"requirements"`
	ValidDisagreements int            `json:"validDisagreements" yaml:"validDisagreements"`
	FitsDisagreements  int            `json:"fitsDisagreements" yaml:"fitsDisagreements"`
	FirstMismatch      string         `json:"firstMismatch,omitempty" yaml:"firstMismatch,omitempty"`
}

// Agree reports whether no sample disagreed.
func (r DomainReport) Agree() bool {
	return r.ValidDisagreements == 0 && r.FitsDisagreements == 0
}

// SelfCheckReport compares the scalar and lanes backends on random
// samples. Reports are in the order of the requested domains.
type SelfCheckReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Backend  string         `json:"backend" yaml:"backend"`
	Seed     uint64         `json:"seed" yaml:"seed"`
	Samples  int            `json:"samples" yaml:"samples"`
	Agree    bool           `json:"agree" yaml:"agree"`
	Duration string         `json:"duration" yaml:"duration"`
	Domains  []DomainReport `json:"domains" yaml:"domains"`
}

// SelfCheck samples triples and requirements in every requested domain and
// counts the samples on which the two backends disagree, for validity and
// for fits. Sampling favors the sentinels and their neighbours. A run with
// the same seed and options repeats exactly.
func SelfCheck(ctx context.Context, opts SelfCheckOptions) (*SelfCheckReport, error) {
	start := time.Now()

	samples := opts.Samples
	if samples <= 0 {
		samples = defaults.SelfCheckSamples
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	domains := opts.Domains
	if len(domains) == 0 {
		domains = version.Domains()
	}

	runners := make([]domainRunner, len(domains))
	for i, d := range domains {
		run, err := runnerFor(d)
		if err != nil {
			return nil, fverrors.Wrap(fverrors.ErrCodeInvalidRequest, "invalid self-check domain", err)
		}
		runners[i] = run
	}

	reports := make([]DomainReport, len(domains))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaults.CheckConcurrency)
	for i, run := range runners {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, uint64(i)))
			report, err := run(gctx, rng, samples)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fverrors.WrapContext("self-check", err)
	}

	report := &SelfCheckReport{
		Backend:  version.Backend,
		Seed:     seed,
		Samples:  samples,
		Agree:    true,
		Duration: time.Since(start).String(),
		Domains:  reports,
	}
	for _, r := range reports {
		if !r.Agree() {
			report.Agree = false
			slog.Error("backends disagree",
				"domain", r.Domain,
				"validDisagreements", r.ValidDisagreements,
				"fitsDisagreements", r.FitsDisagreements,
				"firstMismatch", r.FirstMismatch,
			)
		}
		selfCheckDisagreements.WithLabelValues(r.Domain.String(), "valid").Add(float64(r.ValidDisagreements))
		selfCheckDisagreements.WithLabelValues(r.Domain.String(), "fits").Add(float64(r.FitsDisagreements))
	}
	report.Init(header.KindSelfCheckReport, "")

	slog.Debug("self-check complete", "seed", seed, "samples", samples, "domains", len(domains), "agree", report.Agree)
	return report, nil
}

type domainRunner func(ctx context.Context, rng *rand.Rand, samples int) (DomainReport, error)

func runnerFor(d version.Domain) (domainRunner, error) {
	switch d {
	case version.DomainInt8:
		return selfCheckDomain[int8], nil
	case version.DomainInt16:
		return selfCheckDomain[int16], nil
	case version.DomainInt32:
		return selfCheckDomain[int32], nil
	case version.DomainInt64:
		return selfCheckDomain[int64], nil
	case version.DomainInt:
		return selfCheckDomain[int], nil
	case version.DomainUint8:
		return selfCheckDomain[uint8], nil
	case version.DomainUint16:
		return selfCheckDomain[uint16], nil
	case version.DomainUint32:
		return selfCheckDomain[uint32], nil
	case version.DomainUint64:
		return selfCheckDomain[uint64], nil
	case version.DomainUint:
		return selfCheckDomain[uint], nil
	default:
		return nil, fmt.Errorf("%w: %q", version.ErrUnknownDomain, d)
	}
}

func selfCheckDomain[N version.Number](ctx context.Context, rng *rand.Rand, samples int) (DomainReport, error) {
	s := sampler[N]{rng: rng}
	report := DomainReport{Domain: version.DomainOf[N](), Samples: samples}

	for i := range samples {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return DomainReport{}, err
			}
		}

		v := s.triple()
		valid := version.ValidScalar(v[0], v[1], v[2])
		if valid {
			report.ValidSamples++
		}
		if valid != version.ValidLanes(v[0], v[1], v[2]) {
			report.ValidDisagreements++
			report.noteMismatch(fmt.Sprintf("valid %v", v))
		}

		lower, upper := s.triple(), s.triple()
		if r, ok := s.requirement(); ok {
			report.Requirements++
			lower, upper = r.Lower(), r.Upper()
		}
		if requirement.FitsScalar(v, lower, upper) != requirement.FitsLanes(v, lower, upper) {
			report.FitsDisagreements++
			report.noteMismatch(fmt.Sprintf("fits %v in [%v, %v]", v, lower, upper))
		}
	}
	return report, nil
}

func (r *DomainReport) noteMismatch(desc string) {
	if r.FirstMismatch == "" {
		r.FirstMismatch = desc
	}
}

type sampler[N version.Number] struct {
	rng *rand.Rand
}

func (s sampler[N]) field() N {
	switch s.rng.IntN(6) {
	case 0:
		return version.Min[N]()
	case 1:
		return version.Max[N]()
	case 2:
		return version.Min[N]() + version.One[N]()
	case 3:
		return version.Max[N]() - version.One[N]()
	default:
		return N(s.rng.Uint64())
	}
}

func (s sampler[N]) triple() [3]N {
	return [3]N{s.field(), s.field(), s.field()}
}

func (s sampler[N]) clause() (requirement.Clause[N], error) {
	kind := requirement.ClauseKind(1 + s.rng.IntN(int(requirement.ClauseLesserOrEqualPatch)))
	t := s.triple()
	return requirement.NewClause(kind, t[0], t[1], t[2])
}

// requirement builds a random Pure or Composite requirement half of the
// time. Build failures are expected and reported as !ok.
func (s sampler[N]) requirement() (requirement.Requirement[N], bool) {
	if s.rng.IntN(2) == 0 {
		return requirement.Requirement[N]{}, false
	}

	first, err := s.clause()
	if err != nil {
		return requirement.Requirement[N]{}, false
	}
	spec := requirement.Pure(first)
	if s.rng.IntN(2) == 0 {
		second, err := s.clause()
		if err != nil {
			return requirement.Requirement[N]{}, false
		}
		spec = requirement.Composite(first, second)
	}

	r, err := requirement.Build(spec)
	return r, err == nil
}
