package provider

import (
	"context"
	_ "embed"
	"os"
	"slices"

	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/target"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

var (
	_ shared.CatalogProvider = (*Static)(nil)
	_ shared.PaymentProvider = (*Static)(nil)
	_ shared.AddOnCatalog    = (*Static)(nil)
)

type walletEntry struct {
	payment.Source `yaml:",inline"`
	CoversKinds    []target.Kind `yaml:"covers_kinds"`
}

type Seed struct {
	Targets []target.Target `yaml:"targets"`
	Wallet  []walletEntry   `yaml:"wallet"`
	AddOns  []addon.Item    `yaml:"add_ons"`
}

// Static serves catalog, wallet and add-on data from a YAML seed. Every user
// holds the same wallet; coverage is decided per target kind.
type Static struct {
	targets map[string]target.Target
	wallet  []walletEntry
	addOns  []addon.Item
}

func ParseSeed(raw []byte) (*Static, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, errs.Wrap(err, "parse seed")
	}

	s := &Static{
		targets: make(map[string]target.Target, len(seed.Targets)),
		wallet:  seed.Wallet,
		addOns:  seed.AddOns,
	}
	for _, t := range seed.Targets {
		if err := t.Validate(); err != nil {
			return nil, errs.Wrapf(err, "seed target %q", t.ID)
		}
		s.targets[t.ID] = t
	}
	for _, w := range seed.Wallet {
		if err := w.Validate(); err != nil {
			return nil, errs.Wrapf(err, "seed source %q", w.ID)
		}
	}
	return s, nil
}

// Load reads the seed at path, or the embedded default when path is empty.
func Load(path string) (*Static, error) {
	if path == "" {
		return ParseSeed(defaultSeed)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read seed %s", path)
	}
	return ParseSeed(raw)
}

func (s *Static) FetchBookingTarget(ctx context.Context, targetID string) (target.Target, error) {
	if err := ctx.Err(); err != nil {
		return target.Target{}, err
	}
	t, ok := s.targets[targetID]
	if !ok {
		return target.Target{}, errs.Wrapf(errs.ErrTargetNotFound, "target %q", targetID)
	}
	return t, nil
}

func (s *Static) FetchPaymentSources(ctx context.Context, _ uuid.UUID, targetID string) ([]payment.Source, error) {
	t, err := s.FetchBookingTarget(ctx, targetID)
	if err != nil {
		return nil, err
	}

	sources := make([]payment.Source, 0, len(s.wallet))
	for _, w := range s.wallet {
		src := w.Source
		src.Covers = slices.Contains(w.CoversKinds, t.Kind)
		if src.Remaining != nil {
			r := *src.Remaining
			src.Remaining = &r
			if r == 0 {
				src.Covers = false
			}
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func (s *Static) FetchAddOns(ctx context.Context, _ target.Target) ([]addon.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.addOns), nil
}
