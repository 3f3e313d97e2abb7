// Package catalog resolves star names to celestial coordinates and
// magnitudes, either from the built-in table or from a SIMBAD TAP
// service.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/litescript/ls-skydome/internal/astro"
	"github.com/litescript/ls-skydome/internal/logging"
)

var (
	// ErrUnknownStar marks a name no resolver source recognizes.
	ErrUnknownStar = errors.New("unknown star")

	// ErrNoneResolved means every requested star failed to resolve.
	ErrNoneResolved = errors.New("no stars resolved")
)

// Resolver turns a star name into coordinates and a magnitude.
type Resolver interface {
	Resolve(ctx context.Context, name string) (astro.Star, error)
}

// Mode selects which resolver sources to use.
type Mode int

const (
	// ModeAuto queries the TAP service and falls back to the built-in
	// table when the network fails.
	ModeAuto Mode = iota
	// ModeBuiltin uses only the built-in table.
	ModeBuiltin
	// ModeTAP uses only the TAP service.
	ModeTAP
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeBuiltin:
		return "builtin"
	case ModeTAP:
		return "tap"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode reads a resolver mode from its config or flag spelling.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "builtin", "offline":
		return ModeBuiltin, nil
	case "tap", "online", "simbad":
		return ModeTAP, nil
	default:
		return ModeAuto, fmt.Errorf("unknown resolver mode %q", s)
	}
}

// ForMode builds the resolver for a mode. TAP options apply to the
// network-backed modes and are ignored for ModeBuiltin.
func ForMode(mode Mode, opts ...TAPOption) Resolver {
	switch mode {
	case ModeBuiltin:
		return Builtin{}
	case ModeTAP:
		return NewTAP(opts...)
	default:
		return Fallback{Primary: NewTAP(opts...), Secondary: Builtin{}}
	}
}

// Fallback tries Primary and, on any failure, retries with Secondary.
type Fallback struct {
	Primary   Resolver
	Secondary Resolver
}

// Resolve implements Resolver.
func (f Fallback) Resolve(ctx context.Context, name string) (astro.Star, error) {
	star, err := f.Primary.Resolve(ctx, name)
	if err == nil {
		return star, nil
	}
	logging.Debug(ctx, "primary resolver failed, falling back",
		zap.String("star", name),
		zap.Error(err),
	)
	return f.Secondary.Resolve(ctx, name)
}

// Member is a resolved star tagged with the figure it belongs to.
type Member struct {
	Star          astro.Star
	Constellation string
}

// ResolveMembers resolves every star of every constellation, keeping
// input order. Unresolvable stars are logged and dropped; only an
// entirely empty result is an error.
func ResolveMembers(ctx context.Context, r Resolver, sets []Constellation) ([]Member, error) {
	var members []Member
	for _, set := range sets {
		for _, name := range set.Stars {
			star, err := r.Resolve(ctx, name)
			if err != nil {
				logging.Warn(ctx, "star not resolved",
					zap.String("star", name),
					zap.String("constellation", set.Name),
					zap.Error(err),
				)
				continue
			}
			members = append(members, Member{Star: star, Constellation: set.Name})
		}
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("resolving %d constellations: %w", len(sets), ErrNoneResolved)
	}
	return members, nil
}
