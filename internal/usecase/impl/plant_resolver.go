package impl

import (
	"context"
	"strings"
	"unicode"

	"leafcare/internal/domain/entity"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/repository"
	"leafcare/internal/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// plantResolver maps a human-entered plant name to a stored plant.
// It tries, in order: whole name ignoring case, substring ignoring case, and finally
// a scan comparing names with diacritics stripped, whitespace collapsed and case folded.
type plantResolver struct {
	plants repository.PlantRepository
}

func newPlantResolver(plants repository.PlantRepository) *plantResolver {
	return &plantResolver{plants: plants}
}

// Resolve returns the first match, or nil when no tier matches.
func (r *plantResolver) Resolve(ctx context.Context, name string) (*entity.Plant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	plant, err := r.plants.FindByNameFold(ctx, name)
	if err == nil {
		return plant, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	plant, err = r.plants.FindByNameContains(ctx, name)
	if err == nil {
		return plant, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	plants, err := r.plants.FindAll(ctx, repository.PlantFilter{})
	if err != nil {
		return nil, err
	}

	wanted := normalizeName(name)
	for _, candidate := range plants {
		if normalizeName(candidate.Name) == wanted {
			return candidate, nil
		}
	}

	return nil, nil
}

// Require is Resolve for write paths: a miss becomes NOT_FOUND naming the value.
func (r *plantResolver) Require(ctx context.Context, name string) (*entity.Plant, error) {
	plant, err := r.Resolve(ctx, name)
	if err != nil {
		return nil, domainerrors.Unexpected(err, "failed to look up plant by name")
	}
	if plant == nil {
		return nil, errors.WithStack(domainerrors.NotFound("plant %q not found", strings.TrimSpace(name)))
	}

	return plant, nil
}

// normalizeName strips combining marks, collapses whitespace and case-folds s.
func normalizeName(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}

	return cases.Fold().String(strings.Join(strings.Fields(stripped), " "))
}
