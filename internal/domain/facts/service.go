package facts

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"animal-facts/internal/ports/provider"
)

// MaxSelectorLen acota el query param animal.
const MaxSelectorLen = 24

var (
	ErrMissingAnimal   = errors.New("animal parameter is required")
	ErrSelectorTooLong = fmt.Errorf("animal parameter exceeds %d characters", MaxSelectorLen)
)

// Service resuelve un selector a exactamente una especie y delega el
// fetch en el provider registrado para ella. Un upstream call por
// request: sin retries, sin fan-out.
type Service struct {
	providers map[Animal]provider.FactProvider

	// pick sortea un índice en [0, n). Inyectable para tests.
	pick func(n int) int
}

func NewService(providers map[Animal]provider.FactProvider) *Service {
	return &Service{
		providers: providers,
		pick:      rand.Intn,
	}
}

// Resolve valida el selector, resuelve la directiva "any" y trae el fact.
// Errores de validación cortan antes de tocar el upstream.
func (s *Service) Resolve(ctx context.Context, selector string) (Fact, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return Fact{}, ErrMissingAnimal
	}
	if len(selector) > MaxSelectorLen {
		return Fact{}, ErrSelectorTooLong
	}

	animal, err := s.resolveAnimal(selector)
	if err != nil {
		return Fact{}, err
	}

	p, ok := s.providers[animal]
	if !ok {
		// catálogo y registry desincronizados: falla del server, no del caller
		return Fact{}, fmt.Errorf("no provider registered for %q", animal)
	}

	text, err := p.FetchFact(ctx)
	if err != nil {
		return Fact{}, err
	}

	return Fact{Text: text, Animal: animal}, nil
}

func (s *Service) resolveAnimal(selector string) (Animal, error) {
	if strings.EqualFold(selector, SelectorAny) {
		return s.randomAnimal(), nil
	}
	return ParseAnimal(selector)
}

// randomAnimal sortea uniforme sobre All(). Si el sorteo no produce
// un índice válido cae determinísticamente a Dog.
func (s *Service) randomAnimal() Animal {
	kinds := All()
	if len(kinds) == 0 {
		return AnimalDog
	}
	i := s.pick(len(kinds))
	if i < 0 || i >= len(kinds) {
		return AnimalDog
	}
	return kinds[i]
}
