package provider

import "context"

// FactProvider trae un fact desde el API upstream de una especie.
// Cada implementación conoce su endpoint y el shape JSON particular
// de ese upstream; hacia afuera siempre sale texto plano.
type FactProvider interface {
	FetchFact(ctx context.Context) (string, error)
}
