package facts

import (
	"errors"
	"fmt"
	"strings"
)

// Animal identifica las especies soportadas.
// Set cerrado, append-only: agregar una especie = una constante,
// una entrada en All() y un provider registrado en el router.
type Animal string

const (
	AnimalCat Animal = "cat"
	AnimalDog Animal = "dog"
)

// SelectorAny no es una especie: es la directiva "elegí una al azar".
const SelectorAny = "any"

// All devuelve las especies registradas, en orden estable.
// El orden solo importa para armar el pool del sorteo de "any".
func All() []Animal {
	return []Animal{AnimalCat, AnimalDog}
}

// String devuelve el selector canónico (lowercase) de la especie.
func (a Animal) String() string { return string(a) }

var ErrUnsupportedAnimal = errors.New("not a supported animal")

// ParseAnimal convierte un selector del caller en una especie.
// Case-insensitive. Un selector desconocido envuelve ErrUnsupportedAnimal
// con el valor recibido en el mensaje.
func ParseAnimal(s string) (Animal, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "cat":
		return AnimalCat, nil
	case "dog":
		return AnimalDog, nil
	default:
		return "", fmt.Errorf("'%s' is %w", v, ErrUnsupportedAnimal)
	}
}

// Fact es el resultado de una resolución: el texto y la especie
// efectivamente usada. Tras "any" el caller ve qué especie salió.
type Fact struct {
	Text   string
	Animal Animal
}
