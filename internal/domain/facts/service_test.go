package facts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"animal-facts/internal/ports/provider"
)

// -------------------------
// Provider stub
// -------------------------

type stubProvider struct {
	text  string
	err   error
	calls int
}

func (p *stubProvider) FetchFact(ctx context.Context) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.text, nil
}

func newTestService() (*Service, *stubProvider, *stubProvider) {
	cat := &stubProvider{text: "cats sleep a lot"}
	dog := &stubProvider{text: "dogs can smell time"}
	svc := NewService(map[Animal]provider.FactProvider{
		AnimalCat: cat,
		AnimalDog: dog,
	})
	return svc, cat, dog
}

func TestResolve_SupportedSelectors(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []struct {
		selector string
		want     Animal
	}{
		{"cat", AnimalCat},
		{"dog", AnimalDog},
		{"CaT", AnimalCat}, // case-insensitive
		{"DOG", AnimalDog},
	}

	for _, c := range cases {
		f, err := svc.Resolve(context.Background(), c.selector)
		if err != nil {
			t.Fatalf("Resolve(%q): unexpected error: %v", c.selector, err)
		}
		if f.Animal != c.want {
			t.Fatalf("Resolve(%q): animal=%q want %q", c.selector, f.Animal, c.want)
		}
		if f.Text == "" {
			t.Fatalf("Resolve(%q): empty fact", c.selector)
		}
	}
}

func TestResolve_MissingSelector(t *testing.T) {
	svc, cat, dog := newTestService()

	_, err := svc.Resolve(context.Background(), "")
	if !errors.Is(err, ErrMissingAnimal) {
		t.Fatalf("expected ErrMissingAnimal, got %v", err)
	}

	// validación corta antes del upstream
	if cat.calls != 0 || dog.calls != 0 {
		t.Fatalf("expected no upstream calls, got cat=%d dog=%d", cat.calls, dog.calls)
	}
}

func TestResolve_SelectorTooLong(t *testing.T) {
	svc, cat, dog := newTestService()

	long := strings.Repeat("x", MaxSelectorLen+1)
	_, err := svc.Resolve(context.Background(), long)
	if !errors.Is(err, ErrSelectorTooLong) {
		t.Fatalf("expected ErrSelectorTooLong, got %v", err)
	}
	if cat.calls != 0 || dog.calls != 0 {
		t.Fatalf("expected no upstream calls, got cat=%d dog=%d", cat.calls, dog.calls)
	}
}

func TestResolve_UnsupportedAnimal(t *testing.T) {
	svc, cat, dog := newTestService()

	_, err := svc.Resolve(context.Background(), "elephant")
	if !errors.Is(err, ErrUnsupportedAnimal) {
		t.Fatalf("expected ErrUnsupportedAnimal, got %v", err)
	}
	if !strings.Contains(err.Error(), "elephant") {
		t.Fatalf("error should mention the selector, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "not a supported animal") {
		t.Fatalf("unexpected error message %q", err.Error())
	}
	if cat.calls != 0 || dog.calls != 0 {
		t.Fatalf("expected no upstream calls, got cat=%d dog=%d", cat.calls, dog.calls)
	}
}

func TestResolve_Any_CoversAllAnimals(t *testing.T) {
	svc, _, _ := newTestService()

	seen := map[Animal]int{}
	for i := 0; i < 200; i++ {
		f, err := svc.Resolve(context.Background(), "any")
		if err != nil {
			t.Fatalf("Resolve(any): unexpected error: %v", err)
		}
		seen[f.Animal]++
	}

	// uniformidad laxa: cada especie registrada aparece al menos una vez
	for _, a := range All() {
		if seen[a] == 0 {
			t.Fatalf("animal %q never chosen in 200 draws (seen=%v)", a, seen)
		}
	}
	for a := range seen {
		if _, err := ParseAnimal(a.String()); err != nil {
			t.Fatalf("drew unregistered animal %q", a)
		}
	}
}

// El sorteo cae a Dog si el picker no produce un índice válido.
// Comportamiento deliberadamente observado, no una inferencia de intención.
func TestResolve_Any_BadPickerFallsBackToDog(t *testing.T) {
	for _, bad := range []int{-1, len(All())} {
		svc, _, dog := newTestService()
		svc.pick = func(n int) int { return bad }

		f, err := svc.Resolve(context.Background(), "ANY")
		if err != nil {
			t.Fatalf("pick=%d: unexpected error: %v", bad, err)
		}
		if f.Animal != AnimalDog {
			t.Fatalf("pick=%d: expected fallback to dog, got %q", bad, f.Animal)
		}
		if dog.calls != 1 {
			t.Fatalf("pick=%d: expected one dog upstream call, got %d", bad, dog.calls)
		}
	}
}

func TestResolve_ProviderErrorPassesThrough(t *testing.T) {
	svc, cat, _ := newTestService()
	cat.err = provider.ErrAPIResponse

	_, err := svc.Resolve(context.Background(), "cat")
	if !errors.Is(err, provider.ErrAPIResponse) {
		t.Fatalf("expected provider error to pass through, got %v", err)
	}
	if cat.calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", cat.calls)
	}
}

func TestResolve_EchoesResolvedSelector(t *testing.T) {
	svc, _, _ := newTestService()
	svc.pick = func(n int) int { return 0 } // determinista: primer elemento

	f, err := svc.Resolve(context.Background(), "any")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Animal != All()[0] {
		t.Fatalf("expected resolved animal %q, got %q", All()[0], f.Animal)
	}
}
