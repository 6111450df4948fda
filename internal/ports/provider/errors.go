package provider

import "errors"

// Taxonomía de fallas de provider, por etapa del fetch.
// Los adapters envuelven con fmt.Errorf("%w: ...") y los callers
// discriminan con errors.Is. Todas estas fallas son culpa del
// upstream, no del caller: el handler las mapea a 500.
var (
	// ErrAPIRequest: el request no llegó al upstream (red, DNS, timeout).
	ErrAPIRequest = errors.New("error during request to animal API")

	// ErrAPIResponse: el upstream respondió con status no-2xx.
	ErrAPIResponse = errors.New("request to animal API failed")

	// ErrToText: no se pudo materializar el body de la respuesta.
	ErrToText = errors.New("error fetching response text")

	// ErrDeserialization: el body no matchea el shape JSON esperado.
	ErrDeserialization = errors.New("error deserializing json")
)
