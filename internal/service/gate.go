package service

import "strings"

// A query mentioning a tourism term but no island is only accepted when
// it is short: long prose that merely brushes a tourism word in passing
// is most likely off-topic.
const maxTourismOnlyTokens = 30

// tourismTerms are the Spanish tourism keywords the assistant recognises.
var tourismTerms = []string{
	"turista", "turismo", "visita", "hotel", "ocupación",
	"viaje", "estancia", "pasajero", "ingreso", "gasto",
	"alojamiento", "estadística", "dato", "cuántos", "cuánto",
}

// islandTerms cover the archipelago, the seven islands and the generic word.
var islandTerms = []string{
	"canarias", "tenerife", "gran canaria", "lanzarote",
	"fuerteventura", "la palma", "la gomera", "el hierro", "isla",
}

// DomainGate decides whether a question is about Canary Islands tourism.
// It is stateless and side-effect free: pure keyword membership, no ML,
// no external calls.
type DomainGate struct{}

// NewDomainGate creates a new domain gate
func NewDomainGate() *DomainGate {
	return &DomainGate{}
}

// InDomain reports whether the message looks like a Canary Islands
// tourism question. Any island term accepts outright; a tourism term
// accepts only short messages.
func (g *DomainGate) InDomain(message string) bool {
	lower := strings.ToLower(message)

	for _, term := range islandTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}

	hasTourism := false
	for _, term := range tourismTerms {
		if strings.Contains(lower, term) {
			hasTourism = true
			break
		}
	}

	return hasTourism && len(strings.Fields(message)) < maxTourismOnlyTokens
}
