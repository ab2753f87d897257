package main

import (
	"fmt"
	"math/rand"
	"strings"
)

// requestGenerator emits synthetic request lines shaped like real API
// traffic: volatile identifiers in paths and query values mixed with
// stable endpoints that should survive clustering unchanged.
type requestGenerator struct {
	rng *rand.Rand
}

func newRequestGenerator(seed int64) *requestGenerator {
	return &requestGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces a single random request line.
func (g *requestGenerator) Generate() string {
	shapes := []func() string{
		g.sessionRequest,
		g.userRequest,
		g.orderRequest,
		g.documentRequest,
		g.eventRequest,
		g.healthRequest,
	}
	return shapes[g.rng.Intn(len(shapes))]()
}

// GenerateBatch produces n random request lines.
func (g *requestGenerator) GenerateBatch(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = g.Generate()
	}
	return lines
}

func (g *requestGenerator) uuid() string {
	const hex = "0123456789abcdef"
	var sb strings.Builder
	for i := 0; i < 32; i++ {
		if i == 8 || i == 12 || i == 16 || i == 20 {
			sb.WriteByte('-')
		}
		sb.WriteByte(hex[g.rng.Intn(16)])
	}
	return sb.String()
}

func (g *requestGenerator) numericID() string {
	return fmt.Sprintf("%d", 1000000+g.rng.Intn(99000000))
}

func (g *requestGenerator) hexHash() string {
	const hex = "0123456789abcdef"
	var sb strings.Builder
	for i := 0; i < 24; i++ {
		sb.WriteByte(hex[g.rng.Intn(16)])
	}
	return sb.String()
}

func (g *requestGenerator) queryToken() string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteByte(chars[g.rng.Intn(len(chars))])
	}
	return sb.String()
}

func (g *requestGenerator) method() string {
	methods := []string{"GET", "GET", "GET", "POST", "PUT", "DELETE"}
	return methods[g.rng.Intn(len(methods))]
}

func (g *requestGenerator) sessionRequest() string {
	return fmt.Sprintf("GET https://api.example.com/v1/sessions/%s?token=%s", g.uuid(), g.queryToken())
}

func (g *requestGenerator) userRequest() string {
	actions := []string{"profile", "settings", "orders", "notifications"}
	action := actions[g.rng.Intn(len(actions))]
	return fmt.Sprintf("%s https://api.example.com/v1/users/%s/%s", g.method(), g.uuid(), action)
}

func (g *requestGenerator) orderRequest() string {
	actions := []string{"items", "status", "invoice", "tracking"}
	action := actions[g.rng.Intn(len(actions))]
	return fmt.Sprintf("GET https://api.example.com/v2/orders/%s/%s", g.numericID(), action)
}

func (g *requestGenerator) documentRequest() string {
	kinds := []string{"reports", "invoices", "contracts"}
	kind := kinds[g.rng.Intn(len(kinds))]
	return fmt.Sprintf("GET https://files.example.com/documents/%s/%s", kind, g.hexHash())
}

func (g *requestGenerator) eventRequest() string {
	return fmt.Sprintf("POST https://api.example.com/v1/events?ts=%d&signature=%s",
		1700000000+g.rng.Intn(100000000), g.hexHash())
}

func (g *requestGenerator) healthRequest() string {
	endpoints := []string{"/health", "/ready", "/metrics"}
	return "GET https://api.example.com" + endpoints[g.rng.Intn(len(endpoints))]
}
