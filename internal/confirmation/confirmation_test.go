package confirmation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(context.Context, domain.Lead) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeCache struct {
	items  map[string]string
	getErr error
	setErr error
	ttl    time.Duration
}

func newFakeCache() *fakeCache { return &fakeCache{items: map[string]string{}} }

func (c *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.items[key]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.items[key] = value
	c.ttl = ttl
	return nil
}

type fakeModels struct {
	model    string
	prompt   string
	response *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.response, f.err
}

var testLead = domain.Lead{
	ID: "lead-1", Name: "Paul Martin", Company: "Acme",
	Needs: []string{"Site web", "Cloud"}, Description: "Migration",
}

func TestConfirmerReturnsGeneratedText(t *testing.T) {
	c := NewConfirmer(&fakeGenerator{text: "Bonjour Paul Martin, merci."}, nil)
	if got := c.Text(context.Background(), testLead); got != "Bonjour Paul Martin, merci." {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestConfirmerFallback(t *testing.T) {
	cases := map[string]Generator{
		"error":  &fakeGenerator{err: errors.New("quota exceeded")},
		"blank":  &fakeGenerator{text: "  \n"},
		"static": StaticGenerator{},
		"nil":    nil,
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			if got := NewConfirmer(gen, nil).Text(context.Background(), testLead); got != Fallback {
				t.Fatalf("expected fallback, got %q", got)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(testLead)
	for _, want := range []string{
		"- Nom : Paul Martin",
		"- Société : Acme",
		"- Besoins exprimés : Site web, Cloud",
		`- Description complémentaire : "Migration"`,
		`Commencez directement par "Bonjour Paul Martin,"`,
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
}

func TestCachedGeneratorHitSkipsGenerator(t *testing.T) {
	cache := newFakeCache()
	cache.items[CacheKey(testLead)] = "cached"
	next := &fakeGenerator{text: "fresh"}

	got, err := NewCachedGenerator(next, cache, time.Hour, nil).Generate(context.Background(), testLead)
	if err != nil || got != "cached" {
		t.Fatalf("got %q, %v", got, err)
	}
	if next.calls != 0 {
		t.Fatalf("generator called on cache hit")
	}
}

func TestCachedGeneratorMissStores(t *testing.T) {
	cache := newFakeCache()
	next := &fakeGenerator{text: "fresh"}
	g := NewCachedGenerator(next, cache, time.Hour, nil)

	if got, err := g.Generate(context.Background(), testLead); err != nil || got != "fresh" {
		t.Fatalf("got %q, %v", got, err)
	}
	if cache.items[CacheKey(testLead)] != "fresh" || cache.ttl != time.Hour {
		t.Fatalf("text not cached: %+v", cache)
	}
	if _, err := g.Generate(context.Background(), testLead); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if next.calls != 1 {
		t.Fatalf("expected one generator call, got %d", next.calls)
	}
}

func TestCachedGeneratorIgnoresCacheErrors(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")

	got, err := NewCachedGenerator(&fakeGenerator{text: "fresh"}, cache, time.Hour, nil).Generate(context.Background(), testLead)
	if err != nil || got != "fresh" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestCachedGeneratorPropagatesGeneratorError(t *testing.T) {
	cache := newFakeCache()
	_, err := NewCachedGenerator(&fakeGenerator{err: errors.New("boom")}, cache, time.Hour, nil).Generate(context.Background(), testLead)
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(cache.items) != 0 {
		t.Fatalf("failure must not be cached")
	}
}

func TestCacheKeyDependsOnLead(t *testing.T) {
	other := testLead
	other.Name = "Marie"
	if CacheKey(testLead) == CacheKey(other) {
		t.Fatalf("expected distinct keys")
	}
	if !strings.HasPrefix(CacheKey(testLead), cacheKeyPrefix) {
		t.Fatalf("missing prefix")
	}
}

func TestGeminiGenerator(t *testing.T) {
	models := &fakeModels{response: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "Bonjour Paul Martin,"}}}}},
	}}
	g := newGeminiGenerator(models, "")

	got, err := g.Generate(context.Background(), testLead)
	if err != nil || got != "Bonjour Paul Martin," {
		t.Fatalf("got %q, %v", got, err)
	}
	if models.model != DefaultModel {
		t.Fatalf("expected default model, got %q", models.model)
	}
	if models.prompt != BuildPrompt(testLead) {
		t.Fatalf("unexpected prompt sent")
	}
}

func TestGeminiGeneratorError(t *testing.T) {
	g := newGeminiGenerator(&fakeModels{err: errors.New("403")}, "gemini-pro")
	if _, err := g.Generate(context.Background(), testLead); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	if _, err := NewGeminiGenerator(context.Background(), "", ""); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
