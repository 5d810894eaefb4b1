package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-research/internal/corpus"
	"company-research/internal/search"
)

type recordingCompleter struct {
	prompt string
	answer string
	err    error
}

func (r *recordingCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	r.prompt = prompt
	if r.err != nil {
		return "", r.err
	}
	return r.answer, nil
}

func testCorpus() *corpus.Corpus {
	c := &corpus.Corpus{}
	c.Add("What is Acme's revenue?", []search.Result{
		{URL: "u1", Title: "t1", Content: "Acme earned $5B."},
		{URL: "u2", Title: "t2", Content: ""}, // empty body contributes nothing
		{URL: "u3", Title: "t3", Content: "Growth was 12%."},
		{URL: "u4", Title: "t4", Content: "beyond the top three"},
	})
	c.Add("failed question?", []search.Result{{Error: "all search providers failed"}})
	return c
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(testCorpus())

	assert.Contains(t, prompt, "Q1. What is Acme's revenue?")
	assert.Contains(t, prompt, "Title: t1\nContent: Acme earned $5B.\nSource: u1")
	assert.Contains(t, prompt, "Source: u3")

	// empty bodies, error markers, and results past the top three are omitted
	assert.NotContains(t, prompt, "Title: t2")
	assert.NotContains(t, prompt, "beyond the top three")

	// every question keeps its numbered section even without usable content
	assert.Contains(t, prompt, "Q2. failed question?")
}

func TestSynthesizeFromCorpusFile(t *testing.T) {
	store := corpus.NewStore(t.TempDir())
	path, err := store.Save("Acme Corp", testCorpus())
	require.NoError(t, err)

	completer := &recordingCompleter{answer: "## Overview\n\nAcme earned $5B. (u1)\n"}
	synth := NewSynthesizer(store, completer)

	md, err := synth.Synthesize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "## Overview\n\nAcme earned $5B. (u1)", md)
	assert.Contains(t, completer.prompt, "Acme earned $5B.")
}

func TestSynthesizeMissingCorpus(t *testing.T) {
	store := corpus.NewStore(t.TempDir())
	synth := NewSynthesizer(store, &recordingCompleter{answer: "x"})

	_, err := synth.Synthesize(context.Background(), store.Dir+"/missing.json")
	require.Error(t, err)
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("# Acme Corp\n\nA **bold** claim.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Acme Corp</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
}
