package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug_Lowercases(t *testing.T) {
	assert.Equal(t, "acme_co", Slug("Acme Co"))
}

func TestSlug_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "acme_co", Slug(" Acme  Co "))
	assert.Equal(t, "acme_co", Slug("acme co"))
}

func TestSlug_SingleWord(t *testing.T) {
	assert.Equal(t, "acme", Slug("ACME"))
}

func TestSlug_EmptyName(t *testing.T) {
	assert.Equal(t, "", Slug("   "))
}

func TestSlug_Deterministic(t *testing.T) {
	// Differently formatted names resolving to the same slug must always agree.
	assert.Equal(t, Slug(" Acme Co "), Slug("acme co"))
}
