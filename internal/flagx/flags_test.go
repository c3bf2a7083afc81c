package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-d", "postgres://x", "-z", "ignored", "-s", "secret"}
	got := FilterArgs(args, []string{"-d", "-s"})
	assert.Equal(t, []string{"-d", "postgres://x", "-s", "secret"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--origin=http://localhost:3000", "--other=x"}
	got := FilterArgs(args, []string{"--origin"})
	assert.Equal(t, []string{"--origin=http://localhost:3000"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	args := []string{"-d", "-s", "secret"}
	got := FilterArgs(args, []string{"-d", "-s"})
	assert.Equal(t, []string{"-d", "-s", "secret"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-d"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
