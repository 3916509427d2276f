package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	s := NewService("gitislife.com")

	assert.Equal(t, "git-is-truth", s.Resolve("gittruth.com").ID)
	assert.Equal(t, "git-is-truth", s.Resolve("www.gittruth.com").ID)
	assert.Equal(t, "git-is-truth", s.Resolve("gittruth.com:8080").ID)
	assert.Equal(t, "git-is-life", s.Resolve("localhost:8080").ID)
	assert.Equal(t, "git-is-life", s.Resolve("unknown.example").ID)
}

func TestResolveBadDefaultFallsBack(t *testing.T) {
	s := NewService("nonsense.example")
	assert.Equal(t, "git-is-life", s.Resolve("unknown.example").ID)
}

func TestGetAndList(t *testing.T) {
	s := NewService("gitislife.com")

	c, err := s.Get("git-is-power")
	require.NoError(t, err)
	assert.Equal(t, "gitispower.com", c.Domain)

	_, err = s.Get("missing")
	assert.Error(t, err)

	all := s.List()
	assert.Len(t, all, 7)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Domain, all[i].Domain)
	}
}

func TestValidatePhrase(t *testing.T) {
	s := NewService("gitislife.com")

	assert.NoError(t, s.ValidatePhrase("git-is-life", ""))
	assert.NoError(t, s.ValidatePhrase("git-is-life", "Git is Forever"))
	assert.Error(t, s.ValidatePhrase("git-is-life", "Power is Memory"))
	assert.Error(t, s.ValidatePhrase("missing", "Git is Forever"))
}
