package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounded(t *testing.T) {
	l := New(3)
	for i := 0; i < 10; i++ {
		l.Addf("cat", "message %d", i)
	}
	s := l.String("cat")
	assert.NotContains(t, s, "message 6")
	assert.Contains(t, s, "message 7")
	assert.Contains(t, s, "message 9")
}

func TestCategories(t *testing.T) {
	l := New(5)
	l.Add("b", "x")
	l.Add("a", "y")
	assert.Equal(t, []string{"a", "b"}, l.Categories())
}

func TestStringMergesChronologically(t *testing.T) {
	l := New(5)
	l.Add("one", "first")
	l.Add("two", "second")
	l.Add("one", "third")

	s := l.String()
	i1 := strings.Index(s, "first")
	i2 := strings.Index(s, "second")
	i3 := strings.Index(s, "third")
	assert.True(t, i1 >= 0 && i1 < i2 && i2 < i3, "log out of order:\n%s", s)
}
