package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_NotTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, "Editing", 10)
	assert.False(t, IsTerminal(&buf))

	for range 10 {
		p.Increment()
		p.Print()
	}
	p.Done()
	assert.Empty(t, buf.String())
}

func TestProgress_Terminal(t *testing.T) {
	var buf bytes.Buffer
	p := &Progress{w: &buf, label: "Editing", total: 5, isTTY: true}

	p.Increment()
	p.Print()
	assert.Equal(t, "\rEditing... 1/5 (20%)", buf.String())

	buf.Reset()
	p.Done()
	assert.Equal(t, "\r"+"                    "+"\r", buf.String())
}

func TestProgress_BelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	p := &Progress{w: &buf, label: "Editing", total: minItems - 1, isTTY: true}

	p.Increment()
	p.Print()
	p.Done()
	assert.Empty(t, buf.String())
}
