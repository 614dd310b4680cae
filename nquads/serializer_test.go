package nquads

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSerializerRejectsUnknownFormat(t *testing.T) {
	_, err := NewSerializer("turtle", &strings.Builder{})
	var nse *NoSerializerError
	assert.ErrorAs(t, err, &nse)
}

func TestNQuadsSerializerIsPassThrough(t *testing.T) {
	var b strings.Builder
	s, err := NewSerializer("nquads", &b)
	require.NoError(t, err)
	line := `<http://ex/s> <http://ex/p> <http://ex/o> <http://ex/g> .` + "\n"
	require.NoError(t, s.OnLine(line))
	assert.Equal(t, line, b.String())
}

func TestNTriplesSerializerDropsGraph(t *testing.T) {
	var b strings.Builder
	s, err := NewSerializer("nt", &b)
	require.NoError(t, err)
	require.NoError(t, s.OnLine(`<http://ex/s> <http://ex/p> <http://ex/o> <http://ex/g> .`+"\n"))
	assert.Equal(t, `<http://ex/s> <http://ex/p> <http://ex/o> .`+"\n", b.String())
}
