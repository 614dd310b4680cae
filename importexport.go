package quince

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/networkedplanet/quince/internal/quinceerr"
	"github.com/networkedplanet/quince/nquads"
	"github.com/networkedplanet/quince/term"
)

// parserModeForPath infers an nquads.Mode from a source file's
// extension, or reports quinceerr.NoParserError for one we don't
// recognize.
func parserModeForPath(path string) (nquads.Mode, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nt", ".ntriples":
		return nquads.ModeNTriples, nil
	case ".nq", ".nquads":
		return nquads.ModeNQuads, nil
	default:
		return 0, &quinceerr.NoParserError{Source: path}
	}
}

// serializerFormatForPath infers a serializer format key from a
// destination file's extension, or reports nquads.NoSerializerError
// for one we don't recognize.
func serializerFormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nt", ".ntriples":
		return "nt", nil
	case ".nq", ".nquads":
		return "nquads", nil
	default:
		return "", &nquads.NoSerializerError{Format: filepath.Ext(path)}
	}
}

// Import parses every file in paths into the store. graphOverride,
// when non-nil, forces every quad (regardless of source format) into
// that graph. Accumulates precondition failures rather than throwing,
// matching the original Python importer's tolerance for bulk loads.
func (s *Store) Import(paths []string, graphOverride term.Term) (*Sink, error) {
	sink := NewSink(s, Assert, false)
	sink.GraphOverride = graphOverride

	for _, path := range paths {
		mode, err := parserModeForPath(path)
		if err != nil {
			return sink, err
		}
		f, err := os.Open(path)
		if err != nil {
			return sink, err
		}
		parseErr := nquads.NewParser(sink, mode).Parse(f)
		f.Close()
		if parseErr != nil {
			return sink, parseErr
		}
	}
	if err := s.Flush(); err != nil {
		return sink, err
	}
	return sink, nil
}

// Export serializes the whole store (optionally graph-filtered) to
// path, in the format given explicitly or inferred from path's
// extension.
func (s *Store) Export(path string, format string, graphs ...term.IRI) error {
	if format == "" {
		inferred, err := serializerFormatForPath(path)
		if err != nil {
			return err
		}
		format = inferred
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	serializer, err := nquads.NewSerializer(format, f)
	if err != nil {
		return err
	}
	lines, err := s.AllQuads(graphs...)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if err := serializer.OnLine(line); err != nil {
			return err
		}
	}
	return nil
}
