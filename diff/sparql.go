package diff

import (
	"sort"
	"strings"

	"github.com/networkedplanet/quince/nquads"
)

// SPARQL renders a Result as a SPARQL Update: one DELETE DATA block
// for deletions, one INSERT DATA block for insertions, each with its
// changes grouped into per-graph GRAPH <g> { ... } clauses. A block is
// omitted entirely when it has no lines, matching qdiff_tests.py's
// expectation that an insertion-only or deletion-only diff produces
// only the matching half of the update.
func (r *Result) SPARQL() string {
	var b strings.Builder
	if del := groupByGraph(r.Deletions); del != "" {
		b.WriteString("DELETE DATA {\n")
		b.WriteString(del)
		b.WriteString("}\n")
	}
	if ins := groupByGraph(r.Insertions); ins != "" {
		b.WriteString("INSERT DATA {\n")
		b.WriteString(ins)
		b.WriteString("}\n")
	}
	return b.String()
}

// groupByGraph splits lines (each a full canonical NQuad line, graph
// included) into GRAPH <g> { s p o . ... } clauses, one per distinct
// graph, sorted by graph name for deterministic output.
func groupByGraph(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	gIdx := nquads.QuadLinePattern.SubexpIndex("g")
	sIdx := nquads.QuadLinePattern.SubexpIndex("s")
	pIdx := nquads.QuadLinePattern.SubexpIndex("p")
	oIdx := nquads.QuadLinePattern.SubexpIndex("o")

	byGraph := make(map[string][]string)
	for _, line := range lines {
		m := nquads.QuadLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		triple := m[sIdx] + " " + m[pIdx] + " " + m[oIdx] + " ."
		byGraph[m[gIdx]] = append(byGraph[m[gIdx]], triple)
	}

	graphs := make([]string, 0, len(byGraph))
	for g := range byGraph {
		graphs = append(graphs, g)
	}
	sort.Strings(graphs)

	var b strings.Builder
	for _, g := range graphs {
		b.WriteString("  GRAPH ")
		b.WriteString(g)
		b.WriteString(" {\n")
		for _, triple := range byGraph[g] {
			b.WriteString("    ")
			b.WriteString(triple)
			b.WriteByte('\n')
		}
		b.WriteString("  }\n")
	}
	return b.String()
}
