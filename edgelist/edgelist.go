package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

// MaxVertices bounds the header's vertex count. Johnson's result holds
// n² int64 distances, so larger inputs cannot be solved in memory anyway.
const MaxVertices = 1 << 16

// Sentinel errors returned by the parser.
var (
	// ErrBadHeader indicates a missing or malformed "n m" header.
	ErrBadHeader = errors.New("edgelist: invalid header")

	// ErrBadLine indicates an edge line that is not "u v w".
	ErrBadLine = errors.New("edgelist: invalid edge line")

	// ErrEdgeCount indicates that the number of edge lines differs from m.
	ErrEdgeCount = errors.New("edgelist: edge count mismatch")
)

// Parse reads an edge list from r into a new graph.
//
// Vertex IDs outside 1..n and lengths beyond ±core.MaxLength surface as
// wrapped core.ErrInvalidEdge with the offending line number.
func Parse(r io.Reader, directed bool) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	// 1) Header: first non-blank line.
	var header []string
	for sc.Scan() {
		lineNo++
		if header = strings.Fields(sc.Text()); len(header) > 0 {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	n, m, err := parseHeader(header)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d", err, lineNo)
	}

	g, err := core.NewGraph(n, nil, directed)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrBadHeader, lineNo, err)
	}

	// 2) Edge lines.
	count := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		e, err := parseEdge(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", err, lineNo, sc.Text())
		}
		if err = g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", lineNo, err)
		}
		count++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if count != m {
		return nil, fmt.Errorf("%w: header declares %d, found %d", ErrEdgeCount, m, count)
	}

	return g, nil
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string, directed bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	g, err := Parse(f, directed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Write emits g in edge-list format, edges in g.Edges() order.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	edges := g.Edges()
	fmt.Fprintf(bw, "%d %d\n", g.Size(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.From+1, e.To+1, e.Length)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}

func parseHeader(fields []string) (n, m int, err error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want \"n m\", got %d fields", ErrBadHeader, len(fields))
	}
	if n, err = strconv.Atoi(fields[0]); err != nil || n < 0 {
		return 0, 0, fmt.Errorf("%w: vertex count %q", ErrBadHeader, fields[0])
	}
	if n > MaxVertices {
		return 0, 0, fmt.Errorf("%w: vertex count %d exceeds %d", ErrBadHeader, n, MaxVertices)
	}
	if m, err = strconv.Atoi(fields[1]); err != nil || m < 0 {
		return 0, 0, fmt.Errorf("%w: edge count %q", ErrBadHeader, fields[1])
	}

	return n, m, nil
}

func parseEdge(fields []string) (core.Edge, error) {
	if len(fields) != 3 {
		return core.Edge{}, fmt.Errorf("%w: want \"u v w\", got %d fields", ErrBadLine, len(fields))
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: tail %q", ErrBadLine, fields[0])
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: head %q", ErrBadLine, fields[1])
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: length %q", ErrBadLine, fields[2])
	}

	return core.Edge{From: u - 1, To: v - 1, Length: w}, nil
}
