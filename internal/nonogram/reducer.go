package nonogram

import (
	"strconv"

	"github.com/sraaphorst/nonogram/internal/dlx"
	"github.com/sraaphorst/nonogram/internal/interference"
)

// EntryKind distinguishes a row-line placement from a column-line
// placement within a row's payload (spec.md §4.6).
type EntryKind int

const (
	RowLine EntryKind = 0
	ColLine EntryKind = 1
)

// Payload is the exact-cover row metadata of spec.md §4.6: which line
// (Entry), which axis (EntryKind), and the compact placement the
// interference gate and the final grid decode both need.
type Payload struct {
	Entry   int
	EntryT  EntryKind
	Compact []interference.Block
}

// gate adapts an interference.Store into the generic dlx.Interference[Payload]
// capability by dispatching on EntryKind, exactly the role spec.md §4.6
// assigns to DLX+: "reads each row's payload to dispatch."
type gate struct {
	store *interference.Store
}

func (g *gate) Accepts(_ dlx.RowID, p Payload) bool {
	if p.EntryT == RowLine {
		return g.store.IsXSelectable(p.Entry, p.Compact)
	}
	return g.store.IsYSelectable(p.Entry, p.Compact)
}

func (g *gate) Commit(_ dlx.RowID, p Payload) {
	if p.EntryT == RowLine {
		g.store.XSelect(p.Entry, p.Compact)
	} else {
		g.store.YSelect(p.Entry, p.Compact)
	}
}

func (g *gate) Rollback(_ dlx.RowID, p Payload) {
	if p.EntryT == RowLine {
		g.store.XUnselect(p.Entry)
	} else {
		g.store.YUnselect(p.Entry)
	}
}

// Reduction is the built exact-cover instance plus the interference board
// installed on it — spec.md §4.8's output: "reducer builds a Matrix,
// installs an Interference on the DLX+ engine."
type Reduction struct {
	Matrix *dlx.Matrix[Payload]
	Store  *interference.Store
	NumRows, NumCols int
}

// Reduce builds the exact-cover instance of spec.md §4.8 from spec: one
// primary column ROW_i per row-line and COL_j per column-line, one
// exact-cover row per enumerated placement of each line, and an
// interference.Store of size NumRows×NumCols installed as the gate that
// makes the otherwise-trivial exact cover actually enforce cross-axis
// consistency.
func Reduce(spec *Spec) (*Reduction, error) {
	nrows, ncols := spec.NumRows(), spec.NumCols()

	columns := make([]dlx.ColumnDesc, 0, nrows+ncols)
	for i := 0; i < nrows; i++ {
		columns = append(columns, dlx.ColumnDesc{Name: rowColumnName(i), Kind: dlx.Primary})
	}
	for j := 0; j < ncols; j++ {
		columns = append(columns, dlx.ColumnDesc{Name: colColumnName(j), Kind: dlx.Primary})
	}

	m := dlx.New[Payload](columns)

	var rows [][]int
	var payloads []Payload
	for i, clue := range spec.Rows {
		for _, placement := range Enumerate(ncols, clue) {
			rows = append(rows, []int{i})
			payloads = append(payloads, Payload{Entry: i, EntryT: RowLine, Compact: placement})
		}
	}
	for j, clue := range spec.Cols {
		for _, placement := range Enumerate(nrows, clue) {
			rows = append(rows, []int{nrows + j})
			payloads = append(payloads, Payload{Entry: j, EntryT: ColLine, Compact: placement})
		}
	}

	if _, err := m.AppendRows(rows, payloads); err != nil {
		return nil, err
	}

	store := interference.New(nrows, ncols)
	m.SetInterference(&gate{store: store})

	return &Reduction{Matrix: m, Store: store, NumRows: nrows, NumCols: ncols}, nil
}

func rowColumnName(i int) string { return "ROW_" + strconv.Itoa(i) }
func colColumnName(j int) string { return "COL_" + strconv.Itoa(j) }

// DecodeGrid reconstructs the R×C color grid from one exact cover: each
// row-line's payload alone fully determines that row's colors (spec.md
// §4.8), so decoding needs only the RowLine-tagged payloads, sorted by
// Entry — the same approach original_source/nono.py's
// nono_print_solution/nono_plot_solution take, collecting "rows_only"
// and ignoring the column-line rows entirely.
func (r *Reduction) DecodeGrid(solution []dlx.RowID) [][]interference.Color {
	grid := make([][]interference.Color, r.NumRows)
	for _, id := range solution {
		p := r.Matrix.Decode(id)
		if p.EntryT != RowLine {
			continue
		}
		row := make([]interference.Color, r.NumCols)
		for c := 0; c < r.NumCols; c++ {
			row[c] = interference.ColorOf(c, p.Compact)
		}
		grid[p.Entry] = row
	}
	return grid
}
