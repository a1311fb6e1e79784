package layout

type Dimension struct {
	Lines   int64
	Columns int64
}
