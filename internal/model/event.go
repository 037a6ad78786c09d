package model

// Event represents a single parsed trace line.
type Event struct {
	TS    string // raw timestamp text, kept opaque
	Level string // raw severity text, kept opaque
	TID   string // logical thread id (not necessarily numeric)
	Depth int    // call nesting level, 0 at top-level
	Func  string // function name
	File  string // source file, may be empty
	Line  string // source line, may be empty
	Msg   string // log message, may be empty
}
