package libdiff

import (
	"github.com/liabri/zmerald/gomap"
	"github.com/liabri/zmerald/ir"
)

// Change describes how to turn one value into another.
type Change interface{ isChange() }

type (
	// Insert adds a value: a map entry or a sequence element.
	Insert struct{ Value ir.Value }
	// Delete removes a value, which must equal Value when patched.
	Delete struct{ Value ir.Value }
	// Replace swaps From for To.
	Replace struct{ From, To ir.Value }

	// Fields holds the changed entries of a map.
	Fields []Entry

	// Elements holds the changed positions of a sequence. Keys index the
	// merged sequence of operations: an absent index copies one element,
	// Insert adds one, Delete drops one, and any other change rewrites one.
	Elements map[int]Change

	// Text edits a string.
	Text []Edit
)

// Entry is the change to one map key.
type Entry struct {
	_zmr   struct{} `zmr:",tuple"`
	Key    ir.Value
	Change Change
}

func (Insert) isChange()   {}
func (Delete) isChange()   {}
func (Replace) isChange()  {}
func (Fields) isChange()   {}
func (Elements) isChange() {}
func (Text) isChange()     {}

// Edit is one step of a Text change. Counts are in runes.
type Edit interface{ isEdit() }

type (
	Keep int
	Ins  string
	Del  string
)

func (Keep) isEdit() {}
func (Ins) isEdit()  {}
func (Del) isEdit()  {}

func init() {
	gomap.RegisterEnum[Change](
		gomap.TupleVariant[Insert]("Insert"),
		gomap.TupleVariant[Delete]("Delete"),
		gomap.TupleVariant[Replace]("Replace"),
		gomap.NewtypeVariant[Fields]("Fields"),
		gomap.NewtypeVariant[Elements]("Elements"),
		gomap.NewtypeVariant[Text]("Text"),
	)
	gomap.RegisterEnum[Edit](
		gomap.NewtypeVariant[Keep]("Keep"),
		gomap.NewtypeVariant[Ins]("Ins"),
		gomap.NewtypeVariant[Del]("Del"),
	)
}
