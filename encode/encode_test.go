package encode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/liabri/zmerald/gomap"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"
)

type point struct {
	X float32 `zmr:"x"`
	Y float32 `zmr:"y"`
}

type named struct {
	_zmr   struct{} `zmr:"Named"`
	Title  string   `zmr:"title"`
	Tags   []string `zmr:"tags,omitempty"`
	Weight *int     `zmr:"weight"`
}

type wrapper struct {
	_zmr struct{} `zmr:",newtype"`
	V    int32
}

type tuple struct {
	_zmr struct{} `zmr:",tuple"`
	A, B float32
}

type empty struct{}

type blob struct {
	Data []byte `zmr:"data,bytes"`
	Raw  []byte `zmr:"raw"`
}

type nested struct {
	Points []point          `zmr:"points"`
	Lookup map[string]tuple `zmr:"lookup"`
}

type Shape interface{ isShape() }

type (
	Dot     struct{}
	Flag    bool
	Line    struct{ A, B int }
	Rect    struct{ W, H int }
	Circle  point
	Segment [2]int
	Blank   struct{}
	Weird   struct{}
)

func (Dot) isShape()     {}
func (Flag) isShape()    {}
func (Line) isShape()    {}
func (Rect) isShape()    {}
func (Circle) isShape()  {}
func (Segment) isShape() {}
func (Blank) isShape()   {}
func (Weird) isShape()   {}

type Loose interface{ isLoose() }

type (
	LooseNum  int
	LooseText string
)

func (LooseNum) isLoose()  {}
func (LooseText) isLoose() {}

func init() {
	gomap.RegisterEnum[Shape](
		gomap.UnitVariant[Dot]("Dot"),
		gomap.NewtypeVariant[Flag]("Flag"),
		gomap.TupleVariant[Line]("Line"),
		gomap.StructVariant[Rect]("Rect"),
		gomap.NewtypeVariant[Circle]("Circle"),
		gomap.NewtypeVariant[Segment]("Segment"),
		gomap.NewtypeVariant[Blank]("Blank"),
		gomap.UnitVariant[Weird]("triangle-list"),
	)
	gomap.RegisterUntaggedEnum[Loose](
		gomap.NewtypeVariant[LooseNum]("Num"),
		gomap.NewtypeVariant[LooseText]("Text"),
	)
}

func TestCanonical(t *testing.T) {
	three := 3
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: "None"},
		{name: "bool", in: true, want: "true"},
		{name: "int", in: -12, want: "-12"},
		{name: "uint", in: uint8(200), want: "200"},
		{name: "float", in: 1.5, want: "1.5"},
		{name: "integral float", in: 4.0, want: "4"},
		{name: "float32", in: float32(0.1), want: "0.1"},
		{name: "big float", in: 1e21, want: "1e+21"},
		{name: "small float", in: 1e-7, want: "1e-07"},
		{name: "nan", in: math.NaN(), want: "NaN"},
		{name: "inf", in: math.Inf(1), want: "inf"},
		{name: "-inf", in: math.Inf(-1), want: "-inf"},
		{name: "char", in: gomap.Char('\''), want: `'\''`},
		{name: "string", in: "a \"b\"\n", want: `"a \"b\"\n"`},
		{name: "unicode", in: "héllo", want: `"héllo"`},
		{name: "pointer", in: &three, want: "3"},
		{name: "nil pointer", in: (*int)(nil), want: "None"},
		{name: "slice", in: []int{1, 2, 3}, want: "[1,2,3]"},
		{name: "empty slice", in: []int{}, want: "[]"},
		{name: "array", in: [2]bool{true, false}, want: "(true,false)"},
		{name: "map", in: map[string]int{"b": 2, "a": 1}, want: `{"a":1,"b":2}`},
		{name: "struct", in: point{X: 4, Y: 7}, want: "{x:4,y:7}"},
		{name: "omitempty", in: named{Title: "t"}, want: `{title:"t",weight:None}`},
		{name: "newtype", in: wrapper{V: 42}, want: "(42)"},
		{name: "tuple struct", in: tuple{A: 2, B: 5}, want: "(2,5)"},
		{name: "unit struct", in: empty{}, want: "()"},
		{name: "bytes", in: blob{Data: []byte{1, 2, 3}, Raw: []byte{4}}, want: `{data:"AQID",raw:[4]}`},
		{name: "unit variant", in: Shape(Dot{}), want: "Dot"},
		{name: "raw variant", in: Shape(Weird{}), want: "r#triangle-list"},
		{name: "newtype variant", in: Shape(Flag(true)), want: "Flag(true)"},
		{name: "tuple variant", in: Shape(Line{A: 1, B: 2}), want: "Line(1,2)"},
		{name: "struct variant", in: Shape(Rect{W: 3, H: 4}), want: "Rect{W:3,H:4}"},
		{name: "struct payload", in: Shape(Circle{X: 1, Y: 2}), want: "Circle(x:1,y:2)"},
		{name: "tuple payload", in: Shape(Segment{1, 2}), want: "Segment(1,2)"},
		{name: "unit payload", in: Shape(Blank{}), want: "Blank()"},
		{name: "untagged", in: []Loose{LooseNum(1), LooseText("x")}, want: `[1,"x"]`},
		{
			name: "nested",
			in:   nested{Points: []point{{X: 1, Y: 2}}, Lookup: map[string]tuple{"k": {A: 1, B: 2}}},
			want: `{points:[{x:1,y:2}],lookup:{"k":(1,2)}}`,
		},
	}
	for _, tc := range tests {
		got, err := EncodeString(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestPretty(t *testing.T) {
	def := DefaultPrettyConfig()
	tests := []struct {
		name string
		cfg  PrettyConfig
		in   any
		want string
	}{
		{
			name: "struct",
			cfg:  def,
			in:   point{X: 4, Y: 7},
			want: "{\n    x: 4,\n    y: 7,\n}",
		},
		{
			name: "nested",
			cfg:  def,
			in:   map[string][]int{"a": {1}},
			want: "{\n    \"a\": [\n        1,\n    ],\n}",
		},
		{
			name: "empty containers",
			cfg:  def,
			in:   map[string][]int{"a": {}},
			want: "{\n    \"a\": [],\n}",
		},
		{
			name: "struct names",
			cfg:  def.WithStructNames(true),
			in:   named{Title: "t", Tags: []string{"x"}},
			want: "Named{\n    title: \"t\",\n    tags: [\n        \"x\",\n    ],\n    weight: None,\n}",
		},
		{
			name: "depth limit",
			cfg:  def.WithDepthLimit(1),
			in:   map[string]point{"p": {X: 1, Y: 2}},
			want: "{\n    \"p\": {x: 1, y: 2},\n}",
		},
		{
			name: "depth limit zero",
			cfg:  def.WithDepthLimit(0),
			in:   point{X: 1, Y: 2},
			want: "{x: 1, y: 2}",
		},
		{
			name: "indentor and newline",
			cfg:  def.WithIndentor("\t").WithNewLine("\r\n"),
			in:   []int{1, 2},
			want: "[\r\n\t1,\r\n\t2,\r\n]",
		},
		{
			name: "separator",
			cfg:  def.WithDepthLimit(0).WithSeparator(""),
			in:   []int{1, 2},
			want: "[1,2]",
		},
		{
			name: "tuple inline",
			cfg:  def,
			in:   tuple{A: 1, B: 2},
			want: "(1, 2)",
		},
		{
			name: "separate tuple members",
			cfg:  def.WithSeparateTupleMembers(true),
			in:   tuple{A: 1, B: 2},
			want: "(\n    1,\n    2,\n)",
		},
		{
			name: "enumerate arrays",
			cfg:  def.WithEnumerateArrays(true),
			in:   []string{"a", "b"},
			want: "[\n    /*[0]*/ \"a\",\n    /*[1]*/ \"b\",\n]",
		},
		{
			name: "decimal floats",
			cfg:  def.WithDecimalFloats(true),
			in:   point{X: 4, Y: 0.5},
			want: "{\n    x: 4.0,\n    y: 0.5,\n}",
		},
		{
			name: "compact arrays",
			cfg:  def.WithCompactArrays(true),
			in:   map[string][]int{"a": {1, 2}},
			want: "{\n    \"a\": [1, 2],\n}",
		},
		{
			name: "struct payload",
			cfg:  def,
			in:   Shape(Circle{X: 1, Y: 2}),
			want: "Circle(\n    x: 1,\n    y: 2,\n)",
		},
	}
	for _, tc := range tests {
		got, err := EncodeString(tc.in, Pretty(tc.cfg))
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got\n%s\nwant\n%s", tc.name, got, tc.want)
		}
	}
}

func TestPrettyRoundTrip(t *testing.T) {
	w := 9
	in := struct {
		Named   named            `zmr:"named"`
		Shapes  []Shape          `zmr:"shapes"`
		Nested  nested           `zmr:"nested"`
		Blob    blob             `zmr:"blob"`
		Floats  []float64        `zmr:"floats"`
		Wrapped wrapper          `zmr:"wrapped"`
		Chars   []gomap.Char     `zmr:"chars"`
		Keys    map[[2]int]empty `zmr:"keys"`
	}{
		Named: named{Title: "title", Tags: []string{"a", "b c"}, Weight: &w},
		Shapes: []Shape{
			Dot{}, Flag(false), Line{A: 1, B: 2}, Rect{W: 3, H: 4},
			Circle{X: 0.5, Y: 1}, Segment{5, 6}, Blank{}, Weird{},
		},
		Nested: nested{
			Points: []point{{X: 1, Y: 2}, {X: 3, Y: 4}},
			Lookup: map[string]tuple{"one": {A: 1, B: 1}, "two": {A: 2, B: 2}},
		},
		Blob:    blob{Data: []byte("hello"), Raw: []byte{1, 2}},
		Floats:  []float64{0, 1, -2.5, 1e300, 1e-300},
		Wrapped: wrapper{V: -7},
		Chars:   []gomap.Char{'a', '\\', '\n'},
		Keys:    map[[2]int]empty{{1, 2}: {}, {3, 4}: {}},
	}
	def := DefaultPrettyConfig()
	cfgs := map[string]PrettyConfig{
		"default":         def,
		"struct names":    def.WithStructNames(true),
		"separate tuples": def.WithSeparateTupleMembers(true),
		"enumerate":       def.WithEnumerateArrays(true),
		"decimal floats":  def.WithDecimalFloats(true),
		"compact arrays":  def.WithCompactArrays(true),
		"depth 2":         def.WithDepthLimit(2),
		"tabs":            def.WithIndentor("\t").WithNewLine("\r\n"),
	}
	canonical, err := EncodeString(in)
	if err != nil {
		t.Fatal(err)
	}
	for name, cfg := range cfgs {
		text, err := EncodeString(in, Pretty(cfg))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		out := in
		out.Named.Weight = nil
		if err := parse.Unmarshal([]byte(text), &out); err != nil {
			t.Errorf("%s: %v\n%s", name, err, text)
			continue
		}
		again, err := EncodeString(out)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if diff := cmp.Diff(canonical, again); diff != "" {
			t.Errorf("%s: round trip (-want +got):\n%s", name, diff)
		}
	}
}

func TestValueEncoding(t *testing.T) {
	m := ir.NewOrderedMap()
	m.Insert(ir.FromString("z"), ir.FromSeq([]ir.Value{ir.FromInt(1), ir.FromChar('c')}))
	m.Insert(ir.FromString("a"), ir.Some(ir.Unit()))
	m.Insert(ir.FromString("n"), ir.None())
	got, err := EncodeString(ir.FromMap(m))
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"z":[1,'c'],"a":(),"n":None}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestColors(t *testing.T) {
	c := &Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.NumberType, Attr: ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
		},
	}
	got, err := EncodeString([]int{1, 2}, EncodeColors(c))
	if err != nil {
		t.Fatal(err)
	}
	if want := "[<1>,<2>]"; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

type failWriter struct{ after int }

var errWrite = errors.New("write failed")

func (f *failWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errWrite
	}
	f.after--
	return len(p), nil
}

func TestWriterErrors(t *testing.T) {
	for n := range 4 {
		err := Encode(point{X: 1, Y: 2}, &failWriter{after: n})
		if err != errWrite {
			t.Errorf("after %d writes: got %v", n, err)
		}
	}
}

func TestMarshalErrors(t *testing.T) {
	_, err := EncodeString(struct{ C chan int }{})
	var me *gomap.MarshalError
	if !errors.As(err, &me) || !errors.Is(err, gomap.ErrUnsupported) {
		t.Errorf("got %v", err)
	}
	if me != nil && !strings.Contains(me.Error(), "C") {
		t.Errorf("missing field path: %v", me)
	}
	var nilShape Shape
	if _, err := EncodeString([]Shape{nilShape}); err == nil {
		t.Error("nil enum value encoded")
	}
}

func TestMustString(t *testing.T) {
	if got := MustString([]string{"a"}); got != `["a"]` {
		t.Errorf("got %s", got)
	}
}
