package zmerald

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/liabri/zmerald/encode"
	"github.com/liabri/zmerald/gomap"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/parse"
	"github.com/liabri/zmerald/token"
)

type Scene struct {
	Name    string             `zmr:"name"`
	Size    Size               `zmr:"size"`
	Objects []Object           `zmr:"objects"`
	Lights  map[string]float32 `zmr:"lights,omitempty"`
	Sky     *Color             `zmr:"sky"`
}

type Size struct {
	_zmr struct{} `zmr:",tuple"`
	W, H uint32
}

var ignoreTag = cmpopts.IgnoreUnexported(Size{})

type Color struct {
	R uint8 `zmr:"r"`
	G uint8 `zmr:"g"`
	B uint8 `zmr:"b"`
}

type Object interface{ isObject() }

type (
	Sphere struct {
		Radius float64 `zmr:"radius"`
	}
	Mesh  string
	Empty struct{}
)

func (Sphere) isObject() {}
func (Mesh) isObject()   {}
func (Empty) isObject()  {}

func init() {
	gomap.RegisterEnum[Object](
		gomap.StructVariant[Sphere]("Sphere"),
		gomap.NewtypeVariant[Mesh]("Mesh"),
		gomap.UnitVariant[Empty]("Empty"),
	)
}

const sceneText = `
# a small scene
Scene(
    name: "demo",
    size: (640, 480),
    objects: [
        Sphere { radius: 1.5 },
        Mesh("teapot.obj"),
        Empty,
    ],
    lights <key> 0.75 <fill> 0.25;
    sky: { r: 10, g: 20, b: 255 },
)
`

func sceneValue() Scene {
	return Scene{
		Name:    "demo",
		Size:    Size{W: 640, H: 480},
		Objects: []Object{Sphere{Radius: 1.5}, Mesh("teapot.obj"), Empty{}},
		Lights:  map[string]float32{"key": 0.75, "fill": 0.25},
		Sky:     &Color{R: 10, G: 20, B: 255},
	}
}

func TestUnmarshal(t *testing.T) {
	var got Scene
	if err := Unmarshal([]byte(sceneText), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sceneValue(), got, ignoreTag); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var again Scene
	if err := UnmarshalString(sceneText, &again); err != nil {
		t.Fatal(err)
	}
	got2, err := DecodeAs[Scene]([]byte(sceneText))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(again, got2, ignoreTag); diff != "" {
		t.Errorf("DecodeAs (-want +got):\n%s", diff)
	}
}

func TestMarshal(t *testing.T) {
	got, err := MarshalString(sceneValue())
	if err != nil {
		t.Fatal(err)
	}
	want := `{name:"demo",size:(640,480),objects:[Sphere{radius:1.5},Mesh("teapot.obj"),Empty],` +
		`lights:{"fill":0.25,"key":0.75},sky:{r:10,g:20,b:255}}`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestMarshalPretty(t *testing.T) {
	cfg := encode.DefaultPrettyConfig().WithStructNames(true).WithDepthLimit(2)
	got, err := MarshalPrettyString(Scene{Name: "x", Objects: []Object{Empty{}}}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := `Scene{
    name: "x",
    size: Size(0, 0),
    objects: [
        Empty,
    ],
    sky: None,
}`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	var buf bytes.Buffer
	if err := MarshalPrettyTo(&buf, sceneValue(), cfg); err != nil {
		t.Fatal(err)
	}
	var back Scene
	if err := Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(sceneValue(), back, ignoreTag); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestValueInto(t *testing.T) {
	val, err := UnmarshalValue([]byte(sceneText), parse.PreserveOrder())
	if err != nil {
		t.Fatal(err)
	}
	name, err := val.Get("name")
	if err != nil || name.String != "demo" {
		t.Errorf("name: %#v %v", name, err)
	}
	var sky Color
	skyVal, err := val.Get("sky")
	if err != nil {
		t.Fatal(err)
	}
	if err := ValueInto(skyVal, &sky); err != nil {
		t.Fatal(err)
	}
	if sky != (Color{R: 10, G: 20, B: 255}) {
		t.Errorf("got %+v", sky)
	}
	var size Size
	sizeVal, _ := val.Get("size")
	if err := ValueInto(sizeVal, &size); err != nil || size.W != 640 || size.H != 480 {
		t.Errorf("size: %+v %v", size, err)
	}
}

func TestValueRoundTrip(t *testing.T) {
	val, err := UnmarshalValue([]byte(sceneText))
	if err != nil {
		t.Fatal(err)
	}
	text, err := Marshal(val)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalValue(text)
	if err != nil {
		t.Fatalf("%v\n%s", err, text)
	}
	if !ir.Equal(val, back) {
		t.Errorf("got %#v want %#v", back, val)
	}
}

func TestUnmarshalError(t *testing.T) {
	var s Scene
	err := UnmarshalString("Scene(name: \"x\",\n  size: (1, -2))", &s)
	var te *token.Error
	if !errors.As(err, &te) {
		t.Fatalf("got %T %v", err, err)
	}
	if te.Code != token.IntegerOutOfBounds || te.Pos != (token.Pos{Line: 2, Col: 13}) {
		t.Errorf("got %s at %s", te.Code, te.Pos)
	}
}

type errWriter struct{}

var errClosed = errors.New("closed")

func (errWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestMarshalToWriterError(t *testing.T) {
	if err := MarshalTo(errWriter{}, sceneValue()); err != errClosed {
		t.Errorf("got %v", err)
	}
}
