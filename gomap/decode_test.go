package gomap

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/liabri/zmerald/ir"
	"github.com/liabri/zmerald/token"
)

func strMap(kvs ...any) ir.Value {
	m := ir.NewOrderedMap()
	for i := 0; i < len(kvs); i += 2 {
		m.Insert(ir.FromString(kvs[i].(string)), kvs[i+1].(ir.Value))
	}
	return ir.FromMap(m)
}

func seq(vs ...ir.Value) ir.Value {
	return ir.FromSeq(vs)
}

type Config struct {
	Name    string            `zmr:"name"`
	Port    uint16            `zmr:"port"`
	Ratio   float64           `zmr:"ratio"`
	Tags    []string          `zmr:"tags"`
	Limits  map[string]int    `zmr:"limits"`
	Owner   *string           `zmr:"owner"`
	Ops     []Op              `zmr:"ops"`
	Extra   any               `zmr:"extra"`
	Point   [2]int            `zmr:"point"`
	Initial Char              `zmr:"initial"`
	Raw     ir.Value          `zmr:"raw"`
	Nested  map[string][]bool `zmr:"nested"`
}

func TestDecodeFromValue(t *testing.T) {
	in := strMap(
		"name", ir.FromString("svc"),
		"port", ir.FromInt(8080),
		"ratio", ir.FromInt(2),
		"tags", seq(ir.FromString("a"), ir.FromString("b")),
		"limits", strMap("cpu", ir.FromInt(4)),
		"owner", ir.Some(ir.FromString("me")),
		"ops", seq(
			ir.FromString("Nop"),
			strMap("Push", ir.FromInt(3)),
			strMap("Move", seq(ir.FromInt(1), ir.FromInt(2))),
			strMap("Set", strMap("key", ir.FromString("k"))),
		),
		"extra", seq(ir.FromInt(1), ir.FromString("x")),
		"point", seq(ir.FromInt(5), ir.FromInt(6)),
		"initial", ir.FromChar('z'),
		"raw", strMap("deep", ir.Unit()),
		"unknown", ir.FromBool(true),
	)
	var got Config
	if err := Decode(in, &got); err != nil {
		t.Fatal(err)
	}
	owner := "me"
	want := Config{
		Name:    "svc",
		Port:    8080,
		Ratio:   2,
		Tags:    []string{"a", "b"},
		Limits:  map[string]int{"cpu": 4},
		Owner:   &owner,
		Ops:     []Op{OpNop{}, OpPush(3), OpMove{From: 1, To: 2}, OpSet{Key: "k"}},
		Extra:   []any{int64(1), "x"},
		Point:   [2]int{5, 6},
		Initial: 'z',
		Raw:     strMap("deep", ir.Unit()),
	}
	opts := cmp.Comparer(func(a, b ir.Value) bool { return ir.Equal(a, b) })
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	var small struct {
		N int8 `zmr:"n"`
	}
	err := Decode(strMap("n", ir.FromInt(300)), &small)
	var ue *UnmarshalError
	if !errors.As(err, &ue) || ue.FieldPath != "n" {
		t.Errorf("overflow: got %v", err)
	}

	var u struct {
		N uint `zmr:"n"`
	}
	if err := Decode(strMap("n", ir.FromInt(-1)), &u); !errors.Is(err, token.TypeMismatch) {
		t.Errorf("negative: got %v", err)
	}

	var arr [3]int
	err = Decode(seq(ir.FromInt(1)), &arr)
	if !errors.As(err, &ue) {
		t.Errorf("short array: got %v", err)
	}
	err = Decode(seq(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3), ir.FromInt(4)), &arr)
	if !errors.As(err, &ue) {
		t.Errorf("long array: got %v", err)
	}

	var op Op
	if err := Decode(ir.FromString("Pop"), &op); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("unknown variant: got %v", err)
	}

	var ch chan int
	if err := Decode(ir.FromInt(1), &ch); !errors.Is(err, ErrUnsupported) {
		t.Errorf("chan: got %v", err)
	}

	var b bool
	if err := Decode(ir.FromString("yes"), &b); !errors.Is(err, token.TypeMismatch) {
		t.Errorf("bool: got %v", err)
	}
}

func TestDecodeFailureKeepsDestination(t *testing.T) {
	got := Config{Name: "old", Port: 1, Tags: []string{"t"}}
	in := strMap(
		"name", ir.FromString("new"),
		"tags", seq(ir.FromString("a")),
		"port", ir.FromString("http"),
	)
	if err := Decode(in, &got); err == nil {
		t.Fatal("expected an error")
	}
	want := Config{Name: "old", Port: 1, Tags: []string{"t"}}
	opts := cmp.Comparer(func(a, b ir.Value) bool { return ir.Equal(a, b) })
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("destination changed (-want +got):\n%s", diff)
	}
}

func TestDecodeDestination(t *testing.T) {
	var n int
	for _, v := range []any{nil, n, (*int)(nil)} {
		if err := Decode(ir.FromInt(1), v); err == nil {
			t.Errorf("%T: expected an error", v)
		}
	}
}

func TestMerge(t *testing.T) {
	list := []int{1}
	merge(reflect.ValueOf(&list).Elem(), reflect.ValueOf([]int{2, 3}))
	if diff := cmp.Diff([]int{1, 2, 3}, list); diff != "" {
		t.Errorf("slice (-want +got):\n%s", diff)
	}

	var m map[string]int
	merge(reflect.ValueOf(&m).Elem(), reflect.ValueOf(map[string]int{"a": 1}))
	merge(reflect.ValueOf(&m).Elem(), reflect.ValueOf(map[string]int{"a": 2, "b": 3}))
	if diff := cmp.Diff(map[string]int{"a": 2, "b": 3}, m); diff != "" {
		t.Errorf("map (-want +got):\n%s", diff)
	}

	n := 1
	merge(reflect.ValueOf(&n).Elem(), reflect.ValueOf(5))
	if n != 5 {
		t.Errorf("scalar: got %d", n)
	}
}
