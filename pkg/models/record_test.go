package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRecord_Order(t *testing.T) {
	r := NewRecord()
	r.Set("b", 1)
	r.Set("a", 2)
	r.Set("b", 3)

	if keys := r.Keys(); !reflect.DeepEqual(keys, []string{"b", "a"}) {
		t.Errorf("keys = %v", keys)
	}
	if v, _ := r.Get("b"); v != 3 {
		t.Errorf("b = %v, want 3", v)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d", r.Len())
	}
}

func TestRecord_ZeroValue(t *testing.T) {
	var r Record
	if r.Has("x") {
		t.Error("zero record should be empty")
	}
	r.Set("x", "y")
	if r.String("x") != "y" {
		t.Errorf("x = %q", r.String("x"))
	}

	var nilRec *Record
	if nilRec.Len() != 0 || nilRec.Keys() != nil {
		t.Error("nil record should behave as empty")
	}
}

func TestRecord_Merge(t *testing.T) {
	r := RecordOf("title", "a", "url", "u")
	r.Merge(RecordOf("count", 2, "title", "b"))

	if keys := r.Keys(); !reflect.DeepEqual(keys, []string{"title", "url", "count"}) {
		t.Errorf("keys = %v", keys)
	}
	if r.String("title") != "b" {
		t.Errorf("title = %q", r.String("title"))
	}
}

func TestRecord_MarshalJSON(t *testing.T) {
	r := RecordOf(
		"z", "last <b>",
		"a", []string{"x"},
		"n", 1,
		"nested", RecordOf("k2", "v", "k1", nil),
	)

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"z":"last <b>","a":["x"],"n":1,"nested":{"k2":"v","k1":null}}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestRecord_UnmarshalJSON(t *testing.T) {
	var r Record
	if err := json.Unmarshal([]byte(`{"z":1,"a":{"y":[1,"two",{"q":true}],"b":null}}`), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if keys := r.Keys(); !reflect.DeepEqual(keys, []string{"z", "a"}) {
		t.Fatalf("keys = %v", keys)
	}
	if v, _ := r.Get("z"); v != json.Number("1") {
		t.Errorf("z = %#v", v)
	}

	nested, ok := func() (*Record, bool) { v, _ := r.Get("a"); n, ok := v.(*Record); return n, ok }()
	if !ok {
		t.Fatal("expected nested record")
	}
	if keys := nested.Keys(); !reflect.DeepEqual(keys, []string{"y", "b"}) {
		t.Errorf("nested keys = %v", keys)
	}

	if err := json.Unmarshal([]byte(`[1,2]`), &r); err == nil {
		t.Error("expected error for non-object input")
	}
}
