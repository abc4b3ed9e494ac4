package store_test

import (
	"encoding/json"
	"testing"

	"github.com/eeshamoona/thinklock/internal/store"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"array", `[{"x":1,"y":2,"w":3,"h":1,"i":"notes","moved":false,"static":true}]`,
			`[{"x":1,"y":2,"w":3,"h":1,"i":"notes","moved":false,"static":true}]`, false},
		{"stringified array", `"[{\"x\":0,\"y\":0,\"w\":3,\"h\":1,\"i\":\"add-widget\"}]"`,
			`[{"x":0,"y":0,"w":3,"h":1,"i":"add-widget"}]`, false},
		{"extra keys kept", `[{"x":0,"i":"notes","minW":2,"isResizable":false}]`,
			`[{"x":0,"i":"notes","minW":2,"isResizable":false}]`, false},
		{"float x", `[{"x":1.5,"y":0,"w":3,"h":1,"i":"notes"}]`, `[{"x":1.5,"y":0,"w":3,"h":1,"i":"notes"}]`, false},
		{"numeric i", `[{"i":7}]`, `[{"i":7}]`, false},
		{"whitespace compacted", "[ {\"i\" : \"a\"} ]\n", `[{"i":"a"}]`, false},
		{"empty array", `[]`, `[]`, false},
		{"null", `null`, `[]`, false},
		{"object", `{"x":1}`, "", true},
		{"stringified object", `"{\"x\":1}"`, "", true},
		{"garbage string", `"not json"`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := store.ParseLayout(json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", l)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLayout error: %v", err)
			}
			if string(l) != tt.want {
				t.Errorf("layout = %s, want %s", l, tt.want)
			}
		})
	}
}

func TestLayout_ScanValue(t *testing.T) {
	in := store.Layout(`[{"x":1,"y":2,"w":3,"h":4,"i":"flashcards","static":true,"minH":1}]`)
	v, err := in.Value()
	if err != nil {
		t.Fatal(err)
	}
	var out store.Layout
	if err := out.Scan(v); err != nil {
		t.Fatal(err)
	}
	if string(out) != string(in) {
		t.Errorf("round trip = %s, want %s", out, in)
	}

	var nilLayout store.Layout
	v, err = nilLayout.Value()
	if err != nil || v != "[]" {
		t.Errorf("nil layout value = %v, %v; want []", v, err)
	}
	if err := out.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestLayout_ScanToleratesBadText(t *testing.T) {
	var l store.Layout
	if err := l.Scan("not json"); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if string(l) != "[]" {
		t.Errorf("layout = %s, want []", l)
	}
}

func TestLayout_JSONEmbedsRawArray(t *testing.T) {
	v := struct {
		Layout store.Layout `json:"layout"`
		Empty  store.Layout `json:"empty"`
	}{Layout: store.Layout(`[{"i":"notes","minW":2}]`)}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); got != `{"layout":[{"i":"notes","minW":2}],"empty":[]}` {
		t.Errorf("marshal = %s", got)
	}
}

func TestDefaultLayout_Items(t *testing.T) {
	items, err := store.DefaultLayout().Items()
	if err != nil {
		t.Fatal(err)
	}
	want := store.LayoutItem{X: 0, Y: 0, W: 3, H: 1, I: store.AddWidgetID}
	if len(items) != 1 || items[0] != want {
		t.Errorf("items = %+v, want [%+v]", items, want)
	}
}
