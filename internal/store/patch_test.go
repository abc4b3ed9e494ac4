package store

import (
	"reflect"
	"testing"
)

func TestPatch_Update(t *testing.T) {
	title := "Geometry"
	folder := int64(4)
	var p patch
	setIf(&p, colTitle, &title)
	setIf[string](&p, colLocation, nil)
	setIf(&p, colThinkFolderID, &folder)

	query, args := p.update(tableThinkSession, 9)
	if query != "UPDATE thinksession SET title = ?, thinkfolder_id = ? WHERE id = ?" {
		t.Errorf("query = %q", query)
	}
	if !reflect.DeepEqual(args, []any{"Geometry", int64(4), int64(9)}) {
		t.Errorf("args = %#v", args)
	}
}

func TestPatch_Empty(t *testing.T) {
	var p patch
	setIf[string](&p, colTitle, nil)
	if !p.empty() {
		t.Error("patch with only nil fields should be empty")
	}
}
