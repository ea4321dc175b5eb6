package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tabkv/go-tabkv/record"
)

func mustLoad(t *testing.T, recs []record.Record) *Tree {
	t.Helper()
	tr, err := Load(recs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return tr
}

func TestLoadShape(t *testing.T) {
	// server
	//   host=localhost
	//   port=8080
	// debug
	tr := mustLoad(t, []record.Record{
		{Depth: 0, Key: "server"},
		{Depth: 1, Key: "host", Value: record.Value("localhost")},
		{Depth: 1, Key: "port", Value: record.Value("8080")},
		{Depth: 0, Key: "debug"},
	})
	if tr.Len() != 4 {
		t.Fatalf("len: got %d, want 4", tr.Len())
	}
	top := tr.Root().Children()
	if len(top) != 2 || top[0].LocalKey() != "server" || top[1].LocalKey() != "debug" {
		t.Fatalf("top-level children wrong: %v", keysOf(top))
	}
	kids := top[0].Children()
	if len(kids) != 2 || kids[0].LocalKey() != "host" || kids[1].LocalKey() != "port" {
		t.Fatalf("server children wrong: %v", keysOf(kids))
	}
	if v, ok := kids[1].Value(); !ok || v != "8080" {
		t.Fatalf("port value: got %q, %v", v, ok)
	}
	if _, ok := top[0].Value(); ok {
		t.Fatal("server should be a dummy entry")
	}
	if got := kids[0].Key(); got != "server.host" {
		t.Fatalf("global key: got %q", got)
	}
	if p, ok := kids[0].Parent(); !ok || p.LocalKey() != "server" {
		t.Fatalf("parent of host wrong")
	}
	if _, ok := tr.Root().Parent(); ok {
		t.Fatal("root must have no parent")
	}
}

func TestLoadWalkUpSeveralLevels(t *testing.T) {
	tr := mustLoad(t, []record.Record{
		{Depth: 0, Key: "a"},
		{Depth: 1, Key: "b"},
		{Depth: 2, Key: "c"},
		{Depth: 3, Key: "d"},
		{Depth: 0, Key: "e"},
		{Depth: 1, Key: "f"},
	})
	e, ok := tr.Resolve("e.f", false)
	if !ok {
		t.Fatal("e.f not found")
	}
	if got := e.Key(); got != "e.f" {
		t.Fatalf("got %q", got)
	}
	if _, ok := tr.Resolve("a.b.c.d", false); !ok {
		t.Fatal("a.b.c.d not found")
	}
}

func TestLoadSameKeyDifferentParents(t *testing.T) {
	// The duplicate rule is per sibling set only.
	tr := mustLoad(t, []record.Record{
		{Depth: 0, Key: "a"},
		{Depth: 1, Key: "x", Value: record.Value("1")},
		{Depth: 0, Key: "b"},
		{Depth: 1, Key: "x", Value: record.Value("2")},
	})
	for key, want := range map[string]string{"a.x": "1", "b.x": "2"} {
		e, ok := tr.Resolve(key, false)
		if !ok {
			t.Fatalf("%s not found", key)
		}
		if v, _ := e.Value(); v != want {
			t.Fatalf("%s: got %q, want %q", key, v, want)
		}
	}
}

func TestLoadDepthJump(t *testing.T) {
	_, err := Load([]record.Record{
		{Depth: 0, Key: "a", Line: 1},
		{Depth: 2, Key: "b", Line: 2},
	})
	if !errors.Is(err, ErrIllegalDepth) {
		t.Fatalf("got %v, want ErrIllegalDepth", err)
	}
	var de *DepthError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DepthError, got %T", err)
	}
	if de.Depth != 2 || de.MaxDepth != 1 || de.Record != 2 || de.Line != 2 {
		t.Fatalf("fields: %+v", de)
	}
	if got := de.Error(); got != "illegal depth: depth 2 exceeds 1 at line 2" {
		t.Fatalf("message: %q", got)
	}
}

func TestLoadFirstRecordMustBeTopLevel(t *testing.T) {
	_, err := Load([]record.Record{{Depth: 1, Key: "a"}})
	var de *DepthError
	if !errors.As(err, &de) {
		t.Fatalf("got %v", err)
	}
	if de.MaxDepth != 0 || de.Record != 1 {
		t.Fatalf("fields: %+v", de)
	}
	// No source line known, the ordinal is used instead.
	if got := de.Error(); got != "illegal depth: depth 1 exceeds 0 at record 1" {
		t.Fatalf("message: %q", got)
	}
}

func TestLoadNegativeDepth(t *testing.T) {
	// Decoded wire records can carry any int32 depth; a negative one
	// must fail the load, not crash it.
	for name, recs := range map[string][]record.Record{
		"first record": {
			{Depth: -1, Key: "a"},
		},
		"sibling of root": {
			{Depth: 0, Key: "a"},
			{Depth: -1, Key: "b"},
		},
		"below the root": {
			{Depth: 0, Key: "a"},
			{Depth: 1, Key: "b"},
			{Depth: -2, Key: "c"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			tr, err := Load(recs)
			if !errors.Is(err, ErrIllegalDepth) {
				t.Fatalf("got %v, want ErrIllegalDepth", err)
			}
			if tr != nil {
				t.Fatal("no partial tree on failure")
			}
		})
	}
}

func TestLoadDuplicateKey(t *testing.T) {
	_, err := Load([]record.Record{
		{Depth: 0, Key: "a", Value: record.Value("1"), Line: 1},
		{Depth: 0, Key: "a", Line: 2},
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("got %v, want ErrDuplicateKey", err)
	}
	var dke *DuplicateKeyError
	if !errors.As(err, &dke) {
		t.Fatalf("expected *DuplicateKeyError, got %T", err)
	}
	if dke.Key != "a" || dke.Record != 2 || dke.Line != 2 {
		t.Fatalf("fields: %+v", dke)
	}
	if got := dke.Error(); got != `duplicate key: "a" at line 2` {
		t.Fatalf("message: %q", got)
	}
}

func TestLoadDuplicateAfterWalkUp(t *testing.T) {
	_, err := Load([]record.Record{
		{Depth: 0, Key: "a"},
		{Depth: 1, Key: "b"},
		{Depth: 0, Key: "a"},
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("got %v, want ErrDuplicateKey", err)
	}
}

func TestResolveCreate(t *testing.T) {
	tr := New()
	e, ok := tr.Resolve("x.y.z", true)
	if !ok {
		t.Fatal("create resolve failed")
	}
	e.SetValue("v")
	if tr.Len() != 3 {
		t.Fatalf("len: got %d, want 3", tr.Len())
	}
	// Intermediate entries are dummies.
	x, _ := tr.Resolve("x", false)
	if _, ok := x.Value(); ok {
		t.Fatal("x should be a dummy entry")
	}
	z, ok := tr.Resolve("x.y.z", false)
	if !ok {
		t.Fatal("x.y.z not found after create")
	}
	if v, _ := z.Value(); v != "v" {
		t.Fatalf("got %q", v)
	}
	// A second create resolve reuses the existing entries.
	again, _ := tr.Resolve("x.y", true)
	if tr.Len() != 3 {
		t.Fatalf("create resolve duplicated entries: len %d", tr.Len())
	}
	if again.Key() != "x.y" {
		t.Fatalf("got %q", again.Key())
	}
}

func TestResolveMissing(t *testing.T) {
	tr := mustLoad(t, []record.Record{{Depth: 0, Key: "a"}})
	if _, ok := tr.Resolve("a.b", false); ok {
		t.Fatal("a.b should not resolve")
	}
	if _, ok := tr.Resolve("b", false); ok {
		t.Fatal("b should not resolve")
	}
	if _, ok := tr.Resolve("a", false); !ok {
		t.Fatal("a should resolve")
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	recs := []record.Record{
		{Depth: 0, Key: "server", Comments: []string{" net"}},
		{Depth: 1, Key: "host", Value: record.Value("localhost")},
		{Depth: 2, Key: "alias", Value: record.Value("lo")},
		{Depth: 1, Key: "port", Value: record.Value("8080")},
		{Depth: 0, Key: "debug"},
	}
	tr := mustLoad(t, recs)
	got := tr.Records()
	// Line numbers are parse metadata and are not reconstructed.
	if d := cmp.Diff(recs, got, cmpopts.EquateEmpty()); d != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", d)
	}
}

func keysOf(refs []Ref) []string {
	keys := make([]string, len(refs))
	for i, r := range refs {
		keys[i] = r.LocalKey()
	}
	return keys
}
