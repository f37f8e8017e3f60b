package factory_test

import (
	"strings"
	"testing"

	"github.com/go-drift/tk/pkg/errors"
	"github.com/go-drift/tk/pkg/factory"
	tktest "github.com/go-drift/tk/pkg/testing"
	"github.com/go-drift/tk/pkg/widget"
	"github.com/go-drift/tk/pkg/widgets"
)

func newRoot() *widget.Widget {
	return widgets.WindowCreate(nil, 0, 0, 800, 480)
}

func TestCreateWidget_Builtins(t *testing.T) {
	f := factory.New()
	for _, c := range factory.Builtins() {
		t.Run(c.Type, func(t *testing.T) {
			root := newRoot()
			w := f.CreateWidget(c.Type, root, 10, 20, 100, 50)
			if w == nil {
				t.Fatalf("CreateWidget(%q) returned nil", c.Type)
			}
			if w.Type() != c.Type {
				t.Errorf("Type() = %q, want %q", w.Type(), c.Type)
			}
			if w.Parent() != root {
				t.Errorf("Parent() = %p, want %p", w.Parent(), root)
			}
			if w.X != 10 || w.Y != 20 || w.W != 100 || w.H != 50 {
				t.Errorf("geometry = (%d,%d,%d,%d), want (10,20,100,50)", w.X, w.Y, w.W, w.H)
			}
			if len(root.Children()) != 1 || root.Children()[0] != w {
				t.Errorf("widget not linked under parent")
			}
		})
	}
}

func TestCreateWidget_Unknown(t *testing.T) {
	f := factory.New()
	root := newRoot()
	for _, name := range []string{"nonexistent", "Button", "button ", "list-view"} {
		if w := f.CreateWidget(name, root, 0, 0, 0, 0); w != nil {
			t.Errorf("CreateWidget(%q) = %v, want nil", name, w.Type())
		}
	}
	if len(root.Children()) != 0 {
		t.Errorf("misses linked %d widgets", len(root.Children()))
	}
}

func TestCreateWidget_InvalidArgs(t *testing.T) {
	var nilFactory *factory.Factory
	if w := nilFactory.CreateWidget(widgets.TypeButton, nil, 0, 0, 1, 1); w != nil {
		t.Error("nil factory should return nil")
	}
	if w := factory.New().CreateWidget("", nil, 0, 0, 1, 1); w != nil {
		t.Error("empty type name should return nil")
	}
}

func TestRegister_CustomType(t *testing.T) {
	f := factory.New()
	ctor := tktest.NewCountingConstructor("my_widget")
	if err := f.Register("my_widget", ctor.Create); err != nil {
		t.Fatalf("Register: %v", err)
	}

	root := newRoot()
	w := f.CreateWidget("my_widget", root, 10, 20, 100, 50)
	if w == nil {
		t.Fatal("expected widget")
	}
	if w.Parent() != root {
		t.Error("parent not set")
	}
	if w.X != 10 || w.Y != 20 || w.W != 100 || w.H != 50 {
		t.Errorf("geometry = (%d,%d,%d,%d), want (10,20,100,50)", w.X, w.Y, w.W, w.H)
	}
	if f.CreateWidget("nonexistent", root, 0, 0, 0, 0) != nil {
		t.Error("expected nil for unknown type")
	}
}

func TestRegister_BuiltinNotShadowed(t *testing.T) {
	f := factory.New()
	ctor := tktest.NewCountingConstructor(widgets.TypeButton)
	if err := f.Register(widgets.TypeButton, ctor.Create); err != nil {
		t.Fatalf("Register: %v", err)
	}

	w := f.CreateWidget(widgets.TypeButton, newRoot(), 0, 0, 80, 30)
	if w == nil {
		t.Fatal("expected widget")
	}
	if _, ok := widgets.As[*widgets.Button](w); !ok {
		t.Errorf("got variant %T, want *widgets.Button", w.Impl())
	}
	if ctor.Calls() != 0 {
		t.Errorf("registered constructor ran %d times, want 0", ctor.Calls())
	}
	if _, src, _ := f.Lookup(widgets.TypeButton); src != factory.SourceBuiltin {
		t.Errorf("Lookup source = %v, want builtin", src)
	}
}

func TestRegister_FirstMatchWins(t *testing.T) {
	f := factory.New()
	first := tktest.NewCountingConstructor("gauge")
	second := tktest.NewCountingConstructor("gauge")
	if err := f.Register("gauge", first.Create); err != nil {
		t.Fatal(err)
	}
	if err := f.Register("gauge", second.Create); err != nil {
		t.Fatal(err)
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (no deduplication)", f.Len())
	}

	if w := f.CreateWidget("gauge", nil, 0, 0, 1, 1); w == nil {
		t.Fatal("expected widget")
	}
	if first.Calls() != 1 || second.Calls() != 0 {
		t.Errorf("calls first=%d second=%d, want 1 and 0", first.Calls(), second.Calls())
	}
}

func TestRegister_BadParams(t *testing.T) {
	ctor := tktest.NewCountingConstructor("x")
	var nilFactory *factory.Factory

	tests := []struct {
		name   string
		f      *factory.Factory
		typ    string
		create widget.Constructor
	}{
		{"nil factory", nilFactory, "x", ctor.Create},
		{"empty name", factory.New(), "", ctor.Create},
		{"nil constructor", factory.New(), "x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.f.Len()
			err := tt.f.Register(tt.typ, tt.create)
			if !errors.Is(err, errors.ErrBadParams) {
				t.Fatalf("err = %v, want ErrBadParams", err)
			}
			if errors.KindOf(err) != errors.KindBadParams {
				t.Errorf("KindOf = %v, want bad_params", errors.KindOf(err))
			}
			if tt.f.Len() != before {
				t.Errorf("Len changed from %d to %d", before, tt.f.Len())
			}
		})
	}
}

func TestRegister_TruncatesLongNames(t *testing.T) {
	f := factory.New()
	long := strings.Repeat("w", factory.DefaultNameLen+9)
	ctor := tktest.NewCountingConstructor("long")
	if err := f.Register(long, ctor.Create); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got := f.Registered()[0].Type
	if len(got) != factory.DefaultNameLen {
		t.Errorf("stored name length = %d, want %d", len(got), factory.DefaultNameLen)
	}
	if f.CreateWidget(long, nil, 0, 0, 1, 1) == nil {
		t.Error("full name should resolve to the truncated record")
	}
	if f.CreateWidget(got, nil, 0, 0, 1, 1) == nil {
		t.Error("truncated name should resolve")
	}
}

func TestRegister_TruncatesOnRuneBoundary(t *testing.T) {
	f := factory.NewWithOptions(factory.Options{NameLen: 4})
	ctor := tktest.NewCountingConstructor("ab")
	// "abéé" is 6 bytes; a 4-byte bound falls on a rune boundary.
	if err := f.Register("abéé", ctor.Create); err != nil {
		t.Fatal(err)
	}
	if got := f.Registered()[0].Type; got != "abé" {
		t.Errorf("stored = %q, want %q", got, "abé")
	}

	g := factory.NewWithOptions(factory.Options{NameLen: 3})
	if err := g.Register("abé", ctor.Create); err != nil {
		t.Fatal(err)
	}
	if got := g.Registered()[0].Type; got != "ab" {
		t.Errorf("stored = %q, want %q", got, "ab")
	}
}

func TestRegister_RejectsEmptyTruncation(t *testing.T) {
	// "é" is 2 bytes; a 1-byte bound leaves nothing on a rune boundary.
	f := factory.NewWithOptions(factory.Options{NameLen: 1})
	ctor := tktest.NewCountingConstructor("x")
	if err := f.Register("é", ctor.Create); !errors.Is(err, errors.ErrBadParams) {
		t.Fatalf("err = %v, want ErrBadParams", err)
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
	if _, _, ok := f.Lookup("ü"); ok {
		t.Error("Lookup(\"ü\") resolved under a 1-byte bound")
	}
	if f.CreateWidget("ü", nil, 0, 0, 1, 1) != nil || ctor.Calls() != 0 {
		t.Error("constructor ran for a name that truncates to empty")
	}
}

func TestRegister_StrictNames(t *testing.T) {
	f := factory.NewWithOptions(factory.Options{NameLen: 8, StrictNames: true})
	ctor := tktest.NewCountingConstructor("x")
	err := f.Register("much_too_long", ctor.Create)
	if !errors.Is(err, errors.ErrBadParams) {
		t.Fatalf("err = %v, want ErrBadParams", err)
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
	if f.CreateWidget("much_too_long", nil, 0, 0, 1, 1) != nil {
		t.Error("long name must not resolve in strict mode")
	}
}

func TestRegister_OutOfMemory(t *testing.T) {
	f := factory.NewWithOptions(factory.Options{MaxTypes: 2})
	ctor := tktest.NewCountingConstructor("x")
	for _, name := range []string{"a", "b"} {
		if err := f.Register(name, ctor.Create); err != nil {
			t.Fatalf("Register(%q): %v", name, err)
		}
	}
	err := f.Register("c", ctor.Create)
	if !errors.Is(err, errors.ErrOutOfMemory) {
		t.Fatalf("err = %v, want ErrOutOfMemory", err)
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}
}

func TestCreateWidget_ConstructorFailure(t *testing.T) {
	f := factory.New()
	ctor := tktest.NewCountingConstructor("flaky")
	ctor.Fail = true
	if err := f.Register("flaky", ctor.Create); err != nil {
		t.Fatal(err)
	}
	root := newRoot()
	if w := f.CreateWidget("flaky", root, 0, 0, 1, 1); w != nil {
		t.Error("expected nil from failing constructor")
	}
	if len(root.Children()) != 0 {
		t.Error("failing constructor left a child behind")
	}
}

func TestCreateWidget_ConstructorPanic(t *testing.T) {
	var captured *errors.PanicError
	old := errors.DefaultHandler
	errors.SetHandler(&panicCapture{fn: func(p *errors.PanicError) { captured = p }})
	defer errors.SetHandler(old)

	f := factory.New()
	err := f.Register("bomb", func(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
		widgets.LabelCreate(parent, x, y, w, h)
		panic("constructor exploded")
	})
	if err != nil {
		t.Fatal(err)
	}

	root := newRoot()
	if w := f.CreateWidget("bomb", root, 0, 0, 1, 1); w != nil {
		t.Error("expected nil after panic")
	}
	if captured == nil || captured.Op != "factory.CreateWidget" {
		t.Fatalf("panic not reported: %+v", captured)
	}
	if len(root.Children()) != 0 {
		t.Errorf("partially linked widgets left: %d", len(root.Children()))
	}
}

func TestDeinit_KeepsFactoryUsable(t *testing.T) {
	f := factory.New()
	ctor := tktest.NewCountingConstructor("a")
	_ = f.Register("a", ctor.Create)
	_ = f.Register("b", ctor.Create)

	if err := f.Deinit(); err != nil {
		t.Fatalf("Deinit: %v", err)
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d after Deinit", f.Len())
	}
	if f.CreateWidget("a", nil, 0, 0, 1, 1) != nil {
		t.Error("deinit record still resolvable")
	}
	if err := f.Register("a", ctor.Create); err != nil {
		t.Errorf("Register after Deinit: %v", err)
	}
	if f.Init() != f {
		t.Error("Init should return the same factory")
	}
	if f.Len() != 0 {
		t.Error("Init should empty the table")
	}
}

func TestDestroy_ReleasesRecords(t *testing.T) {
	f := factory.New()
	names := []string{"a", "b", "c"}
	ctors := make([]*tktest.CountingConstructor, len(names))
	root := newRoot()
	for i, name := range names {
		ctors[i] = tktest.NewCountingConstructor(name)
		if err := f.Register(name, ctors[i].Create); err != nil {
			t.Fatal(err)
		}
		if f.CreateWidget(name, root, 0, 0, 1, 1) == nil {
			t.Fatalf("CreateWidget(%q) returned nil", name)
		}
	}

	if err := f.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if f.Len() != 0 || len(f.Registered()) != 0 {
		t.Errorf("records outstanding after Destroy: %d", f.Len())
	}
	if !f.Destroyed() {
		t.Error("Destroyed() = false")
	}
	if types := f.Types(); types != nil {
		t.Errorf("Types() after Destroy = %v, want nil", types)
	}

	root.Destroy()
	for i, c := range ctors {
		if c.Live() != 0 {
			t.Errorf("%s: live widgets = %d, want 0", names[i], c.Live())
		}
	}

	if err := f.Destroy(); !errors.Is(err, errors.ErrDestroyed) {
		t.Errorf("second Destroy err = %v, want ErrDestroyed", err)
	}
	if err := f.Register("d", ctors[0].Create); !errors.Is(err, errors.ErrBadParams) {
		t.Errorf("Register after Destroy err = %v, want ErrBadParams", err)
	}
	if f.CreateWidget(widgets.TypeButton, nil, 0, 0, 1, 1) != nil {
		t.Error("destroyed factory created a widget")
	}
	if f.Init() != nil {
		t.Error("Init on destroyed factory should return nil")
	}
}

func TestNilFactoryLifecycle(t *testing.T) {
	var f *factory.Factory
	if f.Init() != nil {
		t.Error("Init on nil should return nil")
	}
	if err := f.Deinit(); !errors.Is(err, errors.ErrBadParams) {
		t.Errorf("Deinit err = %v", err)
	}
	if err := f.Destroy(); !errors.Is(err, errors.ErrBadParams) {
		t.Errorf("Destroy err = %v", err)
	}
}

func TestZeroValueFactory(t *testing.T) {
	var f factory.Factory
	ctor := tktest.NewCountingConstructor("z")
	if err := f.Register("z", ctor.Create); err != nil {
		t.Fatalf("Register on zero value: %v", err)
	}
	if f.CreateWidget("z", nil, 0, 0, 1, 1) == nil {
		t.Error("zero-value factory did not resolve registration")
	}
}

func TestTypes(t *testing.T) {
	f := factory.New()
	ctor := tktest.NewCountingConstructor("x")
	_ = f.Register("gauge", ctor.Create)
	_ = f.Register(widgets.TypeLabel, ctor.Create)
	_ = f.Register("gauge", ctor.Create)

	types := f.Types()
	builtins := factory.Builtins()
	if len(types) != len(builtins)+1 {
		t.Fatalf("len(Types()) = %d, want %d", len(types), len(builtins)+1)
	}
	if types[0] != widgets.TypeDialog {
		t.Errorf("Types()[0] = %q, want dialog", types[0])
	}
	if types[len(types)-1] != "gauge" {
		t.Errorf("last type = %q, want gauge", types[len(types)-1])
	}
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	f := factory.NewWithOptions(factory.Options{Observer: obs})
	ctor := tktest.NewCountingConstructor("gauge")
	_ = f.Register("gauge", ctor.Create)

	f.CreateWidget("gauge", nil, 0, 0, 1, 1)
	f.CreateWidget(widgets.TypeSlider, nil, 0, 0, 1, 1)
	f.CreateWidget("nope", nil, 0, 0, 1, 1)

	if strings.Join(obs.registered, ",") != "gauge" {
		t.Errorf("registered = %v", obs.registered)
	}
	want := []string{"gauge/registered/true", "slider/builtin/true"}
	if strings.Join(obs.created, ",") != strings.Join(want, ",") {
		t.Errorf("created = %v, want %v", obs.created, want)
	}
	if strings.Join(obs.missed, ",") != "nope" {
		t.Errorf("missed = %v", obs.missed)
	}
}

type recordingObserver struct {
	registered []string
	created    []string
	missed     []string
}

func (o *recordingObserver) TypeRegistered(name string) {
	o.registered = append(o.registered, name)
}

func (o *recordingObserver) WidgetCreated(name string, src factory.Source, ok bool) {
	state := "false"
	if ok {
		state = "true"
	}
	o.created = append(o.created, name+"/"+src.String()+"/"+state)
}

func (o *recordingObserver) WidgetMissed(name string) {
	o.missed = append(o.missed, name)
}

type panicCapture struct {
	fn func(*errors.PanicError)
}

func (p *panicCapture) HandleError(*errors.TkError) {}

func (p *panicCapture) HandlePanic(err *errors.PanicError) { p.fn(err) }
