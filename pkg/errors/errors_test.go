package errors

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTkErrorString(t *testing.T) {
	err := &TkError{Op: "factory.Register", Kind: KindBadParams, Err: ErrBadParams}
	want := "factory.Register [bad_params]: bad parameters"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTkErrorWithType(t *testing.T) {
	err := &TkError{Op: "ui.Build", Kind: KindNotFound, Type: "sliderr", Err: &NotFoundError{Type: "sliderr"}}
	got := err.Error()
	if !strings.Contains(got, "type=sliderr") {
		t.Errorf("error string %q should contain %q", got, "type=sliderr")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindBadParams, "bad_params"},
		{KindOutOfMemory, "out_of_memory"},
		{KindNotFound, "not_found"},
		{KindParsing, "parsing"},
		{KindInit, "init"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEDerivesKind(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{ErrBadParams, KindBadParams},
		{ErrDestroyed, KindBadParams},
		{fmt.Errorf("record: %w", ErrOutOfMemory), KindOutOfMemory},
		{&NotFoundError{Type: "x"}, KindNotFound},
		{fmt.Errorf("boom"), KindUnknown},
	}
	for _, tt := range tests {
		got := E("op", "", tt.err)
		if got.Kind != tt.want {
			t.Errorf("E(%v).Kind = %v, want %v", tt.err, got.Kind, tt.want)
		}
		if KindOf(fmt.Errorf("wrapped: %w", got)) != tt.want {
			t.Errorf("KindOf through wrap lost kind %v", tt.want)
		}
	}
}

func TestNotFoundErrorSuggestion(t *testing.T) {
	err := &NotFoundError{Type: "buton", Suggestion: "button"}
	want := `unknown widget type "buton" (did you mean "button"?)`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	plain := &NotFoundError{Type: "zzz"}
	if got := plain.Error(); got != `unknown widget type "zzz"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "factory.CreateWidget"
	if got, want := err.Error(), "panic in factory.CreateWidget: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *TkError
	handler := &testHandler{onError: func(err *TkError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&TkError{Op: "test.op", Kind: KindInit, Err: ErrBadParams})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := NewLogHandler(zap.New(core))

	h.HandleError(&TkError{Op: "ui.Build", Kind: KindNotFound, Type: "nope", Err: &NotFoundError{Type: "nope"}})
	h.HandleError(&TkError{Op: "factory.Register", Kind: KindBadParams, Err: ErrBadParams})
	h.HandlePanic(&PanicError{Op: "factory.CreateWidget", Value: "boom"})
	h.HandleError(nil)

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d log entries, want 3", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("not-found level = %v, want warn", entries[0].Level)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("bad-params level = %v, want error", entries[1].Level)
	}
	if entries[0].ContextMap()["type"] != "nope" {
		t.Errorf("missing type field: %v", entries[0].ContextMap())
	}
	if entries[2].Message != "widget panic" {
		t.Errorf("panic message = %q", entries[2].Message)
	}
}

type testHandler struct {
	onError func(*TkError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *TkError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
