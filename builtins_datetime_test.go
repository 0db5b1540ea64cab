package polonio

import (
	"testing"
	"time"
)

func TestBuiltinNowReturnsCurrentWallClockSeconds(t *testing.T) {
	out, err := runSource(t, `echo now()`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := evalExprSource(t, "now()")
	if got.Kind != NumberValueKind {
		t.Fatalf("now() returned kind %v, want number", got.Kind)
	}
	delta := got.Number - float64(time.Now().Unix())
	if delta < -5 || delta > 5 {
		t.Errorf("now() = %v, not within 5s of wall clock", got.Number)
	}
	if out == "" {
		t.Error("echo now() produced empty output")
	}
}

func TestBuiltinNowRejectsArguments(t *testing.T) {
	_, err := runSource(t, `echo now(1)`)
	if err == nil {
		t.Fatal("expected an error for now() called with an argument")
	}
}

func TestBuiltinDatePartsDecomposesEpoch(t *testing.T) {
	out, err := runSource(t, `
var parts = date_parts(1609459200)
echo parts["year"]
echo "-"
echo parts["month"]
echo "-"
echo parts["day"]
echo " "
echo parts["hour"]
echo ":"
echo parts["minute"]
echo ":"
echo parts["second"]
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2021-1-1 0:0:0" {
		t.Fatalf("got %q, want %q", out, "2021-1-1 0:0:0")
	}
}

func TestBuiltinDateFormatTokens(t *testing.T) {
	out, err := runSource(t, `echo date_format(1609459200, "YYYY-MM-DD HH:mm:SS")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2021-01-01 00:00:00" {
		t.Fatalf("got %q, want %q", out, "2021-01-01 00:00:00")
	}
}

// TestBuiltinParseDateRoundTripsWithDateFormat grounds parse_date's
// string->epoch direction against date_format's epoch->string direction.
func TestBuiltinParseDateRoundTripsWithDateFormat(t *testing.T) {
	out, err := runSource(t, `
var epoch = parse_date("2021-01-01 00:00:00")
echo date_format(epoch, "YYYY-MM-DD HH:mm:SS")
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2021-01-01 00:00:00" {
		t.Fatalf("got %q, want %q", out, "2021-01-01 00:00:00")
	}
}

func TestBuiltinParseDateRejectsNonString(t *testing.T) {
	_, err := runSource(t, `echo parse_date(123)`)
	if err == nil {
		t.Fatal("expected an error for parse_date() called with a number")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != RuntimeError {
		t.Fatalf("got %v, want a RuntimeError", err)
	}
}
