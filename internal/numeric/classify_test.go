package numeric

import "testing"

func TestClassifyLiteral_Long(t *testing.T) {
	kind, longVal, _, err := ClassifyLiteral("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != LongKind {
		t.Errorf("kind = %v, want LongKind", kind)
	}
	if longVal != 42 {
		t.Errorf("longVal = %d, want 42", longVal)
	}
}

func TestClassifyLiteral_Negative(t *testing.T) {
	kind, longVal, _, err := ClassifyLiteral("-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != LongKind || longVal != -7 {
		t.Errorf("got kind=%v longVal=%d, want LongKind -7", kind, longVal)
	}
}

func TestClassifyLiteral_DecimalPoint(t *testing.T) {
	kind, _, doubleVal, err := ClassifyLiteral("3.14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != DoubleKind {
		t.Errorf("kind = %v, want DoubleKind", kind)
	}
	if doubleVal != 3.14 {
		t.Errorf("doubleVal = %v, want 3.14", doubleVal)
	}
}

func TestClassifyLiteral_WholeNumberWithDot(t *testing.T) {
	// "3.0" must classify as double even though it has no fractional digits
	// that matter numerically — the tie-break is syntactic, not semantic.
	kind, _, doubleVal, err := ClassifyLiteral("3.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != DoubleKind || doubleVal != 3.0 {
		t.Errorf("got kind=%v doubleVal=%v, want DoubleKind 3.0", kind, doubleVal)
	}
}

func TestClassifyLiteral_Exponent(t *testing.T) {
	kind, _, doubleVal, err := ClassifyLiteral("1e10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != DoubleKind || doubleVal != 1e10 {
		t.Errorf("got kind=%v doubleVal=%v, want DoubleKind 1e10", kind, doubleVal)
	}
}

func TestClassifyLiteral_OverflowFallsBackToDouble(t *testing.T) {
	kind, _, doubleVal, err := ClassifyLiteral("99999999999999999999999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != DoubleKind {
		t.Errorf("kind = %v, want DoubleKind for overflowing literal", kind)
	}
	if doubleVal <= 0 {
		t.Errorf("doubleVal = %v, want positive", doubleVal)
	}
}

func TestClassifyLiteral_InvalidReturnsError(t *testing.T) {
	_, _, _, err := ClassifyLiteral("not-a-number")
	if err == nil {
		t.Fatal("expected error for invalid literal")
	}
}

func TestKind_String(t *testing.T) {
	if LongKind.String() != "long" {
		t.Errorf("LongKind.String() = %q, want %q", LongKind.String(), "long")
	}
	if DoubleKind.String() != "double" {
		t.Errorf("DoubleKind.String() = %q, want %q", DoubleKind.String(), "double")
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Kind(99).String() = %q, want %q", Kind(99).String(), "unknown")
	}
}
