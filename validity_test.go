package coredump

import "testing"

func TestIsValid_coldBootPatternsAreAllRejected(t *testing.T) {
	for name, raw := range adversarialColdBootPatterns() {
		rec, err := UnpackDumpRecord(raw)
		if err != nil {
			t.Fatalf("(%s): unexpected unpack error: %v", name, err)
		}

		if IsValid(rec) {
			t.Fatalf("(%s): adversarial pattern was accepted as a valid record", name)
		}
	}
}

func TestMarkValid_thenIsValid(t *testing.T) {
	rec := new(DumpRecord)

	if IsValid(rec) {
		t.Fatalf("zero-valued record should not be valid")
	}

	MarkValid(rec)

	if !IsValid(rec) {
		t.Fatalf("expected record to be valid immediately after MarkValid")
	}
}

func TestClearValidity_isValidFalseButFieldsSurvive(t *testing.T) {
	rec := new(DumpRecord)
	MarkValid(rec)
	rec.LineNumber = 99
	rec.AuxCode = 7

	ClearValidity(rec)

	if IsValid(rec) {
		t.Fatalf("expected record to be invalid after ClearValidity")
	}

	if rec.LineNumber != 99 || rec.AuxCode != 7 {
		t.Fatalf("ClearValidity must not touch non-key fields")
	}
}
