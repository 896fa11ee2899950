package emucore

import "testing"

func TestResultStatusString(t *testing.T) {
	tests := []struct {
		status   ResultStatus
		expected string
	}{
		{StatusSuccess, "Success"},
		{StatusErrorNotInitialized, "ErrorNotInitialized"},
		{StatusErrorGetLoader, "ErrorGetLoader"},
		{StatusErrorSystemFiles, "ErrorSystemFiles"},
		{StatusErrorSharedFont, "ErrorSharedFont"},
		{StatusErrorVideoCore, "ErrorVideoCore"},
		{StatusErrorUnknown, "ErrorUnknown"},
		{StatusErrorLoader, "ErrorLoader"},
		{ResultStatus(99), "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.status.String(); got != tc.expected {
				t.Errorf("ResultStatus(%d).String() = %q, want %q", tc.status, got, tc.expected)
			}
		})
	}
}

func TestResultStatusOK(t *testing.T) {
	if !StatusSuccess.OK() {
		t.Error("StatusSuccess.OK() = false, want true")
	}
	if StatusErrorLoader.OK() {
		t.Error("StatusErrorLoader.OK() = true, want false")
	}
}

func TestFormatForExtension(t *testing.T) {
	info := DefaultSystemInfo()

	if f, ok := info.FormatForExtension(".nsp"); !ok || f.Name != "NSP" {
		t.Errorf("FormatForExtension(.nsp) = %v, %v", f, ok)
	}
	if f, ok := info.FormatForExtension(".xci"); !ok || f.Name != "XCI" {
		t.Errorf("FormatForExtension(.xci) = %v, %v", f, ok)
	}
	if _, ok := info.FormatForExtension(".NSP"); ok {
		t.Error("FormatForExtension expects a lower-cased extension")
	}
	if _, ok := info.FormatForExtension(".zip"); ok {
		t.Error("FormatForExtension(.zip) should not match")
	}
}
