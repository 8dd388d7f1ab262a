package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrapRecordsStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusCreated)
	n, err := w.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write() = (%d, %v), want (5, nil)", n, err)
	}

	if w.StatusCode() != http.StatusCreated {
		t.Errorf("StatusCode() = %d, want 201", w.StatusCode())
	}
	if w.BytesWritten() != 5 {
		t.Errorf("BytesWritten() = %d, want 5", w.BytesWritten())
	}
}

func TestWrapImplicit200(t *testing.T) {
	w := Wrap(httptest.NewRecorder())
	if _, err := w.Write([]byte("ok")); err != nil {
		t.Fatal(err)
	}
	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want implicit 200", w.StatusCode())
	}
}

func TestWrapIgnoresDoubleWriteHeader(t *testing.T) {
	w := Wrap(httptest.NewRecorder())
	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)
	if w.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want first write preserved", w.StatusCode())
	}
}
