package testutils

import (
	"bytes"
	"io"
	"net/http"
	"reflect"
	"testing"
)

// CompareRequest reports whether actual has the method, url, headers and body of expected.
// Mismatches are logged so a failing mock.MatchedBy shows what differed.
func CompareRequest(t *testing.T, expected, actual *http.Request) bool {
	t.Helper()

	if expected.Method != actual.Method {
		t.Logf("expected request method: %s, got: %s", expected.Method, actual.Method)

		return false
	}

	if expected.URL.String() != actual.URL.String() {
		t.Logf("expected URL: %s, got: %s", expected.URL.String(), actual.URL.String())

		return false
	}

	if !reflect.DeepEqual(expected.Header, actual.Header) {
		t.Logf("expected headers: %s, got: %s", expected.Header, actual.Header)

		return false
	}

	if expected.ContentLength != actual.ContentLength {
		t.Logf("expected body content length: %d, got: %d", expected.ContentLength, actual.ContentLength)

		return false
	}

	expectedBody, actualBody := peekBody(t, expected), peekBody(t, actual)
	if !bytes.Equal(expectedBody, actualBody) {
		t.Logf("expected body: %s, got: %s", expectedBody, actualBody)

		return false
	}

	return true
}

// peekBody reads the request body without consuming it for the code under test.
func peekBody(t *testing.T, r *http.Request) []byte {
	t.Helper()

	if r.GetBody != nil {
		body, err := r.GetBody()
		if err != nil {
			t.Logf("failed to get request body: %s", err)
			return nil
		}
		defer body.Close()

		content, _ := io.ReadAll(body)
		return content
	}

	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	content, _ := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(content))

	return content
}
