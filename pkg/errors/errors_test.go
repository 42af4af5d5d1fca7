package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "taskflow/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "conflict"))

	httpErr, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected wrapped HTTPError to be found")
	}
	if httpErr.Code != http.StatusConflict || httpErr.Error() != "conflict" {
		t.Errorf("unexpected error: %+v", httpErr)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("plain error must not be reported as HTTPError")
	}
}
