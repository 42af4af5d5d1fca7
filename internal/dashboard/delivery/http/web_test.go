package http

import (
	"io"
	"strings"
	"testing"
)

func TestStaticScriptOrdersDragRequests(t *testing.T) {
	f, err := StaticFS().Open("app.js")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	src := string(data)

	start := strings.Index(src, "dragStarted = api('POST', '/tasks/drag/start'")
	if start < 0 {
		t.Fatal("dragstart should keep the start request")
	}
	wait := strings.Index(src, "await dragStarted;")
	drop := strings.Index(src, "api('POST', '/tasks/drag/drop'")
	if wait < 0 || drop < 0 || wait > drop {
		t.Error("drop should wait for the start request before posting")
	}
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"auth.html", "dashboard.html"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("missing template %s", name)
		}
	}
}
