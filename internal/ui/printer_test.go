package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Println("hello")
	p.PrintItem("node1.example.com")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("output missing plain line:\n%s", out)
	}
	if !strings.Contains(out, "node1.example.com") {
		t.Errorf("output missing list item:\n%s", out)
	}
}

func TestRenderHeader_ContainsTitleAndParams(t *testing.T) {
	out := RenderHeader("host probe", "sparx probe", map[string]string{"Hosts": "3"}, 80)

	if !strings.Contains(out, "HOST PROBE") {
		t.Errorf("header missing uppercased title:\n%s", out)
	}
	if !strings.Contains(out, "sparx probe") {
		t.Errorf("header missing command line:\n%s", out)
	}
	if !strings.Contains(out, "Hosts") {
		t.Errorf("header missing parameter:\n%s", out)
	}
}

func TestPrinter_SuccessAndErrorBoxes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuccess("Cluster deployed", map[string]string{"Config": "k0sctl.yaml"})
	p.PrintError("Deployment failed", errors.New("ssh timeout"), []string{"Check host reachability"})

	out := buf.String()
	for _, want := range []string{"Cluster deployed", "k0sctl.yaml", "ssh timeout", "Check host reachability"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderErrorBox_ContainsErrorAndTips(t *testing.T) {
	out := RenderErrorBox("probe failed", errors.New("connection refused"), []string{"check the host is powered on"}, 80)

	if !strings.Contains(out, "FAILED") {
		t.Errorf("box missing FAILED marker:\n%s", out)
	}
	if !strings.Contains(out, "connection refused") {
		t.Errorf("box missing error text:\n%s", out)
	}
	if !strings.Contains(out, "check the host is powered on") {
		t.Errorf("box missing troubleshooting tip:\n%s", out)
	}
}
