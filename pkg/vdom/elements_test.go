package vdom

import "testing"

func TestCreateElementArgs(t *testing.T) {
	child := Span()
	comp := Func(func() *VNode { return Strong() })

	node := Div(
		nil,
		ID("root"),
		[]Attr{Class("x"), Data("toast-id", "7")},
		Key("k1"),
		child,
		[]*VNode{Main(), nil},
		comp,
		"text",
		Attr{},
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("unexpected node %v/%q", node.Kind, node.Tag)
	}
	if node.Key != "k1" {
		t.Errorf("Key = %q, want k1", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key must not be stored as a prop")
	}
	if node.Props["id"] != "root" || node.Props["class"] != "x" || node.Props["data-toast-id"] != "7" {
		t.Errorf("Props = %v", node.Props)
	}
	if len(node.Children) != 4 {
		t.Fatalf("Children len = %d, want 4", len(node.Children))
	}
	if node.Children[2].Kind != KindComponent {
		t.Errorf("third child kind = %v, want Component", node.Children[2].Kind)
	}
	if node.Children[3].Kind != KindText || node.Children[3].Text != "text" {
		t.Errorf("fourth child = %+v, want text node", node.Children[3])
	}
}

func TestEmptyIDDropped(t *testing.T) {
	node := Div(ID(""))
	if _, ok := node.Props["id"]; ok {
		t.Error("empty id should not be set")
	}
}

func TestClassSkipsEmpty(t *testing.T) {
	node := Div(Class("a", "", "  ", ClassIf(false, "b"), ClassIf(true, "c")))
	if got := node.ClassName(); got != "a c" {
		t.Errorf("class = %q, want %q", got, "a c")
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("meta") || IsVoidElement("div") {
		t.Error("IsVoidElement mismatch")
	}
}
