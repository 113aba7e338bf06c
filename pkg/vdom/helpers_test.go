package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<strong>Bold</strong>")

	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want KindRaw", node.Kind)
	}
}

func TestFragment(t *testing.T) {
	node := Fragment(Div(), nil, []*VNode{Span(), nil}, "txt", Func(func() *VNode { return nil }))
	if node.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", node.Kind)
	}
	if len(node.Children) != 4 {
		t.Errorf("Children len = %v, want 4", len(node.Children))
	}
}

func TestConditionals(t *testing.T) {
	n := Div()
	if If(true, n) != n || If(false, n) != nil {
		t.Error("If mismatch")
	}
	calls := 0
	fn := func() *VNode { calls++; return n }
	if When(false, fn) != nil || calls != 0 {
		t.Error("When(false) must not call fn")
	}
	if When(true, fn) != n || calls != 1 {
		t.Error("When(true) must call fn once")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "skip", "c"}
	nodes := Range(items, func(item string, i int) *VNode {
		if item == "skip" {
			return nil
		}
		return Div(Key(i), Text(item))
	})

	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[1].Key != "2" {
		t.Errorf("Key = %q, want 2", nodes[1].Key)
	}
}
