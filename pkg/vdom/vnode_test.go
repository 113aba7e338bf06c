package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFuncComponent(t *testing.T) {
	called := 0
	comp := Func(func() *VNode {
		called++
		return Div(Text("hi"))
	})

	node := comp.Render()
	if called != 1 {
		t.Errorf("render called %d times, want 1", called)
	}
	if node.Tag != "div" {
		t.Errorf("Tag = %q, want div", node.Tag)
	}
}

func TestRef(t *testing.T) {
	var nilRef *Ref
	nilRef.Set(Div())
	if nilRef.Get() != nil {
		t.Error("nil Ref should hold nothing")
	}

	ref := &Ref{}
	if ref.Get() != nil {
		t.Error("zero Ref should be empty")
	}
	node := Div()
	ref.Set(node)
	if ref.Get() != node {
		t.Error("Ref.Get() should return the stored node")
	}
}

func TestVNodeAccessors(t *testing.T) {
	node := Div(Class("a", "b"), StyleMap(Style{"color": "red"}))

	if got := node.ClassName(); got != "a b" {
		t.Errorf("ClassName() = %q, want %q", got, "a b")
	}
	if got := node.StyleMap().Get("color"); got != "red" {
		t.Errorf("StyleMap()[color] = %q, want red", got)
	}
	if _, ok := node.Attr("id"); ok {
		t.Error("id should not be set")
	}

	var nilNode *VNode
	if nilNode.ClassName() != "" {
		t.Error("nil node should have empty class")
	}
}
