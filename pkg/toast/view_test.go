package toast_test

import (
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/toastify/pkg/render"
	"github.com/vango-dev/toastify/pkg/toast"
	"github.com/vango-dev/toastify/pkg/vdom"
)

func defaultProps(id string) toast.Props {
	p := toast.DefaultOptions().ToastProps()
	p.ToastID = toast.ID(id)
	p.Key = id
	return p
}

func TestViewClasses(t *testing.T) {
	p := defaultProps("t1")
	p.Type = toast.TypeSuccess
	p.RTL = true
	p.ClassName = "mine"

	node := toast.View(p, true, vdom.Text("hello"))

	class := node.ClassName()
	for _, want := range []string{
		"Toastify--animate Toastify__bounce-enter--top-right",
		"Toastify__toast",
		"Toastify__toast-theme--light",
		"Toastify__toast--success",
		"Toastify__toast--rtl",
		"Toastify__toast--close-on-click",
		"mine",
	} {
		if !strings.Contains(class, want) {
			t.Errorf("class %q missing %q", class, want)
		}
	}
	if node.Key != "toast-t1" {
		t.Errorf("Key = %q", node.Key)
	}
}

func TestViewRendersChrome(t *testing.T) {
	p := defaultProps("t1")
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(toast.View(p, true, vdom.Text("hello")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`role="alert"`,
		`class="Toastify__toast-body"`,
		`>hello</div>`,
		`aria-label="close"`,
		`class="Toastify__close-button Toastify__close-button--light"`,
		`animation-duration: 5000ms; animation-play-state: running`,
		`role="progressbar"`,
		`data-draggable-direction="x"`,
		`data-draggable-percent="80"`,
		`data-toast-id="t1"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q:\n%s", want, html)
		}
	}
}

func TestViewProgressBar(t *testing.T) {
	renderer := render.NewRenderer(render.RendererConfig{})

	tests := []struct {
		name    string
		mutate  func(*toast.Props)
		want    string
		missing string
	}{
		{"paused", func(p *toast.Props) { p.IsPaused = true }, "animation-play-state: paused", ""},
		{"hidden", func(p *toast.Props) { p.HideProgressBar = true }, "opacity: 0", ""},
		{"no auto close", func(p *toast.Props) { p.AutoClose = 0 }, "", "Toastify__progress-bar"},
		{"custom duration", func(p *toast.Props) { p.AutoClose = 1500 * time.Millisecond }, "animation-duration: 1500ms", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultProps("t")
			tt.mutate(&p)
			html, err := renderer.RenderToString(toast.View(p, true, nil))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want != "" && !strings.Contains(html, tt.want) {
				t.Errorf("html missing %q:\n%s", tt.want, html)
			}
			if tt.missing != "" && strings.Contains(html, tt.missing) {
				t.Errorf("html should not contain %q:\n%s", tt.missing, html)
			}
		})
	}
}

func TestViewWithoutCloseButton(t *testing.T) {
	p := defaultProps("t")
	p.Apply(toast.WithoutCloseButton())

	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(toast.View(p, true, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "Toastify__close-button") {
		t.Errorf("close button should be omitted:\n%s", html)
	}
}

func TestCloseButtonLeavesDataActionToActions(t *testing.T) {
	renderer := render.NewRenderer(render.RendererConfig{})

	p := defaultProps("t")
	html, err := renderer.RenderToString(toast.View(p, true, toast.ActionButton("Undo", "close")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(html, `data-toast-close="true"`) != 1 {
		t.Errorf("want one close marker:\n%s", html)
	}
	if strings.Count(html, `data-action="close"`) != 1 || !strings.Contains(html, `data-action="close" type="button">Undo</button>`) {
		t.Errorf("data-action should belong to the action button only:\n%s", html)
	}
}

func TestViewDragAttributes(t *testing.T) {
	renderer := render.NewRenderer(render.RendererConfig{})

	p := defaultProps("t")
	p.Apply(toast.WithDraggable(false))
	html, err := renderer.RenderToString(toast.View(p, true, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `data-draggable="false"`) || strings.Contains(html, "data-draggable-percent") {
		t.Errorf("non-draggable toast should not carry drag thresholds:\n%s", html)
	}
}

func TestTransitionClassFor(t *testing.T) {
	tests := []struct {
		tr   toast.Transition
		in   bool
		pos  toast.Position
		want string
	}{
		{toast.Bounce, true, toast.TopLeft, "Toastify--animate Toastify__bounce-enter--top-left"},
		{toast.Bounce, false, toast.TopLeft, "Toastify--animate Toastify__bounce-exit--top-left"},
		{toast.Zoom, true, toast.BottomRight, "Toastify--animate Toastify__zoom-enter"},
		{toast.Slide, false, toast.BottomCenter, "Toastify--animate Toastify__slide-exit--bottom-center"},
		{toast.Transition{}, true, toast.TopRight, "Toastify--animate Toastify__bounce-enter--top-right"},
	}

	for _, tt := range tests {
		if got := tt.tr.ClassFor(tt.in, tt.pos); got != tt.want {
			t.Errorf("%s.ClassFor(%v, %s) = %q, want %q", tt.tr.Name, tt.in, tt.pos, got, tt.want)
		}
	}

	if tr, ok := toast.TransitionByName("flip"); !ok || tr.Name != "flip" {
		t.Error("TransitionByName(flip) failed")
	}
	if _, ok := toast.TransitionByName("wobble"); ok {
		t.Error("unknown transition should not resolve")
	}
}
