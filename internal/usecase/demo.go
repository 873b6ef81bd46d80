package usecase

import (
	"fmt"
	"io"

	"github.com/danielgomezobraztsov/web-presentation/internal/domain"
)

// DemoRequests are the three requests of the controller walkthrough:
// a user lookup, a product lookup and one that matches no route.
func DemoRequests() []domain.RawRequest {
	return []domain.RawRequest{
		UserDemoRequest(),
		ProductDemoRequest(),
		InvalidDemoRequest(),
	}
}

func UserDemoRequest() domain.RawRequest {
	return domain.RawRequest{"type": "user", "action": "get_user", "user_id": 123}
}

func ProductDemoRequest() domain.RawRequest {
	return domain.RawRequest{"type": "product", "action": "get_product", "product_id": 456}
}

func InvalidDemoRequest() domain.RawRequest {
	return domain.RawRequest{"type": "unknown", "action": "invalid_action"}
}

// DemoPage renders the same field through both the screen and the field block.
func DemoPage() domain.Page {
	return domain.NewPage("The Beatles", "The Beatles", "The Beatles Field Content")
}

// Demo prints one line per demo request followed by the rendered demo page.
type Demo struct {
	controller *ApplicationController
	render     *RenderPage
}

func NewDemo(c *ApplicationController, r *RenderPage) *Demo {
	return &Demo{controller: c, render: r}
}

func (d *Demo) Run(w io.Writer) error {
	for _, raw := range DemoRequests() {
		out, err := d.controller.HandleRequest(raw)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}

	html, err := d.render.Execute(DemoPage())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, html)
	return err
}
