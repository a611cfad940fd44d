// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slider

import "context"

// Repository is the persistence port for slides.
// Listings are ordered by Order ascending, newest first within the same order.
type Repository interface {
	ListSliders(context context.Context, filter Filter) ([]*Slider, error)
	GetSlider(context context.Context, id int64) (*Slider, error)
	CreateSlider(context context.Context, slider *Slider) error
	UpdateSlider(context context.Context, slider *Slider) error
	DeleteSlider(context context.Context, id int64) error
}
