// Package stylesheet loads YAML style sheets and applies them to widget
// trees through the pipe package.
//
//	rules:
//	  - select: descendants
//	    theme: dark
//	  - select: children
//	    fg: cyan
//	    attributes: [bold]
//	    height: {policy: fixed, hint: 3}
//	    border:
//	      shape: full
//	      glyphs: [rounded_corners]
//	      walls: {north: "═"}
package stylesheet

import "time"

// Document is the YAML form of a style sheet.
type Document struct {
	Rules []Rule `yaml:"rules" validate:"dive"`
}

// Rule selects widgets relative to the root a sheet is applied to and
// configures them. Fields run in declaration order.
type Rule struct {
	Select     string        `yaml:"select,omitempty" validate:"omitempty,oneof=self children descendants"`
	Name       string        `yaml:"name,omitempty"`
	Theme      string        `yaml:"theme,omitempty" validate:"required_with=Role,omitempty,theme"`
	Role       string        `yaml:"role,omitempty" validate:"omitempty,role"`
	FG         string        `yaml:"fg,omitempty" validate:"omitempty,color"`
	BG         string        `yaml:"bg,omitempty" validate:"omitempty,color"`
	Attributes []string      `yaml:"attributes,omitempty" validate:"dive,attribute"`
	Remove     []string      `yaml:"remove,omitempty" validate:"dive,attribute"`
	Wallpaper  string        `yaml:"wallpaper,omitempty" validate:"omitempty,glyph"`
	Cursor     *Cursor       `yaml:"cursor,omitempty"`
	Focus      string        `yaml:"focus,omitempty" validate:"omitempty,focus_policy"`
	Width      *Size         `yaml:"width,omitempty"`
	Height     *Size         `yaml:"height,omitempty"`
	Border     *Border       `yaml:"border,omitempty"`
	Animate    time.Duration `yaml:"animate,omitempty" validate:"gte=0"`
}

// Cursor shows or hides the text cursor and places it.
type Cursor struct {
	Show bool `yaml:"show"`
	X    int  `yaml:"x"`
	Y    int  `yaml:"y"`
}

// Size configures one axis of a widget's size policy. The policy shorthand,
// when present, is applied before the individual knobs.
type Size struct {
	Policy       string   `yaml:"policy,omitempty" validate:"omitempty,oneof=fixed minimum maximum preferred expanding minimum_expanding ignored"`
	Hint         *int     `yaml:"hint,omitempty" validate:"omitempty,gte=0"`
	Min          *int     `yaml:"min,omitempty" validate:"omitempty,gte=0"`
	Max          *int     `yaml:"max,omitempty" validate:"omitempty,gte=0"`
	Stretch      *float64 `yaml:"stretch,omitempty" validate:"omitempty,gte=0"`
	CanIgnoreMin *bool    `yaml:"can_ignore_min,omitempty"`
}

// Border picks a shape, then applies glyph sets in order, then individual
// wall glyphs and wall attributes.
type Border struct {
	Shape      string              `yaml:"shape,omitempty" validate:"omitempty,shape"`
	Glyphs     []string            `yaml:"glyphs,omitempty" validate:"dive,glyph_set"`
	Walls      map[string]string   `yaml:"walls,omitempty" validate:"dive,keys,wall,endkeys,glyph"`
	Attributes map[string][]string `yaml:"attributes,omitempty" validate:"dive,keys,wall,endkeys,dive,attribute"`
}
