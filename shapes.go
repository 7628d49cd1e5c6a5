package blockfunc

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Pi is the circle constant as the shape formulas use it. It is kept at two
// decimal places so that results match the documented transcripts.
const Pi = 3.14

// Shape is anything with an area and a perimeter.
type Shape interface {
	Area() float64
	Perimeter() float64
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width  float64 `mapstructure:"width" validate:"gte=0"`
	Height float64 `mapstructure:"height" validate:"gte=0"`
}

// NewRectangle returns a rectangle, rejecting negative sides.
func NewRectangle(width, height float64) (Rectangle, error) {
	r := Rectangle{Width: width, Height: height}
	return r, Validate(r)
}

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// Circle is a circle of the given radius.
type Circle struct {
	Radius float64 `mapstructure:"radius" validate:"gte=0"`
}

// NewCircle returns a circle, rejecting a negative radius.
func NewCircle(radius float64) (Circle, error) {
	c := Circle{Radius: radius}
	return c, Validate(c)
}

func (c Circle) Area() float64 {
	return Pi * (c.Radius * c.Radius)
}

func (c Circle) Perimeter() float64 {
	return 2 * Pi * c.Radius
}

// ============================================================================
// Display
// ============================================================================

// TypeName returns the name of the concrete type behind s, or "<nil>" for a
// nil Shape.
func TypeName(s Shape) string {
	t := reflect.TypeOf(s)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Describe formats s as "<type>: area=<area>, perimeter=<perimeter>".
// A nil Shape is described as "<nil>".
func Describe(s Shape) string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: area=%v, perimeter=%v", TypeName(s), s.Area(), s.Perimeter())
}

// checkShapes rejects nil entries before anything is written.
func checkShapes(routine string, shapes []Shape) error {
	for i, s := range shapes {
		if s == nil {
			return invalid(routine, "shapes["+strconv.Itoa(i)+"]", nil, "must not be nil")
		}
	}
	return nil
}

// PrintShapeStats writes one Describe line per shape, in order.
func PrintShapeStats(w io.Writer, shapes ...Shape) error {
	if err := checkShapes("PrintShapeStats", shapes); err != nil {
		return err
	}
	for _, s := range shapes {
		if _, err := fmt.Fprintln(w, Describe(s)); err != nil {
			return err
		}
	}
	return nil
}

// RenderShapeTable writes shapes as a table with one row per shape.
func RenderShapeTable(w io.Writer, shapes ...Shape) error {
	if err := checkShapes("RenderShapeTable", shapes); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Shape", "Area", "Perimeter"})
	for _, s := range shapes {
		table.Append([]string{TypeName(s), formatFloat(s.Area()), formatFloat(s.Perimeter())})
	}
	table.Render()
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ============================================================================
// Validation
// ============================================================================

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func shapeValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks that every dimension of s is non-negative.
func Validate(s Shape) error {
	err := shapeValidator().Struct(s)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return invalid(TypeName(s), fe.Field(), fe.Value(), "failed "+fe.Tag()+"="+fe.Param())
	}
	return err
}

// ============================================================================
// Decoding
// ============================================================================

// DecodeShapes reads a YAML list of shape records such as
//
//	- kind: rectangle
//	  width: 4
//	  height: 1
//	- kind: circle
//	  radius: 3
//
// and returns the validated shapes in file order.
func DecodeShapes(data []byte) ([]Shape, error) {
	var records []map[string]any
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	shapes := make([]Shape, 0, len(records))
	for i, rec := range records {
		s, err := decodeShape(rec)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		if err := Validate(s); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func decodeShape(rec map[string]any) (Shape, error) {
	kind, _ := rec["kind"].(string)
	fields := make(map[string]any, len(rec))
	for k, val := range rec {
		if k != "kind" {
			fields[k] = val
		}
	}

	switch kind {
	case "rectangle":
		var r Rectangle
		if err := strictDecode(fields, &r); err != nil {
			return nil, err
		}
		return r, nil
	case "circle":
		var c Circle
		if err := strictDecode(fields, &c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, invalid("DecodeShapes", "kind", kind, "unknown shape kind")
	}
}

func strictDecode(input map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
