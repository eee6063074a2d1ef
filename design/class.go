// Package design - Class: a stabilized grouping of methods and attributes.
//
// Classes feed the freeze operation: once a class is considered stable, every
// (method, attribute) pair it contains is pinned in the pheromone matrix so
// future construction keeps the pairing intact.
package design

import "errors"

// Sentinel errors for class construction.
var (
	// ErrEmptyClassName indicates a class constructed with an empty name.
	ErrEmptyClassName = errors.New("design: class name is empty")

	// ErrEmptyElementName indicates a method or attribute with an empty name.
	ErrEmptyElementName = errors.New("design: element name is empty")
)

// Element is a named design element with its dense matrix index.
type Element struct {
	// ID is the element's matrix coordinate, stable for the run.
	ID ElementID

	// Name is the element's source-level name, used only for diagnostics.
	Name string
}

// Class groups the method and attribute elements of one stabilized class.
// Construct via NewClass and populate with AddMethod/AddAttribute.
type Class struct {
	name       string
	methods    []Element
	attributes []Element
}

// NewClass creates an empty class with the given name.
func NewClass(name string) (*Class, error) {
	if name == "" {
		return nil, ErrEmptyClassName
	}

	return &Class{name: name}, nil
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// AddMethod appends a method element to the class.
func (c *Class) AddMethod(id ElementID, name string) error {
	el, err := newElement(id, name)
	if err != nil {
		return err
	}
	c.methods = append(c.methods, el)

	return nil
}

// AddAttribute appends an attribute element to the class.
func (c *Class) AddAttribute(id ElementID, name string) error {
	el, err := newElement(id, name)
	if err != nil {
		return err
	}
	c.attributes = append(c.attributes, el)

	return nil
}

// Methods returns an independent copy of the class's method elements.
func (c *Class) Methods() []Element {
	out := make([]Element, len(c.methods))
	copy(out, c.methods)

	return out
}

// Attributes returns an independent copy of the class's attribute elements.
func (c *Class) Attributes() []Element {
	out := make([]Element, len(c.attributes))
	copy(out, c.attributes)

	return out
}

// newElement validates one element's index and name.
func newElement(id ElementID, name string) (Element, error) {
	if id < 0 {
		return Element{}, ErrNegativeElementID
	}
	if name == "" {
		return Element{}, ErrEmptyElementName
	}

	return Element{ID: id, Name: name}, nil
}
