package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/vk/mazewalk/internal/node"
	"github.com/vk/mazewalk/internal/nodeid"
)

// validate is a singleton validator instance with the maze rules registered.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("label", func(fl validator.FieldLevel) bool {
		return nodeid.ValidateLabel(fl.Field().String()) == nil
	}); err != nil {
		panic(err)
	}
	validate.RegisterStructValidation(nodeDefStructLevel, NodeDef{})
}

// nodeDefStructLevel enforces the rules that span fields: a branch has both
// children and a leaf has none.
func nodeDefStructLevel(sl validator.StructLevel) {
	d := sl.Current().Interface().(NodeDef)
	switch d.ResolvedKind() {
	case node.Leaf:
		if d.Left != "" {
			sl.ReportError(d.Left, "Left", "Left", "leaf_children", "")
		}
		if d.Right != "" {
			sl.ReportError(d.Right, "Right", "Right", "leaf_children", "")
		}
	default:
		if d.Left == "" {
			sl.ReportError(d.Left, "Left", "Left", "branch_child", "")
		}
		if d.Right == "" {
			sl.ReportError(d.Right, "Right", "Right", "branch_child", "")
		}
	}
}

// Validate checks the model's shape: every label is well-formed, the root
// is set and every branch names both children. Reference resolution is the
// builder's job. All problems are reported together.
func (m *Model) Validate() error {
	if m == nil {
		return errors.New("maze model cannot be nil")
	}
	err := validate.Struct(m)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var result *multierror.Error
	for _, e := range validationErrs {
		result = multierror.Append(result, formatValidationError(m, e))
	}
	return result.ErrorOrNil()
}

// formatValidationError converts a validator error into a message that
// names the offending definition.
func formatValidationError(m *Model, e validator.FieldError) error {
	field := e.Namespace()
	var idx int
	if n, _ := fmt.Sscanf(e.StructNamespace(), "Model.Nodes[%d]", &idx); n == 1 && idx < len(m.Nodes) && m.Nodes[idx] != nil {
		field = fmt.Sprintf("node %s: %s", m.Nodes[idx].Where(), e.Field())
	}

	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "min":
		return fmt.Errorf("%s: must have at least %s entries", field, e.Param())
	case "label":
		return fmt.Errorf("%s: '%v' is not a valid label", field, e.Value())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got '%v'", field, e.Param(), e.Value())
	case "branch_child":
		return fmt.Errorf("%s: a branch needs both a left and a right child", field)
	case "leaf_children":
		return fmt.Errorf("%s: a leaf cannot have children", field)
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}

// ValidateStruct checks v's `validate` tags with the maze rules registered,
// including the custom `label` tag.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}
