package formula

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// builtins are the only callable functions. The environment holds nothing but
// numeric bindings, so an expression can never reach past arithmetic on the
// inputs plus these three.
var builtins = map[string]func(args []float64) (float64, error){
	"abs": func(args []float64) (float64, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("abs expects 1 argument, got %d", len(args))
		}
		return math.Abs(args[0]), nil
	},
	"min": func(args []float64) (float64, error) {
		if len(args) < 2 {
			return 0, fmt.Errorf("min expects at least 2 arguments, got %d", len(args))
		}
		m := args[0]
		for _, a := range args[1:] {
			if a < m {
				m = a
			}
		}
		return m, nil
	},
	"max": func(args []float64) (float64, error) {
		if len(args) < 2 {
			return 0, fmt.Errorf("max expects at least 2 arguments, got %d", len(args))
		}
		m := args[0]
		for _, a := range args[1:] {
			if a > m {
				m = a
			}
		}
		return m, nil
	},
}

// SafeName maps an input identifier onto a token the lexer accepts. The
// transformation is deterministic: '.' and '-' become '_', '&' becomes "and".
func SafeName(name string) string {
	r := strings.NewReplacer(".", "_", "&", "and", "-", "_")
	return r.Replace(name)
}

// Rewrite replaces every occurrence of the given input identifiers in the
// formula text with their safe names. Longer identifiers are rewritten first
// so an input that is a prefix of another (revenue_t vs revenue_t-1) cannot
// corrupt it.
func Rewrite(expr string, inputs []string) string {
	sorted := make([]string, len(inputs))
	copy(sorted, inputs)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	for _, inp := range sorted {
		if safe := SafeName(inp); safe != inp {
			expr = strings.ReplaceAll(expr, inp, safe)
		}
	}
	return expr
}

// Evaluate rewrites, parses and evaluates a formula against the supplied
// inputs. Keys of the inputs map are the original (unsanitized) identifiers.
func Evaluate(expr string, inputs map[string]float64) (float64, error) {
	names := make([]string, 0, len(inputs))
	env := make(map[string]float64, len(inputs))
	for name, value := range inputs {
		names = append(names, name)
		env[SafeName(name)] = value
	}

	parsed, err := Parse(Rewrite(expr, names))
	if err != nil {
		return 0, err
	}
	return Eval(parsed, env)
}

// Eval walks the expression tree against a numeric environment.
func Eval(node Expression, env map[string]float64) (float64, error) {
	switch node := node.(type) {
	case *IntegerLiteral:
		return float64(node.Value), nil

	case *FloatLiteral:
		return node.Value, nil

	case *Identifier:
		value, ok := env[node.Value]
		if !ok {
			return 0, fmt.Errorf("unknown identifier %q", node.Value)
		}
		return value, nil

	case *PrefixExpression:
		right, err := Eval(node.Right, env)
		if err != nil {
			return 0, err
		}
		if node.Operator != "-" {
			return 0, fmt.Errorf("unknown prefix operator %q", node.Operator)
		}
		return -right, nil

	case *InfixExpression:
		left, err := Eval(node.Left, env)
		if err != nil {
			return 0, err
		}
		right, err := Eval(node.Right, env)
		if err != nil {
			return 0, err
		}
		return evalInfix(node.Operator, left, right)

	case *CallExpression:
		fn, ok := builtins[node.Function.String()]
		if !ok {
			return 0, fmt.Errorf("unknown function %q", node.Function.String())
		}
		args := make([]float64, 0, len(node.Arguments))
		for _, arg := range node.Arguments {
			v, err := Eval(arg, env)
			if err != nil {
				return 0, err
			}
			args = append(args, v)
		}
		return fn(args)

	default:
		return 0, fmt.Errorf("unknown node type %T", node)
	}
}

func evalInfix(operator string, left, right float64) (float64, error) {
	switch operator {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		// Surface data-quality problems instead of returning Inf/NaN.
		if right == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", operator)
	}
}

// Check verifies that a formula parses and references nothing beyond its
// declared inputs and the builtin functions. Used by the catalog to validate
// definitions eagerly at construction.
func Check(expr string, inputs []string) error {
	parsed, err := Parse(Rewrite(expr, inputs))
	if err != nil {
		return err
	}

	declared := make(map[string]struct{}, len(inputs))
	for _, inp := range inputs {
		declared[SafeName(inp)] = struct{}{}
	}
	return checkNode(parsed, declared)
}

func checkNode(node Expression, declared map[string]struct{}) error {
	switch node := node.(type) {
	case *IntegerLiteral, *FloatLiteral:
		return nil

	case *Identifier:
		if _, ok := declared[node.Value]; !ok {
			return fmt.Errorf("identifier %q is not a declared input", node.Value)
		}
		return nil

	case *PrefixExpression:
		return checkNode(node.Right, declared)

	case *InfixExpression:
		if err := checkNode(node.Left, declared); err != nil {
			return err
		}
		return checkNode(node.Right, declared)

	case *CallExpression:
		if _, ok := builtins[node.Function.String()]; !ok {
			return fmt.Errorf("function %q is not supported", node.Function.String())
		}
		for _, arg := range node.Arguments {
			if err := checkNode(arg, declared); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown node type %T", node)
	}
}
