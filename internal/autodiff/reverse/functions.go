package reverse

import "github.com/superautodiff/superautodiff/internal/autodiff/ops"

// Apply records an elementary rule applied to n.
func Apply(op ops.Unary, n *Node) (*Node, error) {
	return n.unary(op)
}

// Sin returns sin(n).
func Sin(n *Node) (*Node, error) { return n.unary(ops.Sin) }

// Cos returns cos(n).
func Cos(n *Node) (*Node, error) { return n.unary(ops.Cos) }

// Tan returns tan(n).
func Tan(n *Node) (*Node, error) { return n.unary(ops.Tan) }

// Arcsin returns arcsin(n).
func Arcsin(n *Node) (*Node, error) { return n.unary(ops.Arcsin) }

// Arccos returns arccos(n).
func Arccos(n *Node) (*Node, error) { return n.unary(ops.Arccos) }

// Arctan returns arctan(n).
func Arctan(n *Node) (*Node, error) { return n.unary(ops.Arctan) }

// Exp returns e^n.
func Exp(n *Node) (*Node, error) { return n.unary(ops.Exp) }

// Log returns ln(n).
func Log(n *Node) (*Node, error) { return n.unary(ops.Ln) }

// LogBase returns log_base(n).
func LogBase(n *Node, base float64) (*Node, error) {
	op, err := ops.Log(base)
	if err != nil {
		return nil, err
	}
	return n.unary(op)
}

// Sinh returns sinh(n).
func Sinh(n *Node) (*Node, error) { return n.unary(ops.Sinh) }

// Cosh returns cosh(n).
func Cosh(n *Node) (*Node, error) { return n.unary(ops.Cosh) }

// Tanh returns tanh(n).
func Tanh(n *Node) (*Node, error) { return n.unary(ops.Tanh) }

// Sqrt returns n^0.5.
func Sqrt(n *Node) (*Node, error) { return n.unary(ops.Sqrt) }

// Logistic returns 1 / (1 + e^-n), recorded as four rows: neg, exp, add and
// reciprocal.
func Logistic(n *Node) (*Node, error) {
	e, err := Exp(n.Neg())
	if err != nil {
		return nil, err
	}
	return e.AddConst(1).Reciprocal()
}
