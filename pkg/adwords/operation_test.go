package adwords

import (
	"testing"

	"github.com/matryer/is"
)

type operand struct {
	ID string
}

func TestBuildAddOperationsPreservesCountAndOrder(t *testing.T) {
	is := is.New(t)

	operands := []operand{{"a"}, {"b"}, {"c"}, {"d"}}
	ops := BuildAddOperations(operands...)

	is.Equal(len(ops), len(operands))
	for i, op := range ops {
		is.Equal(op.Operator, Add)
		is.Equal(op.Operand, operands[i])
	}
}

func TestBuildOperationsWithNoOperands(t *testing.T) {
	is := is.New(t)

	ops := BuildRemoveOperations[operand]()
	is.Equal(len(ops), 0)
}

func TestBuildSetAndRemoveOperations(t *testing.T) {
	is := is.New(t)

	set := BuildSetOperations(operand{"x"})
	is.Equal(set[0].Operator, Set)

	remove := BuildRemoveOperations(operand{"y"}, operand{"z"})
	is.Equal(len(remove), 2)
	is.Equal(remove[1], Operation[operand]{Operator: Remove, Operand: operand{"z"}})
}
