package adwords

type Operator string

const (
	Add    Operator = "ADD"
	Set    Operator = "SET"
	Remove Operator = "REMOVE"
)

// Operation is a single mutation of one operand. Operations are built per call and
// handed to the transport exactly once.
type Operation[T any] struct {
	Operator Operator `xml:"operator" json:"operator"`
	Operand  T        `xml:"operand" json:"operand"`
}

func NewOperation[T any](operator Operator, operand T) Operation[T] {
	return Operation[T]{
		Operator: operator,
		Operand:  operand,
	}
}

// BuildOperations returns one operation per operand, in the order the operands were
// given, so that a whole batch can be submitted in a single round trip.
func BuildOperations[T any](operator Operator, operands ...T) []Operation[T] {
	operations := make([]Operation[T], 0, len(operands))

	for _, operand := range operands {
		operations = append(operations, NewOperation(operator, operand))
	}

	return operations
}

func BuildAddOperations[T any](operands ...T) []Operation[T] {
	return BuildOperations(Add, operands...)
}

func BuildSetOperations[T any](operands ...T) []Operation[T] {
	return BuildOperations(Set, operands...)
}

func BuildRemoveOperations[T any](operands ...T) []Operation[T] {
	return BuildOperations(Remove, operands...)
}
