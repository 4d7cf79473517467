package statements

type StatementType int

const (
	Select StatementType = iota
	Insert
	Update
	Delete
)

func (st StatementType) String() string {
	switch st {
	case Select:
		return "SELECT"
	case Insert:
		return "INSERT"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// Statement is the interface implemented by every parsed SQL statement.
type Statement interface {
	// GetType returns the type of the statement
	GetType() StatementType
	// String returns a canonical SQL rendering of the statement. The
	// rendering re-parses to an equivalent statement.
	String() string
	// Validate checks if the statement is valid and returns an error if not
	Validate() error
}
