package template

// Data pools backing the name and email variables. Kept small on purpose:
// mock data only needs to look plausible, not be exhaustive.

// emailWords contains lowercase word tokens for {{$randomEmail}}.
// All entries are strictly [a-z]+ so generated addresses match
// word.word@example.com.
var emailWords = []string{
	"john", "jane", "alice", "bob", "charlie", "diana", "edward", "fiona",
	"oliver", "sophie", "liam", "emma", "noah", "mia", "lucas", "chloe",
}

// firstNames contains given names for {{$randomName}}.
var firstNames = []string{
	"John", "Jane", "Bob", "Alice", "Charlie", "Diana", "Edward", "Fiona",
	"Grace", "Henry", "Isla", "Jack", "Karen", "Louis", "Maria", "Nathan",
}

// lastNames contains family names for {{$randomName}}.
var lastNames = []string{
	"Smith", "Doe", "Johnson", "Williams", "Brown", "Davis", "Miller",
	"Wilson", "Moore", "Taylor", "Anderson", "Thomas", "Jackson", "White",
}
