package model

// ExerciseType is the muscle-group enum stored in exercises.type. The set is
// fixed; values outside it are rejected before a query is ever built.
type ExerciseType string

const (
    TypeBiceps    ExerciseType = "biceps"
    TypeTriceps   ExerciseType = "triceps"
    TypeChest     ExerciseType = "chest"
    TypeBack      ExerciseType = "back"
    TypeLegs      ExerciseType = "legs"
    TypeShoulders ExerciseType = "shoulders"
)

// ExerciseTypes lists every valid enum value, in schema order.
var ExerciseTypes = []ExerciseType{
    TypeBiceps, TypeTriceps, TypeChest, TypeBack, TypeLegs, TypeShoulders,
}

// Valid reports whether t is one of the schema enum values.
func (t ExerciseType) Valid() bool {
    switch t {
    case TypeBiceps, TypeTriceps, TypeChest, TypeBack, TypeLegs, TypeShoulders:
        return true
    }
    return false
}

// Exercise is a row of the global exercise catalog.  Exercises carry no
// owner: they are reference data written by the seed process and read by
// every user.
type Exercise struct {
    ID          uint64       `json:"id"`          // exercises.id
    Name        string       `json:"name"`        // exercises.name
    Description *string      `json:"description"` // exercises.description (nullable)
    Type        ExerciseType `json:"type"`        // exercises.type
}
