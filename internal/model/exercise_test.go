package model

import "testing"

func TestExerciseTypeValid(t *testing.T) {
	for _, typ := range ExerciseTypes {
		if !typ.Valid() {
			t.Errorf("%s should be valid", typ)
		}
	}

	for _, typ := range []ExerciseType{"", "cardio", "BICEPS", "forearms", "legs "} {
		if typ.Valid() {
			t.Errorf("%q should be invalid", typ)
		}
	}
}
