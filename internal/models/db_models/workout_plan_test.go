package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseListRoundTrip(t *testing.T) {
	list := ExerciseList{
		{Kind: "reps", Name: "Squat", Sets: 4, Reps: 8},
		{Kind: "timed", Name: "Plank", Sets: 3, DurationSeconds: 60},
	}

	v, err := list.Value()
	require.NoError(t, err)

	var decoded ExerciseList
	require.NoError(t, decoded.Scan(v))
	assert.Equal(t, list, decoded)
}

func TestExerciseListScanNull(t *testing.T) {
	var decoded ExerciseList
	require.NoError(t, decoded.Scan(nil))
	assert.Nil(t, decoded)
}

func TestExerciseListNilValue(t *testing.T) {
	var list ExerciseList
	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
