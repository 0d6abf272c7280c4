package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConflictRelation(t *testing.T) {
	indexer := NewConflictIndexer()

	t.Run("Shared students link courses pairwise", func(t *testing.T) {
		// Arrange
		students := []Student{
			{Id: 1, Courses: []uint64{10, 20, 30}},
			{Id: 2, Courses: []uint64{20, 40}},
			{Id: 3, Courses: []uint64{50}},
		}

		// Act
		relation := indexer.Build(students)

		// Assert
		assert.True(t, relation.Conflicts(10, 20))
		assert.True(t, relation.Conflicts(10, 30))
		assert.True(t, relation.Conflicts(20, 30))
		assert.True(t, relation.Conflicts(20, 40))
		assert.False(t, relation.Conflicts(10, 40))
		assert.False(t, relation.Conflicts(30, 40))
		assert.False(t, relation.Conflicts(50, 10))
	})

	t.Run("Relation is symmetric", func(t *testing.T) {
		// Arrange
		students := []Student{
			{Id: 1, Courses: []uint64{1, 2}},
			{Id: 2, Courses: []uint64{2, 3}},
		}

		// Act
		relation := indexer.Build(students)

		// Assert
		for courseA, neighbors := range relation {
			for courseB := range neighbors {
				assert.True(t, relation.Conflicts(courseB, courseA))
			}
		}
	})

	t.Run("Degree counts distinct conflicting courses", func(t *testing.T) {
		// Arrange
		students := []Student{
			{Id: 1, Courses: []uint64{1, 2}},
			{Id: 2, Courses: []uint64{1, 2}}, // same pair twice must not double-count
			{Id: 3, Courses: []uint64{1, 3}},
		}

		// Act
		relation := indexer.Build(students)

		// Assert
		assert.Equal(t, 2, relation.Degree(1))
		assert.Equal(t, 1, relation.Degree(2))
		assert.Equal(t, 1, relation.Degree(3))
		assert.Equal(t, 0, relation.Degree(99))
	})

	t.Run("Students with zero or one course constrain nothing", func(t *testing.T) {
		// Arrange
		students := []Student{
			{Id: 1, Courses: []uint64{}},
			{Id: 2, Courses: []uint64{7}},
		}

		// Act
		relation := indexer.Build(students)

		// Assert
		assert.Empty(t, relation)
	})

	t.Run("Duplicate enrollment rows do not self-conflict", func(t *testing.T) {
		// Arrange
		students := []Student{
			{Id: 1, Courses: []uint64{5, 5}},
		}

		// Act
		relation := indexer.Build(students)

		// Assert
		assert.False(t, relation.Conflicts(5, 5))
		assert.Equal(t, 0, relation.Degree(5))
	})
}
