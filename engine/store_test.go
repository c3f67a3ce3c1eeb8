package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/bird-shooter/core"
)

type testComponent struct {
	Value int
}

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[testComponent]()

	s.SetComponent(1, testComponent{Value: 10})
	s.SetComponent(2, testComponent{Value: 20})
	s.SetComponent(1, testComponent{Value: 11})

	v, ok := s.GetComponent(1)
	assert.True(t, ok)
	assert.Equal(t, 11, v.Value)
	assert.Equal(t, 2, s.CountEntities(), "update does not duplicate")

	s.RemoveEntity(1)
	s.RemoveEntity(99)
	_, ok = s.GetComponent(1)
	assert.False(t, ok)
	assert.False(t, s.HasEntity(1))
	assert.True(t, s.HasEntity(2))
	assert.Equal(t, []core.Entity{2}, s.GetAllEntities())
}

func TestStore_InsertionOrderSurvivesRemoval(t *testing.T) {
	s := NewStore[testComponent]()
	for e := core.Entity(1); e <= 5; e++ {
		s.SetComponent(e, testComponent{Value: int(e)})
	}

	s.RemoveEntity(2)
	assert.Equal(t, []core.Entity{1, 3, 4, 5}, s.GetAllEntities())

	s.RemoveBatch([]core.Entity{5, 1, 42})
	assert.Equal(t, []core.Entity{3, 4}, s.GetAllEntities())

	s.RemoveBatch(nil)
	assert.Equal(t, 2, s.CountEntities())
}

func TestStore_GetAllEntitiesReturnsCopy(t *testing.T) {
	s := NewStore[testComponent]()
	s.SetComponent(1, testComponent{})

	entities := s.GetAllEntities()
	entities[0] = 99
	assert.Equal(t, []core.Entity{1}, s.GetAllEntities())
}

func TestStore_ClearAll(t *testing.T) {
	s := NewStore[testComponent]()
	s.SetComponent(1, testComponent{})
	s.SetComponent(2, testComponent{})

	var erased entityStore = s
	erased.ClearAllComponents()
	assert.Equal(t, 0, s.CountEntities())
	assert.Empty(t, s.GetAllEntities())
	assert.False(t, s.HasEntity(2))

	s.SetComponent(3, testComponent{Value: 3})
	v, ok := s.GetComponent(3)
	assert.True(t, ok)
	assert.Equal(t, 3, v.Value)
}

func TestStore_RemoveBatchKeepsValuesAligned(t *testing.T) {
	s := NewStore[testComponent]()
	for e := core.Entity(1); e <= 6; e++ {
		s.SetComponent(e, testComponent{Value: int(e) * 10})
	}

	s.RemoveBatch([]core.Entity{2, 2, 5})
	assert.Equal(t, []core.Entity{1, 3, 4, 6}, s.GetAllEntities())
	for _, e := range s.GetAllEntities() {
		v, ok := s.GetComponent(e)
		assert.True(t, ok)
		assert.Equal(t, int(e)*10, v.Value)
	}

	s.SetComponent(4, testComponent{Value: 41})
	v, _ := s.GetComponent(4)
	assert.Equal(t, 41, v.Value)
	assert.Equal(t, 4, s.CountEntities())
}
