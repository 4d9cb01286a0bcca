package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Known(t *testing.T) {
	for _, r := range []Role{RoleManager, RoleElectrician, RoleEngineer, RoleStaff} {
		assert.True(t, r.Known(), r)
	}
	assert.False(t, Role("estagiario").Known())
	assert.False(t, Role("").Known())
	assert.Equal(t, RoleStaff, DefaultRole)
}

func TestStatus_Known(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusInProgress, StatusPlanning, StatusDone} {
		assert.True(t, s.Known(), s)
	}
	assert.False(t, Status("em andamento").Known(), "comparison is case sensitive")
	assert.False(t, Status("Cancelado").Known())
	assert.Equal(t, StatusActive, DefaultStatus)
}
