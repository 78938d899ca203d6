package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()
	staff := Identity{UserID: 1, Email: "staff@example.com", IsStaff: true}
	regular := Identity{UserID: 2, Email: "user@example.com"}

	tests := []struct {
		name     string
		resource Resource
		op       Operation
		identity Identity
		want     bool
	}{
		{name: "staff creates department", resource: ResourceDepartment, op: OperationCreate, identity: staff, want: true},
		{name: "non-staff creates department", resource: ResourceDepartment, op: OperationCreate, identity: regular, want: false},
		{name: "staff creates course", resource: ResourceCourse, op: OperationCreate, identity: staff, want: true},
		{name: "non-staff creates course", resource: ResourceCourse, op: OperationCreate, identity: regular, want: false},
		{name: "non-staff creates student", resource: ResourceStudent, op: OperationCreate, identity: regular, want: true},
		{name: "non-staff creates attendance", resource: ResourceAttendance, op: OperationCreate, identity: regular, want: true},
		{name: "non-staff lists users", resource: ResourceUser, op: OperationList, identity: regular, want: true},
		{name: "non-staff lists departments", resource: ResourceDepartment, op: OperationList, identity: regular, want: true},
		{name: "non-staff lists courses", resource: ResourceCourse, op: OperationList, identity: regular, want: true},
		{name: "non-staff lists students", resource: ResourceStudent, op: OperationList, identity: regular, want: true},
		{name: "non-staff lists attendance", resource: ResourceAttendance, op: OperationList, identity: regular, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Allows(tt.resource, tt.op, tt.identity))
		})
	}
}

func TestPolicyAllows_missingEntryDenies(t *testing.T) {
	policy := DefaultPolicy()
	staff := Identity{UserID: 1, IsStaff: true}

	assert.False(t, policy.Allows(Resource("unknown"), OperationList, staff))
	assert.False(t, policy.Allows(ResourceUser, OperationCreate, staff))

	empty := Policy{}
	assert.False(t, empty.Allows(ResourceDepartment, OperationList, staff))
}
