package auth

// Resource identifies a guarded API resource
type Resource string

// Operation identifies an action on a resource
type Operation string

const (
	ResourceUser       Resource = "user"
	ResourceDepartment Resource = "department"
	ResourceCourse     Resource = "course"
	ResourceStudent    Resource = "student"
	ResourceAttendance Resource = "attendance"

	OperationCreate Operation = "create"
	OperationList   Operation = "list"
)

// Identity is the authenticated caller as seen by policy predicates
type Identity struct {
	UserID  int64
	Email   string
	IsStaff bool
}

// Predicate decides whether an identity may perform an operation
type Predicate func(Identity) bool

// Authenticated admits any authenticated caller
func Authenticated(Identity) bool { return true }

// StaffOnly admits callers with the staff flag
func StaffOnly(id Identity) bool { return id.IsStaff }

// Policy maps (resource, operation) to the predicate a caller must satisfy.
// A missing entry denies.
type Policy map[Resource]map[Operation]Predicate

// DefaultPolicy returns the access policy for the API: department and
// course creation are staff-only, everything else needs authentication only.
func DefaultPolicy() Policy {
	return Policy{
		ResourceUser: {
			OperationList: Authenticated,
		},
		ResourceDepartment: {
			OperationCreate: StaffOnly,
			OperationList:   Authenticated,
		},
		ResourceCourse: {
			OperationCreate: StaffOnly,
			OperationList:   Authenticated,
		},
		ResourceStudent: {
			OperationCreate: Authenticated,
			OperationList:   Authenticated,
		},
		ResourceAttendance: {
			OperationCreate: Authenticated,
			OperationList:   Authenticated,
		},
	}
}

// Allows reports whether the identity may perform op on resource
func (p Policy) Allows(resource Resource, op Operation, id Identity) bool {
	ops, ok := p[resource]
	if !ok {
		return false
	}

	predicate, ok := ops[op]
	if !ok {
		return false
	}

	return predicate(id)
}
