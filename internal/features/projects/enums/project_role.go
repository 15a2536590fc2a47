package projects_enums

type ProjectRole string

const (
	ProjectRoleOwner  ProjectRole = "OWNER"
	ProjectRoleAdmin  ProjectRole = "ADMIN"
	ProjectRoleMember ProjectRole = "MEMBER"
)

func (r ProjectRole) IsValid() bool {
	switch r {
	case ProjectRoleOwner, ProjectRoleAdmin, ProjectRoleMember:
		return true
	default:
		return false
	}
}

// IsInvitable reports whether the role may be granted through the member
// upsert operation. OWNER is assigned only at project creation.
func (r ProjectRole) IsInvitable() bool {
	return r == ProjectRoleAdmin || r == ProjectRoleMember
}

func (r ProjectRole) CanManageMembers() bool {
	return r == ProjectRoleOwner || r == ProjectRoleAdmin
}
